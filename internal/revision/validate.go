package revision

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newDraftValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("category", isKnownCategory); err != nil {
		return nil, nil, fmt.Errorf("failed to register category validation: %w", err)
	}
	if err := validate.RegisterTranslation("category", trans, func(ut ut.Translator) error {
		return ut.Add("category", fmt.Sprintf("{0} must be one of: %s", strings.Join(Categories(), ", ")), true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("category", fe.Field())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register category translation: %w", err)
	}

	return validate, trans, nil
}

func isKnownCategory(fl validator.FieldLevel) bool {
	return ValidCategory(fl.Field().String())
}

// ValidateDraft checks the problem draft against the creation contract:
// name, link and category are required, the link must be a URL and the
// category must belong to the closed set.
func ValidateDraft(draft ProblemDraft) error {
	validate, trans, err := newDraftValidator()
	if err != nil {
		return fmt.Errorf("newDraftValidator() > %w", err)
	}

	if err := validate.Struct(draft); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldError := range validationErrors {
				messages = append(messages, fieldError.Translate(trans))
			}
			return fmt.Errorf("invalid problem: %s", strings.Join(messages, "; "))
		}
		return fmt.Errorf("validate.Struct() > %w", err)
	}
	return nil
}
