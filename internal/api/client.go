// Package api implements the remote accessor for the AlgoRecall server, a
// narrow JSON-over-HTTP contract the store depends on. The scheduling
// algorithm lives behind this contract; the client never computes intervals.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/Shardul37/AlgoRecall/internal/revision"
)

//go:generate mockgen -source=client.go -destination=../mocks/api/mock_client.go -package=mock_api

// Client is the remote accessor contract. All failures surface as generic
// transport or status errors; callers only record presence of an error.
type Client interface {
	TodayRevisions(ctx context.Context) ([]revision.Revision, error)
	CompleteRevision(ctx context.Context, revisionID int64, rating revision.Rating) error
	CreateProblem(ctx context.Context, draft revision.ProblemDraft) error
	Calendar(ctx context.Context, month, year int) (revision.CalendarMap, error)
	Analytics(ctx context.Context) (revision.Analytics, error)
	Problem(ctx context.Context, problemID int64) (revision.ProblemDetail, error)
}

const DefaultRetryAttempts = 3

// HTTPClient talks to the AlgoRecall server over REST/JSON.
type HTTPClient struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the server at baseURL. Idempotent reads
// are retried up to retryAttempts extra times; mutations are attempted once
// because completing a revision schedules the next one server-side.
func NewHTTPClient(baseURL string, timeout time.Duration, retryAttempts uint) *HTTPClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *HTTPClient) Close() error {
	return client.httpClient.Close()
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors) and rate limiting (429)
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// retryGet runs fn with backoff, giving up immediately on unrecoverable errors.
func (client *HTTPClient) retryGet(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			if err := fn(); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

// TodayRevisions fetches the due-today list in server order. The client does
// no re-filtering or re-sorting of the response.
func (client *HTTPClient) TodayRevisions(ctx context.Context) ([]revision.Revision, error) {
	var result []revision.Revision
	if err := client.retryGet(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetResult(&[]revision.Revision{}).
			Get("/api/revisions/today")
		if err != nil {
			return fmt.Errorf("httpClient.Get > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*[]revision.Revision)
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// CompleteRevision marks a revision as done with the given rating. The
// response body is unused beyond success or failure.
func (client *HTTPClient) CompleteRevision(ctx context.Context, revisionID int64, rating revision.Rating) error {
	if !rating.Valid() {
		return fmt.Errorf("invalid rating %d: must be 1, 2 or 3", int(rating))
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]int{"rating": int(rating)}).
		Post("/api/revisions/" + strconv.FormatInt(revisionID, 10) + "/complete")
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return nil
}

// CreateProblem registers a new problem. The server schedules its first
// revision; the response body is unused beyond success or failure.
func (client *HTTPClient) CreateProblem(ctx context.Context, draft revision.ProblemDraft) error {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(draft).
		Post("/api/problems")
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return nil
}

// Calendar fetches the revision map for one month, keyed by YYYY-MM-DD.
func (client *HTTPClient) Calendar(ctx context.Context, month, year int) (revision.CalendarMap, error) {
	var result revision.CalendarMap
	if err := client.retryGet(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"month": strconv.Itoa(month),
				"year":  strconv.Itoa(year),
			}).
			SetResult(&revision.CalendarMap{}).
			Get("/api/calendar")
		if err != nil {
			return fmt.Errorf("httpClient.Get > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*revision.CalendarMap)
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// Analytics fetches the aggregate snapshot.
func (client *HTTPClient) Analytics(ctx context.Context) (revision.Analytics, error) {
	var result revision.Analytics
	if err := client.retryGet(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetResult(&revision.Analytics{}).
			Get("/api/analytics")
		if err != nil {
			return fmt.Errorf("httpClient.Get > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*revision.Analytics)
		return nil
	}); err != nil {
		return revision.Analytics{}, err
	}
	slog.Default().Debug("fetched analytics",
		"totalProblems", result.TotalProblems,
		"totalRevisions", result.TotalRevisions,
	)
	return result, nil
}

// Problem fetches one problem with its full revision history. The history
// arrives in server order; sorting for display is a presentation concern.
func (client *HTTPClient) Problem(ctx context.Context, problemID int64) (revision.ProblemDetail, error) {
	var result revision.ProblemDetail
	if err := client.retryGet(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetResult(&revision.ProblemDetail{}).
			Get("/api/problems/" + strconv.FormatInt(problemID, 10))
		if err != nil {
			return fmt.Errorf("httpClient.Get > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*revision.ProblemDetail)
		return nil
	}); err != nil {
		return revision.ProblemDetail{}, err
	}
	return result, nil
}
