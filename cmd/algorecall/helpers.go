package main

import (
	"fmt"
	"time"

	"github.com/Shardul37/AlgoRecall/internal/api"
	"github.com/Shardul37/AlgoRecall/internal/config"
	"github.com/Shardul37/AlgoRecall/internal/journal"
	"github.com/Shardul37/AlgoRecall/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newStore wires the remote accessor and the store from the config. The
// caller owns closing the returned client.
func newStore(cfg *config.Config) (*store.Store, *api.HTTPClient) {
	client := api.NewHTTPClient(
		cfg.Server.BaseURL,
		time.Duration(cfg.Server.TimeoutSeconds)*time.Second,
		cfg.Server.RetryAttempts,
	)
	return store.New(client), client
}

func openJournal(cfg *config.Config) (*journal.Journal, error) {
	path := cfg.Journal.Path
	if path == "" {
		defaultPath, err := journal.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return journal.Open(path)
}
