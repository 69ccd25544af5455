package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/common"
	"github.com/shouniet/medpetrx/internal/config"
	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/service"
	"github.com/shouniet/medpetrx/internal/storage"
)

// newAPIClient builds the backend client from configuration.
func newAPIClient() (*api.Client, error) {
	baseURL := viper.GetString("api.base_url")
	if baseURL == "" {
		return nil, common.NewUserError(
			"No backend configured. Set api.base_url in the config file or MEDPETRX_API_BASE_URL.",
			common.ErrMissingConfig)
	}
	token := viper.GetString("api.token")

	return api.NewClient(baseURL, token)
}

// initStore opens the local reference database with auto-migration.
func initStore(ctx context.Context) (service.ReferenceStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/medpetrx/medpetrx.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parsePetID parses the positional pet id argument.
func parsePetID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid pet id %q", arg)
	}
	return id, nil
}

// parseID parses any positional numeric id argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value. An empty string
// yields the zero Date, which marshals as null.
func parseDateFlag(value, flag string) (model.Date, error) {
	if value == "" {
		return model.Date{}, nil
	}
	t, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return model.Date{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", flag, value)
	}
	return model.Date{Time: t}, nil
}
