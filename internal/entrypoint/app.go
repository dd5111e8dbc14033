package entrypoint

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/config"
	"github.com/mrlokans/wordbook/internal/database"
	"github.com/mrlokans/wordbook/internal/database/words"
	"github.com/mrlokans/wordbook/internal/dictionary"
	"github.com/mrlokans/wordbook/internal/vocabulary"
)

// App holds the long-lived components shared by the HTTP server and the
// CLI commands. The caller owns it and must call Close.
type App struct {
	Logger   *zap.Logger
	Database *database.Database
	Service  *vocabulary.Service
}

// NewApp resolves the data directory, opens the word store and wires the
// dictionary client into the vocabulary service.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dbPath, err := ResolveDatabasePath(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDatabase(dbPath, database.Options{
		MaxConnections: cfg.Database.MaxConnections,
		BusyTimeout:    cfg.Database.BusyTimeout,
		LogQueries:     cfg.Database.LogQueries,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	client := dictionary.NewFreeDictionaryClient(dictionary.Config{
		BaseURL:   cfg.Dictionary.BaseURL,
		Timeout:   cfg.Dictionary.Timeout,
		UserAgent: cfg.Dictionary.UserAgent,
	}, logger)

	service := vocabulary.NewService(client, words.NewRepository(db.DB), logger)

	return &App{
		Logger:   logger,
		Database: db,
		Service:  service,
	}, nil
}

func (a *App) Close() error {
	return a.Database.Close()
}

// ResolveDatabasePath returns path unchanged when set, otherwise the
// database file inside the per-user config directory. The parent
// directory is created if missing.
func ResolveDatabasePath(path string) (string, error) {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve user config directory: %w", err)
		}
		path = filepath.Join(base, config.AppDirName, config.DatabaseFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return path, nil
}
