package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DefaultMaxConnections = 5
	DefaultBusyTimeout    = 5 * time.Second
)

// Options tunes the SQLite connection pool.
type Options struct {
	// MaxConnections caps concurrently open connections. Default: 5
	MaxConnections int
	// BusyTimeout is how long a writer waits for the database lock. Default: 5s
	BusyTimeout time.Duration
	// LogQueries enables gorm query logging through the zap logger.
	LogQueries bool
	Logger     *zap.Logger
}

type Database struct {
	DB     *gorm.DB
	logger *zap.Logger
}

// NewDatabase opens the SQLite file at dbPath, configures the pool and
// applies pending schema migrations.
func NewDatabase(dbPath string, opts Options) (*Database, error) {
	if opts.MaxConnections <= 0 {
		opts.MaxConnections = DefaultMaxConnections
	}
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = DefaultBusyTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	log := opts.Logger.Named("database")

	logLevel := logger.Silent
	if opts.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dsn(dbPath, opts.BusyTimeout)), &gorm.Config{
		Logger: logger.New(zap.NewStdLog(log), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxConnections)
	sqlDB.SetMaxIdleConns(opts.MaxConnections)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(sqlDB, log); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("database initialized",
		zap.String("path", dbPath),
		zap.Int("max_connections", opts.MaxConnections),
	)

	return &Database{DB: db, logger: log}, nil
}

func dsn(dbPath string, busyTimeout time.Duration) string {
	return fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d", dbPath, busyTimeout.Milliseconds())
}

// Ping verifies the database is reachable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	d.logger.Info("closing database")
	return sqlDB.Close()
}
