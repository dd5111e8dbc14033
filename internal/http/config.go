package http

import (
	"go.uber.org/zap"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Vocabulary operations
	Words WordService

	// Health checks (optional)
	Database Pinger

	// Application info
	Version string

	// Request and error logging. Defaults to a no-op logger.
	Logger *zap.Logger
}
