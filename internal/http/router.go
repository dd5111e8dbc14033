package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Word endpoints
	if cfg.Words != nil {
		wordsController := NewWordsController(cfg.Words, logger)
		router.GET("/api/words", wordsController.ListWords)
		router.POST("/api/words/lookup", wordsController.AcquireWord)
		router.POST("/api/words", wordsController.AddWord)
		router.DELETE("/api/words/:id", wordsController.DeleteWord)
	}

	return router
}
