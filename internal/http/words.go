package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/entities"
	"github.com/mrlokans/wordbook/internal/vocabulary"
)

// WordService defines the vocabulary operations exposed over HTTP.
type WordService interface {
	ListWords(ctx context.Context) ([]entities.StoredWord, error)
	AcquireWord(ctx context.Context, word string) (*entities.StoredWord, error)
	ManualAdd(ctx context.Context, word, definition string) (*entities.StoredWord, error)
	DeleteWord(ctx context.Context, id int64) error
}

type WordsController struct {
	service WordService
	logger  *zap.Logger
}

func NewWordsController(service WordService, logger *zap.Logger) *WordsController {
	return &WordsController{
		service: service,
		logger:  logger,
	}
}

// LookupRequest is the request body for acquiring a word from the dictionary.
type LookupRequest struct {
	Word string `json:"word"`
}

// AddWordRequest is the request body for adding a word with a manual definition.
type AddWordRequest struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// WordResponse is a stored word together with its decoded representation.
type WordResponse struct {
	ID             int64                       `json:"id"`
	Word           string                      `json:"word"`
	Definition     string                      `json:"definition"`
	CreatedAt      string                      `json:"created_at,omitempty"`
	Representation entities.RepresentationKind `json:"representation"`
	Meanings       []entities.Meaning          `json:"meanings,omitempty"`
}

func newWordResponse(w entities.StoredWord) WordResponse {
	rep := w.Representation()
	return WordResponse{
		ID:             w.ID,
		Word:           w.Word,
		Definition:     w.Definition,
		CreatedAt:      w.CreatedAt,
		Representation: rep.Kind,
		Meanings:       rep.Meanings,
	}
}

// ListWords returns every stored word ordered by id.
// GET /api/words
func (wc *WordsController) ListWords(c *gin.Context) {
	stored, err := wc.service.ListWords(c.Request.Context())
	if err != nil {
		wc.respondServiceError(c, err)
		return
	}

	items := make([]WordResponse, len(stored))
	for i, w := range stored {
		items[i] = newWordResponse(w)
	}

	c.JSON(http.StatusOK, gin.H{"words": items})
}

// AcquireWord looks a word up in the dictionary and stores it.
// POST /api/words/lookup
func (wc *WordsController) AcquireWord(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	stored, err := wc.service.AcquireWord(c.Request.Context(), req.Word)
	if err != nil {
		wc.respondServiceError(c, err)
		return
	}

	respondCreated(c, gin.H{"word": newWordResponse(*stored)})
}

// AddWord stores a word with a caller-supplied definition.
// POST /api/words
func (wc *WordsController) AddWord(c *gin.Context) {
	var req AddWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	stored, err := wc.service.ManualAdd(c.Request.Context(), req.Word, req.Definition)
	if err != nil {
		wc.respondServiceError(c, err)
		return
	}

	respondCreated(c, gin.H{"word": newWordResponse(*stored)})
}

// DeleteWord removes a stored word.
// DELETE /api/words/:id
func (wc *WordsController) DeleteWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := wc.service.DeleteWord(c.Request.Context(), id); err != nil {
		wc.respondServiceError(c, err)
		return
	}

	respondSuccess(c, "word deleted")
}

func (wc *WordsController) respondServiceError(c *gin.Context, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		wc.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
	}
	respondError(c, status, err.Error(), vocabulary.Code(err))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, vocabulary.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, vocabulary.ErrNotFound), errors.Is(err, vocabulary.ErrRowNotFound):
		return http.StatusNotFound
	case errors.Is(err, vocabulary.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, vocabulary.ErrRemote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
