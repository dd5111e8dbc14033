// Package vocabulary turns a raw word into a stored vocabulary entry.
//
// AcquireWord runs the full pipeline: dictionary lookup, normalization into
// the rich representation, serialization and a conflict-checked insert.
// ManualAdd, ListWords and DeleteWord go straight to the store.
//
// Every error returned by Service wraps exactly one of the kind sentinels
// (ErrNotFound, ErrRemote, ...), so callers can branch with errors.Is.
package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/database/words"
	"github.com/mrlokans/wordbook/internal/dictionary"
	"github.com/mrlokans/wordbook/internal/entities"
)

// WordStore persists words. Insert must report a duplicate word as
// words.ErrConflict and Delete a missing id as words.ErrNotFound.
type WordStore interface {
	List(ctx context.Context) ([]entities.StoredWord, error)
	Insert(ctx context.Context, word, definition string) (*entities.StoredWord, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	client dictionary.Client
	store  WordStore
	logger *zap.Logger
	encode func([]entities.Meaning) (string, error)
}

func NewService(client dictionary.Client, store WordStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		store:  store,
		logger: logger.Named("vocabulary"),
		encode: entities.EncodeMeanings,
	}
}

// ListWords returns all stored words ordered by ascending id.
func (s *Service) ListWords(ctx context.Context) ([]entities.StoredWord, error) {
	stored, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("failed to list words", zap.Error(err))
		return nil, newError(ErrStorage, fmt.Sprintf("failed to list words: %v", err), err)
	}
	return stored, nil
}

// AcquireWord looks the word up remotely and stores its meanings in the
// rich representation. The lookup is attempted once.
func (s *Service) AcquireWord(ctx context.Context, word string) (*entities.StoredWord, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, newError(ErrInvalidInput, "word must not be empty", nil)
	}

	log := s.logger.With(zap.String("word", word), zap.String("provider", s.client.Name()))
	log.Debug("looking up word")

	outcome, err := s.client.Fetch(ctx, word)
	if err != nil {
		log.Warn("dictionary lookup failed", zap.Error(err))
		return nil, newError(ErrRemote, fmt.Sprintf("failed to look up %q: %v", word, err), err)
	}
	if !outcome.IsFound() || len(outcome.Meanings) == 0 {
		log.Info("word not found in dictionary")
		return nil, newError(ErrNotFound, fmt.Sprintf("no definitions found for %q", word), nil)
	}
	log.Debug("parsed dictionary response", zap.Int("meanings", len(outcome.Meanings)))

	definition, err := s.encode(outcome.Meanings)
	if err != nil {
		log.Error("failed to serialize meanings", zap.Error(err))
		return nil, newError(ErrSerialization, fmt.Sprintf("failed to serialize definitions for %q: %v", word, err), err)
	}

	stored, err := s.insert(ctx, log, word, definition)
	if err != nil {
		return nil, err
	}

	log.Info("word acquired", zap.Int64("id", stored.ID), zap.Int("meanings", len(outcome.Meanings)))
	return stored, nil
}

// ManualAdd stores a word with caller-supplied definition text, bypassing
// the dictionary.
func (s *Service) ManualAdd(ctx context.Context, word, definition string) (*entities.StoredWord, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, newError(ErrInvalidInput, "word must not be empty", nil)
	}
	if strings.TrimSpace(definition) == "" {
		return nil, newError(ErrInvalidInput, "definition must not be empty", nil)
	}

	log := s.logger.With(zap.String("word", word))
	stored, err := s.insert(ctx, log, word, definition)
	if err != nil {
		return nil, err
	}

	log.Info("word added manually", zap.Int64("id", stored.ID))
	return stored, nil
}

// DeleteWord removes the stored word with the given id.
func (s *Service) DeleteWord(ctx context.Context, id int64) error {
	log := s.logger.With(zap.Int64("id", id))

	err := s.store.Delete(ctx, id)
	switch {
	case err == nil:
		log.Info("word deleted")
		return nil
	case errors.Is(err, words.ErrNotFound):
		log.Info("no word to delete")
		return newError(ErrRowNotFound, fmt.Sprintf("no word with id %d", id), err)
	default:
		log.Error("failed to delete word", zap.Error(err))
		return newError(ErrStorage, fmt.Sprintf("failed to delete word %d: %v", id, err), err)
	}
}

func (s *Service) insert(ctx context.Context, log *zap.Logger, word, definition string) (*entities.StoredWord, error) {
	stored, err := s.store.Insert(ctx, word, definition)
	switch {
	case err == nil:
		return stored, nil
	case errors.Is(err, words.ErrConflict):
		log.Info("word already stored")
		return nil, newError(ErrAlreadyExists, fmt.Sprintf("%q is already in the vocabulary", word), err)
	default:
		log.Error("failed to save word", zap.Error(err))
		return nil, newError(ErrStorage, fmt.Sprintf("failed to save %q: %v", word, err), err)
	}
}
