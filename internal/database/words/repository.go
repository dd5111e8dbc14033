// Package words provides database operations for stored vocabulary words.
//
// This package implements the WordStore interface defined in internal/vocabulary.
//
// # Interface Implementation
//
//	var _ vocabulary.WordStore = (*Repository)(nil)
//
// # Usage
//
//	repo := words.NewRepository(db.DB)
//	stored, err := repo.Insert(ctx, "hello", "a greeting")
//	if errors.Is(err, words.ErrConflict) {
//		// the word is already stored
//	}
package words

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/mrlokans/wordbook/internal/entities"
)

var (
	// ErrConflict is returned by Insert when the word is already stored.
	ErrConflict = errors.New("word already exists")
	// ErrNotFound is returned by Delete when no row matches the id.
	ErrNotFound = errors.New("word not found")
)

// Repository handles all word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new words repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every stored word ordered by ascending id.
func (r *Repository) List(ctx context.Context) ([]entities.StoredWord, error) {
	words := []entities.StoredWord{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&words).Error; err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// Insert stores a word with its definition text. Uniqueness is enforced by
// the database; a violation is reported as ErrConflict.
func (r *Repository) Insert(ctx context.Context, word, definition string) (*entities.StoredWord, error) {
	stored := &entities.StoredWord{
		Word:       word,
		Definition: definition,
	}

	if err := r.db.WithContext(ctx).Create(stored).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert %q: %w", word, ErrConflict)
		}
		return nil, fmt.Errorf("insert %q: %w", word, err)
	}

	return stored, nil
}

// Delete removes the word with the given id. Zero affected rows is
// reported as ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entities.StoredWord{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete word %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete word %d: %w", id, ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
