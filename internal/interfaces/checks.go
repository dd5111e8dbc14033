package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/wordbook/internal/cli"
	"github.com/mrlokans/wordbook/internal/database"
	"github.com/mrlokans/wordbook/internal/database/words"
	"github.com/mrlokans/wordbook/internal/dictionary"
	"github.com/mrlokans/wordbook/internal/http"
	"github.com/mrlokans/wordbook/internal/vocabulary"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// WordStore implementations
var _ vocabulary.WordStore = (*words.Repository)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// External Services
// =============================================================================

// DictionaryClient implementations
var _ dictionary.Client = (*dictionary.FreeDictionaryClient)(nil)

// =============================================================================
// Command Layer
// =============================================================================

// WordService implementations
var _ http.WordService = (*vocabulary.Service)(nil)
var _ cli.WordService = (*vocabulary.Service)(nil)
