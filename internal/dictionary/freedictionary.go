package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/entities"
)

const (
	DefaultBaseURL   = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Wordbook/1.0"
)

// Config controls how the Free Dictionary client reaches the API.
type Config struct {
	BaseURL string
	// Timeout bounds a whole request. Zero disables the client-side timeout.
	Timeout   time.Duration
	UserAgent string
}

// DefaultConfig returns a Config pointing at the public API.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// FreeDictionaryClient implements Client using the Free Dictionary API.
// API docs: https://dictionaryapi.dev/
type FreeDictionaryClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewFreeDictionaryClient creates a new Free Dictionary API client.
func NewFreeDictionaryClient(cfg Config, logger *zap.Logger) *FreeDictionaryClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FreeDictionaryClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		logger:    logger.Named("dictionary"),
	}
}

func (c *FreeDictionaryClient) Name() string {
	return "freedictionary"
}

// Fetch looks up a word and returns its meanings from the first entry.
// A 404 response or an entry without usable definitions yields NotFound.
func (c *FreeDictionaryClient) Fetch(ctx context.Context, word string) (Outcome, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(word)
	c.logger.Info("calling dictionary API", zap.String("word", word), zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Outcome{}, fmt.Errorf("create request: %w: %w", ErrService, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("fetch definition: %w: %w", ErrService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Info("dictionary API returned 404", zap.String("word", word))
		return NotFound(), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{}, fmt.Errorf("%w: unexpected status: %d", ErrService, resp.StatusCode)
	}

	var entries []freeDictionaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return Outcome{}, fmt.Errorf("decode response: %w: %w", ErrService, err)
	}

	if len(entries) == 0 {
		c.logger.Info("no entries in dictionary response", zap.String("word", word))
		return NotFound(), nil
	}

	meanings := convertMeanings(entries[0].Meanings)
	if len(meanings) == 0 {
		c.logger.Info("no meanings in dictionary response", zap.String("word", word))
		return NotFound(), nil
	}

	c.logger.Info("parsed dictionary response",
		zap.String("word", word),
		zap.Int("meanings", len(meanings)),
	)
	return Found(meanings), nil
}

// convertMeanings copies API meanings into entity values, dropping
// definitions without text and meanings left with no definitions.
func convertMeanings(apiMeanings []freeDictMeaning) []entities.Meaning {
	meanings := make([]entities.Meaning, 0, len(apiMeanings))
	for _, meaning := range apiMeanings {
		defs := make([]entities.Definition, 0, len(meaning.Definitions))
		for _, def := range meaning.Definitions {
			if strings.TrimSpace(def.Definition) == "" {
				continue
			}
			defs = append(defs, entities.Definition{
				Text:    def.Definition,
				Example: def.Example,
			})
		}
		if len(defs) == 0 {
			continue
		}
		meanings = append(meanings, entities.Meaning{
			PartOfSpeech: meaning.PartOfSpeech,
			Definitions:  defs,
		})
	}
	return meanings
}

// Free Dictionary API response types

type freeDictionaryResponse struct {
	Word     string            `json:"word"`
	Meanings []freeDictMeaning `json:"meanings"`
}

type freeDictMeaning struct {
	PartOfSpeech string               `json:"partOfSpeech"`
	Definitions  []freeDictDefinition `json:"definitions"`
}

type freeDictDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}
