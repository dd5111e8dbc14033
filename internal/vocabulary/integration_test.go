package vocabulary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mrlokans/wordbook/internal/database"
	"github.com/mrlokans/wordbook/internal/database/words"
	"github.com/mrlokans/wordbook/internal/dictionary"
	"github.com/mrlokans/wordbook/internal/entities"
)

// fakeDictionary serves canned Free Dictionary responses keyed by word.
func fakeDictionary(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimPrefix(r.URL.Path, "/") {
		case "serendipity":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"word":"serendipity","meanings":[
				{"partOfSpeech":"noun","definitions":[
					{"definition":"Luck in making discoveries.","example":"A fortunate stroke of serendipity."},
					{"definition":"An unsought discovery."}
				]},
				{"partOfSpeech":"verb","definitions":[{"definition":"To discover by chance."}]}
			]}]`))
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newIntegrationService(t *testing.T) *Service {
	t.Helper()
	logger := zaptest.NewLogger(t)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "vocabulary.db"), database.Options{Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := dictionary.DefaultConfig()
	cfg.BaseURL = fakeDictionary(t).URL
	client := dictionary.NewFreeDictionaryClient(cfg, logger)

	return NewService(client, words.NewRepository(db.DB), logger)
}

func TestIntegration_AcquireThenList(t *testing.T) {
	service := newIntegrationService(t)
	ctx := context.Background()

	stored, err := service.AcquireWord(ctx, "serendipity")
	require.NoError(t, err)

	all, err := service.ListWords(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, stored.ID, all[0].ID)
	assert.NotEmpty(t, all[0].CreatedAt)

	rep := all[0].Representation()
	require.True(t, rep.IsRich())
	assert.Equal(t, []entities.Meaning{
		{
			PartOfSpeech: "noun",
			Definitions: []entities.Definition{
				{Text: "Luck in making discoveries.", Example: "A fortunate stroke of serendipity."},
				{Text: "An unsought discovery."},
			},
		},
		{
			PartOfSpeech: "verb",
			Definitions:  []entities.Definition{{Text: "To discover by chance."}},
		},
	}, rep.Meanings)
}

func TestIntegration_AcquireTwice(t *testing.T) {
	service := newIntegrationService(t)
	ctx := context.Background()

	_, err := service.AcquireWord(ctx, "serendipity")
	require.NoError(t, err)

	_, err = service.AcquireWord(ctx, "serendipity")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	all, err := service.ListWords(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestIntegration_RemoteFailuresStoreNothing(t *testing.T) {
	service := newIntegrationService(t)
	ctx := context.Background()

	_, err := service.AcquireWord(ctx, "asdfxyz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.AcquireWord(ctx, "broken")
	assert.ErrorIs(t, err, ErrRemote)

	all, err := service.ListWords(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestIntegration_DeleteWord(t *testing.T) {
	service := newIntegrationService(t)
	ctx := context.Background()

	err := service.DeleteWord(ctx, 424242)
	assert.ErrorIs(t, err, ErrRowNotFound)

	stored, err := service.AcquireWord(ctx, "serendipity")
	require.NoError(t, err)
	require.NoError(t, service.DeleteWord(ctx, stored.ID))

	all, err := service.ListWords(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	again, err := service.ManualAdd(ctx, "serendipity", "happy accident")
	require.NoError(t, err)
	assert.Greater(t, again.ID, stored.ID)
}

func TestIntegration_ManualAdd(t *testing.T) {
	service := newIntegrationService(t)
	ctx := context.Background()

	_, err := service.ManualAdd(ctx, "hello", "a greeting")
	require.NoError(t, err)

	all, err := service.ListWords(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "hello", all[0].Word)
	assert.Equal(t, "a greeting", all[0].Definition)
	assert.Equal(t, "a greeting", all[0].Representation().Render())

	_, err = service.ManualAdd(ctx, "hello", "something else")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestIntegration_ConcurrentManualAdd(t *testing.T) {
	service := newIntegrationService(t)
	ctx := context.Background()

	const callers = 6
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ManualAdd(ctx, "contested", "first writer wins")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)
}
