package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/database/words"
	"github.com/mrlokans/wordbook/internal/dictionary"
	"github.com/mrlokans/wordbook/internal/entities"
)

var helloMeanings = []entities.Meaning{{
	PartOfSpeech: "noun",
	Definitions:  []entities.Definition{{Text: "A greeting.", Example: "She said hello."}},
}}

func newMockedService() (*Service, *MockClient, *MockWordStore) {
	client := new(MockClient)
	store := new(MockWordStore)
	return NewService(client, store, zap.NewNop()), client, store
}

func TestAcquireWord_Success(t *testing.T) {
	service, client, store := newMockedService()
	ctx := context.Background()

	encoded, err := entities.EncodeMeanings(helloMeanings)
	require.NoError(t, err)

	client.On("Fetch", ctx, "hello").Return(dictionary.Found(helloMeanings), nil)
	store.On("Insert", ctx, "hello", encoded).
		Return(&entities.StoredWord{ID: 1, Word: "hello", Definition: encoded}, nil)

	stored, err := service.AcquireWord(ctx, "hello")

	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, helloMeanings, stored.Representation().Meanings)
	client.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestAcquireWord_TrimsInput(t *testing.T) {
	service, client, store := newMockedService()
	ctx := context.Background()

	client.On("Fetch", ctx, "hello").Return(dictionary.Found(helloMeanings), nil)
	store.On("Insert", ctx, "hello", mock.Anything).
		Return(&entities.StoredWord{ID: 7, Word: "hello"}, nil)

	stored, err := service.AcquireWord(ctx, "  hello\n")

	require.NoError(t, err)
	assert.Equal(t, "hello", stored.Word)
	client.AssertExpectations(t)
}

func TestAcquireWord_BlankInput(t *testing.T) {
	for _, word := range []string{"", "   ", "\t\n"} {
		t.Run(fmt.Sprintf("%q", word), func(t *testing.T) {
			service, client, store := newMockedService()

			_, err := service.AcquireWord(context.Background(), word)

			assert.ErrorIs(t, err, ErrInvalidInput)
			client.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAcquireWord_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		outcome dictionary.Outcome
	}{
		{name: "not found", outcome: dictionary.NotFound()},
		{name: "found without meanings", outcome: dictionary.Found(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client, store := newMockedService()
			ctx := context.Background()
			client.On("Fetch", ctx, "asdfxyz").Return(tt.outcome, nil)

			_, err := service.AcquireWord(ctx, "asdfxyz")

			assert.ErrorIs(t, err, ErrNotFound)
			assert.Contains(t, err.Error(), "asdfxyz")
			store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAcquireWord_RemoteError(t *testing.T) {
	service, client, store := newMockedService()
	ctx := context.Background()
	cause := fmt.Errorf("%w: unexpected status: 500", dictionary.ErrService)
	client.On("Fetch", ctx, "fail").Return(dictionary.Outcome{}, cause)

	_, err := service.AcquireWord(ctx, "fail")

	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, dictionary.ErrService)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "500")
	client.AssertNumberOfCalls(t, "Fetch", 1)
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcquireWord_SerializationError(t *testing.T) {
	service, client, store := newMockedService()
	ctx := context.Background()
	service.encode = func([]entities.Meaning) (string, error) {
		return "", errors.New("encoder exploded")
	}
	client.On("Fetch", ctx, "hello").Return(dictionary.Found(helloMeanings), nil)

	_, err := service.AcquireWord(ctx, "hello")

	assert.ErrorIs(t, err, ErrSerialization)
	assert.Contains(t, err.Error(), "encoder exploded")
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcquireWord_AlreadyExists(t *testing.T) {
	service, client, store := newMockedService()
	ctx := context.Background()
	client.On("Fetch", ctx, "hello").Return(dictionary.Found(helloMeanings), nil)
	store.On("Insert", ctx, "hello", mock.Anything).
		Return(nil, fmt.Errorf("insert %q: %w", "hello", words.ErrConflict))

	_, err := service.AcquireWord(ctx, "hello")

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NotErrorIs(t, err, ErrStorage)
	assert.Equal(t, "already_exists", Code(err))
}

func TestAcquireWord_StorageError(t *testing.T) {
	service, client, store := newMockedService()
	ctx := context.Background()
	client.On("Fetch", ctx, "hello").Return(dictionary.Found(helloMeanings), nil)
	store.On("Insert", ctx, "hello", mock.Anything).Return(nil, errors.New("disk I/O error"))

	_, err := service.AcquireWord(ctx, "hello")

	assert.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestManualAdd(t *testing.T) {
	service, client, store := newMockedService()
	ctx := context.Background()
	store.On("Insert", ctx, "hello", "a greeting").
		Return(&entities.StoredWord{ID: 3, Word: "hello", Definition: "a greeting"}, nil)

	stored, err := service.ManualAdd(ctx, " hello ", "a greeting")

	require.NoError(t, err)
	assert.Equal(t, "a greeting", stored.Definition)
	assert.False(t, stored.Representation().IsRich())
	client.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestManualAdd_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		definition string
	}{
		{name: "blank word", word: " ", definition: "a greeting"},
		{name: "blank definition", word: "hello", definition: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, store := newMockedService()

			_, err := service.ManualAdd(context.Background(), tt.word, tt.definition)

			assert.ErrorIs(t, err, ErrInvalidInput)
			store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestManualAdd_AlreadyExists(t *testing.T) {
	service, _, store := newMockedService()
	ctx := context.Background()
	store.On("Insert", ctx, "hello", "again").Return(nil, words.ErrConflict)

	_, err := service.ManualAdd(ctx, "hello", "again")

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestListWords(t *testing.T) {
	service, _, store := newMockedService()
	ctx := context.Background()
	expected := []entities.StoredWord{{ID: 1, Word: "a"}, {ID: 2, Word: "b"}}
	store.On("List", ctx).Return(expected, nil)

	result, err := service.ListWords(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestListWords_StorageError(t *testing.T) {
	service, _, store := newMockedService()
	ctx := context.Background()
	store.On("List", ctx).Return(nil, errors.New("database is locked"))

	_, err := service.ListWords(ctx)

	assert.ErrorIs(t, err, ErrStorage)
}

func TestDeleteWord(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantKind error
	}{
		{name: "deleted", storeErr: nil, wantKind: nil},
		{name: "missing row", storeErr: fmt.Errorf("delete word 9: %w", words.ErrNotFound), wantKind: ErrRowNotFound},
		{name: "storage failure", storeErr: errors.New("database is closed"), wantKind: ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, store := newMockedService()
			ctx := context.Background()
			store.On("Delete", ctx, int64(9)).Return(tt.storeErr)

			err := service.DeleteWord(ctx, 9)

			if tt.wantKind == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{newError(ErrInvalidInput, "x", nil), "invalid_input"},
		{newError(ErrNotFound, "x", nil), "not_found"},
		{newError(ErrRemote, "x", dictionary.ErrService), "remote_error"},
		{newError(ErrSerialization, "x", nil), "serialization_error"},
		{newError(ErrAlreadyExists, "x", words.ErrConflict), "already_exists"},
		{newError(ErrStorage, "x", nil), "storage_error"},
		{newError(ErrRowNotFound, "x", words.ErrNotFound), "row_not_found"},
		{errors.New("unclassified"), "storage_error"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestError_MessageIsDetail(t *testing.T) {
	err := newError(ErrNotFound, "no definitions found for \"x\"", nil)

	assert.Equal(t, "no definitions found for \"x\"", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
}
