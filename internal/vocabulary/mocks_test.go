package vocabulary

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mrlokans/wordbook/internal/dictionary"
	"github.com/mrlokans/wordbook/internal/entities"
)

// MockClient is a mock for dictionary.Client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Fetch(ctx context.Context, word string) (dictionary.Outcome, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(dictionary.Outcome), args.Error(1)
}

func (m *MockClient) Name() string {
	return "mock"
}

// MockWordStore is a mock for WordStore
type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) List(ctx context.Context) ([]entities.StoredWord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.StoredWord), args.Error(1)
}

func (m *MockWordStore) Insert(ctx context.Context, word, definition string) (*entities.StoredWord, error) {
	args := m.Called(ctx, word, definition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StoredWord), args.Error(1)
}

func (m *MockWordStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
