package dictionary

import (
	"context"
	"errors"

	"github.com/mrlokans/wordbook/internal/entities"
)

// ErrService marks network failures, unexpected HTTP statuses and
// malformed responses from a dictionary provider.
var ErrService = errors.New("dictionary service error")

type Status int

const (
	StatusNotFound Status = iota
	StatusFound
)

func (s Status) String() string {
	if s == StatusFound {
		return "found"
	}
	return "not_found"
}

// Outcome is the result of a successful round trip to the provider.
// Meanings is only populated when Status is StatusFound.
type Outcome struct {
	Status   Status
	Meanings []entities.Meaning
}

func Found(meanings []entities.Meaning) Outcome {
	return Outcome{Status: StatusFound, Meanings: meanings}
}

func NotFound() Outcome {
	return Outcome{Status: StatusNotFound}
}

func (o Outcome) IsFound() bool {
	return o.Status == StatusFound
}

// Client defines the interface for dictionary API providers.
// Transport and service failures are returned as errors wrapping ErrService.
type Client interface {
	Fetch(ctx context.Context, word string) (Outcome, error)
	Name() string
}
