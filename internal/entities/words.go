package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoMeanings is returned when encoding an empty meaning list.
var ErrNoMeanings = errors.New("no meanings to encode")

type RepresentationKind string

const (
	// RepresentationFlat is a single plain-text definition.
	RepresentationFlat RepresentationKind = "flat"
	// RepresentationRich is a JSON-encoded list of meaning groups.
	RepresentationRich RepresentationKind = "rich"
)

// StoredWord is a vocabulary entry persisted in the words table.
// CreatedAt is assigned by SQLite on insert and is never written from Go.
type StoredWord struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Word       string `gorm:"not null;uniqueIndex" json:"word"`
	Definition string `gorm:"type:text;not null" json:"definition"`
	CreatedAt  string `gorm:"->" json:"created_at,omitempty"`
}

func (StoredWord) TableName() string {
	return "words"
}

// Representation decodes the stored definition text.
func (w StoredWord) Representation() Representation {
	return DecodeDefinition(w.Definition)
}

// Definition is a single sense of a word with an optional usage example.
type Definition struct {
	Text    string `json:"definition"`
	Example string `json:"example,omitempty"`
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Representation is the decoded form of StoredWord.Definition.
// Text always holds the raw column value; Meanings is set only for rich rows.
type Representation struct {
	Kind     RepresentationKind `json:"kind"`
	Text     string             `json:"-"`
	Meanings []Meaning          `json:"meanings,omitempty"`
}

func (r Representation) IsRich() bool {
	return r.Kind == RepresentationRich
}

// EncodeMeanings serializes meanings into the rich text representation.
func EncodeMeanings(meanings []Meaning) (string, error) {
	if len(meanings) == 0 {
		return "", ErrNoMeanings
	}
	data, err := json.Marshal(meanings)
	if err != nil {
		return "", fmt.Errorf("encode meanings: %w", err)
	}
	return string(data), nil
}

// legacyMeaning matches rows written by early versions, where the
// definitions list was serialized under the "partOfSpeech" key.
type legacyMeaning struct {
	Definitions []Definition `json:"partOfSpeech"`
}

// DecodeDefinition interprets stored definition text. It first tries the
// rich JSON form and falls back to treating the text as a flat definition.
func DecodeDefinition(text string) Representation {
	flat := Representation{Kind: RepresentationFlat, Text: text}

	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") {
		return flat
	}

	var meanings []Meaning
	if err := json.Unmarshal([]byte(trimmed), &meanings); err != nil {
		var legacy []legacyMeaning
		if err := json.Unmarshal([]byte(trimmed), &legacy); err != nil {
			return flat
		}
		meanings = make([]Meaning, 0, len(legacy))
		for _, m := range legacy {
			meanings = append(meanings, Meaning{Definitions: m.Definitions})
		}
	}

	if !validMeanings(meanings) {
		return flat
	}

	return Representation{Kind: RepresentationRich, Text: text, Meanings: meanings}
}

func validMeanings(meanings []Meaning) bool {
	if len(meanings) == 0 {
		return false
	}
	for _, m := range meanings {
		if len(m.Definitions) == 0 {
			return false
		}
		for _, d := range m.Definitions {
			if d.Text == "" {
				return false
			}
		}
	}
	return true
}

// Render formats the representation for terminal display.
func (r Representation) Render() string {
	if !r.IsRich() {
		return r.Text
	}

	var b strings.Builder
	for i, m := range r.Meanings {
		if i > 0 {
			b.WriteString("\n")
		}
		pos := m.PartOfSpeech
		if pos == "" {
			pos = "(unspecified)"
		}
		b.WriteString(pos)
		b.WriteString("\n")
		for j, d := range m.Definitions {
			fmt.Fprintf(&b, "  %d. %s\n", j+1, d.Text)
			if d.Example != "" {
				fmt.Fprintf(&b, "     %q\n", d.Example)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
