package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mrlokans/wordbook/internal/entities"
)

// WordService is the subset of the vocabulary service used by the
// word commands.
type WordService interface {
	ListWords(ctx context.Context) ([]entities.StoredWord, error)
	AcquireWord(ctx context.Context, word string) (*entities.StoredWord, error)
	ManualAdd(ctx context.Context, word, definition string) (*entities.StoredWord, error)
	DeleteWord(ctx context.Context, id int64) error
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	okColor      = color.New(color.FgGreen)
	dimColor     = color.New(color.Faint)
)

// printWord writes a stored word with its rendered definition.
func printWord(out io.Writer, w entities.StoredWord) {
	headingColor.Fprintf(out, "#%d %s", w.ID, w.Word)
	if w.CreatedAt != "" {
		dimColor.Fprintf(out, "  (added %s)", w.CreatedAt)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, indent(w.Representation().Render(), "  "))
}

func indent(text, prefix string) string {
	out := make([]byte, 0, len(text)+len(prefix))
	lineStart := true
	for i := 0; i < len(text); i++ {
		if lineStart && text[i] != '\n' {
			out = append(out, prefix...)
		}
		out = append(out, text[i])
		lineStart = text[i] == '\n'
	}
	return string(out)
}
