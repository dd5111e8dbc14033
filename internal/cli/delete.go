package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
)

type DeleteCommand struct {
	ID  int64
	Out io.Writer
}

func NewDeleteCommand() *DeleteCommand {
	return &DeleteCommand{Out: os.Stdout}
}

func (cmd *DeleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)

	fs.Int64Var(&cmd.ID, "id", 0, "ID of the word to delete (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s delete -id <id>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete a stored word by its id (see '%s list').\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ID <= 0 {
		fs.Usage()
		return fmt.Errorf("a positive id is required")
	}

	return nil
}

func (cmd *DeleteCommand) Run(ctx context.Context, service WordService) error {
	if err := service.DeleteWord(ctx, cmd.ID); err != nil {
		return err
	}

	okColor.Fprintf(cmd.Out, "Deleted word %d\n", cmd.ID)
	return nil
}
