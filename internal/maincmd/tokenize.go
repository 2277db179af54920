package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/amirsalarsafaei/c-minus-compiler/lang/scanner"
	"github.com/amirsalarsafaei/c-minus-compiler/lang/token"
)

// Tokenize runs the scanner alone over every named file and prints the
// resulting tokens to stdout, for inspecting the scanner in isolation.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var lastErr error
	for _, file := range args {
		toks, el, err := scanner.ScanFile(ctx, file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		for _, tv := range toks {
			if tv.Token == token.EOF {
				continue
			}
			fmt.Fprintf(stdio.Stdout, "%s:%d: %s %q\n", file, tv.Pos.Line(), tv.Token.Category(), tv.Lit)
		}
		for _, e := range el {
			fmt.Fprintf(stdio.Stderr, "%s\n", e)
		}
		if len(el) > 0 {
			lastErr = fmt.Errorf("%s: %d lexical error(s)", file, len(el))
		}
	}
	return lastErr
}
