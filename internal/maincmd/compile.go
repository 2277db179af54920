package maincmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mna/mainer"

	"github.com/amirsalarsafaei/c-minus-compiler/internal/driver"
)

// Compile runs the scanner -> parser -> codegen pipeline over the named
// source file and writes the output streams under the configured output
// directory.
func (c *Cmd) Compile(_ context.Context, stdio mainer.Stdio, args []string) error {
	cfg, err := LoadConfig(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	outDir := c.OutputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir == "" {
		outDir = "."
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	res := driver.Compile(args[0], src)

	streams := []struct {
		name    string
		content string
	}{
		{cfg.TokensFile, res.Tokens},
		{cfg.LexicalErrorsFile, res.LexicalErrors},
		{cfg.SyntaxErrorsFile, res.SyntaxErrors},
		{cfg.SymbolTableFile, res.SymbolTable},
		{cfg.ParseTreeFile, res.ParseTree},
		{cfg.OutputFile, res.Output},
		{cfg.SemanticErrorsFile, res.SemanticErrors},
	}
	for _, s := range streams {
		path := filepath.Join(outDir, s.name)
		if err := os.WriteFile(path, []byte(s.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	fmt.Fprintf(stdio.Stdout, "wrote compiler output to %s\n", outDir)
	return nil
}
