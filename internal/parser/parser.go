// Package parser wraps the external syntax-tree producer. The TSX grammar
// handles both JSX and TSX dialects; node spans are half-open [start, end)
// byte offsets into the UTF-8 source buffer.
package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// Parser parses component-markup sources into syntax trees. Not safe for
// concurrent use; the scan is single-threaded by design.
type Parser struct {
	inner *sitter.Parser
}

// New creates a parser for the TSX grammar.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(tsx.GetLanguage())
	return &Parser{inner: p}
}

// Parse produces the syntax tree for src. A tree containing ERROR nodes is a
// parse failure: the caller gets no partial output for the file.
func (p *Parser) Parse(ctx context.Context, path string, src []byte) (*sitter.Tree, error) {
	tree, err := p.inner.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, fmt.Errorf("parse %s: syntax error", path)
	}
	return tree, nil
}
