// # internal/parser/parser.go
package parser

import (
	"path/filepath"
	"strings"
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"modgraph/internal/core/errors"
	"modgraph/internal/parser/grammar"
	"modgraph/internal/shared/observability"
	"modgraph/internal/syntax"
)

const languageName = "elixir"

// Parser parses Elixir sources with Tree-sitter and adapts the CST into the
// closed node model the extractor consumes.
type Parser struct {
	language *sitter.Language
}

// New loads the Elixir grammar from the given shared object path.
func New(grammarPath string) (*Parser, error) {
	lang, err := grammar.LoadDynamic(grammarPath, languageName)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeNotSupported, "load elixir grammar")
	}
	return &Parser{language: lang}, nil
}

// Supports reports whether the path looks like an Elixir source unit.
func (p *Parser) Supports(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ex" || ext == ".exs"
}

// Parse turns raw source text into one unit of syntax nodes. A source that
// does not form a valid tree is a fatal parse failure; there are no partial
// results for a unit.
func (p *Parser) Parse(path string, content []byte) (*syntax.Unit, error) {
	start := time.Now()

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.language)

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, errors.New(errors.CodeParseFailure, "parse failed")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.New(errors.CodeParseFailure, "source does not form a valid syntax tree")
	}

	adapter := &elixirAdapter{source: content}
	nodes := adapter.adaptChildren(root)

	observability.ParsingDuration.WithLabelValues(languageName).Observe(time.Since(start).Seconds())
	return &syntax.Unit{Path: path, Nodes: nodes}, nil
}
