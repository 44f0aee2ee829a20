// # internal/extract/aggregate.go
package extract

import (
	"modgraph/internal/core/errors"
	"modgraph/internal/syntax"
)

// Reader resolves a source identifier to raw content. Production code backs
// this with the filesystem; tests substitute fixtures.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// Parser turns raw source text into one parsed unit.
type Parser interface {
	Parse(path string, content []byte) (*syntax.Unit, error)
}

// Aggregate runs the extractor over every unit in order and concatenates the
// edge lists. There is no partial mode: the first unreadable or unparseable
// unit aborts the whole batch with no output.
func Aggregate(paths []string, reader Reader, parser Parser) ([]Edge, error) {
	edges := make([]Edge, 0)
	for _, path := range paths {
		content, err := reader.ReadFile(path)
		if err != nil {
			return nil, errors.AddContext(
				errors.Wrap(err, errors.CodeInputUnreadable, "read source unit"),
				errors.CtxPath, path,
			)
		}

		unit, err := parser.Parse(path, content)
		if err != nil {
			return nil, errors.AddContext(err, errors.CtxPath, path)
		}

		edges = append(edges, Extract(unit)...)
	}
	return edges, nil
}
