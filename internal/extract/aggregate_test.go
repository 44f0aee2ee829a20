// # internal/extract/aggregate_test.go
package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modgraph/internal/core/errors"
	"modgraph/internal/syntax"
)

type fakeReader map[string][]byte

func (r fakeReader) ReadFile(path string) ([]byte, error) {
	content, ok := r[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return content, nil
}

type fakeParser map[string]*syntax.Unit

func (p fakeParser) Parse(path string, content []byte) (*syntax.Unit, error) {
	u, ok := p[path]
	if !ok {
		return nil, errors.New(errors.CodeParseFailure, "source does not form a valid syntax tree")
	}
	return u, nil
}

func TestAggregatePreservesPerUnitOrder(t *testing.T) {
	reader := fakeReader{"a.ex": nil, "b.ex": nil}
	parser := fakeParser{
		"a.ex": {Path: "a.ex", Nodes: []syntax.Node{
			syntax.Definition(syntax.ParsePath("A"),
				syntax.QualifiedAccess(syntax.ParsePath("String"), "length"),
			),
		}},
		"b.ex": {Path: "b.ex", Nodes: []syntax.Node{
			syntax.Definition(syntax.ParsePath("B"),
				syntax.QualifiedAccess(syntax.ParsePath("List"), "first"),
			),
		}},
	}

	edges, err := Aggregate([]string{"a.ex", "b.ex"}, reader, parser)
	require.NoError(t, err)
	assert.Equal(t, []string{"A -> String", "B -> List"}, edgeStrings(edges))
}

func TestAggregateUnreadableInputAbortsBatch(t *testing.T) {
	reader := fakeReader{"a.ex": nil}
	parser := fakeParser{
		"a.ex": {Path: "a.ex"},
	}

	edges, err := Aggregate([]string{"a.ex", "missing.ex"}, reader, parser)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInputUnreadable))
	assert.Nil(t, edges)
}

func TestAggregateParseFailureAbortsBatch(t *testing.T) {
	reader := fakeReader{"a.ex": nil, "broken.ex": nil}
	parser := fakeParser{
		"a.ex": {Path: "a.ex", Nodes: []syntax.Node{
			syntax.Definition(syntax.ParsePath("A"),
				syntax.QualifiedAccess(syntax.ParsePath("String"), "length"),
			),
		}},
	}

	edges, err := Aggregate([]string{"a.ex", "broken.ex"}, reader, parser)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeParseFailure))
	assert.Nil(t, edges)
}

func TestAggregateEmptyInputYieldsEmptyEdgeList(t *testing.T) {
	edges, err := Aggregate(nil, fakeReader{}, fakeParser{})
	require.NoError(t, err)
	assert.Empty(t, edges)
}
