// # internal/render/dot.go
package render

import (
	"fmt"
	"strings"

	"modgraph/internal/extract"
)

// WriteDOT formats edges as a Graphviz digraph description. Output is a pure
// function of the input: edges appear in input order, duplicates included,
// with no sorting and no name escaping.
func WriteDOT(edges []extract.Edge) string {
	var buf strings.Builder

	buf.WriteString("digraph dependencies {\n")
	for _, edge := range edges {
		buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", edge.Source, edge.Target))
	}
	buf.WriteString("}\n")

	return buf.String()
}
