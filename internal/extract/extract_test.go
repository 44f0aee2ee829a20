// # internal/extract/extract_test.go
package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modgraph/internal/syntax"
)

func unit(nodes ...syntax.Node) *syntax.Unit {
	return &syntax.Unit{Path: "lib/test.ex", Nodes: nodes}
}

func edgeStrings(edges []Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Source.String()+" -> "+e.Target.String())
	}
	return out
}

func TestExtractWithoutAliases(t *testing.T) {
	u := unit(syntax.Definition(syntax.ParsePath("Tester.One"),
		syntax.QualifiedAccess(syntax.ParsePath("String"), "length"),
		syntax.QualifiedAccess(syntax.ParsePath("List"), "first"),
		syntax.QualifiedAccess(syntax.PathOf("lists"), "sort"),
		syntax.QualifiedAccess(syntax.ParsePath("Tester.Other"), "first"),
		syntax.QualifiedAccess(syntax.ParsePath("My.Long.Module.Chain"), "first"),
	))

	edges := Extract(u)
	assert.ElementsMatch(t, []string{
		"Tester.One -> String",
		"Tester.One -> List",
		"Tester.One -> lists",
		"Tester.One -> Tester.Other",
		"Tester.One -> My.Long.Module.Chain",
	}, edgeStrings(edges))
}

func TestAtomQualifierStaysSingleSegment(t *testing.T) {
	u := unit(syntax.Definition(syntax.ParsePath("M"),
		syntax.QualifiedAccess(syntax.PathOf("lists"), "sort"),
	))

	edges := Extract(u)
	require.Len(t, edges, 1)
	assert.Equal(t, syntax.PathOf("lists"), edges[0].Target)
}

func TestBareAliasRoundTrip(t *testing.T) {
	directive := syntax.AliasBare(syntax.ParsePath("A.B.C"))
	directive.Children = []syntax.Node{syntax.NamespacedPath(syntax.ParsePath("A.B.C"))}

	u := unit(syntax.Definition(syntax.ParsePath("M"),
		directive,
		syntax.QualifiedAccess(syntax.PathOf("C"), "f"),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"M -> A.B.C"}, edgeStrings(edges))
}

func TestBareAliasKeepsTrailingSegments(t *testing.T) {
	u := unit(syntax.Definition(syntax.ParsePath("M"),
		syntax.AliasBare(syntax.ParsePath("A.B.C")),
		syntax.QualifiedAccess(syntax.ParsePath("C.D"), "f"),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"M -> A.B.C.D"}, edgeStrings(edges))
}

func TestBareAliasDropsDeclarationMention(t *testing.T) {
	// The parser surfaces the directive's target as a namespaced path; it
	// must not survive as an edge when nothing references the short name.
	directive := syntax.AliasBare(syntax.ParsePath("A.B.C"))
	directive.Children = []syntax.Node{syntax.NamespacedPath(syntax.ParsePath("A.B.C"))}

	u := unit(syntax.Definition(syntax.ParsePath("M"), directive))

	assert.Empty(t, Extract(u))
}

func TestRenamedAliasRoundTrip(t *testing.T) {
	directive := syntax.AliasAs(syntax.ParsePath("A.B"), syntax.PathOf("X"))
	directive.Children = []syntax.Node{syntax.NamespacedPath(syntax.ParsePath("A.B"))}

	u := unit(syntax.Definition(syntax.ParsePath("M"),
		directive,
		syntax.QualifiedAccess(syntax.PathOf("X"), "f"),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"M -> A.B"}, edgeStrings(edges))
}

func TestRenamedAliasSuppressesLiteralTarget(t *testing.T) {
	// A plain reference spelled exactly like the alias target is removed
	// along with the declaration's self-mention. Known ambiguity, kept.
	directive := syntax.AliasAs(syntax.ParsePath("A.B"), syntax.PathOf("X"))
	directive.Children = []syntax.Node{syntax.NamespacedPath(syntax.ParsePath("A.B"))}

	u := unit(syntax.Definition(syntax.ParsePath("M"),
		directive,
		syntax.QualifiedAccess(syntax.ParsePath("A.B"), "g"),
		syntax.QualifiedAccess(syntax.PathOf("X"), "f"),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"M -> A.B"}, edgeStrings(edges))
}

func TestRequireAsResolvesLikeRenamedAlias(t *testing.T) {
	directive := syntax.RequireAs(syntax.ParsePath("Integer"), syntax.PathOf("I"))
	directive.Children = []syntax.Node{syntax.NamespacedPath(syntax.ParsePath("Integer"))}

	u := unit(syntax.Definition(syntax.ParsePath("M"),
		directive,
		syntax.QualifiedAccess(syntax.PathOf("I"), "parse"),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"M -> Integer"}, edgeStrings(edges))
}

func TestGroupedAliasExpansion(t *testing.T) {
	directive := syntax.AliasGroup(syntax.ParsePath("P"), syntax.PathOf("X"), syntax.PathOf("Y"))
	directive.Children = []syntax.Node{syntax.NamespacedPath(syntax.ParsePath("P"))}

	u := unit(syntax.Definition(syntax.ParsePath("M"),
		directive,
		syntax.QualifiedAccess(syntax.PathOf("X"), "f"),
		syntax.QualifiedAccess(syntax.PathOf("Y"), "g"),
	))

	edges := Extract(u)
	assert.ElementsMatch(t, []string{"M -> P.X", "M -> P.Y"}, edgeStrings(edges))
}

func TestGroupedAliasDeepPrefix(t *testing.T) {
	u := unit(syntax.Definition(syntax.ParsePath("M"),
		syntax.AliasGroup(syntax.ParsePath("My.Deep"), syntax.ParsePath("Mod.Leaf")),
		syntax.QualifiedAccess(syntax.PathOf("Leaf"), "f"),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"M -> My.Deep.Mod.Leaf"}, edgeStrings(edges))
}

func TestAliasScopeIsolation(t *testing.T) {
	u := unit(
		syntax.Definition(syntax.ParsePath("M1"),
			syntax.AliasBare(syntax.ParsePath("A.B.C")),
			syntax.QualifiedAccess(syntax.PathOf("C"), "f"),
		),
		syntax.Definition(syntax.ParsePath("M2"),
			syntax.QualifiedAccess(syntax.PathOf("C"), "f"),
		),
	)

	edges := Extract(u)
	assert.ElementsMatch(t, []string{"M1 -> A.B.C", "M2 -> C"}, edgeStrings(edges))
}

func TestSelfReferenceNeverEmitted(t *testing.T) {
	u := unit(syntax.Definition(syntax.ParsePath("Tester.One"),
		syntax.NamespacedPath(syntax.ParsePath("Tester.One")),
		syntax.QualifiedAccess(syntax.ParsePath("Tester.One"), "helper"),
		syntax.QualifiedAccess(syntax.ParsePath("String"), "length"),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"Tester.One -> String"}, edgeStrings(edges))
}

func TestRawReferenceDeduplication(t *testing.T) {
	u := unit(syntax.Definition(syntax.ParsePath("M"),
		syntax.QualifiedAccess(syntax.ParsePath("String"), "length"),
		syntax.QualifiedAccess(syntax.ParsePath("String"), "upcase"),
		syntax.NamespacedPath(syntax.ParsePath("String")),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"M -> String"}, edgeStrings(edges))
}

func TestNamespacedPathFromDirectives(t *testing.T) {
	// use/import/require targets surface as plain namespaced paths.
	u := unit(syntax.Definition(syntax.ParsePath("M"),
		syntax.Other(syntax.NamespacedPath(syntax.ParsePath("GenServer"))),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"M -> GenServer"}, edgeStrings(edges))
}

func TestNestedDefinitionsCollectedIndependently(t *testing.T) {
	u := unit(syntax.Definition(syntax.ParsePath("Outer"),
		syntax.QualifiedAccess(syntax.ParsePath("String"), "length"),
		syntax.Definition(syntax.ParsePath("Outer.Inner"),
			syntax.QualifiedAccess(syntax.ParsePath("List"), "first"),
		),
	))

	edges := Extract(u)
	// The outer body walk sees the nested body too; the nested definition
	// is additionally collected as its own scope.
	assert.ElementsMatch(t, []string{
		"Outer -> String",
		"Outer -> List",
		"Outer.Inner -> List",
	}, edgeStrings(edges))
}

func TestUnresolvedShortNameFallsThrough(t *testing.T) {
	u := unit(syntax.Definition(syntax.ParsePath("M"),
		syntax.QualifiedAccess(syntax.PathOf("Nope"), "f"),
	))

	edges := Extract(u)
	assert.Equal(t, []string{"M -> Nope"}, edgeStrings(edges))
}

func TestReferencesNestedInsideArguments(t *testing.T) {
	u := unit(syntax.Definition(syntax.ParsePath("M"),
		syntax.QualifiedAccess(syntax.ParsePath("Enum"), "map",
			syntax.QualifiedAccess(syntax.ParsePath("String"), "upcase"),
		),
	))

	edges := Extract(u)
	assert.ElementsMatch(t, []string{"M -> Enum", "M -> String"}, edgeStrings(edges))
}

func TestExtractEmitsDuplicateEdgesAcrossModules(t *testing.T) {
	u := unit(
		syntax.Definition(syntax.ParsePath("M1"),
			syntax.QualifiedAccess(syntax.ParsePath("String"), "length"),
		),
		syntax.Definition(syntax.ParsePath("M2"),
			syntax.QualifiedAccess(syntax.ParsePath("String"), "length"),
		),
	)

	edges := Extract(u)
	assert.Equal(t, []string{"M1 -> String", "M2 -> String"}, edgeStrings(edges))
}
