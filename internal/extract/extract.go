// # internal/extract/extract.go
package extract

import (
	"modgraph/internal/syntax"
)

// Edge is one dependency: the defining module and the resolved module it
// references. Duplicates are preserved; rendering decides nothing about them.
type Edge struct {
	Source syntax.ModulePath
	Target syntax.ModulePath
}

// Extract walks one parsed unit and returns the dependency edges of every
// module definition in it, nested definitions included. Each definition is
// resolved against only the alias directives collected from its own body.
func Extract(unit *syntax.Unit) []Edge {
	var edges []Edge
	syntax.Walk(unit.Nodes, func(n *syntax.Node) bool {
		if n.Kind == syntax.KindDefinition {
			edges = append(edges, extractDefinition(n)...)
		}
		return true
	})
	return edges
}

func extractDefinition(def *syntax.Node) []Edge {
	refs := collectReferences(def)
	table := collectDirectives(def)
	resolved := table.resolve(refs)

	edges := make([]Edge, 0, len(resolved))
	for _, target := range resolved {
		edges = append(edges, Edge{Source: def.Path.Clone(), Target: target})
	}
	return edges
}

// collectReferences unions the qualified-access qualifiers and the standalone
// namespaced paths of the body, removes structural duplicates, and drops any
// path equal to the definition's own name. The self-name exclusion is
// structural on purpose; it must not depend on traversal order.
func collectReferences(def *syntax.Node) []syntax.ModulePath {
	raw := append(collectDirect(def), collectNamespaced(def)...)

	refs := make([]syntax.ModulePath, 0, len(raw))
	for _, path := range raw {
		if len(path) == 0 || path.Equal(def.Path) {
			continue
		}
		if containsPath(refs, path) {
			continue
		}
		refs = append(refs, path.Clone())
	}
	return refs
}

// collectDirect gathers the qualifier of every qualified access in the body.
// A single atom-like qualifier yields a one-segment path verbatim; it is
// never promoted to a namespaced form.
func collectDirect(def *syntax.Node) []syntax.ModulePath {
	var out []syntax.ModulePath
	syntax.Walk(def.Children, func(n *syntax.Node) bool {
		if n.Kind == syntax.KindQualifiedAccess && len(n.Qualifier) > 0 {
			out = append(out, n.Qualifier)
		}
		return true
	})
	return out
}

// collectNamespaced gathers every standalone namespaced path in the body.
// This also sees the argument of use/import/require directives, which the
// parser surfaces as plain namespaced paths.
func collectNamespaced(def *syntax.Node) []syntax.ModulePath {
	var out []syntax.ModulePath
	syntax.Walk(def.Children, func(n *syntax.Node) bool {
		if n.Kind == syntax.KindNamespacedPath && len(n.Path) > 0 {
			out = append(out, n.Path)
		}
		return true
	})
	return out
}

func containsPath(paths []syntax.ModulePath, candidate syntax.ModulePath) bool {
	for _, p := range paths {
		if p.Equal(candidate) {
			return true
		}
	}
	return false
}
