// # internal/extract/resolve.go
package extract

import (
	"modgraph/internal/syntax"
)

type bareAlias struct {
	target syntax.ModulePath
}

type renamedAlias struct {
	target syntax.ModulePath
	alias  syntax.ModulePath
}

type groupedAlias struct {
	prefix   syntax.ModulePath
	suffixes []syntax.ModulePath
}

// aliasTable holds the directives of exactly one definition body. It is
// rebuilt per definition and discarded afterwards; aliases never leak into
// sibling or outer scopes.
type aliasTable struct {
	bare    []bareAlias
	renamed []renamedAlias
	grouped []groupedAlias
}

// collectDirectives walks the full body subtree and captures every alias
// directive. `alias X, as: Y` and `require X, as: Y` share resolution
// semantics and land in the same renamed bucket, in collection order.
func collectDirectives(def *syntax.Node) *aliasTable {
	table := &aliasTable{}
	syntax.Walk(def.Children, func(n *syntax.Node) bool {
		switch n.Kind {
		case syntax.KindAliasBare:
			if len(n.Path) > 0 {
				table.bare = append(table.bare, bareAlias{target: n.Path})
			}
		case syntax.KindAliasAs, syntax.KindRequireAs:
			if len(n.Path) > 0 && len(n.Alias) > 0 {
				table.renamed = append(table.renamed, renamedAlias{target: n.Path, alias: n.Alias})
			}
		case syntax.KindAliasGroup:
			if len(n.Prefix) > 0 && len(n.Suffixes) > 0 {
				table.grouped = append(table.grouped, groupedAlias{prefix: n.Prefix, suffixes: n.Suffixes})
			}
		}
		return true
	})
	return table
}

// resolve applies the three alias passes in order: bare, renamed, grouped.
// References matching no directive fall through untouched; an unknown short
// name is emitted as-is, never treated as an error.
func (t *aliasTable) resolve(refs []syntax.ModulePath) []syntax.ModulePath {
	for _, a := range t.bare {
		refs = applyBare(refs, a)
	}
	for _, a := range t.renamed {
		refs = applyRenamed(refs, a)
	}
	for _, a := range t.grouped {
		refs = applyGrouped(refs, a)
	}
	return refs
}

// applyBare rewrites references whose first segment is the target's last
// segment by substituting the target's full path for that segment. A
// reference exactly equal to the target itself is the declaration's own
// mention and is dropped, unless the replaced-name rule already applies.
func applyBare(refs []syntax.ModulePath, a bareAlias) []syntax.ModulePath {
	out := refs[:0]
	for _, r := range refs {
		switch {
		case r.First() == a.target.Last():
			out = append(out, a.target.Join(r[1:]))
		case r.Equal(a.target):
			// declaration self-mention
		default:
			out = append(out, r)
		}
	}
	return out
}

// applyRenamed substitutes the target for references equal to the alias path.
// References equal to the target itself are removed without replacement; when
// the target also appears as a legitimate plain reference it is dropped too.
// That collision is a known ambiguity of the structural rule and is kept.
func applyRenamed(refs []syntax.ModulePath, a renamedAlias) []syntax.ModulePath {
	out := refs[:0]
	for _, r := range refs {
		switch {
		case r.Equal(a.alias):
			out = append(out, a.target.Clone())
		case r.Equal(a.target):
			// declaration self-mention
		default:
			out = append(out, r)
		}
	}
	return out
}

// applyGrouped expands single-segment references matching a suffix's last
// segment into prefix ++ suffix. References equal to the bare prefix are the
// declaration's own mention and are removed.
func applyGrouped(refs []syntax.ModulePath, a groupedAlias) []syntax.ModulePath {
	out := refs[:0]
	for _, r := range refs {
		if suffix, ok := a.matchSuffix(r); ok {
			out = append(out, a.prefix.Join(suffix))
			continue
		}
		if r.Equal(a.prefix) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (a groupedAlias) matchSuffix(r syntax.ModulePath) (syntax.ModulePath, bool) {
	if len(r) != 1 {
		return nil, false
	}
	for _, suffix := range a.suffixes {
		if r[0] == suffix.Last() {
			return suffix, true
		}
	}
	return nil, false
}
