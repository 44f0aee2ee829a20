// # internal/syntax/syntax.go
package syntax

import "strings"

// ModulePath is an ordered sequence of name segments identifying a module,
// e.g. ["Tester", "One"]. Equality is structural, never by rendered string.
type ModulePath []string

func PathOf(segments ...string) ModulePath {
	return ModulePath(segments)
}

// ParsePath splits a dotted module name into its segments.
func ParsePath(dotted string) ModulePath {
	if dotted == "" {
		return nil
	}
	return ModulePath(strings.Split(dotted, "."))
}

func (p ModulePath) String() string {
	return strings.Join(p, ".")
}

func (p ModulePath) Equal(other ModulePath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p ModulePath) First() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

func (p ModulePath) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p ModulePath) Clone() ModulePath {
	return append(ModulePath(nil), p...)
}

// Join returns p ++ other as a fresh path.
func (p ModulePath) Join(other ModulePath) ModulePath {
	out := make(ModulePath, 0, len(p)+len(other))
	out = append(out, p...)
	return append(out, other...)
}

type NodeKind int

const (
	KindOther NodeKind = iota
	KindDefinition
	KindQualifiedAccess
	KindNamespacedPath
	KindAliasBare
	KindAliasAs
	KindAliasGroup
	KindRequireAs
)

func (k NodeKind) String() string {
	switch k {
	case KindDefinition:
		return "definition"
	case KindQualifiedAccess:
		return "qualified_access"
	case KindNamespacedPath:
		return "namespaced_path"
	case KindAliasBare:
		return "alias_bare"
	case KindAliasAs:
		return "alias_as"
	case KindAliasGroup:
		return "alias_group"
	case KindRequireAs:
		return "require_as"
	default:
		return "other"
	}
}

// Node is one variant of the closed node set the parser collaborator emits.
// Field usage per kind:
//
//	Definition      Path (module name), Children (body)
//	QualifiedAccess Qualifier, Name (accessed identifier), Children (arguments)
//	NamespacedPath  Path
//	AliasBare       Path (target)
//	AliasAs         Path (target), Alias
//	RequireAs       Path (target), Alias
//	AliasGroup      Prefix, Suffixes
//	Other           Children only; skipped by every collector
type Node struct {
	Kind      NodeKind
	Path      ModulePath
	Qualifier ModulePath
	Alias     ModulePath
	Prefix    ModulePath
	Suffixes  []ModulePath
	Name      string
	Children  []Node
}

// Unit is one parsed source unit.
type Unit struct {
	Path  string
	Nodes []Node
}

// Walk visits n and every descendant in preorder. Returning false from fn
// stops descent into that node's children but not the rest of the walk.
func Walk(nodes []Node, fn func(*Node) bool) {
	for i := range nodes {
		n := &nodes[i]
		if fn(n) {
			Walk(n.Children, fn)
		}
	}
}

func Definition(path ModulePath, body ...Node) Node {
	return Node{Kind: KindDefinition, Path: path, Children: body}
}

func QualifiedAccess(qualifier ModulePath, name string, args ...Node) Node {
	return Node{Kind: KindQualifiedAccess, Qualifier: qualifier, Name: name, Children: args}
}

func NamespacedPath(path ModulePath) Node {
	return Node{Kind: KindNamespacedPath, Path: path}
}

func AliasBare(target ModulePath) Node {
	return Node{Kind: KindAliasBare, Path: target}
}

func AliasAs(target, alias ModulePath) Node {
	return Node{Kind: KindAliasAs, Path: target, Alias: alias}
}

func RequireAs(target, alias ModulePath) Node {
	return Node{Kind: KindRequireAs, Path: target, Alias: alias}
}

func AliasGroup(prefix ModulePath, suffixes ...ModulePath) Node {
	return Node{Kind: KindAliasGroup, Prefix: prefix, Suffixes: suffixes}
}

func Other(children ...Node) Node {
	return Node{Kind: KindOther, Children: children}
}
