// # internal/parser/elixir.go
package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"modgraph/internal/syntax"
)

// elixirAdapter converts a Tree-sitter Elixir CST into the extractor's node
// model. Anything that matches none of the recognized shapes becomes an
// Other node (or is dropped when it carries nothing), never an error; a
// malformed alias directive therefore falls through resolution untouched.
type elixirAdapter struct {
	source []byte
}

func (a *elixirAdapter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return string(a.source[n.StartByte():n.EndByte()])
}

func (a *elixirAdapter) adaptChildren(n *sitter.Node) []syntax.Node {
	var out []syntax.Node
	for i := uint(0); i < n.ChildCount(); i++ {
		if node, ok := a.adapt(n.Child(i)); ok {
			out = append(out, node)
		}
	}
	return out
}

func (a *elixirAdapter) adapt(n *sitter.Node) (syntax.Node, bool) {
	switch n.Kind() {
	case "call":
		return a.adaptCall(n)
	case "dot":
		return a.adaptDot(n, nil)
	case "alias":
		// A bare module path such as My.Long.Module.Chain is one alias token.
		return syntax.NamespacedPath(syntax.ParsePath(a.text(n))), true
	default:
		return a.adaptOpaque(n)
	}
}

// adaptOpaque wraps unrecognized constructs, keeping their interesting
// descendants visible to the body walks. Leaves with nothing to contribute
// are dropped.
func (a *elixirAdapter) adaptOpaque(n *sitter.Node) (syntax.Node, bool) {
	children := a.adaptChildren(n)
	if len(children) == 0 {
		return syntax.Node{}, false
	}
	if len(children) == 1 {
		return children[0], true
	}
	return syntax.Other(children...), true
}

func (a *elixirAdapter) adaptCall(n *sitter.Node) (syntax.Node, bool) {
	target := n.Child(0)
	if target == nil {
		return a.adaptOpaque(n)
	}

	switch target.Kind() {
	case "identifier":
		switch a.text(target) {
		case "defmodule":
			return a.adaptDefinition(n)
		case "alias":
			return a.adaptAliasDirective(n)
		case "require":
			if node, ok := a.adaptRequireAs(n); ok {
				return node, true
			}
			// require without as: contributes its target through the
			// namespaced-path walk like use and import do.
		}
	case "dot":
		return a.adaptDot(target, n)
	}

	return a.adaptOpaque(n)
}

// adaptDot handles qualified access. When the dot is a call target, the
// call's arguments become the access node's children so nested references
// inside them stay reachable.
func (a *elixirAdapter) adaptDot(dot, call *sitter.Node) (syntax.Node, bool) {
	left := dot.Child(0)
	right := dot.Child(dot.ChildCount() - 1)
	if left == nil || right == nil || right.Kind() != "identifier" {
		return a.adaptOpaque(pick(call, dot))
	}

	qualifier, ok := a.pathFromOperand(left)
	if !ok {
		return a.adaptOpaque(pick(call, dot))
	}

	var args []syntax.Node
	if call != nil {
		for i := uint(1); i < call.ChildCount(); i++ {
			if node, okArg := a.adapt(call.Child(i)); okArg {
				args = append(args, node)
			}
		}
	}
	return syntax.QualifiedAccess(qualifier, a.text(right), args...), true
}

// pathFromOperand maps a dot qualifier to a module path. Namespaced aliases
// split on dots; atoms and plain identifiers stay single-segment verbatim,
// which is how lowercase references like :lists are captured.
func (a *elixirAdapter) pathFromOperand(n *sitter.Node) (syntax.ModulePath, bool) {
	switch n.Kind() {
	case "alias":
		return syntax.ParsePath(a.text(n)), true
	case "atom":
		return syntax.PathOf(strings.TrimPrefix(a.text(n), ":")), true
	case "identifier":
		return syntax.PathOf(a.text(n)), true
	default:
		return nil, false
	}
}

func (a *elixirAdapter) adaptDefinition(call *sitter.Node) (syntax.Node, bool) {
	var name syntax.ModulePath
	var body []syntax.Node

	for i := uint(0); i < call.ChildCount(); i++ {
		child := call.Child(i)
		switch child.Kind() {
		case "alias":
			if len(name) == 0 {
				name = syntax.ParsePath(a.text(child))
			}
		case "arguments":
			if len(name) == 0 {
				if alias := findChild(child, "alias"); alias != nil {
					name = syntax.ParsePath(a.text(alias))
				}
			}
		case "do_block":
			body = a.adaptChildren(child)
		}
	}

	if len(name) == 0 {
		return a.adaptOpaque(call)
	}
	return syntax.Definition(name, body...), true
}

func (a *elixirAdapter) adaptAliasDirective(call *sitter.Node) (syntax.Node, bool) {
	args := findChild(call, "arguments")
	if args == nil {
		return a.adaptOpaque(call)
	}

	var target syntax.ModulePath
	var asPath syntax.ModulePath
	var group *sitter.Node

	for i := uint(0); i < args.ChildCount(); i++ {
		child := args.Child(i)
		switch child.Kind() {
		case "alias":
			if len(target) == 0 {
				target = syntax.ParsePath(a.text(child))
			}
		case "dot":
			group = child
		case "keywords":
			asPath = a.keywordAsPath(child)
		}
	}

	if group != nil {
		return a.adaptGroupDirective(call, group)
	}
	if len(target) == 0 {
		return a.adaptOpaque(call)
	}

	// The directive's own target mention stays visible to the namespaced-path
	// walk as a child; the resolution passes remove it again.
	self := syntax.NamespacedPath(target)
	if len(asPath) > 0 {
		node := syntax.AliasAs(target, asPath)
		node.Children = []syntax.Node{self}
		return node, true
	}
	node := syntax.AliasBare(target)
	node.Children = []syntax.Node{self}
	return node, true
}

// adaptGroupDirective handles alias Prefix.{A, B}: a dot whose right side is
// a curly tuple of aliases.
func (a *elixirAdapter) adaptGroupDirective(call, dot *sitter.Node) (syntax.Node, bool) {
	left := dot.Child(0)
	tuple := findChild(dot, "tuple")
	if left == nil || tuple == nil {
		return a.adaptOpaque(call)
	}

	prefix, ok := a.pathFromOperand(left)
	if !ok {
		return a.adaptOpaque(call)
	}

	var suffixes []syntax.ModulePath
	for i := uint(0); i < tuple.ChildCount(); i++ {
		child := tuple.Child(i)
		if child.Kind() == "alias" {
			suffixes = append(suffixes, syntax.ParsePath(a.text(child)))
		}
	}
	if len(suffixes) == 0 {
		return a.adaptOpaque(call)
	}

	node := syntax.AliasGroup(prefix, suffixes...)
	node.Children = []syntax.Node{syntax.NamespacedPath(prefix)}
	return node, true
}

func (a *elixirAdapter) adaptRequireAs(call *sitter.Node) (syntax.Node, bool) {
	args := findChild(call, "arguments")
	if args == nil {
		return syntax.Node{}, false
	}

	var target, asPath syntax.ModulePath
	for i := uint(0); i < args.ChildCount(); i++ {
		child := args.Child(i)
		switch child.Kind() {
		case "alias":
			if len(target) == 0 {
				target = syntax.ParsePath(a.text(child))
			}
		case "keywords":
			asPath = a.keywordAsPath(child)
		}
	}
	if len(target) == 0 || len(asPath) == 0 {
		return syntax.Node{}, false
	}

	node := syntax.RequireAs(target, asPath)
	node.Children = []syntax.Node{syntax.NamespacedPath(target)}
	return node, true
}

func (a *elixirAdapter) keywordAsPath(keywords *sitter.Node) syntax.ModulePath {
	for i := uint(0); i < keywords.ChildCount(); i++ {
		pair := keywords.Child(i)
		if pair.Kind() != "pair" {
			continue
		}
		key := findChild(pair, "keyword")
		if key == nil || strings.TrimSpace(a.text(key)) != "as:" {
			continue
		}
		if value := findChild(pair, "alias"); value != nil {
			return syntax.ParsePath(a.text(value))
		}
	}
	return nil
}

func findChild(n *sitter.Node, kind string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

func pick(preferred, fallback *sitter.Node) *sitter.Node {
	if preferred != nil {
		return preferred
	}
	return fallback
}
