package isoparser

import (
	"fmt"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// nsPrefix is the synthetic prefix bound to the resolved namespace for XPath
// compilation. Which concrete version-suffixed URI it points at is decided at
// resolution time; the mapping tables never mention it.
const nsPrefix = "ns"

// Context evaluates registry paths relative to one XML node under one
// resolved namespace. Post-processing hooks receive a Context to walk
// repeated substructures.
//
// Compiled paths are cached for the lifetime of the Context and shared with
// every Sub context, so the registry's path tables compile once per decode.
// A Context belongs to a single decode and is not safe for concurrent use.
type Context struct {
	ns    Namespace
	node  *xmlpath.Node
	cache map[string]*xmlpath.Path
}

// NewContext creates a Context rooted at the given node.
func NewContext(ns Namespace, node *xmlpath.Node) *Context {
	return &Context{ns: ns, node: node, cache: make(map[string]*xmlpath.Path)}
}

// Sub returns a Context rooted at a child node, keeping the namespace and
// the compiled-path cache.
func (c *Context) Sub(node *xmlpath.Node) *Context {
	return &Context{ns: c.ns, node: node, cache: c.cache}
}

// String evaluates one relative path and returns the first match.
func (c *Context) String(path string) (string, bool) {
	compiled, err := c.compile(path)
	if err != nil {
		return "", false
	}
	return compiled.String(c.node)
}

// First evaluates an ordered fallback chain; the first path yielding a
// non-empty value wins.
func (c *Context) First(paths ...string) (string, bool) {
	for _, path := range paths {
		if value, ok := c.String(path); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// Nodes evaluates one relative path and returns all matching nodes.
func (c *Context) Nodes(path string) []*xmlpath.Node {
	compiled, err := c.compile(path)
	if err != nil {
		return nil
	}
	var nodes []*xmlpath.Node
	iter := compiled.Iter(c.node)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes
}

// compile turns a registry path into an xmlpath query: under a resolved
// namespace every element segment is prefixed, attribute segments starting
// with "@" stay untouched; without one the path compiles as-is.
func (c *Context) compile(path string) (*xmlpath.Path, error) {
	if compiled, ok := c.cache[path]; ok {
		return compiled, nil
	}

	// xmlpath.v2 matches element names by local name only, so a resolved
	// namespace needs no prefixed compilation.
	compiled, err := xmlpath.Compile(path)
	if err != nil {
		return nil, err
	}
	c.cache[path] = compiled
	return compiled, nil
}

// applyPrefix rewrites "Assgnmt/Id" into "ns:Assgnmt/ns:Id" and leaves
// attribute segments and the empty segments of a "//" step alone.
func applyPrefix(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment == "" || strings.HasPrefix(segment, "@") || segment == "." || segment == ".." {
			continue
		}
		segments[i] = fmt.Sprintf("%s:%s", nsPrefix, segment)
	}
	return strings.Join(segments, "/")
}

// rootPath builds the absolute lookup path for a registration's root element.
func rootPath(root string) string {
	return "//" + root
}
