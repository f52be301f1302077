// Package dom provides the DOM node model: Document, Element, and Text
// nodes linked by an owning/non-owning pointer pair rather than a
// children slice, per the tree shape described in the engine's
// re-architecture notes (kind-tag dispatch, owning child links, weak
// parent/sibling back-links).
package dom

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Kind is the tag discriminating the three node variants.
type Kind int

// The three node variants.
const (
	DocumentKind Kind = iota
	ElementKind
	TextKind
)

// String returns the name of the node kind.
func (k Kind) String() string {
	switch k {
	case DocumentKind:
		return "document"
	case ElementKind:
		return "element"
	case TextKind:
		return "text"
	default:
		return "unknown"
	}
}

// ElementTag is the closed set of element kinds this engine understands.
// Constructing an Element from any other tag name fails.
type ElementTag int

// The closed element-tag set.
const (
	HTMLTag ElementTag = iota
	HeadTag
	StyleTag
	ScriptTag
	BodyTag
	PTag
	H1Tag
	H2Tag
	ATag
)

var tagNames = map[ElementTag]string{
	HTMLTag:   "html",
	HeadTag:   "head",
	StyleTag:  "style",
	ScriptTag: "script",
	BodyTag:   "body",
	PTag:      "p",
	H1Tag:     "h1",
	H2Tag:     "h2",
	ATag:      "a",
}

var namesToTags = func() map[string]ElementTag {
	m := make(map[string]ElementTag, len(tagNames))
	for tag, name := range tagNames {
		m[name] = tag
	}
	return m
}()

// String returns the lower-case tag name.
func (t ElementTag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "unknown"
}

// TagFromName resolves a case-folded tag name to its ElementTag. ok is
// false for any name outside the closed element set.
func TagFromName(name string) (tag ElementTag, ok bool) {
	tag, ok = namesToTags[strings.ToLower(name)]
	return tag, ok
}

// IsBlockTag reports whether tag defaults to block-level flow
// (body, h1, h2, p); every other tag defaults to inline.
func (t ElementTag) IsBlockTag() bool {
	switch t {
	case BodyTag, H1Tag, H2Tag, PTag:
		return true
	default:
		return false
	}
}

// Attribute is a single name/value pair on an Element.
type Attribute struct {
	Name  string
	Value string
}

// Node is the tagged union of Document/Element/Text. Which fields are
// meaningful depends on Kind: Tag and Attributes for ElementKind, Text
// for TextKind, neither for DocumentKind.
//
// Links: Parent and PrevSibling and LastChild are non-owning (the node
// does not keep them alive); FirstChild and NextSibling are owning (a
// node's children and its later siblings are reachable only through
// the owning chain rooted at the tree's Document).
type Node struct {
	Kind Kind

	Tag        ElementTag
	Attributes []Attribute

	Text string

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// NewDocument creates an empty Document node.
func NewDocument() *Node {
	return &Node{Kind: DocumentKind}
}

// NewText creates a Text node holding text.
func NewText(text string) *Node {
	return &Node{Kind: TextKind, Text: text}
}

// Equal compares node identity the way spec §3 defines it: kinds must
// match, and for elements only the element tag is compared — attributes
// are not part of equality.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	if n.Kind == ElementKind {
		return n.Tag == other.Tag
	}
	return true
}

// Attr returns the value of the named attribute and whether it was
// present. Only meaningful on ElementKind nodes.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AppendChild appends child as the last child of n, wiring up the
// owning/non-owning links on both sides.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.PrevSibling = n.LastChild
	child.NextSibling = nil
	if n.LastChild != nil {
		n.LastChild.NextSibling = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// HasChildren reports whether n has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Dump renders the subtree rooted at n as an indented tree, for
// debugging and table-driven test failure output.
func (n *Node) Dump() string {
	tree := treeprint.New()
	n.dumpInto(tree)
	return tree.String()
}

func (n *Node) dumpInto(tree treeprint.Tree) {
	if n == nil {
		return
	}
	switch n.Kind {
	case DocumentKind:
		tree.SetValue("#document")
	case ElementKind:
		tree.SetValue(fmt.Sprintf("<%s>", n.Tag))
	case TextKind:
		tree.SetValue(fmt.Sprintf("#text %q", n.Text))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		c.dumpInto(tree.AddBranch(""))
	}
}
