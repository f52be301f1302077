package dom

import (
	"github.com/pinhole-web/pinhole/errors"
)

// NewElement creates an Element node tagged name. Construction from any
// tag name outside the closed element set fails with
// errors.UnexpectedInput, per spec §3.
func NewElement(name string, attrs []Attribute) (*Node, error) {
	tag, ok := TagFromName(name)
	if !ok {
		return nil, errors.New("dom.NewElement", errors.UnexpectedInput)
	}
	return &Node{Kind: ElementKind, Tag: tag, Attributes: attrs}, nil
}

// Window is a convenience wrapper exposing the Document root produced
// by tree construction.
type Window struct {
	Document *Node
}

// NewWindow wraps doc in a Window.
func NewWindow(doc *Node) *Window {
	return &Window{Document: doc}
}

// GetElementByID performs a pre-order DFS over the document looking for
// an Element whose id attribute equals id. It returns nil when none is
// found; this is the DOM binding the JS interpreter's
// document.getElementById resolves against (spec §4.4).
func (w *Window) GetElementByID(id string) *Node {
	if w == nil || w.Document == nil {
		return nil
	}
	return findByID(w.Document, id)
}

func findByID(n *Node, id string) *Node {
	if n.Kind == ElementKind {
		if v, ok := n.Attr("id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// FindElementByTag performs a pre-order DFS over root looking for the
// first Element tagged tag. It returns nil when none is found; layout
// tree construction uses this to locate the body element to lay out
// from, per spec §4.5.
func FindElementByTag(root *Node, tag ElementTag) *Node {
	if root == nil {
		return nil
	}
	if root.Kind == ElementKind && root.Tag == tag {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElementByTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// StyleContent returns the text content of the first <style> element
// found in root's subtree, or "" if there is none. The CSS parser
// consumes this string directly, per spec §4.3.
func StyleContent(root *Node) string {
	return textContentOf(FindElementByTag(root, StyleTag))
}

// ScriptContent returns the text content of the first <script> element
// found in root's subtree, or "" if there is none. The JS parser
// consumes this string directly, per spec §4.4.
func ScriptContent(root *Node) string {
	return textContentOf(FindElementByTag(root, ScriptTag))
}

func textContentOf(el *Node) string {
	if el == nil {
		return ""
	}
	var out string
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == TextKind {
			out += c.Text
		}
	}
	return out
}
