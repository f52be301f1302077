// Package treebuilder implements HTML tree construction: it consumes a
// token stream from the tokenizer package and produces a dom.Window
// wrapping a Document root, per spec §4.2.
package treebuilder

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/pinhole-web/pinhole/dom"
	"github.com/pinhole-web/pinhole/tokenizer"
)

// TreeBuilder drives tree construction over the closed insertion-mode
// state machine: Initial, BeforeHTML, BeforeHead, InHead, AfterHead,
// InBody, Text, AfterBody, AfterAfterBody.
type TreeBuilder struct {
	tok *tokenizer.Tokenizer

	document *dom.Node

	// openElements is the stack of open elements, top at the back.
	openElements *arraystack.Stack

	mode InsertionMode

	// originalMode is restored when Text mode finishes (on the
	// matching end tag for the <style>/<script> element that
	// triggered it).
	originalMode InsertionMode

	// textElement is the <style>/<script> element Text mode is
	// accumulating characters into.
	textElement *dom.Node
}

// New creates a tree builder consuming tokens from tok.
func New(tok *tokenizer.Tokenizer) *TreeBuilder {
	return &TreeBuilder{
		tok:          tok,
		document:     dom.NewDocument(),
		openElements: arraystack.New(),
		mode:         Initial,
	}
}

// Build runs tree construction to completion and returns the resulting
// Window.
func Build(tok *tokenizer.Tokenizer) *dom.Window {
	tb := New(tok)
	return tb.Run()
}

// Run consumes tokens until EOF, driving the insertion-mode state
// machine, and returns the resulting Window.
func (tb *TreeBuilder) Run() *dom.Window {
	for {
		t := tb.tok.Next()
		if t.Kind == tokenizer.EOF {
			break
		}
		tb.dispatch(t)
	}
	return dom.NewWindow(tb.document)
}

func (tb *TreeBuilder) dispatch(t tokenizer.Token) {
	switch tb.mode {
	case Initial:
		tb.inInitial(t)
	case BeforeHTML:
		tb.inBeforeHTML(t)
	case BeforeHead:
		tb.inBeforeHead(t)
	case InHead:
		tb.inHead(t)
	case AfterHead:
		tb.inAfterHead(t)
	case InBody:
		tb.inBody(t)
	case Text:
		tb.inText(t)
	case AfterBody:
		tb.inAfterBody(t)
	case AfterAfterBody:
		tb.inAfterAfterBody(t)
	}
}

// current returns the innermost open element, or nil if the stack is
// empty (meaning the Document is the insertion point).
func (tb *TreeBuilder) current() *dom.Node {
	v, ok := tb.openElements.Peek()
	if !ok {
		return nil
	}
	return v.(*dom.Node)
}

func (tb *TreeBuilder) push(n *dom.Node) {
	tb.openElements.Push(n)
}

// popUntil pops the open-elements stack until a node of the given tag
// has been popped, per spec §4.2's "pop-until" operation.
func (tb *TreeBuilder) popUntil(tag dom.ElementTag) {
	for {
		v, ok := tb.openElements.Pop()
		if !ok {
			return
		}
		n := v.(*dom.Node)
		if n.Tag == tag {
			return
		}
	}
}

// insertionParent returns the node new children are appended to: the
// current open element, or the Document if the stack is empty.
func (tb *TreeBuilder) insertionParent() *dom.Node {
	if c := tb.current(); c != nil {
		return c
	}
	return tb.document
}

// insertElement creates an Element of the named tag, appends it under
// the current insertion point, and pushes it onto the open-elements
// stack.
func (tb *TreeBuilder) insertElement(t tokenizer.Token) *dom.Node {
	attrs := make([]dom.Attribute, 0, len(t.Attrs))
	for _, a := range t.Attrs {
		attrs = append(attrs, dom.Attribute{Name: a.Name, Value: a.Value})
	}
	el, err := dom.NewElement(t.Name, attrs)
	if err != nil {
		return nil
	}
	tb.insertionParent().AppendChild(el)
	tb.push(el)
	return el
}

// insertCharacter inserts a single character at the current insertion
// point, coalescing into a trailing Text node. Whitespace that would
// start a new Text node is dropped; whitespace following text already
// in a trailing Text node is kept, per spec §4.2.
func (tb *TreeBuilder) insertCharacter(r rune) {
	parent := tb.insertionParent()
	if isTreeWhitespace(r) && (parent.LastChild == nil || parent.LastChild.Kind != dom.TextKind) {
		return
	}
	parent.InsertCharacter(r)
}

func isTreeWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r'
}
