package treebuilder

import (
	"github.com/pinhole-web/pinhole/dom"
	"github.com/pinhole-web/pinhole/tokenizer"
)

func (tb *TreeBuilder) inInitial(t tokenizer.Token) {
	tb.mode = BeforeHTML
	tb.dispatch(t)
}

func (tb *TreeBuilder) inBeforeHTML(t tokenizer.Token) {
	if t.Kind == tokenizer.StartTag && t.Name == "html" {
		tb.insertElement(t)
		tb.mode = BeforeHead
		return
	}
	tb.autoInsert("html")
	tb.mode = BeforeHead
	tb.dispatch(t)
}

func (tb *TreeBuilder) inBeforeHead(t tokenizer.Token) {
	switch {
	case t.Kind == tokenizer.Character && isTreeWhitespace(t.Char):
		return
	case t.Kind == tokenizer.StartTag && t.Name == "head":
		tb.insertElement(t)
		tb.mode = InHead
	default:
		// head is implied; reprocess the same token in InHead rather
		// than dropping it, so a bare "<html><body>" still reaches
		// body and any other start tag is handled by the later modes.
		tb.autoInsert("head")
		tb.mode = InHead
		tb.dispatch(t)
	}
}

func (tb *TreeBuilder) inHead(t tokenizer.Token) {
	switch {
	case t.Kind == tokenizer.Character:
		tb.insertCharacter(t.Char)
	case t.Kind == tokenizer.StartTag && (t.Name == "style" || t.Name == "script"):
		el := tb.insertElement(t)
		tb.enterText(el)
	case t.Kind == tokenizer.EndTag && t.Name == "head":
		tb.popUntil(dom.HeadTag)
		tb.mode = AfterHead
	case t.Kind == tokenizer.StartTag && t.Name == "body":
		tb.popUntil(dom.HeadTag)
		tb.mode = AfterHead
		tb.dispatch(t)
	case t.Kind == tokenizer.StartTag:
		// Any other start tag implies head is done: pop it off the open
		// elements stack and reprocess in AfterHead, rather than leaving
		// head open and dropping the token.
		tb.popUntil(dom.HeadTag)
		tb.mode = AfterHead
		tb.dispatch(t)
	}
}

func (tb *TreeBuilder) inAfterHead(t tokenizer.Token) {
	switch {
	case t.Kind == tokenizer.Character && isTreeWhitespace(t.Char):
		return
	case t.Kind == tokenizer.StartTag && t.Name == "body":
		tb.insertElement(t)
		tb.mode = InBody
	case t.Kind == tokenizer.StartTag && t.Name == "html":
		// already present, ignored
	default:
		tb.autoInsert("body")
		tb.mode = InBody
		tb.dispatch(t)
	}
}

func (tb *TreeBuilder) inBody(t tokenizer.Token) {
	switch t.Kind {
	case tokenizer.Character:
		tb.insertCharacter(t.Char)
	case tokenizer.StartTag:
		switch t.Name {
		case "p", "h1", "h2", "a":
			tb.insertElement(t)
		case "style", "script":
			el := tb.insertElement(t)
			tb.enterText(el)
		case "body", "html", "head":
			// already present, ignored
		default:
			// unsupported tag: consumed without effect
		}
	case tokenizer.EndTag:
		switch t.Name {
		case "body":
			tb.mode = AfterBody
		case "p":
			tb.popUntil(dom.PTag)
		case "h1":
			tb.popUntil(dom.H1Tag)
		case "h2":
			tb.popUntil(dom.H2Tag)
		case "a":
			tb.popUntil(dom.ATag)
		}
	}
}

// inText handles the contents of a <style>/<script> element: every
// character is inserted verbatim (no whitespace dropping) until the
// matching end tag, which restores the previous mode.
func (tb *TreeBuilder) inText(t tokenizer.Token) {
	switch t.Kind {
	case tokenizer.Character:
		tb.textElement.InsertCharacter(t.Char)
	case tokenizer.EndTag:
		if tb.textElement != nil && t.Name == tb.textElement.Tag.String() {
			tb.popUntil(tb.textElement.Tag)
			tb.mode = tb.originalMode
			tb.textElement = nil
		}
	}
}

func (tb *TreeBuilder) inAfterBody(t tokenizer.Token) {
	switch {
	case t.Kind == tokenizer.Character && isTreeWhitespace(t.Char):
		return
	case t.Kind == tokenizer.EndTag && t.Name == "html":
		tb.mode = AfterAfterBody
	default:
		tb.mode = InBody
		tb.dispatch(t)
	}
}

func (tb *TreeBuilder) inAfterAfterBody(t tokenizer.Token) {
	if t.Kind == tokenizer.Character && isTreeWhitespace(t.Char) {
		return
	}
	tb.mode = InBody
	tb.dispatch(t)
}

// autoInsert creates an implicit structural element (html, head, or
// body) not present in the source markup.
func (tb *TreeBuilder) autoInsert(name string) {
	el, err := dom.NewElement(name, nil)
	if err != nil {
		return
	}
	tb.insertionParent().AppendChild(el)
	tb.push(el)
}

// enterText switches into Text mode for a <style>/<script> element
// just inserted, remembering the mode to restore on its end tag.
func (tb *TreeBuilder) enterText(el *dom.Node) {
	if el == nil {
		return
	}
	tb.originalMode = tb.mode
	tb.textElement = el
	tb.mode = Text
}
