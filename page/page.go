// Package page implements the controller that drives the whole
// rendering pipeline on receipt of an HTTP response, and answers hit
// testing for link clicks, per spec §4.9.
package page

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/pinhole-web/pinhole/config"
	"github.com/pinhole-web/pinhole/css"
	"github.com/pinhole-web/pinhole/display"
	"github.com/pinhole-web/pinhole/dom"
	"github.com/pinhole-web/pinhole/errors"
	"github.com/pinhole-web/pinhole/httpmodel"
	"github.com/pinhole-web/pinhole/js"
	"github.com/pinhole-web/pinhole/layout"
	"github.com/pinhole-web/pinhole/tokenizer"
	"github.com/pinhole-web/pinhole/treebuilder"
)

// tracer traces with key "pinhole.page".
func tracer() tracing.Trace {
	return tracing.Select("pinhole.page")
}

// NavigationFunc is the shell-supplied callback a Page uses to follow a
// clicked link; the core never calls it itself (spec §6).
type NavigationFunc func(url string) (*httpmodel.Response, error)

// Page owns one document's DOM, stylesheet, layout tree, and display
// list. Mutations to the DOM happen only from JS interpretation and
// from HTML tree construction; the layout tree is rebuilt whole on
// every ReceiveResponse, never edited in place (spec §5).
type Page struct {
	constants config.Constants

	document   *dom.Node
	stylesheet css.Stylesheet
	view       *layout.View

	displayList []display.Item
}

// New creates an empty Page using constants for its layout metrics.
func New(constants config.Constants) *Page {
	return &Page{constants: constants}
}

// ReceiveResponse runs the full pipeline against response.Body: build
// DOM, extract and parse the first <style>, extract and evaluate the
// first <script> against the DOM, build the layout tree, and emit a
// display list, per spec §4.9's five steps.
//
// Calling an undefined JS function, or calling a function with the
// wrong number of arguments, is the loud-failure path in the core
// (spec §7); evalScript recovers the resulting panic here and
// reports it as an errors.Other-kind error rather than letting it
// escape and crash the host process.
func (p *Page) ReceiveResponse(response *httpmodel.Response) error {
	const op = "page.ReceiveResponse"

	tracer().Infof("%s: building DOM (%d bytes)", op, len(response.Body))
	window := treebuilder.Build(tokenizer.New(response.Body))
	p.document = window.Document

	styleSrc := dom.StyleContent(p.document)
	tracer().Debugf("%s: parsing stylesheet (%d bytes)", op, len(styleSrc))
	p.stylesheet = css.Parse(styleSrc)

	if err := p.evalScript(); err != nil {
		return err
	}

	tracer().Debugf("%s: building layout tree", op)
	p.view = layout.New(p.document, p.stylesheet, p.constants)

	p.displayList = display.Emit(p.view.Root, p.constants)
	tracer().Infof("%s: emitted %d display items", op, len(p.displayList))

	return nil
}

// evalScript runs the first <script> element's content against the
// document, converting the interpreter's "function doesn't exist" (or
// arity-mismatch) panic into an *errors.Error rather than propagating
// it.
func (p *Page) evalScript() (err error) {
	const op = "page.evalScript"

	scriptSrc := dom.ScriptContent(p.document)
	if scriptSrc == "" {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("%s: recovered panic: %v", op, r)
			err = errors.Wrap(op, errors.Other, fmt.Errorf("%v", r))
		}
	}()

	program := js.ParseProgram(scriptSrc)
	js.NewRuntime(p.document).Execute(program)
	return nil
}

// DisplayItems returns the current display list.
func (p *Page) DisplayItems() []display.Item {
	return p.displayList
}

// ClearDisplayItems empties the cached display list, e.g. before a
// navigation replaces it.
func (p *Page) ClearDisplayItems() {
	p.displayList = nil
}

// LayoutTreeDump renders the current layout tree via Object.Dump, or ""
// if no layout tree has been built yet.
func (p *Page) LayoutTreeDump() string {
	if p.view == nil || p.view.Root == nil {
		return ""
	}
	return p.view.Root.Dump()
}

// Clicked reports the href of the nearest ancestor <a> of the layout
// node at content-area point (x, y), if any — direct parent only, per
// spec §4.8.
func (p *Page) Clicked(x, y int) (href string, ok bool) {
	if p.view == nil {
		return "", false
	}
	hit := display.FindNodeByPosition(p.view.Root, x, y)
	if hit == nil || hit.Parent == nil || hit.Parent.Node == nil {
		return "", false
	}
	anchor := hit.Parent.Node
	if anchor.Kind != dom.ElementKind || anchor.Tag != dom.ATag {
		return "", false
	}
	return anchor.Attr("href")
}
