package treebuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinhole-web/pinhole/dom"
	"github.com/pinhole-web/pinhole/tokenizer"
)

func buildFrom(html string) *dom.Window {
	return Build(tokenizer.New(html))
}

func TestImplicitHtmlHeadBody(t *testing.T) {
	win := buildFrom("<p>hi</p>")
	require.NotNil(t, win.Document)

	html := win.Document.FirstChild
	require.NotNil(t, html)
	assert.Equal(t, dom.HTMLTag, html.Tag)

	head := html.FirstChild
	require.NotNil(t, head)
	assert.Equal(t, dom.HeadTag, head.Tag)

	body := head.NextSibling
	require.NotNil(t, body)
	assert.Equal(t, dom.BodyTag, body.Tag)

	p := body.FirstChild
	require.NotNil(t, p)
	assert.Equal(t, dom.PTag, p.Tag)

	text := p.FirstChild
	require.NotNil(t, text)
	assert.Equal(t, dom.TextKind, text.Kind)
	assert.Equal(t, "hi", text.Text)
}

func TestExplicitStructuralTags(t *testing.T) {
	win := buildFrom("<html><head><style>a{}</style></head><body><h1>Title</h1></body></html>")

	html := win.Document.FirstChild
	require.Equal(t, dom.HTMLTag, html.Tag)

	head := html.FirstChild
	require.Equal(t, dom.HeadTag, head.Tag)

	style := head.FirstChild
	require.NotNil(t, style)
	assert.Equal(t, dom.StyleTag, style.Tag)
	styleText := style.FirstChild
	require.NotNil(t, styleText)
	assert.Equal(t, "a{}", styleText.Text)

	body := head.NextSibling
	require.Equal(t, dom.BodyTag, body.Tag)

	h1 := body.FirstChild
	require.NotNil(t, h1)
	assert.Equal(t, dom.H1Tag, h1.Tag)
}

func TestScriptTextPreservesWhitespace(t *testing.T) {
	win := buildFrom("<script>a  b</script>")

	html := win.Document.FirstChild
	head := html.FirstChild
	script := head.FirstChild
	require.NotNil(t, script)
	assert.Equal(t, dom.ScriptTag, script.Tag)

	text := script.FirstChild
	require.NotNil(t, text)
	assert.Equal(t, "a  b", text.Text)
}

func TestUnsupportedTagInBodyHasNoEffect(t *testing.T) {
	win := buildFrom("<body><div>x</div></body>")

	html := win.Document.FirstChild
	head := html.FirstChild
	body := head.NextSibling
	require.Equal(t, dom.BodyTag, body.Tag)

	text := body.FirstChild
	require.NotNil(t, text)
	assert.Equal(t, dom.TextKind, text.Kind)
	assert.Equal(t, "x", text.Text)
}

func TestBodyWithoutExplicitHeadStillReceivesChildren(t *testing.T) {
	win := buildFrom("<html><body><p>hi</p></body></html>")

	html := win.Document.FirstChild
	require.NotNil(t, html)
	head := html.FirstChild
	require.NotNil(t, head)
	assert.Equal(t, dom.HeadTag, head.Tag)

	body := head.NextSibling
	require.NotNil(t, body)
	assert.Equal(t, dom.BodyTag, body.Tag)

	p := body.FirstChild
	require.NotNil(t, p)
	assert.Equal(t, dom.PTag, p.Tag)

	text := p.FirstChild
	require.NotNil(t, text)
	assert.Equal(t, "hi", text.Text)
}

func TestAnchorNesting(t *testing.T) {
	win := buildFrom("<p><a href=\"x\">link</a></p>")

	html := win.Document.FirstChild
	head := html.FirstChild
	body := head.NextSibling
	p := body.FirstChild
	a := p.FirstChild
	require.NotNil(t, a)
	assert.Equal(t, dom.ATag, a.Tag)
	v, ok := a.Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
