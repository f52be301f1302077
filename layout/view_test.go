package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinhole-web/pinhole/config"
	"github.com/pinhole-web/pinhole/css"
	"github.com/pinhole-web/pinhole/dom"
	"github.com/pinhole-web/pinhole/tokenizer"
	"github.com/pinhole-web/pinhole/treebuilder"
)

func buildView(t *testing.T, html string) *View {
	t.Helper()
	window := treebuilder.Build(tokenizer.New(html))
	sheet := css.Parse(dom.StyleContent(window.Document))
	return New(window.Document, sheet, config.Default())
}

func TestEmptyDocumentHasNoLayoutRoot(t *testing.T) {
	v := buildView(t, "")
	assert.Nil(t, v.Root)
}

func TestBodyBecomesBlockRoot(t *testing.T) {
	v := buildView(t, "<html><head></head><body></body></html>")
	require.NotNil(t, v.Root)
	assert.Equal(t, Block, v.Root.Kind)
	assert.Equal(t, dom.BodyTag, v.Root.Node.Tag)
}

func TestTextChildOfBody(t *testing.T) {
	v := buildView(t, "<html><head></head><body>text</body></html>")
	require.NotNil(t, v.Root)
	require.NotNil(t, v.Root.FirstChild)
	assert.Equal(t, Text, v.Root.FirstChild.Kind)
	assert.Equal(t, "text", v.Root.FirstChild.Node.Text)
}

func TestDisplayNoneOnBodyExcludesWholeTree(t *testing.T) {
	v := buildView(t, "<html><head><style>body{display:none;}</style></head><body>text</body></html>")
	assert.Nil(t, v.Root)
}

func TestHiddenClassExcludesSubtreeButKeepsSiblings(t *testing.T) {
	html := `<html>
<head>
<style>
.hidden {
  display: none;
}
</style>
</head>
<body>
  <a class="hidden">link1</a>
  <p></p>
  <p class="hidden"><a>link2</a></p>
</body>
</html>`
	v := buildView(t, html)
	require.NotNil(t, v.Root)
	assert.Equal(t, dom.BodyTag, v.Root.Node.Tag)

	p := v.Root.FirstChild
	require.NotNil(t, p)
	assert.Equal(t, Block, p.Kind)
	assert.Equal(t, dom.PTag, p.Node.Tag)
	assert.Nil(t, p.FirstChild)
	assert.Nil(t, p.NextSibling)
}

func TestBlockChildrenStackVertically(t *testing.T) {
	v := buildView(t, "<html><head></head><body><p>one</p><h1>two</h1></body></html>")
	require.NotNil(t, v.Root)
	p := v.Root.FirstChild
	require.NotNil(t, p)
	h1 := p.NextSibling
	require.NotNil(t, h1)

	assert.Equal(t, 0, p.Point.Y)
	assert.Equal(t, p.Size.Height, h1.Point.Y)
	assert.Equal(t, p.Point.X, h1.Point.X)
}

func TestBlockWidthMatchesContentArea(t *testing.T) {
	v := buildView(t, "<html><head></head><body></body></html>")
	require.NotNil(t, v.Root)
	assert.Equal(t, config.Default().ContentAreaWidth(), v.Root.Size.Width)
}
