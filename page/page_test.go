package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinhole-web/pinhole/config"
	"github.com/pinhole-web/pinhole/display"
	"github.com/pinhole-web/pinhole/errors"
	"github.com/pinhole-web/pinhole/httpmodel"
)

func TestReceiveResponseBuildsDisplayList(t *testing.T) {
	p := New(config.Default())
	err := p.ReceiveResponse(&httpmodel.Response{Body: "<html><head></head><body>hi</body></html>"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.DisplayItems())
}

func TestReceiveResponseRunsScriptAgainstDOM(t *testing.T) {
	p := New(config.Default())
	body := `<html><head><script>
var e = document.getElementById("target");
e.textContent = "changed";
</script></head><body><p id="target">original</p></body></html>`
	err := p.ReceiveResponse(&httpmodel.Response{Body: body})
	require.NoError(t, err)

	var found bool
	for _, item := range p.DisplayItems() {
		if item.Kind == display.TextItem && item.Text == "changed" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestReceiveResponseRecoversUndefinedFunctionPanic(t *testing.T) {
	p := New(config.Default())
	body := `<html><head><script>doesNotExist();</script></head><body></body></html>`
	err := p.ReceiveResponse(&httpmodel.Response{Body: body})
	require.Error(t, err)
	assert.Equal(t, errors.Other, errors.KindOf(err))
}

func TestClearDisplayItemsEmptiesList(t *testing.T) {
	p := New(config.Default())
	require.NoError(t, p.ReceiveResponse(&httpmodel.Response{Body: "<html><head></head><body>hi</body></html>"}))
	require.NotEmpty(t, p.DisplayItems())

	p.ClearDisplayItems()
	assert.Empty(t, p.DisplayItems())
}

func TestClickedReturnsHrefOfAncestorAnchor(t *testing.T) {
	p := New(config.Default())
	body := `<html><head></head><body><a href="https://example.com">link</a></body></html>`
	require.NoError(t, p.ReceiveResponse(&httpmodel.Response{Body: body}))

	href, ok := p.Clicked(1, 1)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", href)
}

func TestClickedOutsideAnyNodeReturnsFalse(t *testing.T) {
	p := New(config.Default())
	require.NoError(t, p.ReceiveResponse(&httpmodel.Response{Body: "<html><head></head><body></body></html>"}))

	_, ok := p.Clicked(-100, -100)
	assert.False(t, ok)
}
