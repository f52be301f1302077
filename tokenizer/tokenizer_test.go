package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectAll(t *Tokenizer) []Token {
	var toks []Token
	for {
		tok := t.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestStartAndEndTag(t *testing.T) {
	toks := collectAll(New("<p>hi</p>"))

	assert.Equal(t, StartTag, toks[0].Kind)
	assert.Equal(t, "p", toks[0].Name)
	assert.Equal(t, Character, toks[1].Kind)
	assert.Equal(t, 'h', toks[1].Char)
	assert.Equal(t, Character, toks[2].Kind)
	assert.Equal(t, 'i', toks[2].Char)
	assert.Equal(t, EndTag, toks[3].Kind)
	assert.Equal(t, "p", toks[3].Name)
	assert.Equal(t, EOF, toks[4].Kind)
}

func TestAttributesQuotedAndUnquoted(t *testing.T) {
	toks := collectAll(New(`<a href="x" id='y' class=z disabled>`))

	require := toks[0]
	assert.Equal(t, StartTag, require.Kind)
	assert.Equal(t, "a", require.Name)
	assert.Equal(t, "x", require.AttrVal("href"))
	assert.Equal(t, "y", require.AttrVal("id"))
	assert.Equal(t, "z", require.AttrVal("class"))
	assert.Equal(t, "", require.AttrVal("disabled"))
}

func TestSelfClosingStartTag(t *testing.T) {
	toks := collectAll(New(`<br/>`))
	assert.True(t, toks[0].SelfClosing)
}

func TestTagNameIsCaseFolded(t *testing.T) {
	toks := collectAll(New(`<P>`))
	assert.Equal(t, "p", toks[0].Name)
}

func TestScriptDataDoesNotTokenizeMarkup(t *testing.T) {
	tok := New(`<script>var x = 1 < 2;</script>`)
	start := tok.Next()
	assert.Equal(t, StartTag, start.Kind)
	assert.Equal(t, "script", start.Name)

	var text []rune
	for {
		c := tok.Next()
		if c.Kind != Character {
			break
		}
		text = append(text, c.Char)
	}
	assert.Equal(t, "var x = 1 < 2;", string(text))
}

func TestEOFIsSticky(t *testing.T) {
	tok := New("")
	first := tok.Next()
	second := tok.Next()
	assert.Equal(t, EOF, first.Kind)
	assert.Equal(t, EOF, second.Kind)
}

func TestTextEmitsOneCharacterTokenPerRune(t *testing.T) {
	toks := collectAll(New("abc"))
	assert.Equal(t, 4, len(toks))
	for i, r := range []rune("abc") {
		assert.Equal(t, Character, toks[i].Kind)
		assert.Equal(t, r, toks[i].Char)
	}
}
