package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinhole-web/pinhole/dom"
)

func run(t *testing.T, src string, document *dom.Node) []*Value {
	t.Helper()
	program := ParseProgram(src)
	if document == nil {
		document = dom.NewDocument()
	}
	rt := NewRuntime(document)

	var results []*Value
	for _, n := range program.Body {
		results = append(results, rt.eval(n, rt.env))
	}
	return results
}

func TestNumericLiteral(t *testing.T) {
	results := run(t, "42", nil)
	require.Len(t, results, 1)
	require.NotNil(t, results[0])
	assert.Equal(t, NumberValue, results[0].Kind)
	assert.Equal(t, uint64(42), results[0].Num)
}

func TestAdditiveRightAssociative(t *testing.T) {
	// 10 - 3 - 2 parses as 10 - (3 - 2) = 10 - 1 = 9, per the
	// grammar's right recursion.
	results := run(t, "10 - 3 - 2", nil)
	require.Len(t, results, 1)
	require.NotNil(t, results[0])
	assert.Equal(t, uint64(9), results[0].Num)
}

func TestStringConcatenationOnMixedAdd(t *testing.T) {
	results := run(t, `"a" + 1`, nil)
	require.Len(t, results, 1)
	require.NotNil(t, results[0])
	assert.Equal(t, StringValue, results[0].Kind)
	assert.Equal(t, "a1", results[0].Str)
}

func TestSubtractionWrapsOnUnderflow(t *testing.T) {
	results := run(t, "0 - 1", nil)
	require.Len(t, results, 1)
	require.NotNil(t, results[0])
	assert.Equal(t, uint64(18446744073709551615), results[0].Num)
}

func TestVariableDeclarationAndReference(t *testing.T) {
	results := run(t, "var foo=42; foo+1", nil)
	require.Len(t, results, 2)
	assert.Nil(t, results[0])
	require.NotNil(t, results[1])
	assert.Equal(t, uint64(43), results[1].Num)
}

func TestReassignment(t *testing.T) {
	results := run(t, "var foo=42; foo=1; foo", nil)
	require.Len(t, results, 3)
	require.NotNil(t, results[2])
	assert.Equal(t, uint64(1), results[2].Num)
}

func TestFunctionDeclarationAndCall(t *testing.T) {
	results := run(t, "function foo() { return 42; } foo()+1", nil)
	require.Len(t, results, 2)
	require.NotNil(t, results[1])
	assert.Equal(t, uint64(43), results[1].Num)
}

func TestFunctionArguments(t *testing.T) {
	results := run(t, "function add(a, b) { return a + b; } add(1, 2) + 3;", nil)
	require.Len(t, results, 2)
	require.NotNil(t, results[1])
	assert.Equal(t, uint64(6), results[1].Num)
}

func TestLocalShadowsGlobal(t *testing.T) {
	results := run(t, "var a=42; function foo() { var a=1; return a; } foo()+a", nil)
	require.Len(t, results, 3)
	require.NotNil(t, results[2])
	assert.Equal(t, uint64(43), results[2].Num)
}

func TestUnboundIdentifierBecomesStringLiteral(t *testing.T) {
	results := run(t, "document", nil)
	require.Len(t, results, 1)
	require.NotNil(t, results[0])
	assert.Equal(t, StringValue, results[0].Kind)
	assert.Equal(t, "document", results[0].Str)
}

func TestCallingMissingFunctionPanics(t *testing.T) {
	assert.Panics(t, func() {
		run(t, "doesNotExist()", nil)
	})
}

func TestGetElementByIdAndSetTextContent(t *testing.T) {
	document := dom.NewDocument()
	p, err := dom.NewElement("p", []dom.Attribute{{Name: "id", Value: "target"}})
	require.NoError(t, err)
	document.AppendChild(p)

	run(t, `var e = document.getElementById("target"); e.textContent = "hello";`, document)

	require.NotNil(t, p.FirstChild)
	assert.Equal(t, dom.TextKind, p.FirstChild.Kind)
	assert.Equal(t, "hello", p.FirstChild.Text)
}

func TestGetElementByIdMissingReturnsNone(t *testing.T) {
	document := dom.NewDocument()
	results := run(t, `document.getElementById("nope")`, document)
	require.Len(t, results, 1)
	assert.Nil(t, results[0])
}
