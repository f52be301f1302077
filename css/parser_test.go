package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeSelectorRule(t *testing.T) {
	sheet := Parse(`p { color: red; background-color: #00ff00; }`)
	require.Len(t, sheet.Rules, 1)

	rule := sheet.Rules[0]
	assert.Equal(t, TypeSelector, rule.Selector.Kind)
	assert.Equal(t, "p", rule.Selector.Name)
	require.Len(t, rule.Declarations, 2)
	assert.Equal(t, Declaration{Property: "color", Value: "red"}, rule.Declarations[0])
	assert.Equal(t, Declaration{Property: "background-color", Value: "#00ff00"}, rule.Declarations[1])
}

func TestParseClassAndIDSelectors(t *testing.T) {
	sheet := Parse(`.foo { display: block; } #bar { display: none; }`)
	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, ClassSelector, sheet.Rules[0].Selector.Kind)
	assert.Equal(t, "foo", sheet.Rules[0].Selector.Name)
	assert.Equal(t, IDSelector, sheet.Rules[1].Selector.Kind)
	assert.Equal(t, "bar", sheet.Rules[1].Selector.Name)
}

func TestPseudoClassIgnoredUpToBrace(t *testing.T) {
	sheet := Parse(`a:hover { color: blue; }`)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, UnknownSelector, sheet.Rules[0].Selector.Kind)
	assert.Equal(t, "color", sheet.Rules[0].Declarations[0].Property)
}

func TestAtRuleDiscarded(t *testing.T) {
	sheet := Parse(`@media screen { p { color: red; } } a { color: blue; }`)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, TypeSelector, sheet.Rules[0].Selector.Kind)
	assert.Equal(t, "a", sheet.Rules[0].Selector.Name)
}

func TestMissingColonAbortsDeclaration(t *testing.T) {
	sheet := Parse(`p { color red; display: block; }`)
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Declarations, 1)
	assert.Equal(t, "display", sheet.Rules[0].Declarations[0].Property)
}

func TestParseMultipleRulesMatchesExpectedStylesheet(t *testing.T) {
	sheet := Parse(`p { color: red; } .foo { display: none; } #bar { background-color: blue; }`)

	want := Stylesheet{
		Rules: []Rule{
			{
				Selector:     Selector{Kind: TypeSelector, Name: "p"},
				Declarations: []Declaration{{Property: "color", Value: "red"}},
			},
			{
				Selector:     Selector{Kind: ClassSelector, Name: "foo"},
				Declarations: []Declaration{{Property: "display", Value: "none"}},
			},
			{
				Selector:     Selector{Kind: IDSelector, Name: "bar"},
				Declarations: []Declaration{{Property: "background-color", Value: "blue"}},
			},
		},
	}

	if diff := cmp.Diff(want, sheet); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}
