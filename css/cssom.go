package css

// SelectorKind identifies the shape of a Selector. Only exact-match
// type/class/id selectors are distinguished; anything else (pseudo-
// classes, attribute selectors, combinators) parses to UnknownSelector
// and never matches.
type SelectorKind int

const (
	TypeSelector SelectorKind = iota
	ClassSelector
	IDSelector
	UnknownSelector
)

// String returns the name of the selector kind, for debugging.
func (k SelectorKind) String() string {
	switch k {
	case TypeSelector:
		return "Type"
	case ClassSelector:
		return "Class"
	case IDSelector:
		return "ID"
	default:
		return "Unknown"
	}
}

// Selector is a single simple selector: spec §4.3 allows exactly one
// per rule, with no combinators or compounding.
type Selector struct {
	Kind SelectorKind
	Name string
}

// Declaration is a single "property: value" pair within a rule.
type Declaration struct {
	Property string
	Value    string
}

// Rule is one qualified rule: a selector and the declarations inside
// its block.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
}

// Stylesheet is an ordered list of rules, in source order — the order
// the cascade walks them in.
type Stylesheet struct {
	Rules []Rule
}
