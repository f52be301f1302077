package js

import (
	"strconv"

	"github.com/pinhole-web/pinhole/dom"
)

// ValueKind discriminates the three runtime value shapes spec §4.4
// names.
type ValueKind int

const (
	NumberValue ValueKind = iota
	StringValue
	HtmlElementValue
)

// Value is the tagged union of every runtime value this interpreter
// produces: Number, StringLiteral, or HtmlElement{object, property?}.
type Value struct {
	Kind ValueKind

	Num uint64
	Str string

	Element     *dom.Node
	Property    string
	HasProperty bool
}

// Text renders v to its textual form, the coercion spec §4.4 uses for
// "+"/string-concatenation and for addressing DOM elements.
func (v Value) Text() string {
	switch v.Kind {
	case NumberValue:
		return strconv.FormatUint(v.Num, 10)
	case StringValue:
		return v.Str
	case HtmlElementValue:
		if v.HasProperty {
			return "[object].`" + v.Property + "`"
		}
		return "[object]"
	default:
		return ""
	}
}

// Add implements "+": Number+Number sums; anything else coerces both
// sides to their textual form and concatenates.
func Add(a, b Value) Value {
	if a.Kind == NumberValue && b.Kind == NumberValue {
		return Value{Kind: NumberValue, Num: a.Num + b.Num}
	}
	return Value{Kind: StringValue, Str: a.Text() + b.Text()}
}

// Sub implements "-": Number-Number subtracts (wrapping per u64
// semantics, spec §9's resolved open question); any other operand
// shape yields Number(0) as an error sentinel.
func Sub(a, b Value) Value {
	if a.Kind == NumberValue && b.Kind == NumberValue {
		return Value{Kind: NumberValue, Num: a.Num - b.Num}
	}
	return Value{Kind: NumberValue, Num: 0}
}
