// Package style implements the CSS cascade and property defaulting
// that turn a stylesheet and a DOM tree into computed styles for
// layout, per spec §4.3.
package style

import (
	"github.com/pinhole-web/pinhole/css"
	"github.com/pinhole-web/pinhole/dom"
)

// Display is the computed value of the display property.
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayNone
)

// FontSize is the computed value of the font-size property, reduced
// to the three absolute sizes spec §4.3 names.
type FontSize int

const (
	FontSizeMedium FontSize = iota
	FontSizeXLarge
	FontSizeXXLarge
)

// TextDecoration is the computed value of the text-decoration
// property.
type TextDecoration int

const (
	TextDecorationNone TextDecoration = iota
	TextDecorationUnderline
)

// ComputedStyle holds the properties spec §4.3 tracks. Each field is a
// pointer so cascade/defaulting can distinguish "not yet set" from a
// zero value, mirroring the original's Option<T> fields.
type ComputedStyle struct {
	BackgroundColor *Color
	TextColor       *Color
	DisplayValue    *Display
	FontSizeValue   *FontSize
	TextDecoValue   *TextDecoration
	Width           *float64
	Height          *float64
}

// Apply cascades sheet's rules against el in source order: each
// matching rule's declarations are applied in order, later
// declarations overwriting earlier ones for the same property.
func Apply(sheet css.Stylesheet, el *dom.Node) ComputedStyle {
	var cs ComputedStyle
	for _, rule := range sheet.Rules {
		if !matches(rule.Selector, el) {
			continue
		}
		for _, d := range rule.Declarations {
			applyDeclaration(&cs, d)
		}
	}
	return cs
}

func matches(sel css.Selector, el *dom.Node) bool {
	if el.Kind != dom.ElementKind {
		return false
	}
	switch sel.Kind {
	case css.TypeSelector:
		return el.Tag.String() == sel.Name
	case css.ClassSelector:
		v, ok := el.Attr("class")
		return ok && v == sel.Name
	case css.IDSelector:
		v, ok := el.Attr("id")
		return ok && v == sel.Name
	default:
		return false
	}
}

func applyDeclaration(cs *ComputedStyle, d css.Declaration) {
	switch d.Property {
	case "background-color":
		if c, ok := ParseColor(d.Value); ok {
			cs.BackgroundColor = &c
		}
	case "color":
		if c, ok := ParseColor(d.Value); ok {
			cs.TextColor = &c
		}
	case "display":
		if dv, ok := parseDisplay(d.Value); ok {
			cs.DisplayValue = &dv
		}
	}
}

func parseDisplay(v string) (Display, bool) {
	switch v {
	case "block":
		return DisplayBlock, true
	case "inline":
		return DisplayInline, true
	case "none":
		return DisplayNone, true
	default:
		return 0, false
	}
}

// Default fills in every unset property of cs, inheriting from parent
// when parent's own value differs from that property's initial value,
// and otherwise falling back to the property's initial value — which,
// for display/font-size/text-decoration, depends on node's kind and
// (for elements) tag.
func Default(cs ComputedStyle, parent *ComputedStyle, node *dom.Node) ComputedStyle {
	if parent != nil {
		if cs.BackgroundColor == nil && parent.BackgroundColor != nil && *parent.BackgroundColor != White {
			c := *parent.BackgroundColor
			cs.BackgroundColor = &c
		}
		if cs.TextColor == nil && parent.TextColor != nil && *parent.TextColor != Black {
			c := *parent.TextColor
			cs.TextColor = &c
		}
		if cs.FontSizeValue == nil && parent.FontSizeValue != nil && *parent.FontSizeValue != FontSizeMedium {
			f := *parent.FontSizeValue
			cs.FontSizeValue = &f
		}
		if cs.TextDecoValue == nil && parent.TextDecoValue != nil && *parent.TextDecoValue != TextDecorationNone {
			t := *parent.TextDecoValue
			cs.TextDecoValue = &t
		}
	}

	if cs.BackgroundColor == nil {
		c := White
		cs.BackgroundColor = &c
	}
	if cs.TextColor == nil {
		c := Black
		cs.TextColor = &c
	}
	if cs.DisplayValue == nil {
		d := defaultDisplay(node)
		cs.DisplayValue = &d
	}
	if cs.FontSizeValue == nil {
		f := defaultFontSize(node)
		cs.FontSizeValue = &f
	}
	if cs.TextDecoValue == nil {
		t := defaultTextDecoration(node)
		cs.TextDecoValue = &t
	}
	if cs.Width == nil {
		w := 0.0
		cs.Width = &w
	}
	if cs.Height == nil {
		h := 0.0
		cs.Height = &h
	}
	return cs
}

func defaultDisplay(node *dom.Node) Display {
	switch node.Kind {
	case dom.DocumentKind:
		return DisplayBlock
	case dom.TextKind:
		return DisplayInline
	case dom.ElementKind:
		if node.Tag.IsBlockTag() {
			return DisplayBlock
		}
		return DisplayInline
	default:
		return DisplayInline
	}
}

func defaultFontSize(node *dom.Node) FontSize {
	if node.Kind != dom.ElementKind {
		return FontSizeMedium
	}
	switch node.Tag {
	case dom.H1Tag:
		return FontSizeXXLarge
	case dom.H2Tag:
		return FontSizeXLarge
	default:
		return FontSizeMedium
	}
}

func defaultTextDecoration(node *dom.Node) TextDecoration {
	if node.Kind == dom.ElementKind && node.Tag == dom.ATag {
		return TextDecorationUnderline
	}
	return TextDecorationNone
}
