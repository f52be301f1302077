// Package display turns a layout tree into a flat display list and
// answers hit-test queries against it, per spec §4.8.
package display

import (
	"github.com/pinhole-web/pinhole/layout"
	"github.com/pinhole-web/pinhole/style"
)

// Kind discriminates the two display item shapes.
type Kind int

const (
	RectItem Kind = iota
	TextItem
)

// Item is one entry of a display list: either a filled rectangle (a
// block's background) or a line of text.
type Item struct {
	Kind Kind

	Text string

	Style style.ComputedStyle
	Point layout.Point
	Size  layout.Size
}

// BackgroundColorHex returns the 0xRRGGBB encoding of the item's
// background color, the format spec §6 says the shell consumes.
func (it Item) BackgroundColorHex() uint32 {
	if it.Style.BackgroundColor == nil {
		return style.White.Hex()
	}
	return it.Style.BackgroundColor.Hex()
}

// TextColorHex returns the 0xRRGGBB encoding of the item's text color.
func (it Item) TextColorHex() uint32 {
	if it.Style.TextColor == nil {
		return style.Black.Hex()
	}
	return it.Style.TextColor.Hex()
}
