package display

import (
	"strings"

	"github.com/pinhole-web/pinhole/config"
	"github.com/pinhole-web/pinhole/layout"
	"github.com/pinhole-web/pinhole/style"
)

// Emit walks root in pre-order (node, then children, then siblings),
// appending each node's display items in that order, per spec §4.8:
// a Block contributes one Rect; an Inline contributes nothing; a Text
// node contributes one Text item per wrapped line.
func Emit(root *layout.Object, c config.Constants) []Item {
	var items []Item
	emitInto(&items, root, c)
	return items
}

func emitInto(items *[]Item, node *layout.Object, c config.Constants) {
	if node == nil {
		return
	}
	*items = append(*items, paint(node, c)...)
	emitInto(items, node.FirstChild, c)
	emitInto(items, node.NextSibling, c)
}

func paint(node *layout.Object, c config.Constants) []Item {
	switch node.Kind {
	case layout.Block:
		return []Item{{
			Kind:  RectItem,
			Style: node.Style,
			Point: node.Point,
			Size:  node.Size,
		}}

	case layout.Text:
		return paintText(node, c)

	default:
		return nil
	}
}

// paintText renders a Text node's content as one or more Text items,
// one per wrapped line: runs of whitespace collapse to a single space,
// and lines wrap at the rightmost space within the per-line character
// budget, falling back to a hard break when no space is found.
func paintText(node *layout.Object, c config.Constants) []Item {
	if node.Node == nil {
		return nil
	}

	ratio := fontSizeRatio(node.Style)
	plain := collapseWhitespace(node.Node.Text)
	maxIndex := (c.WindowWidth + c.WindowPadding) / (c.CharWidth * ratio)
	lines := splitLines(plain, maxIndex)

	items := make([]Item, 0, len(lines))
	for i, line := range lines {
		items = append(items, Item{
			Kind:  TextItem,
			Text:  line,
			Style: node.Style,
			Point: layout.Point{
				X: node.Point.X,
				Y: node.Point.Y + c.CharHeightWithPadding()*ratio*i,
			},
		})
	}
	return items
}

func collapseWhitespace(text string) string {
	fields := strings.Fields(strings.ReplaceAll(text, "\n", " "))
	return strings.Join(fields, " ")
}

// splitLines breaks line into chunks no longer than maxIndex runes,
// preferring to break at the rightmost space within that budget and
// falling back to a hard break at maxIndex when no space is found, per
// spec §4.8.
func splitLines(line string, maxIndex int) []string {
	var result []string
	for {
		runes := []rune(line)
		if len(runes) <= maxIndex {
			result = append(result, line)
			return result
		}
		breakAt := findLineBreak(runes, maxIndex)
		result = append(result, string(runes[:breakAt]))
		line = strings.TrimSpace(string(runes[breakAt:]))
	}
}

func findLineBreak(runes []rune, maxIndex int) int {
	for i := maxIndex - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return maxIndex
}

func fontSizeRatio(s style.ComputedStyle) int {
	if s.FontSizeValue == nil {
		return 1
	}
	switch *s.FontSizeValue {
	case style.FontSizeXLarge:
		return 2
	case style.FontSizeXXLarge:
		return 3
	default:
		return 1
	}
}
