// Package layout builds a layout tree from a DOM tree and a stylesheet,
// then computes each node's pixel size and position, per spec §4.5–4.7.
// Nodes whose computed display is none are excluded from the tree
// entirely, so the layout tree's shape can differ from the DOM's.
package layout

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/pinhole-web/pinhole/config"
	"github.com/pinhole-web/pinhole/css"
	"github.com/pinhole-web/pinhole/dom"
	"github.com/pinhole-web/pinhole/style"
)

// Kind discriminates how an Object lays out and paints.
type Kind int

const (
	Block Kind = iota
	Inline
	Text
)

// String names a Kind, for Dump output and test failure messages.
func (k Kind) String() string {
	switch k {
	case Block:
		return "block"
	case Inline:
		return "inline"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Point is a layout node's top-left pixel coordinate.
type Point struct {
	X int
	Y int
}

// Size is a layout node's pixel width and height.
type Size struct {
	Width  int
	Height int
}

// Object is one node of the layout tree: a DOM node plus its computed
// style, size, and position. Children and the next sibling are owning
// links; Parent is non-owning, mirroring dom.Node's link shape.
type Object struct {
	Kind Kind
	Node *dom.Node

	Style style.ComputedStyle

	Point Point
	Size  Size

	Parent      *Object
	FirstChild  *Object
	NextSibling *Object
}

// newObject creates an Object wrapping node, linked to parentObj as its
// (non-owning) parent. Style and kind are filled in by create.
func newObject(node *dom.Node, parentObj *Object) *Object {
	return &Object{Node: node, Parent: parentObj, Kind: Block}
}

// create builds a single Object from node: cascading sheet's rules
// against it, defaulting unset properties (inheriting from parentObj's
// style where applicable), and resolving its final Kind. It returns nil
// when the computed display is none, excluding node (and, by the
// caller's tree-walk, everything under it) from the layout tree.
func create(node *dom.Node, parentObj *Object, sheet css.Stylesheet) *Object {
	if node == nil {
		return nil
	}

	obj := newObject(node, parentObj)

	cascaded := style.Apply(sheet, node)

	var parentStyle *style.ComputedStyle
	if parentObj != nil {
		parentStyle = &parentObj.Style
	}
	obj.Style = style.Default(cascaded, parentStyle, node)

	if obj.Style.DisplayValue != nil && *obj.Style.DisplayValue == style.DisplayNone {
		return nil
	}

	obj.Kind = kindFor(node, obj.Style)
	return obj
}

// kindFor resolves the final layout Kind once cascading and defaulting
// have settled display: Text nodes are always Text; elements are Block
// or Inline per their computed display (display:none never reaches
// here — create returns nil first).
func kindFor(node *dom.Node, s style.ComputedStyle) Kind {
	if node.Kind == dom.TextKind {
		return Text
	}
	if s.DisplayValue != nil && *s.DisplayValue == style.DisplayInline {
		return Inline
	}
	return Block
}

// Dump renders the subtree rooted at o as an indented tree, for
// debugging and test failure output.
func (o *Object) Dump() string {
	tree := treeprint.New()
	o.dumpInto(tree)
	return tree.String()
}

func (o *Object) dumpInto(tree treeprint.Tree) {
	if o == nil {
		return
	}
	label := o.Kind.String()
	if o.Node != nil && o.Node.Kind == dom.ElementKind {
		label = fmt.Sprintf("%s <%s>", label, o.Node.Tag)
	} else if o.Node != nil && o.Node.Kind == dom.TextKind {
		label = fmt.Sprintf("%s %q", label, o.Node.Text)
	}
	tree.SetValue(label)
	for c := o.FirstChild; c != nil; c = c.NextSibling {
		c.dumpInto(tree.AddBranch(""))
	}
}

// ComputeSize resolves o's own Size from parentSize and (for Block and
// Inline) its children's already-computed sizes, per spec §4.6.
// Block's width is the parent's content width; its height sums the
// heights of children that are blocks or that follow a block (or come
// first), so within a run of inline children only the first adds its
// height — the "previous child was block or this child is block" gate
// the original layout engine uses. Inline sums both width and height
// of its children. Text measures its content against a monospace
// metric and wraps once the run exceeds the content width.
func (o *Object) ComputeSize(parentSize Size, c config.Constants) {
	var size Size

	switch o.Kind {
	case Block:
		size.Width = parentSize.Width

		height := 0
		previousChildKind := Block
		for child := o.FirstChild; child != nil; child = child.NextSibling {
			if previousChildKind == Block || child.Kind == Block {
				height += child.Size.Height
			}
			previousChildKind = child.Kind
		}
		size.Height = height

	case Inline:
		width, height := 0, 0
		for child := o.FirstChild; child != nil; child = child.NextSibling {
			width += child.Size.Width
			height += child.Size.Height
		}
		size.Width = width
		size.Height = height

	case Text:
		if o.Node != nil && o.Node.Kind == dom.TextKind {
			ratio := fontSizeRatio(o.Style)
			width := c.CharWidth * ratio * len([]rune(o.Node.Text))
			contentWidth := c.ContentAreaWidth()
			if width > contentWidth {
				size.Width = contentWidth
				lineNum := width / contentWidth
				if width%contentWidth != 0 {
					lineNum++
				}
				size.Height = c.CharHeightWithPadding() * ratio * lineNum
			} else {
				size.Width = width
				size.Height = c.CharHeightWithPadding() * ratio
			}
		}
	}

	o.Size = size
}

// ComputePosition resolves o's top-left Point from the parent's content
// origin and the previous sibling's kind/point/size, per spec §4.7:
// block flow advances down (Y), a run of inline siblings advances
// across (X), and an only/first child sits at the parent's origin.
func (o *Object) ComputePosition(parentPoint Point, previousSiblingKind Kind, previousSiblingPoint *Point, previousSiblingSize *Size) {
	var point Point

	switch {
	case o.Kind == Block || previousSiblingKind == Block:
		if previousSiblingPoint != nil && previousSiblingSize != nil {
			point.Y = previousSiblingPoint.Y + previousSiblingSize.Height
		} else {
			point.Y = parentPoint.Y
		}
		point.X = parentPoint.X

	case o.Kind == Inline && previousSiblingKind == Inline:
		if previousSiblingPoint != nil && previousSiblingSize != nil {
			point.X = previousSiblingPoint.X + previousSiblingSize.Width
			point.Y = previousSiblingPoint.Y
		} else {
			point.X = parentPoint.X
			point.Y = parentPoint.Y
		}

	default:
		point.X = parentPoint.X
		point.Y = parentPoint.Y
	}

	o.Point = point
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
