package layout

import (
	"github.com/pinhole-web/pinhole/config"
	"github.com/pinhole-web/pinhole/css"
	"github.com/pinhole-web/pinhole/dom"
)

// View is the layout tree built from a document's <body> subtree,
// already sized and positioned.
type View struct {
	Root *Object
}

// New builds a View from document: it locates <body>, builds the
// layout tree from display:none-filtered Objects (buildTree), then
// resolves every node's size and position (updateLayout), per
// spec §4.5.
func New(document *dom.Node, sheet css.Stylesheet, constants config.Constants) *View {
	body := dom.FindElementByTag(document, dom.BodyTag)

	v := &View{Root: buildTree(body, nil, sheet)}
	v.updateLayout(constants)
	return v
}

// buildTree walks node and its siblings, converting each into an
// Object via create. A node whose computed display is none (create
// returns nil) is skipped — buildTree advances to its next sibling and
// keeps trying until it finds one that produces an Object, or runs out
// of siblings. Each produced Object's children and next sibling are
// themselves the result of recursively applying this same skip rule.
func buildTree(node *dom.Node, parentObj *Object, sheet css.Stylesheet) *Object {
	target := node
	obj := create(node, parentObj, sheet)

	for obj == nil {
		if target == nil {
			return nil
		}
		target = target.NextSibling
		obj = create(target, parentObj, sheet)
	}

	firstChild := buildTree(target.FirstChild, obj, sheet)
	nextSibling := buildTree(target.NextSibling, parentObj, sheet)

	obj.FirstChild = firstChild
	obj.NextSibling = nextSibling

	return obj
}

// updateLayout resolves size (content-area width down) then position
// (origin outward) across the whole tree, per spec §4.6/§4.7: size
// must settle before position, since a block's height depends on its
// children and a sibling's position depends on the previous sibling's
// size.
func (v *View) updateLayout(c config.Constants) {
	calculateSize(v.Root, Size{Width: c.ContentAreaWidth()}, c)
	calculatePosition(v.Root, Point{}, Block, nil, nil)
}

// calculateSize resolves node's size bottom-up: a Block's width is set
// from parentSize before its children are visited (children may need
// it via their own parentSize), then every node's final ComputeSize
// call runs after its children and siblings have already been sized.
func calculateSize(node *Object, parentSize Size, c config.Constants) {
	if node == nil {
		return
	}

	if node.Kind == Block {
		node.ComputeSize(parentSize, c)
	}

	calculateSize(node.FirstChild, node.Size, c)
	calculateSize(node.NextSibling, parentSize, c)

	node.ComputeSize(parentSize, c)
}

// calculatePosition resolves node's position, then its children's
// (relative to node's own content origin) and its siblings' (relative
// to the same parent origin, chained through node's own point/size).
func calculatePosition(node *Object, parentPoint Point, previousSiblingKind Kind, previousSiblingPoint *Point, previousSiblingSize *Size) {
	if node == nil {
		return
	}

	node.ComputePosition(parentPoint, previousSiblingKind, previousSiblingPoint, previousSiblingSize)

	calculatePosition(node.FirstChild, node.Point, Block, nil, nil)

	point, size := node.Point, node.Size
	calculatePosition(node.NextSibling, parentPoint, node.Kind, &point, &size)
}
