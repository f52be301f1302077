package dom

// InsertCharacter appends the rune r as a child of n, coalescing it into
// the trailing Text child when one already exists rather than creating a
// new Text node per character (spec §4.2's "insert character" op, and
// §9's text-coalescing invariant). Unlike the original's explicit text
// cursor, this walks straight off n.LastChild: since NextSibling is the
// owning link in this tree, the last child is always reachable in O(1)
// and is always where new text belongs, so no separate cursor field is
// needed to reproduce the same observable coalescing behavior.
func (n *Node) InsertCharacter(r rune) {
	if n.LastChild != nil && n.LastChild.Kind == TextKind {
		n.LastChild.Text += string(r)
		return
	}
	n.AppendChild(NewText(string(r)))
}
