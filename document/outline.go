package document

import pdfcore "github.com/Conan-Kudo/capypdf"

// Item is one node of the document outline (bookmark) tree, modeled
// on the teacher's outline.Item trimmed to what a drawing API needs:
// a title, a destination page, and child items. Destination and
// Action are not both supported since there is no action/JavaScript
// subsystem in this module (spec §1 Non-goals).
type Item struct {
	Title    string
	Dest     pdfcore.PageID
	Open     bool
	Children []*Item
}

// AddChild appends a new child item with the given title and
// destination page.
func (item *Item) AddChild(title string, dest pdfcore.PageID) *Item {
	child := &Item{Title: title, Dest: dest}
	item.Children = append(item.Children, child)
	return child
}

// Outline is the root of a document's bookmark tree.
type Outline struct {
	Items []*Item
}

// AddItem appends a new top-level item with the given title and
// destination page.
func (o *Outline) AddItem(title string, dest pdfcore.PageID) *Item {
	item := &Item{Title: title, Dest: dest}
	o.Items = append(o.Items, item)
	return item
}

// outlineFlatNode is one entry in the flattening of the outline tree
// used to predict every node's object number before any of them is
// written — the same predict-ahead trick the page-tree root uses,
// applied one level deeper since outline nodes reference both their
// parent and their siblings. Flattening appends one level's siblings
// before recursing into any of their subtrees, so the resulting order
// is not a strict preorder walk; that's fine, since every reference
// (Parent/Prev/Next/First/Last) is resolved through the fully
// precomputed predicted-number table rather than by writing order.
type outlineFlatNode struct {
	item       *Item // nil for the synthetic root
	parent     int   // index into flat, -1 for the root
	prev, next int   // sibling indices, -1 if none
	firstChild int
	lastChild  int
	childCount int
}

func flattenOutline(o *Outline) []outlineFlatNode {
	flat := []outlineFlatNode{{item: nil, parent: -1, prev: -1, next: -1, firstChild: -1, lastChild: -1}}
	var walk func(items []*Item, parent int)
	walk = func(items []*Item, parent int) {
		first, last := -1, -1
		prev := -1
		for _, it := range items {
			idx := len(flat)
			flat = append(flat, outlineFlatNode{item: it, parent: parent, prev: prev, next: -1, firstChild: -1, lastChild: -1})
			if prev >= 0 {
				flat[prev].next = idx
			}
			if first < 0 {
				first = idx
			}
			last = idx
			prev = idx
		}
		flat[parent].firstChild = first
		flat[parent].lastChild = last
		flat[parent].childCount = len(items)
		for _, it := range items {
			// Re-find this item's index: every sibling at this level
			// is appended before any of them recurses into its own
			// children, so a second pass over the same items is
			// needed to locate where each one landed. A linear lookup
			// keeps the bookkeeping simple at the cost of one extra
			// scan per node, which is fine at outline scale.
			idx := indexOfItem(flat, it)
			walk(it.Children, idx)
		}
	}
	walk(o.Items, 0)
	return flat
}

func indexOfItem(flat []outlineFlatNode, target *Item) int {
	for i, n := range flat {
		if n.item == target {
			return i
		}
	}
	return -1
}

// writeOutline emits the outline tree as indirect objects and returns
// the root's object number, or 0 if the document has no outline
// items. pageObjNum maps a 1-based PageID to its emitted page object
// number, so /Dest entries can be resolved; it must already be fully
// populated (i.e. called after the page tree has been written).
func writeOutline(d *Document, pageObjNum []int) (int, error) {
	if d.outline == nil || len(d.outline.Items) == 0 {
		return 0, nil
	}
	flat := flattenOutline(d.outline)

	base := d.w.NextObjectNumber()
	predicted := make([]int, len(flat))
	for i := range flat {
		predicted[i] = base + i
	}

	for i, n := range flat {
		dict := pdfcore.Dict{}
		if n.item == nil {
			dict["Type"] = pdfcore.Name("Outlines")
			dict["Count"] = pdfcore.Integer(n.childCount)
		} else {
			dict["Title"] = pdfcore.TextString(n.item.Title)
			dict["Parent"] = pdfcore.Ref(predicted[n.parent])
			if n.item.Dest > 0 {
				pageNum := pageObjNum[int(n.item.Dest)-1]
				dict["Dest"] = pdfcore.Array{pdfcore.Ref(pageNum), pdfcore.Name("Fit")}
			}
			count := n.childCount
			if !n.item.Open && count > 0 {
				count = -count
			}
			if n.childCount > 0 {
				dict["Count"] = pdfcore.Integer(count)
			}
			if n.prev >= 0 {
				dict["Prev"] = pdfcore.Ref(predicted[n.prev])
			}
			if n.next >= 0 {
				dict["Next"] = pdfcore.Ref(predicted[n.next])
			}
		}
		if n.firstChild >= 0 {
			dict["First"] = pdfcore.Ref(predicted[n.firstChild])
			dict["Last"] = pdfcore.Ref(predicted[n.lastChild])
		}

		num, err := d.w.WriteIndirect(dict)
		if err != nil {
			return 0, err
		}
		if num != predicted[i] {
			return 0, pdfcore.NewError(pdfcore.ErrIO, "outline object number mismatch with prediction")
		}
	}
	return predicted[0], nil
}
