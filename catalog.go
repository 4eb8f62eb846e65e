package capypdf

// Catalog holds the document-level state that is only known once
// every page has been added, and is rendered to a /Catalog dictionary
// at Close time.
type Catalog struct {
	PagesRef int

	Outlines *int // object number of the outline root, if any
	Lang     string

	OCProperties Object // built by the resource registry's OC table, if used

	TagForAccessibility bool
	StructTreeRootRef   *int
}

func (c Catalog) Dict() Dict {
	d := Dict{
		"Type":  Name("Catalog"),
		"Pages": Ref(c.PagesRef),
	}
	if c.Outlines != nil {
		d["Outlines"] = Ref(*c.Outlines)
	}
	if c.Lang != "" {
		d["Lang"] = String(c.Lang)
	}
	if c.OCProperties != nil {
		d["OCProperties"] = c.OCProperties
	}
	if c.StructTreeRootRef != nil {
		d["StructTreeRoot"] = Ref(*c.StructTreeRootRef)
	}
	if c.TagForAccessibility {
		d["MarkInfo"] = Dict{"Marked": Bool(true)}
	}
	return d
}

// PagesNode renders the /Pages page-tree root dictionary.
func PagesNode(kids []int, count int) Dict {
	arr := make(Array, len(kids))
	for i, k := range kids {
		arr[i] = Ref(k)
	}
	return Dict{
		"Type":  Name("Pages"),
		"Kids":  arr,
		"Count": Integer(count),
	}
}
