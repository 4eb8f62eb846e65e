package document

import (
	"runtime"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

// Close runs the spec's close protocol: flush every font subset text
// rendering referenced, resolve every pending form, then every
// pending page, emit the page tree, outline, catalog, cross-reference
// table and trailer. Close must be called exactly once; calling it
// again returns ErrDoubleFinalize.
//
// Forms that draw other forms must be added (via AddFormXObject) in
// dependency order — a form can only draw a form that was already
// added, since a form's own object number is not known until it is
// resolved here, in the order forms were added.
func (d *Document) Close() error {
	if d.closed {
		return pdfcore.NewError(pdfcore.ErrDoubleFinalize, "document already closed")
	}

	if _, err := d.Reg.FlushFonts(); err != nil {
		return err
	}

	for _, pf := range d.forms {
		dict, err := pf.artifact.ResourceDict(d.Reg)
		if err != nil {
			return err
		}
		if err := d.Reg.ResolveForm(pf.id, dict, pf.artifact.Content); err != nil {
			return err
		}
	}

	predictedPagesRoot := d.w.NextObjectNumber() + 3*len(d.pages)

	kids := make([]int, len(d.pages))
	pageObjNum := make([]int, len(d.pages))
	for i, pg := range d.pages {
		resDict, err := pg.artifact.ResourceDict(d.Reg)
		if err != nil {
			return err
		}
		resNum, err := d.w.WriteIndirect(resDict)
		if err != nil {
			return err
		}
		contentNum, err := d.w.WriteStream(pdfcore.Dict{}, pg.artifact.Content)
		if err != nil {
			return err
		}

		annotRefs := make(pdfcore.Array, 0, len(pg.annots))
		for _, aid := range pg.annots {
			num, err := d.Reg.AnnotationObjectNumber(aid)
			if err != nil {
				return err
			}
			annotRefs = append(annotRefs, pdfcore.Ref(num))
		}

		record := pdfcore.PageRecord{
			ResourceObjectNumber: resNum,
			ContentObjectNumber:  contentNum,
			MediaBox:             pg.mediaBox,
			CropBox:              pg.cropBox,
			BleedBox:             pg.bleedBox,
			TrimBox:              pg.trimBox,
			ArtBox:               pg.artBox,
			Transition:           pg.transition,
		}
		pageNum, err := d.w.WriteIndirect(record.Dict(predictedPagesRoot, annotRefs))
		if err != nil {
			return err
		}
		kids[i] = pageNum
		pageObjNum[i] = pageNum
	}

	pagesRootNum, err := d.w.WriteIndirect(pdfcore.PagesNode(kids, len(kids)))
	if err != nil {
		return err
	}
	if pagesRootNum != predictedPagesRoot {
		return pdfcore.NewError(pdfcore.ErrIO, "page tree root object number mismatch with prediction")
	}

	outlineRoot, err := writeOutline(d, pageObjNum)
	if err != nil {
		return err
	}

	var structRoot *int
	if d.opts.TagForAccessibility {
		num, err := d.w.WriteIndirect(pdfcore.Dict{
			"Type": pdfcore.Name("StructTreeRoot"),
			"K":    pdfcore.Array{},
		})
		if err != nil {
			return err
		}
		structRoot = &num
	}

	catalog := pdfcore.Catalog{
		PagesRef:            pagesRootNum,
		Lang:                d.opts.Language,
		TagForAccessibility: d.opts.TagForAccessibility,
		StructTreeRootRef:   structRoot,
	}
	// OCProperties is an interface field: assigning a nil pdfcore.Dict
	// to it directly would make the interface non-nil (it would hold
	// a nil map), so Catalog.Dict would wrongly emit "/OCProperties
	// null" instead of omitting the key.
	if ocProps := d.Reg.OCProperties(); ocProps != nil {
		catalog.OCProperties = ocProps
	}
	if outlineRoot != 0 {
		catalog.Outlines = &outlineRoot
	}

	rootNum, err := d.w.WriteIndirect(catalog.Dict())
	if err != nil {
		return err
	}

	if err := d.w.WriteXRefAndTrailer(rootNum, d.infoObjNum); err != nil {
		return err
	}

	d.closed = true
	runtime.SetFinalizer(d, nil)
	return nil
}
