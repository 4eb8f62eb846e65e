package document

import (
	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/content"
)

// NewForm creates a content builder for a form XObject with the given
// bounding box and form matrix. Like a page, a form is not part of
// the document until AddFormXObject is called.
func (d *Document) NewForm(bbox pdfcore.Rectangle, matrix [6]float64) (*Page, pdfcore.FormXObjectID) {
	id := d.Reg.ReserveFormID(bbox, matrix)
	p := &Page{
		Builder: content.NewBuilder(d.Reg, d.Conv, d.opts.OutputColorSpace),
		doc:     d,
	}
	return p, id
}

// AddFormXObject finalizes a form's content stream and queues it for
// emission at Close, alongside the fonts and pages it depends on.
func (d *Document) AddFormXObject(id pdfcore.FormXObjectID, p *Page) error {
	artifact, err := p.finalize()
	if err != nil {
		return err
	}
	p.added = true
	d.forms = append(d.forms, pendingForm{id: id, artifact: artifact})
	return nil
}
