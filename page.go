package capypdf

// Rectangle is a PDF rectangle, [llx lly urx ury].
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

func (r Rectangle) Array() Array {
	return Array{Real(r.LLx), Real(r.LLy), Real(r.URx), Real(r.URy)}
}

// TransitionStyle names a PDF presentation transition style (Table
// 162 of ISO 32000-2). Only the handful a drawing API realistically
// needs are named here; the rest can be added the same way.
type TransitionStyle Name

const (
	TransitionSplit   TransitionStyle = "Split"
	TransitionBlinds  TransitionStyle = "Blinds"
	TransitionBox     TransitionStyle = "Box"
	TransitionWipe    TransitionStyle = "Wipe"
	TransitionDissolve TransitionStyle = "Dissolve"
	TransitionFade    TransitionStyle = "Fade"
)

// Transition describes a page's /Trans dictionary.
type Transition struct {
	Style    TransitionStyle
	Duration float64 // seconds; 0 means "use the viewer's default"
}

func (t Transition) Dict() Dict {
	d := Dict{
		"Type": Name("Trans"),
		"S":    Name(t.Style),
	}
	if t.Duration > 0 {
		d["D"] = Real(t.Duration)
	}
	return d
}

// PageRecord is the bookkeeping the document assembler keeps for one
// page from the moment its builder is finalized until the page tree
// is emitted at Close.
type PageRecord struct {
	ResourceObjectNumber int
	ContentObjectNumber  int

	MediaBox Rectangle
	CropBox  *Rectangle
	BleedBox *Rectangle
	TrimBox  *Rectangle
	ArtBox   *Rectangle

	Transition  *Transition
	Annotations []AnnotationID
}

// Dict renders the /Page object body. parentRef is the predicted
// object number of the page tree root.
func (p PageRecord) Dict(parentRef int, annotRefs Array) Dict {
	d := Dict{
		"Type":      Name("Page"),
		"Parent":    Ref(parentRef),
		"MediaBox":  p.MediaBox.Array(),
		"Contents":  Ref(p.ContentObjectNumber),
		"Resources": Ref(p.ResourceObjectNumber),
	}
	if p.CropBox != nil {
		d["CropBox"] = p.CropBox.Array()
	}
	if p.BleedBox != nil {
		d["BleedBox"] = p.BleedBox.Array()
	}
	if p.TrimBox != nil {
		d["TrimBox"] = p.TrimBox.Array()
	}
	if p.ArtBox != nil {
		d["ArtBox"] = p.ArtBox.Array()
	}
	if p.Transition != nil {
		d["Trans"] = p.Transition.Dict()
	}
	if len(annotRefs) > 0 {
		d["Annots"] = annotRefs
	}
	return d
}
