package resource

import (
	pdfcore "github.com/Conan-Kudo/capypdf"
)

// AnnotationKind distinguishes the annotation subtypes this module
// supports: the non-interactive subset useful to a drawing API.
type AnnotationKind int

const (
	AnnotationLink AnnotationKind = iota
	AnnotationText
)

// AnnotationDict describes one page annotation.
type AnnotationDict struct {
	Kind     AnnotationKind
	Rect     pdfcore.Rectangle
	Contents string // /Contents, used by AnnotationText
	DestPage int    // target page object number, used by AnnotationLink
	Open     bool   // /Open, used by AnnotationText
}

func (a AnnotationDict) Dict() pdfcore.Dict {
	d := pdfcore.Dict{
		"Type": pdfcore.Name("Annot"),
		"Rect": a.Rect.Array(),
	}
	switch a.Kind {
	case AnnotationLink:
		d["Subtype"] = pdfcore.Name("Link")
		d["Dest"] = pdfcore.Array{pdfcore.Ref(a.DestPage), pdfcore.Name("Fit")}
	case AnnotationText:
		d["Subtype"] = pdfcore.Name("Text")
		d["Contents"] = pdfcore.TextString(a.Contents)
		d["Open"] = pdfcore.Bool(a.Open)
	}
	return d
}

// AddAnnotation registers an annotation and writes its dictionary as
// an indirect object immediately, so the page's /Annots array can
// reference it by number once the page is finalized.
func (r *Registry) AddAnnotation(a AnnotationDict) (pdfcore.AnnotationID, error) {
	num, err := r.w.WriteIndirect(a.Dict())
	if err != nil {
		return 0, err
	}
	r.annotations = append(r.annotations, a)
	r.annotationObjNum = append(r.annotationObjNum, num)
	return pdfcore.AnnotationID(len(r.annotations)), nil
}

// AnnotationObjectNumber resolves an AnnotationID to its object number.
func (r *Registry) AnnotationObjectNumber(id pdfcore.AnnotationID) (int, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.annotationObjNum) {
		return 0, badID("annotation", int(id))
	}
	return r.annotationObjNum[i], nil
}
