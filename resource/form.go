package resource

import pdfcore "github.com/Conan-Kudo/capypdf"

type formEntry struct {
	objNum int
	bbox   pdfcore.Rectangle
	matrix [6]float64
}

// ReserveFormID allocates a FormXObjectID before its content and
// resource dictionary are known, the same arena+index pattern used
// for lazily-built font subsets (spec §9 "cyclic needs"): a form may
// itself draw text whose font subset object numbers are only known
// once every page has been drawn, so the form's own object cannot be
// written until document close either.
func (r *Registry) ReserveFormID(bbox pdfcore.Rectangle, matrix [6]float64) pdfcore.FormXObjectID {
	r.forms = append(r.forms, formEntry{bbox: bbox, matrix: matrix})
	return pdfcore.FormXObjectID(len(r.forms))
}

// ResolveForm writes a reserved form's content and resource
// dictionary as its indirect Form XObject stream, recording the
// resulting object number against id. Called at document close, after
// FlushFonts, in the order forms were added with AddFormXObject.
func (r *Registry) ResolveForm(id pdfcore.FormXObjectID, resources pdfcore.Dict, content []byte) error {
	i := int(id) - 1
	if i < 0 || i >= len(r.forms) {
		return badID("form xobject", int(id))
	}
	e := &r.forms[i]

	m := make(pdfcore.Array, 6)
	for j, v := range e.matrix {
		m[j] = pdfcore.Real(v)
	}
	dict := pdfcore.Dict{
		"Type":      pdfcore.Name("XObject"),
		"Subtype":   pdfcore.Name("Form"),
		"BBox":      e.bbox.Array(),
		"Matrix":    m,
		"Resources": resources,
	}
	num, err := r.w.WriteStream(dict, content)
	if err != nil {
		return err
	}
	e.objNum = num
	return nil
}

// FormObjectNumber resolves a FormXObjectID to its object number.
// Valid only after ResolveForm has run for id.
func (r *Registry) FormObjectNumber(id pdfcore.FormXObjectID) (int, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.forms) || r.forms[i].objNum == 0 {
		return 0, badID("form xobject", int(id))
	}
	return r.forms[i].objNum, nil
}
