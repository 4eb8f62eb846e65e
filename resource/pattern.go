package resource

import pdfcore "github.com/Conan-Kudo/capypdf"

type patternEntry struct {
	objNum int
}

// ShadingPattern wraps a Shading as a pattern color space so it can
// be selected with "/Pattern cs /P<N> scn".
type ShadingPattern struct {
	Shading pdfcore.ShadingID
	Matrix  [6]float64
}

// AddShadingPattern embeds a shading pattern (PatternType 2) as an
// indirect object.
func (r *Registry) AddShadingPattern(p ShadingPattern) (pdfcore.PatternID, error) {
	shNum, err := r.ShadingObjectNumber(p.Shading)
	if err != nil {
		return 0, err
	}

	matrix := make(pdfcore.Array, 6)
	for i, v := range p.Matrix {
		matrix[i] = pdfcore.Real(v)
	}

	dict := pdfcore.Dict{
		"Type":        pdfcore.Name("Pattern"),
		"PatternType": pdfcore.Integer(2),
		"Shading":     pdfcore.Ref(shNum),
		"Matrix":      matrix,
	}
	num, err := r.w.WriteIndirect(dict)
	if err != nil {
		return 0, err
	}
	r.patterns = append(r.patterns, patternEntry{objNum: num})
	return pdfcore.PatternID(len(r.patterns)), nil
}

// PatternObjectNumber resolves a PatternID to its object number.
func (r *Registry) PatternObjectNumber(id pdfcore.PatternID) (int, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.patterns) {
		return 0, badID("pattern", int(id))
	}
	return r.patterns[i].objNum, nil
}
