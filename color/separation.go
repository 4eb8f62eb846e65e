package color

import pdfcore "github.com/Conan-Kudo/capypdf"

// SeparationSpace describes a named single-ink color space with a
// fallback conversion to DeviceCMYK, backed by a PDF Function Type 2
// tint transform from [0] to the fallback CMYK (spec §4.5).
type SeparationSpace struct {
	ID           pdfcore.SeparationID
	Name         string
	FallbackCMYK DeviceCMYK
	TintFunction pdfcore.FunctionID
}

// Array renders "[/Separation /<name> /DeviceCMYK <fn 0 R>]".
func (s SeparationSpace) Array(fnRef int) pdfcore.Array {
	return pdfcore.Array{
		pdfcore.Name("Separation"),
		pdfcore.Name(s.Name),
		pdfcore.Name("DeviceCMYK"),
		pdfcore.Ref(fnRef),
	}
}

// TintFunctionDict renders the PDF Function Type 2 dictionary that
// maps tint 0 to no ink (all four CMYK components zero) and tint 1 to
// the fallback CMYK, for embedding by the resource registry.
func (s SeparationSpace) TintFunctionDict() pdfcore.Dict {
	return pdfcore.Dict{
		"FunctionType": pdfcore.Integer(2),
		"Domain":       pdfcore.Array{pdfcore.Real(0), pdfcore.Real(1)},
		"C0":           pdfcore.Array{pdfcore.Real(0), pdfcore.Real(0), pdfcore.Real(0), pdfcore.Real(0)},
		"C1": pdfcore.Array{
			pdfcore.Real(s.FallbackCMYK.C.Float()),
			pdfcore.Real(s.FallbackCMYK.M.Float()),
			pdfcore.Real(s.FallbackCMYK.Y.Float()),
			pdfcore.Real(s.FallbackCMYK.K.Float()),
		},
		"N": pdfcore.Integer(1),
	}
}
