package color

import pdfcore "github.com/Conan-Kudo/capypdf"

// LabColorSpace describes a /Lab color space, embedded with the
// white point and component ranges the profile declares.
type LabColorSpace struct {
	ID         pdfcore.LabSpaceID
	WhitePoint [3]float64 // X, Y, Z
	Range      [4]float64 // amin, amax, bmin, bmax
}

// DefaultLabColorSpace uses the D50 white point and a typical
// [-100,100]x[-100,100] a*/b* range.
func DefaultLabColorSpace(id pdfcore.LabSpaceID) LabColorSpace {
	return LabColorSpace{
		ID:         id,
		WhitePoint: [3]float64{0.9642, 1.0, 0.8249},
		Range:      [4]float64{-100, 100, -100, 100},
	}
}

// Array renders "[/Lab << /WhitePoint [...] /Range [...] >>]".
func (s LabColorSpace) Array() pdfcore.Array {
	dict := pdfcore.Dict{
		"WhitePoint": pdfcore.Array{pdfcore.Real(s.WhitePoint[0]), pdfcore.Real(s.WhitePoint[1]), pdfcore.Real(s.WhitePoint[2])},
		"Range":      pdfcore.Array{pdfcore.Real(s.Range[0]), pdfcore.Real(s.Range[1]), pdfcore.Real(s.Range[2]), pdfcore.Real(s.Range[3])},
	}
	return pdfcore.Array{pdfcore.Name("Lab"), dict}
}
