package resource

import (
	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/color"
)

// LoadICC embeds a caller-supplied ICC profile as an /ICCBased color
// space, immediately writing the profile stream object.
func (r *Registry) LoadICC(data []byte, channels int) (pdfcore.ICCSpaceID, error) {
	profile, err := color.DecodeProfile(data, channels)
	if err != nil {
		return 0, err
	}
	dict, payload := profile.StreamDict()
	compressed, filter, err := r.compress(payload)
	if err != nil {
		return 0, pdfcore.WrapIOError("icc deflate", err)
	}
	dict["Filter"] = filter
	num, err := r.w.WriteStream(dict, compressed)
	if err != nil {
		return 0, err
	}
	r.iccSpaces = append(r.iccSpaces, iccEntry{objNum: num, profile: profile})
	return pdfcore.ICCSpaceID(len(r.iccSpaces)), nil
}

// ICCObjectNumber resolves an ICCSpaceID to its object number.
func (r *Registry) ICCObjectNumber(id pdfcore.ICCSpaceID) (int, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.iccSpaces) {
		return 0, badID("icc color space", int(id))
	}
	return r.iccSpaces[i].objNum, nil
}

type labEntry struct {
	objNum int
	space  color.LabColorSpace
}

// AddLabSpace registers a /Lab color space, writing its indirect
// array object immediately.
func (r *Registry) AddLabSpace(space color.LabColorSpace) (pdfcore.LabSpaceID, error) {
	num, err := r.w.WriteIndirect(space.Array())
	if err != nil {
		return 0, err
	}
	r.labSpacesTbl = append(r.labSpacesTbl, labEntry{objNum: num, space: space})
	return pdfcore.LabSpaceID(len(r.labSpacesTbl)), nil
}

// LabObjectNumber resolves a LabSpaceID to its object number.
func (r *Registry) LabObjectNumber(id pdfcore.LabSpaceID) (int, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.labSpacesTbl) {
		return 0, badID("lab color space", int(id))
	}
	return r.labSpacesTbl[i].objNum, nil
}
