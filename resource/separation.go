package resource

import (
	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/color"
)

// CreateSeparation registers a named separation (spot color) with a
// fallback conversion to DeviceCMYK. The tint function and the
// separation color-space array are both written as indirect objects
// immediately, per spec §4.5.
func (r *Registry) CreateSeparation(name string, fallback color.DeviceCMYK) (pdfcore.SeparationID, error) {
	space := color.SeparationSpace{Name: name, FallbackCMYK: fallback}

	fnNum, err := r.w.WriteIndirect(space.TintFunctionDict())
	if err != nil {
		return 0, err
	}

	csNum, err := r.w.WriteIndirect(space.Array(fnNum))
	if err != nil {
		return 0, err
	}

	id := pdfcore.SeparationID(len(r.separations) + 1)
	space.ID = id
	r.separations = append(r.separations, separationEntry{objNum: csNum, space: space})
	return id, nil
}

// SeparationObjectNumber resolves a SeparationID to the object number
// of its color-space array.
func (r *Registry) SeparationObjectNumber(id pdfcore.SeparationID) (int, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.separations) {
		return 0, badID("separation", int(id))
	}
	return r.separations[i].objNum, nil
}

// AllSeparationObjectNumber resolves the /All pseudo-separation to
// the object number of the first separation created, per the
// open-question note in DESIGN.md: the source's /All colorspace
// implicitly assumes a separation exists at index 0, and this
// registry makes that coupling explicit by requiring at least one
// separation to have been created before /All is used.
func (r *Registry) AllSeparationObjectNumber() (int, error) {
	if len(r.separations) == 0 {
		return 0, pdfcore.NewError(pdfcore.ErrBadID, "/All separation used before any separation was created")
	}
	return r.separations[0].objNum, nil
}
