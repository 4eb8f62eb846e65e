package resource

import (
	"fmt"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/color"
	"github.com/Conan-Kudo/capypdf/font"
)

// Registry is the "Color, font, and image resource manager" of the
// spec: it owns the image, font, ICC/Lab color-space, separation,
// graphics-state, function, shading and pattern tables, and is
// consulted by both the content builder (to resolve a used resource
// to an object number) and the document assembler (to know what to
// flush at close time).
//
// Loaded images, ICC/Lab color spaces and separations are emitted to
// the underlying writer immediately, as the spec requires. Graphics
// states are not: their dictionaries are small enough to be inlined
// directly into the page's /ExtGState sub-dictionary at finalize
// time, so the registry only needs to remember their contents.
type Registry struct {
	w    *pdfcore.Writer
	conv *color.Converter

	// preferLZW selects /LZWDecode over /FlateDecode for image and
	// ICC-profile streams, set from document.Options.PreferLZW.
	preferLZW bool

	images []imageEntry

	fonts        []*font.Font
	fontManagers []*font.Manager
	subsetObjNum map[pdfcore.FontSubsetID]int

	iccSpaces    []iccEntry
	labSpacesTbl []labEntry

	separations []separationEntry

	gstates []GraphicsState

	functionObjNum []int
	functions      []Function

	shadings []shadingEntry
	patterns []patternEntry

	forms       []formEntry
	annotations      []AnnotationDict
	annotationObjNum []int
	ocgs             []ocgEntry
}

type iccEntry struct {
	objNum  int
	profile *color.Profile
}

type separationEntry struct {
	objNum int
	space  color.SeparationSpace
}

// NewRegistry creates a resource registry backed by w, using conv for
// any device-color re-expression the registry itself needs to perform
// (currently none; conv is kept for symmetry with the content
// builder, which does the actual per-operator conversion), and
// preferLZW to choose the stream filter image and ICC data is
// compressed with.
func NewRegistry(w *pdfcore.Writer, conv *color.Converter, preferLZW bool) *Registry {
	return &Registry{w: w, conv: conv, preferLZW: preferLZW}
}

// badID builds the bad-id error for an out-of-range lookup into one
// of the registry's tables.
func badID(kind string, id int) error {
	return pdfcore.NewError(pdfcore.ErrBadID, fmt.Sprintf("%s id %d", kind, id))
}
