package capypdf

// This file implements the "Common types" component: opaque,
// non-interchangeable handles into the resource tables the document
// assembler and resource registry maintain. Each type wraps a
// non-negative index; the zero value is never a valid allocated id,
// so a zero-valued ID reliably signals "not set" to callers.

// ImageID identifies a loaded raster image.
type ImageID int

// FontID identifies a loaded font program.
type FontID int

// FontSubsetID pairs a font with one of its glyph subsets. Subsets
// are allocated lazily by the text-rendering pipeline (at most 255
// glyphs each).
type FontSubsetID struct {
	Font  FontID
	Index int
}

// ICCSpaceID identifies an embedded ICC-based color space.
type ICCSpaceID int

// LabSpaceID identifies an embedded CIE L*a*b* color space.
type LabSpaceID int

// SeparationID identifies a named separation (spot color) space.
type SeparationID int

// GraphicsStateID identifies an ExtGState dictionary registered with
// the document.
type GraphicsStateID int

// FunctionID identifies a PDF function object (used by separations
// and shadings).
type FunctionID int

// ShadingID identifies a shading dictionary.
type ShadingID int

// PatternID identifies a shading pattern.
type PatternID int

// FormXObjectID identifies a finalized form XObject.
type FormXObjectID int

// AnnotationID identifies an annotation attached to a page.
type AnnotationID int

// OptionalContentGroupID identifies an optional content group (layer).
type OptionalContentGroupID int

// PageID identifies a page that has been added to the document.
type PageID int

// OutlineID identifies a node in the document outline (bookmark) tree.
type OutlineID int

// valid reports whether an id looks like it was actually allocated
// (i.e. not the zero value and not negative). The registries in the
// resource package do not call it; each checks its own table bounds.
func valid(n int) bool { return n > 0 }
