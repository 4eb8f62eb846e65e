// Package document implements the document assembler: the top-level
// handle that owns the indirect-object table, the page tree, the
// catalog, the info dictionary, the cross-reference table and the
// trailer, and is the only component that writes bytes to the output
// file.
//
// Grounded on the teacher's document/page.go and writer.go, adapted
// from a read/write library's pdf.Writer + document.Page split into a
// single synthesis-only assembler, since this module never reads an
// existing file.
package document

import (
	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/color"
)

// Options configures a document at Open, following the teacher's
// pages.InheritableAttributes / font.Options pattern of a plain
// struct with documented defaults rather than a flag/env layer.
type Options struct {
	// OutputColorSpace is the device color space non-ICC/Lab/Separation
	// colors are re-expressed in before emission. Defaults to
	// color.OutputRGB.
	OutputColorSpace color.OutputSpace

	// DefaultPageBox is the /MediaBox new pages start with if the
	// caller never sets one explicitly. Defaults to US Letter
	// (0 0 612 792).
	DefaultPageBox pdfcore.Rectangle

	// Title, Author and Language populate the info dictionary and the
	// catalog's /Lang entry.
	Title, Author, Language string

	// RGBProfile, GrayProfile and CMYKProfile are optional ICC profile
	// bytes backing the color converter's device conversions. A nil
	// slice uses the library's built-in default for that channel
	// count.
	RGBProfile, GrayProfile, CMYKProfile []byte

	// PreferLZW selects /LZWDecode over /FlateDecode for image and
	// ICC-profile streams. Most callers should leave this false; it
	// exists for interoperability with consumers that can't decode
	// Flate.
	PreferLZW bool

	// TagForAccessibility, if set, emits a minimal /StructTreeRoot
	// stub in the catalog (spec §6 "options... structure tree").
	// This module has no layout engine to derive real structure from,
	// so the tree is always empty.
	TagForAccessibility bool
}

var defaultPageBox = pdfcore.Rectangle{LLx: 0, LLy: 0, URx: 612, URy: 792}

func (o Options) pageBox() pdfcore.Rectangle {
	if o.DefaultPageBox == (pdfcore.Rectangle{}) {
		return defaultPageBox
	}
	return o.DefaultPageBox
}
