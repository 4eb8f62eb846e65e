// Package capypdf assembles PDF 1.7 files from drawing commands.
//
// The package is a synthesizer, not a parser: it never reads an
// existing PDF file, and it writes objects to the output in a single
// forward pass. The three collaborating subsystems are:
//
//   - this package, which owns the indirect-object table, the
//     cross-reference table, the page tree and the trailer, and is
//     the only code that writes bytes to the output file;
//   - the content package, which records content-stream operators for
//     one page or form XObject and tracks the resources it uses;
//   - the color, resource and font packages, which convert colors,
//     register images/fonts/separations/graphics-states, and assign
//     glyph subsets.
//
// See the document package for the high-level API that ties these
// together.
package capypdf
