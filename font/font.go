// Package font loads TrueType/OpenType fonts and manages the lazy,
// ≤255-glyph subsetting that the document assembler needs before it
// can emit composite (Type0/CIDFontType2) font dictionaries.
package font

import (
	"bytes"

	"github.com/pkg/errors"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// GlyphID is a glyph index into the original, unsubsetted font.
type GlyphID = glyph.ID

// Font is a loaded sfnt font together with the pairwise kerning
// adjustments registered for it. Its subsets are tracked separately,
// by a Manager (subset.go).
type Font struct {
	Data       []byte
	Sfnt       *sfnt.Font
	PostScript string
	UnitsPerEm uint16
	Ascent     int16
	Descent    int16 // negative, funit scale

	kerning map[[2]GlyphID]int16
}

// Load parses a TrueType/OpenType font from its raw file bytes.
func Load(data []byte) (*Font, error) {
	sf, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "parse font file")
	}
	f := &Font{
		Data:       data,
		Sfnt:       sf,
		PostScript: sf.PostScriptName(),
		UnitsPerEm: sf.UnitsPerEm,
	}
	if sf.Ascent != 0 || sf.Descent != 0 {
		f.Ascent = int16(sf.Ascent)
		f.Descent = int16(sf.Descent)
	}
	return f, nil
}

// GlyphForRune looks up the glyph index for a Unicode code point,
// returning (0, false) for .notdef / unmapped runes.
func (f *Font) GlyphForRune(r rune) (GlyphID, bool) {
	cm, err := f.Sfnt.CMapTable.GetBest()
	if err != nil || cm == nil {
		return 0, false
	}
	gid := cm.Lookup(r)
	if gid == 0 {
		return 0, false
	}
	return gid, true
}

// AdvanceWidth returns the glyph's advance width in font design units
// (scale of UnitsPerEm).
func (f *Font) AdvanceWidth(gid GlyphID) int16 {
	return int16(f.Sfnt.GlyphWidth(gid))
}

// NumGlyphs reports how many glyphs the original, unsubsetted font
// contains, used as the tag-mixing seed in GetSubsetTag.
func (f *Font) NumGlyphs() int {
	return f.Sfnt.NumGlyphs()
}

// SetKerningPair records a pairwise kerning adjustment, in font design
// units, to apply between two glyphs when they appear adjacently in a
// run. The source format's kerning data (a "kern" table or an
// externally shaped pair list) is loaded through this method rather
// than parsed here, since GPOS-based kerning is not available through
// the pairwise interface this module exposes.
func (f *Font) SetKerningPair(left, right GlyphID, value int16) {
	if f.kerning == nil {
		f.kerning = make(map[[2]GlyphID]int16)
	}
	f.kerning[[2]GlyphID{left, right}] = value
}

// Kerning returns the pairwise kerning adjustment between two adjacent
// glyphs, or 0 if none was registered.
func (f *Font) Kerning(left, right GlyphID) int16 {
	return f.kerning[[2]GlyphID{left, right}]
}
