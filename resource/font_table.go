package resource

import (
	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/font"
)

// LoadFont parses data as a TrueType/OpenType font and registers it
// for lazy subsetting. No PDF objects are written yet: which glyphs
// end up in which subset is only known once every page that uses this
// font has been drawn, so embedding happens in FlushFonts at
// document-close time.
func (r *Registry) LoadFont(data []byte) (pdfcore.FontID, error) {
	f, err := font.Load(data)
	if err != nil {
		return 0, pdfcore.NewError(pdfcore.ErrInvalidFont, err.Error())
	}
	r.fonts = append(r.fonts, f)
	r.fontManagers = append(r.fontManagers, font.NewManager(f))
	return pdfcore.FontID(len(r.fonts)), nil
}

// FontManager returns the subset manager backing a loaded font, used
// by the content builder to assign codepoints to subsets as text is
// drawn.
func (r *Registry) FontManager(id pdfcore.FontID) (*font.Manager, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.fontManagers) {
		return nil, badID("font", int(id))
	}
	return r.fontManagers[i], nil
}

// FlushedFont records the object numbers produced for one subset of
// one loaded font, keyed the way the content builder names its
// external resource ("/SFont<font_id>-<subset_index>"): FontID
// identifies the font, SubsetIndex the subset within it, and ObjNum is
// the subset's Type0 font dictionary.
type FlushedFont struct {
	FontID      pdfcore.FontID
	SubsetIndex int
	ObjNum      int
}

// FlushFonts embeds every subset of every loaded font as a composite
// (Type0/CIDFontType2) font dictionary, descendant CIDFont dictionary,
// FontDescriptor and ToUnicode CMap stream. Called once, after every
// page has been drawn and no further text will reference these fonts,
// and before any page's resource dictionary is resolved, so that
// FontObjectNumberForSubset has an answer by the time it's consulted.
func (r *Registry) FlushFonts() ([]FlushedFont, error) {
	if r.subsetObjNum == nil {
		r.subsetObjNum = map[pdfcore.FontSubsetID]int{}
	}
	var out []FlushedFont
	for fi, f := range r.fonts {
		mgr := r.fontManagers[fi]
		for si, s := range mgr.Subsets() {
			objNum, err := r.embedSubset(f, s)
			if err != nil {
				return nil, err
			}
			id := pdfcore.FontSubsetID{Font: pdfcore.FontID(fi + 1), Index: si}
			r.subsetObjNum[id] = objNum
			out = append(out, FlushedFont{
				FontID:      pdfcore.FontID(fi + 1),
				SubsetIndex: si,
				ObjNum:      objNum,
			})
		}
	}
	return out, nil
}

// FontObjectNumberForSubset resolves a (font, subset) pair to the
// object number of its composite font dictionary. Valid only after
// FlushFonts has run.
func (r *Registry) FontObjectNumberForSubset(id pdfcore.FontSubsetID) (int, error) {
	num, ok := r.subsetObjNum[id]
	if !ok {
		return 0, pdfcore.NewError(pdfcore.ErrBadID, "font subset not yet flushed")
	}
	return num, nil
}

func (r *Registry) embedSubset(f *font.Font, s *font.Subset) (int, error) {
	q := 1000.0 / float64(f.UnitsPerEm)

	widths := make(pdfcore.Array, 0, len(s.Glyphs))
	for _, gid := range s.Glyphs {
		w := int(float64(f.AdvanceWidth(gid)) * q)
		widths = append(widths, pdfcore.Integer(w))
	}

	fontFile, err := r.w.WriteStream(pdfcore.Dict{
		"Length1": pdfcore.Integer(len(f.Data)),
	}, f.Data)
	if err != nil {
		return 0, err
	}

	ascent := int(float64(f.Ascent) * q)
	descent := int(float64(f.Descent) * q)

	descriptor, err := r.w.WriteIndirect(pdfcore.Dict{
		"Type":        pdfcore.Name("FontDescriptor"),
		"FontName":    pdfcore.Name(s.Tag + "+" + f.PostScript),
		"Flags":       pdfcore.Integer(4),
		"FontBBox":    pdfcore.Array{pdfcore.Integer(0), pdfcore.Integer(descent), pdfcore.Integer(1000), pdfcore.Integer(ascent)},
		"ItalicAngle": pdfcore.Integer(0),
		"Ascent":      pdfcore.Integer(ascent),
		"Descent":     pdfcore.Integer(descent),
		"CapHeight":   pdfcore.Integer(ascent),
		"StemV":       pdfcore.Integer(80),
		"FontFile2":   pdfcore.Ref(fontFile),
	})
	if err != nil {
		return 0, err
	}

	cidToGIDMap, err := r.w.WriteStream(pdfcore.Dict{}, cidToGIDMapBytes(s.Glyphs))
	if err != nil {
		return 0, err
	}

	cidFont, err := r.w.WriteIndirect(pdfcore.Dict{
		"Type":           pdfcore.Name("Font"),
		"Subtype":        pdfcore.Name("CIDFontType2"),
		"BaseFont":       pdfcore.Name(s.Tag + "+" + f.PostScript),
		"CIDSystemInfo":  cidSystemInfoDict(),
		"FontDescriptor": pdfcore.Ref(descriptor),
		"DW":             pdfcore.Integer(1000),
		"W":              pdfcore.Array{pdfcore.Integer(0), widths},
		"CIDToGIDMap":    pdfcore.Ref(cidToGIDMap),
	})
	if err != nil {
		return 0, err
	}

	toUnicode, err := r.w.WriteStream(pdfcore.Dict{}, toUnicodeCMap(s))
	if err != nil {
		return 0, err
	}

	type0, err := r.w.WriteIndirect(pdfcore.Dict{
		"Type":            pdfcore.Name("Font"),
		"Subtype":         pdfcore.Name("Type0"),
		"BaseFont":        pdfcore.Name(s.Tag + "+" + f.PostScript),
		"Encoding":        pdfcore.Name("Identity-H"),
		"DescendantFonts": pdfcore.Array{pdfcore.Ref(cidFont)},
		"ToUnicode":       pdfcore.Ref(toUnicode),
	})
	if err != nil {
		return 0, err
	}
	return type0, nil
}

func cidSystemInfoDict() pdfcore.Dict {
	return pdfcore.Dict{
		"Registry":   pdfcore.String("Adobe"),
		"Ordering":   pdfcore.String("Identity"),
		"Supplement": pdfcore.Integer(0),
	}
}

// cidToGIDMapBytes builds the CIDToGIDMap stream body: a subset's
// local code is its CID (Identity-H, single byte since a subset never
// exceeds 255 members), mapped here to the glyph's original id since
// that mapping is never the identity once a font has been subsetted.
func cidToGIDMapBytes(glyphs []font.GlyphID) []byte {
	buf := make([]byte, len(glyphs)*2)
	for i, gid := range glyphs {
		buf[2*i] = byte(gid >> 8)
		buf[2*i+1] = byte(gid)
	}
	return buf
}

func toUnicodeCMap(s *font.Subset) []byte {
	var buf []byte
	buf = append(buf, "/CIDInit /ProcSet findresource begin\n"...)
	buf = append(buf, "1 begincodespacerange\n<00> <FF>\nendcodespacerange\n"...)
	buf = append(buf, "beginbfchar\n"...)
	for code := 1; code < len(s.Glyphs); code++ {
		r, ok := s.RuneForCode(byte(code))
		if !ok {
			continue
		}
		buf = append(buf, hexByteUnicode(byte(code), r)...)
	}
	buf = append(buf, "endbfchar\nend\n"...)
	return buf
}

func hexByteUnicode(code byte, r rune) []byte {
	const hexdigits = "0123456789ABCDEF"
	out := []byte{'<', hexdigits[code>>4], hexdigits[code&0xf], '>', ' ', '<'}
	u := uint32(r)
	out = append(out, hexdigits[(u>>12)&0xf], hexdigits[(u>>8)&0xf], hexdigits[(u>>4)&0xf], hexdigits[u&0xf])
	out = append(out, '>', '\n')
	return out
}
