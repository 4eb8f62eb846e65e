package content

import (
	"fmt"
	"strings"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/font"
)

// This file implements the text-object operators (tables 103-107 of
// ISO 32000-2) and the three text-rendering entry points of spec §4.3.

// BeginText starts a text object ("BT").
func (b *Builder) BeginText() {
	if !b.isValid("BT", objPage) {
		return
	}
	b.current = objText
	b.inText = true
	b.curSubsetSet = false
	b.writeLine("BT")
}

// EndText ends the current text object ("ET").
func (b *Builder) EndText() {
	if !b.isValid("ET", objText) {
		return
	}
	b.closeTJ()
	b.current = objPage
	b.inText = false
	b.writeLine("ET")
}

// SetCharSpacing sets additional character spacing ("Tc").
func (b *Builder) SetCharSpacing(v float64) {
	if !b.isValid("Tc", objPage|objText) {
		return
	}
	b.writeLine(b.num(v), "Tc")
}

// SetWordSpacing sets additional word spacing ("Tw").
func (b *Builder) SetWordSpacing(v float64) {
	if !b.isValid("Tw", objPage|objText) {
		return
	}
	b.writeLine(b.num(v), "Tw")
}

// SetTextRenderMode sets the text rendering mode ("Tr").
func (b *Builder) SetTextRenderMode(mode int) {
	if !b.isValid("Tr", objPage|objText) {
		return
	}
	b.writeLine(fmt.Sprint(mode), "Tr")
}

// MoveText offsets the text line start position by (tx, ty) ("Td").
func (b *Builder) MoveText(tx, ty float64) {
	if !b.isValid("Td", objText) {
		return
	}
	b.writeLine(b.num(tx), b.num(ty), "Td")
}

// setWholeFont selects a whole (simple, non-subsetted) font by id and
// size, emitting "/Font<N> size Tf".
func (b *Builder) setWholeFont(fontObjNum int, size float64) {
	b.used.wholeFonts[fontObjNum] = true
	b.writeLine(fmt.Sprintf("/Font%d", fontObjNum), b.num(size), "Tf")
}

// ShowASCIIText implements render_ascii_text_builtin: input must be
// 7-bit ASCII; bytes >= 0x80 are replaced with a space. Emits one "BT
// /Font<N> size Tf x y Td (text) Tj ET" block.
func (b *Builder) ShowASCIIText(fontObjNum int, size, x, y float64, text string) {
	if !b.isValid("render_ascii_text_builtin", objPage) {
		return
	}
	clean := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 0x80 {
			c = ' '
		}
		clean[i] = c
	}
	b.writeLine("BT")
	b.setWholeFont(fontObjNum, size)
	b.writeLine(b.num(x), b.num(y), "Td")
	b.writeLine(escapeLiteral(clean), "Tj")
	b.writeLine("ET")
}

// ShowRawGlyph implements render_raw_glyph: emits a single glyph index
// as an octal-escaped literal string, for debugging and custom layout
// paths that bypass the subset manager.
func (b *Builder) ShowRawGlyph(fontObjNum int, size, x, y float64, glyphByte byte) {
	if !b.isValid("render_raw_glyph", objPage) {
		return
	}
	b.writeLine("BT")
	b.setWholeFont(fontObjNum, size)
	b.writeLine(b.num(x), b.num(y), "Td")
	b.writeLine(fmt.Sprintf(`(\%03o)`, glyphByte), "Tj")
	b.writeLine("ET")
}

func escapeLiteral(data []byte) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, c := range data {
		switch c {
		case '(', ')', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

const hexDigits = "0123456789ABCDEF"

// openTJ opens a "[ <" array/run if none is open yet.
func (b *Builder) openTJ() {
	if !b.tjOpen {
		b.buf.WriteString("[ ")
		b.tjOpen = true
	}
	if !b.hexOpen {
		b.buf.WriteByte('<')
		b.hexOpen = true
	}
}

// appendGlyph writes one glyph's hex byte into the currently open run.
func (b *Builder) appendGlyph(code byte) {
	b.openTJ()
	b.buf.WriteByte(hexDigits[code>>4])
	b.buf.WriteByte(hexDigits[code&0xf])
}

// insertKerning closes the current hex run, writes a numeric
// adjustment, and leaves the run closed so the next glyph reopens a
// fresh "<" — the "[ <…> ] TJ" splitting rule of spec §4.3 step d.
// The font-unit kerning value is written through unchanged: a TJ
// adjustment moves the next glyph left by that many thousandths of
// text space (ISO 32000-2 §9.4.3), the same direction a negative
// kerning pair already tightens in font units.
func (b *Builder) insertKerning(fontUnits int16) {
	if fontUnits == 0 {
		return
	}
	b.openTJ()
	b.buf.WriteByte('>')
	b.hexOpen = false
	b.buf.WriteByte(' ')
	b.buf.WriteString(fmt.Sprint(int(fontUnits)))
	b.buf.WriteByte(' ')
}

// closeTJ closes an in-progress "[ <...> ] TJ" array, if one is open.
func (b *Builder) closeTJ() {
	if !b.tjOpen {
		return
	}
	if b.hexOpen {
		b.buf.WriteByte('>')
		b.hexOpen = false
	}
	b.buf.WriteString(" ] TJ\n")
	b.tjOpen = false
}

// ShowUTF8Text implements render_utf8_text: decodes s as UTF-8, asks
// the font's subset manager for a (subset, local code) pair per
// codepoint, switches the selected font whenever the subset changes,
// and interleaves pairwise kerning values inside the TJ array per
// spec §4.3 step d.
func (b *Builder) ShowUTF8Text(fontID pdfcore.FontID, size, x, y float64, s string) error {
	if !b.isValid("render_utf8_text", objPage|objText) {
		return b.err
	}
	fm, err := b.reg.FontManager(fontID)
	if err != nil {
		b.fail(err)
		return err
	}

	openedHere := false
	if !b.inText {
		b.writeLine("BT")
		b.inText = true
		b.current = objText
		openedHere = true
		b.writeLine(b.num(x), b.num(y), "Td")
	}

	var prevGID font.GlyphID
	havePrev := false

	for _, r := range s {
		subsetIdx, code, ok := fm.Use(r)
		if !ok {
			havePrev = false
			continue
		}
		id := pdfcore.FontSubsetID{Font: fontID, Index: subsetIdx}
		b.used.fontSubsets[id] = true

		if !b.curSubsetSet || b.curSubset != id {
			b.closeTJ()
			b.writeLine(fmt.Sprintf("/SFont%d-%d", int(fontID), subsetIdx), b.num(size), "Tf")
			b.curSubset = id
			b.curSubsetSet = true
			havePrev = false
		}

		gid, _ := fm.Font().GlyphForRune(r)
		if havePrev {
			b.insertKerning(fm.Font().Kerning(prevGID, gid))
		}
		b.appendGlyph(code)
		prevGID = gid
		havePrev = true
	}

	b.closeTJ()
	if openedHere {
		b.writeLine("ET")
		b.inText = false
		b.current = objPage
	}
	return b.err
}
