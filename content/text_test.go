package content

import (
	"strings"
	"testing"
)

func TestShowASCIITextReplacesHighBytes(t *testing.T) {
	b := newTestBuilder(t)
	b.ShowASCIIText(5, 12, 0, 0, "A\xffB")
	out := b.buf.String()
	if !strings.Contains(out, "(A B)") {
		t.Errorf("got %q, want high byte replaced with a space", out)
	}
	if !strings.Contains(out, "/Font5 12 Tf\n") {
		t.Errorf("got %q, want a Tf operator selecting Font5 at size 12", out)
	}
}

func TestShowASCIITextEscapesParensAndBackslash(t *testing.T) {
	b := newTestBuilder(t)
	b.ShowASCIIText(1, 10, 0, 0, `a(b)c\d`)
	out := b.buf.String()
	if !strings.Contains(out, `(a\(b\)c\\d)`) {
		t.Errorf("got %q, want literal-string escaping", out)
	}
}

func TestShowRawGlyphEmitsOctalEscape(t *testing.T) {
	b := newTestBuilder(t)
	b.ShowRawGlyph(1, 10, 0, 0, 0x41)
	if !strings.Contains(b.buf.String(), `(\101)`) {
		t.Errorf("got %q, want octal escape for 0x41", b.buf.String())
	}
}

// insertKerning writes the font-unit value through unchanged: a
// registered kerning pair of -50 font units must produce "-50" inside
// the TJ array, not "50".
func TestInsertKerningPreservesSign(t *testing.T) {
	b := newTestBuilder(t)
	b.appendGlyph(0x41)
	b.insertKerning(-50)
	b.appendGlyph(0x66)
	b.closeTJ()
	out := b.buf.String()
	if !strings.Contains(out, "<41> -50 <66>") {
		t.Errorf("got %q, want \"<41> -50 <66>\"", out)
	}
}

func TestInsertKerningZeroIsNoOp(t *testing.T) {
	b := newTestBuilder(t)
	b.appendGlyph(0x41)
	b.insertKerning(0)
	b.appendGlyph(0x42)
	b.closeTJ()
	out := b.buf.String()
	if strings.Contains(out, "0 <42>") {
		t.Errorf("got %q, zero kerning should not split the hex run", out)
	}
	if !strings.Contains(out, "<4142>") {
		t.Errorf("got %q, want the two glyphs to stay in one hex run", out)
	}
}

func TestCloseTJWithNothingOpenIsNoOp(t *testing.T) {
	b := newTestBuilder(t)
	b.closeTJ()
	if b.buf.Len() != 0 {
		t.Errorf("closeTJ() with nothing open wrote %q", b.buf.String())
	}
}

func TestOpenTJThenCloseProducesWellFormedArray(t *testing.T) {
	b := newTestBuilder(t)
	b.appendGlyph(0x10)
	b.closeTJ()
	if b.buf.String() != "[ <10> ] TJ\n" {
		t.Errorf("got %q, want a well-formed TJ array", b.buf.String())
	}
}
