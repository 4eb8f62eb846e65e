package resource

import (
	"bytes"
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/font"
)

func TestCidToGIDMapBytesBigEndianPerGlyph(t *testing.T) {
	glyphs := []font.GlyphID{0x0102, 0x0304}
	got := cidToGIDMapBytes(glyphs)
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(got, want) {
		t.Errorf("cidToGIDMapBytes() = %v, want %v", got, want)
	}
}

func TestHexByteUnicodeFormat(t *testing.T) {
	got := hexByteUnicode(0x05, 'A')
	want := "<05> <0041>\n"
	if string(got) != want {
		t.Errorf("hexByteUnicode() = %q, want %q", got, want)
	}
}

func TestFontManagerUnknownID(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.FontManager(pdfcore.FontID(1)); err == nil {
		t.Fatal("FontManager(unknown): want error, got nil")
	}
}

func TestFontObjectNumberForSubsetBeforeFlush(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.FontObjectNumberForSubset(pdfcore.FontSubsetID{Font: 1, Index: 0})
	if err == nil {
		t.Fatal("FontObjectNumberForSubset() before FlushFonts: want error, got nil")
	}
}

func TestLoadFontRejectsInvalidData(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.LoadFont([]byte("not a font")); err == nil {
		t.Fatal("LoadFont(garbage): want error, got nil")
	}
}
