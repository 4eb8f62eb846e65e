package content

import (
	"bytes"
	"fmt"
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/color"
	"github.com/Conan-Kudo/capypdf/resource"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	w, err := pdfcore.NewWriter(&bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	reg := resource.NewRegistry(w, nil, false)
	conv := color.NewConverter(nil, nil, nil)
	return NewBuilder(reg, conv, color.OutputRGB)
}

func TestSaveRestoreBalances(t *testing.T) {
	b := newTestBuilder(t)
	b.Save()
	b.Save()
	b.Restore()
	b.Restore()
	if _, err := b.Finalize(); err != nil {
		t.Fatalf("Finalize() after balanced q/Q: %v", err)
	}
}

func TestRestoreWithoutSaveFails(t *testing.T) {
	b := newTestBuilder(t)
	b.Restore()
	if b.Err() == nil {
		t.Fatal("Restore() without a matching Save(): want error, got nil")
	}
}

func TestFinalizeRejectsUnbalancedSave(t *testing.T) {
	b := newTestBuilder(t)
	b.Save()
	if _, err := b.Finalize(); err == nil {
		t.Fatal("Finalize() with an open q: want error, got nil")
	}
}

func TestFinalizeRejectsUnclosedTextObject(t *testing.T) {
	b := newTestBuilder(t)
	b.BeginText()
	if _, err := b.Finalize(); err == nil {
		t.Fatal("Finalize() with an open BT: want error, got nil")
	}
}

func TestDoubleFinalizeFails(t *testing.T) {
	b := newTestBuilder(t)
	if _, err := b.Finalize(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Finalize(); err == nil {
		t.Fatal("second Finalize(): want error, got nil")
	}
}

func TestScopedAlwaysRestoresOnPanic(t *testing.T) {
	b := newTestBuilder(t)
	func() {
		defer func() { recover() }()
		b.Scoped(func() {
			panic("boom")
		})
	}()
	if _, err := b.Finalize(); err != nil {
		t.Fatalf("Finalize() after a panicking Scoped(): %v", err)
	}
}

func TestOperatorInvalidInCurrentStateSetsErrAndNoOps(t *testing.T) {
	b := newTestBuilder(t)
	b.LineTo(1, 1) // "l" is only valid inside a path, not at objPage
	if b.Err() == nil {
		t.Fatal("LineTo() outside a path: want error, got nil")
	}
	before := b.buf.String()
	b.MoveTo(2, 2)
	if b.buf.String() != before {
		t.Error("operator after the first error was not a no-op")
	}
}

func TestUsedResourceDictMatchesExactlyWhatWasDrawn(t *testing.T) {
	w, err := pdfcore.NewWriter(&bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	reg := resource.NewRegistry(w, nil, false)
	conv := color.NewConverter(nil, nil, nil)

	imgID, err := reg.LoadImage(resource.DecodedImage{
		Width: 1, Height: 1, PixelDepth: 8, ColorSpace: resource.ImageDeviceRGB, Pixels: []byte{255, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	ocgID, err := reg.AddOptionalContentGroup("Layer", true)
	if err != nil {
		t.Fatal(err)
	}

	b := NewBuilder(reg, conv, color.OutputRGB)
	b.DrawImage(imgID)
	b.BeginOptionalContent(ocgID)
	b.EndMarkedContent()
	gs := resource.GraphicsState{LineWidth: f64p(1)}
	b.SetGraphicsStateResource("GS1", gs)

	art, err := b.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	dict, err := art.ResourceDict(reg)
	if err != nil {
		t.Fatal(err)
	}

	xobj, ok := dict["XObject"].(pdfcore.Dict)
	if !ok {
		t.Fatal("ResourceDict() has no /XObject entry despite DrawImage")
	}
	imgNum, err := reg.ImageObjectNumber(imgID)
	if err != nil {
		t.Fatal(err)
	}
	wantKey := pdfcore.Name(fmt.Sprintf("Image%d", imgNum))
	if _, ok := xobj[wantKey]; !ok {
		t.Errorf("XObject dict missing key %q; have %v", wantKey, xobj)
	}
	if len(xobj) != 1 {
		t.Errorf("XObject dict has %d keys, want exactly 1 (used resources only): %v", len(xobj), xobj)
	}

	props, ok := dict["Properties"].(pdfcore.Dict)
	if !ok || len(props) != 1 {
		t.Errorf("Properties dict = %v, want exactly one OCG entry", dict["Properties"])
	}

	gstates, ok := dict["ExtGState"].(pdfcore.Dict)
	if !ok || len(gstates) != 1 {
		t.Errorf("ExtGState dict = %v, want exactly one entry", dict["ExtGState"])
	}
	if _, ok := gstates["GS1"]; !ok {
		t.Errorf("ExtGState dict missing key GS1: %v", gstates)
	}

	// No Font or ColorSpace keys should appear: nothing used them.
	if _, ok := dict["Font"]; ok {
		t.Error("ResourceDict() set /Font despite no font ever being used")
	}
	if _, ok := dict["ColorSpace"]; ok {
		t.Error("ResourceDict() set /ColorSpace despite no named color space ever being used")
	}
}

func f64p(v float64) *float64 { return &v }
