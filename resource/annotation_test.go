package resource

import (
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

func TestAnnotationDictLink(t *testing.T) {
	a := AnnotationDict{Kind: AnnotationLink, Rect: pdfcore.Rectangle{URx: 10, URy: 20}, DestPage: 5}
	d := a.Dict()
	if d["Subtype"] != pdfcore.Name("Link") {
		t.Errorf("Subtype = %v, want Link", d["Subtype"])
	}
	dest, ok := d["Dest"].(pdfcore.Array)
	if !ok || dest[0] != pdfcore.Ref(5) {
		t.Errorf("Dest = %v, want [5 0 R /Fit]", d["Dest"])
	}
	if _, ok := d["Contents"]; ok {
		t.Error("Link annotation should not set /Contents")
	}
}

func TestAnnotationDictText(t *testing.T) {
	a := AnnotationDict{Kind: AnnotationText, Contents: "note", Open: true}
	d := a.Dict()
	if d["Subtype"] != pdfcore.Name("Text") {
		t.Errorf("Subtype = %v, want Text", d["Subtype"])
	}
	if got, ok := d["Contents"].(pdfcore.String); !ok || string(got) != "note" {
		t.Errorf("Contents = %v, want note", d["Contents"])
	}
	if d["Open"] != pdfcore.Bool(true) {
		t.Errorf("Open = %v, want true", d["Open"])
	}
}

func TestAddAnnotationResolves(t *testing.T) {
	reg, _ := newTestRegistry(t)
	id, err := reg.AddAnnotation(AnnotationDict{Kind: AnnotationText, Contents: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reg.AnnotationObjectNumber(id); err != nil {
		t.Fatal(err)
	}
}

func TestAnnotationObjectNumberUnknownID(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.AnnotationObjectNumber(pdfcore.AnnotationID(1)); err == nil {
		t.Fatal("AnnotationObjectNumber(unknown): want error, got nil")
	}
}
