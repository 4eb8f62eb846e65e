package resource

import (
	"bytes"
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

func newTestRegistry(t *testing.T) (*Registry, *pdfcore.Writer) {
	t.Helper()
	w, err := pdfcore.NewWriter(&bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	return NewRegistry(w, nil, false), w
}

func TestReserveFormIDBeforeResolve(t *testing.T) {
	reg, _ := newTestRegistry(t)

	bbox := pdfcore.Rectangle{URx: 100, URy: 100}
	id := reg.ReserveFormID(bbox, [6]float64{1, 0, 0, 1, 0, 0})
	if id != 1 {
		t.Fatalf("ReserveFormID() = %d, want 1", id)
	}

	if _, err := reg.FormObjectNumber(id); err == nil {
		t.Fatal("FormObjectNumber before ResolveForm: want error, got nil")
	}
}

func TestResolveFormAssignsObjectNumber(t *testing.T) {
	reg, w := newTestRegistry(t)

	bbox := pdfcore.Rectangle{URx: 50, URy: 50}
	id := reg.ReserveFormID(bbox, [6]float64{1, 0, 0, 1, 0, 0})

	// advance the writer so the resolved object number isn't 1,
	// exercising the case where a form is resolved after other
	// objects have already been written (e.g. flushed font subsets).
	if _, err := w.WriteIndirect(pdfcore.Dict{}); err != nil {
		t.Fatal(err)
	}

	if err := reg.ResolveForm(id, pdfcore.Dict{}, []byte("q Q")); err != nil {
		t.Fatal(err)
	}

	num, err := reg.FormObjectNumber(id)
	if err != nil {
		t.Fatal(err)
	}
	if num != 2 {
		t.Errorf("FormObjectNumber() = %d, want 2", num)
	}
}

func TestFormObjectNumberUnknownID(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.FormObjectNumber(pdfcore.FormXObjectID(42)); !pdfcore.IsKind(err, pdfcore.ErrBadID) {
		t.Errorf("FormObjectNumber(unknown) = %v, want ErrBadID", err)
	}
}

func TestResolveFormUnknownID(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if err := reg.ResolveForm(pdfcore.FormXObjectID(42), pdfcore.Dict{}, nil); !pdfcore.IsKind(err, pdfcore.ErrBadID) {
		t.Errorf("ResolveForm(unknown) = %v, want ErrBadID", err)
	}
}
