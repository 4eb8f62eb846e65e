package resource

import (
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

func f64(v float64) *float64 { return &v }
func bl(v bool) *bool        { return &v }

func TestGraphicsStateDictOnlySetFields(t *testing.T) {
	gs := GraphicsState{
		LineWidth:   f64(2.5),
		FillOverprint: bl(true),
	}
	d := gs.Dict()
	if d["Type"] != pdfcore.Name("ExtGState") {
		t.Errorf("Type = %v, want ExtGState", d["Type"])
	}
	if d["LW"] != pdfcore.Real(2.5) {
		t.Errorf("LW = %v, want 2.5", d["LW"])
	}
	if d["op"] != pdfcore.Bool(true) {
		t.Errorf("op = %v, want true", d["op"])
	}
	for _, key := range []pdfcore.Name{"LC", "LJ", "ML", "RI", "OP", "OPM", "FL", "SM", "SA", "BM", "CA", "ca", "AIS", "TK"} {
		if _, ok := d[key]; ok {
			t.Errorf("Dict() set unset field %q", key)
		}
	}
}

func TestAddGraphicsStateNeverDedups(t *testing.T) {
	reg, _ := newTestRegistry(t)
	gs := GraphicsState{LineWidth: f64(1)}
	id1 := reg.AddGraphicsState(gs)
	id2 := reg.AddGraphicsState(gs)
	if id1 == id2 {
		t.Errorf("AddGraphicsState() returned the same id %d twice for identical states", id1)
	}
}

func TestGraphicsStateByIDUnknown(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.GraphicsStateByID(pdfcore.GraphicsStateID(5)); err == nil {
		t.Fatal("GraphicsStateByID(unknown): want error, got nil")
	}
}
