package resource

import (
	"math"
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

func TestExponentialApplyEndpoints(t *testing.T) {
	f := Exponential{XMin: 0, XMax: 1, C0: []float64{0, 0, 0}, C1: []float64{1, 1, 1}, N: 1}
	at0 := f.Apply(0)
	at1 := f.Apply(1)
	for i := range at0 {
		if at0[i] != 0 {
			t.Errorf("Apply(0)[%d] = %v, want 0", i, at0[i])
		}
		if at1[i] != 1 {
			t.Errorf("Apply(1)[%d] = %v, want 1", i, at1[i])
		}
	}
}

func TestExponentialApplyClampsDomain(t *testing.T) {
	f := Exponential{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1}
	below := f.Apply(-5)
	above := f.Apply(5)
	if below[0] != 0 {
		t.Errorf("Apply(-5)[0] = %v, want 0 (clamped)", below[0])
	}
	if above[0] != 1 {
		t.Errorf("Apply(5)[0] = %v, want 1 (clamped)", above[0])
	}
}

func TestStitchingAppliesCorrectSegment(t *testing.T) {
	seg0 := Exponential{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1}
	seg1 := Exponential{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{2}, N: 1}
	st := Stitching{
		XMin: 0, XMax: 1,
		Functions: []Function{seg0, seg1},
		Bounds:    []float64{0.5},
		Encode:    []float64{0, 1, 0, 1},
	}
	lo := st.Apply(0.25)
	hi := st.Apply(0.75)
	if lo[0] < 0 || lo[0] > 1 {
		t.Errorf("Apply(0.25) = %v, want within first segment's range", lo)
	}
	if hi[0] < 1 || hi[0] > 2 {
		t.Errorf("Apply(0.75) = %v, want within second segment's range", hi)
	}
}

func TestStitchingDictNestsSubfunctions(t *testing.T) {
	seg := Exponential{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1}
	st := Stitching{XMin: 0, XMax: 1, Functions: []Function{seg, seg}, Bounds: []float64{0.5}, Encode: []float64{0, 1, 0, 1}}
	d := st.Dict()
	if d["FunctionType"] != pdfcore.Integer(3) {
		t.Errorf("FunctionType = %v, want 3", d["FunctionType"])
	}
	fns, ok := d["Functions"].(pdfcore.Array)
	if !ok || len(fns) != 2 {
		t.Fatalf("Functions = %v, want array of 2", d["Functions"])
	}
}

func TestAddFunctionAssignsDistinctIDs(t *testing.T) {
	reg, _ := newTestRegistry(t)
	fn := Exponential{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1}
	id1, err := reg.AddFunction(fn)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := reg.AddFunction(fn)
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Errorf("AddFunction() returned duplicate id %d", id1)
	}
}

func TestExponentialApplyMidpointGamma(t *testing.T) {
	f := Exponential{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 2}
	got := f.Apply(0.5)[0]
	want := math.Pow(0.5, 2)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Apply(0.5) = %v, want %v", got, want)
	}
}
