package resource

import (
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

func addTestFunction(t *testing.T, reg *Registry) pdfcore.FunctionID {
	t.Helper()
	id, err := reg.AddFunction(Exponential{XMin: 0, XMax: 1, C0: []float64{0, 0, 0}, C1: []float64{1, 1, 1}, N: 1})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestAddShadingResolves(t *testing.T) {
	reg, _ := newTestRegistry(t)
	fn := addTestFunction(t, reg)
	id, err := reg.AddShading(Shading{
		Kind:       AxialShading,
		ColorSpace: "DeviceRGB",
		Function:   fn,
		Coords:     []float64{0, 0, 1, 1},
		Extend:     [2]bool{true, true},
		Domain:     [2]float64{0, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reg.ShadingObjectNumber(id); err != nil {
		t.Fatal(err)
	}
}

func TestAddShadingRejectsUnknownFunction(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.AddShading(Shading{Kind: RadialShading, Function: pdfcore.FunctionID(99)})
	if err == nil {
		t.Fatal("AddShading() with unknown function id: want error, got nil")
	}
}

func TestShadingObjectNumberUnknownID(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.ShadingObjectNumber(pdfcore.ShadingID(1)); err == nil {
		t.Fatal("ShadingObjectNumber(unknown): want error, got nil")
	}
}

func TestAddShadingPatternResolves(t *testing.T) {
	reg, _ := newTestRegistry(t)
	fn := addTestFunction(t, reg)
	shID, err := reg.AddShading(Shading{Kind: AxialShading, ColorSpace: "DeviceRGB", Function: fn, Coords: []float64{0, 0, 1, 1}, Domain: [2]float64{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	pid, err := reg.AddShadingPattern(ShadingPattern{Shading: shID, Matrix: [6]float64{1, 0, 0, 1, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reg.PatternObjectNumber(pid); err != nil {
		t.Fatal(err)
	}
}

func TestAddShadingPatternRejectsUnknownShading(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.AddShadingPattern(ShadingPattern{Shading: pdfcore.ShadingID(7)})
	if err == nil {
		t.Fatal("AddShadingPattern() with unknown shading id: want error, got nil")
	}
}
