// Package resource implements the image, font, color-space,
// graphics-state, function and shading tables the document assembler
// and content builder consult while a page is being built.
//
// Grounded on the teacher's function/type2.go, function/type3.go and
// graphics/color/shading1.go, trimmed to the function and shading
// types a drawing API actually needs to construct (exponential and
// stitching functions; axial and radial shadings) rather than the
// full PDF function/shading zoo the teacher supports for reading.
package resource

import (
	"fmt"
	"math"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

// Function is a PDF function object the resource registry can embed.
type Function interface {
	// Dict renders the function dictionary. A Type 3 (Stitching)
	// function inlines its sub-functions' dictionaries in /Functions,
	// so Registry.AddFunction writes a single object for it.
	Dict() pdfcore.Dict
	// Apply evaluates the function, used by callers who want to
	// preview a tint/shading value without round-tripping through PDF.
	Apply(x float64) []float64
}

// Exponential is a PDF Function Type 2 object: y = C0 + x^N*(C1-C0).
type Exponential struct {
	XMin, XMax float64
	C0, C1     []float64
	N          float64
}

func (f Exponential) Apply(x float64) []float64 {
	if x < f.XMin {
		x = f.XMin
	}
	if x > f.XMax {
		x = f.XMax
	}
	out := make([]float64, len(f.C0))
	xn := math.Pow(x, f.N)
	for i := range out {
		out[i] = f.C0[i] + xn*(f.C1[i]-f.C0[i])
	}
	return out
}

func (f Exponential) Dict() pdfcore.Dict {
	return pdfcore.Dict{
		"FunctionType": pdfcore.Integer(2),
		"Domain":       floatsArray(f.XMin, f.XMax),
		"C0":           floatSliceArray(f.C0),
		"C1":           floatSliceArray(f.C1),
		"N":            pdfcore.Real(f.N),
	}
}

// Stitching is a PDF Function Type 3 object that concatenates several
// sub-functions over adjoining subdomains, used to build multi-stop
// axial/radial shadings from a sequence of Exponential segments.
type Stitching struct {
	XMin, XMax float64
	Functions  []Function
	Bounds     []float64 // len(Functions)-1 interior boundaries
	Encode     []float64 // 2*len(Functions) values
}

func (f Stitching) Apply(x float64) []float64 {
	idx := 0
	for idx < len(f.Bounds) && x >= f.Bounds[idx] {
		idx++
	}
	lo := f.XMin
	if idx > 0 {
		lo = f.Bounds[idx-1]
	}
	hi := f.XMax
	if idx < len(f.Bounds) {
		hi = f.Bounds[idx]
	}
	e0, e1 := f.Encode[2*idx], f.Encode[2*idx+1]
	var t float64
	if hi != lo {
		t = e0 + (x-lo)*(e1-e0)/(hi-lo)
	} else {
		t = e0
	}
	return f.Functions[idx].Apply(t)
}

func (f Stitching) Dict() pdfcore.Dict {
	fns := make(pdfcore.Array, len(f.Functions))
	for i, sub := range f.Functions {
		fns[i] = sub.Dict()
	}
	return pdfcore.Dict{
		"FunctionType": pdfcore.Integer(3),
		"Domain":       floatsArray(f.XMin, f.XMax),
		"Functions":    fns,
		"Bounds":       floatSliceArray(f.Bounds),
		"Encode":       floatSliceArray(f.Encode),
	}
}

func floatsArray(vs ...float64) pdfcore.Array {
	return floatSliceArray(vs)
}

func floatSliceArray(vs []float64) pdfcore.Array {
	a := make(pdfcore.Array, len(vs))
	for i, v := range vs {
		a[i] = pdfcore.Real(v)
	}
	return a
}

// AddFunction embeds fn as an indirect object and returns a handle
// the caller can later reference from a separation or shading.
func (r *Registry) AddFunction(fn Function) (pdfcore.FunctionID, error) {
	num, err := r.w.WriteIndirect(fn.Dict())
	if err != nil {
		return 0, err
	}
	r.functionObjNum = append(r.functionObjNum, num)
	r.functions = append(r.functions, fn)
	id := pdfcore.FunctionID(len(r.functionObjNum))
	return id, nil
}

func (r *Registry) functionRef(id pdfcore.FunctionID) (int, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.functionObjNum) {
		return 0, pdfcore.NewError(pdfcore.ErrBadID, fmt.Sprintf("function id %d", id))
	}
	return r.functionObjNum[i], nil
}
