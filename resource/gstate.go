package resource

import pdfcore "github.com/Conan-Kudo/capypdf"

// BlendMode names a PDF blend mode (Table 136 of ISO 32000-2).
type BlendMode pdfcore.Name

const (
	BlendNormal   BlendMode = "Normal"
	BlendMultiply BlendMode = "Multiply"
	BlendScreen   BlendMode = "Screen"
	BlendDarken   BlendMode = "Darken"
	BlendLighten  BlendMode = "Lighten"
)

// RenderingIntent mirrors color.RenderingIntent as a graphics-state
// override (spec §4.4: "unless a graphics-state override is in
// effect").
type RenderingIntent pdfcore.Name

const (
	IntentRelativeColorimetric RenderingIntent = "RelativeColorimetric"
	IntentAbsoluteColorimetric RenderingIntent = "AbsoluteColorimetric"
	IntentSaturation           RenderingIntent = "Saturation"
	IntentPerceptual           RenderingIntent = "Perceptual"
)

// GraphicsState is an ExtGState dictionary. Every field is a pointer
// so that "not set" can be distinguished from the PDF default, per
// spec §3 "Graphics state dictionary".
type GraphicsState struct {
	LineWidth         *float64
	LineCap           *int
	LineJoin          *int
	MiterLimit        *float64
	RenderingIntent   *RenderingIntent
	StrokeOverprint   *bool
	FillOverprint     *bool
	OverprintMode     *int
	Flatness          *float64
	Smoothness        *float64
	StrokeAdjustment  *bool
	BlendMode         *BlendMode
	StrokeAlpha       *float64
	FillAlpha         *float64
	AlphaIsShape      *bool
	TextKnockout      *bool
}

// Dict renders the inline ExtGState dictionary, matching spec §4.2's
// "graphics states: /<name> with an inline dictionary".
func (gs GraphicsState) Dict() pdfcore.Dict {
	d := pdfcore.Dict{"Type": pdfcore.Name("ExtGState")}
	if gs.LineWidth != nil {
		d["LW"] = pdfcore.Real(*gs.LineWidth)
	}
	if gs.LineCap != nil {
		d["LC"] = pdfcore.Integer(*gs.LineCap)
	}
	if gs.LineJoin != nil {
		d["LJ"] = pdfcore.Integer(*gs.LineJoin)
	}
	if gs.MiterLimit != nil {
		d["ML"] = pdfcore.Real(*gs.MiterLimit)
	}
	if gs.RenderingIntent != nil {
		d["RI"] = pdfcore.Name(*gs.RenderingIntent)
	}
	if gs.StrokeOverprint != nil {
		d["OP"] = pdfcore.Bool(*gs.StrokeOverprint)
	}
	if gs.FillOverprint != nil {
		d["op"] = pdfcore.Bool(*gs.FillOverprint)
	}
	if gs.OverprintMode != nil {
		d["OPM"] = pdfcore.Integer(*gs.OverprintMode)
	}
	if gs.Flatness != nil {
		d["FL"] = pdfcore.Real(*gs.Flatness)
	}
	if gs.Smoothness != nil {
		d["SM"] = pdfcore.Real(*gs.Smoothness)
	}
	if gs.StrokeAdjustment != nil {
		d["SA"] = pdfcore.Bool(*gs.StrokeAdjustment)
	}
	if gs.BlendMode != nil {
		d["BM"] = pdfcore.Name(*gs.BlendMode)
	}
	if gs.StrokeAlpha != nil {
		d["CA"] = pdfcore.Real(*gs.StrokeAlpha)
	}
	if gs.FillAlpha != nil {
		d["ca"] = pdfcore.Real(*gs.FillAlpha)
	}
	if gs.AlphaIsShape != nil {
		d["AIS"] = pdfcore.Bool(*gs.AlphaIsShape)
	}
	if gs.TextKnockout != nil {
		d["TK"] = pdfcore.Bool(*gs.TextKnockout)
	}
	return d
}

// AddGraphicsState registers an ExtGState dictionary. Deduplication is
// not required by the spec, so every call returns a fresh id even for
// an identical dictionary.
func (r *Registry) AddGraphicsState(gs GraphicsState) pdfcore.GraphicsStateID {
	r.gstates = append(r.gstates, gs)
	return pdfcore.GraphicsStateID(len(r.gstates))
}

// GraphicsStateByID resolves a GraphicsStateID to its dictionary.
func (r *Registry) GraphicsStateByID(id pdfcore.GraphicsStateID) (GraphicsState, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.gstates) {
		return GraphicsState{}, badID("graphics state", int(id))
	}
	return r.gstates[i], nil
}
