package content

import (
	"math"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/resource"
)

// This file implements line parameters and the current transformation
// matrix (tables 57 and 58 of ISO 32000-2): w, J, j, cm, plus the
// ExtGState selection operator gs.

// SetLineWidth sets the stroke line width. A negative width is a
// caller error, not a clamped value, since there is no sensible
// default to substitute.
func (b *Builder) SetLineWidth(width float64) {
	if !b.isValid("w", objPage|objPath) {
		return
	}
	if width < 0 {
		b.fail(pdfcore.NewError(pdfcore.ErrNegativeLineWidth, "line width must be >= 0"))
		return
	}
	b.writeLine(b.num(width), "w")
}

// SetLineCap sets the line cap style (0 butt, 1 round, 2 square).
func (b *Builder) SetLineCap(style int) {
	if !b.isValid("J", objPage|objPath) {
		return
	}
	b.writeLine(b.num(float64(style)), "J")
}

// SetLineJoin sets the line join style (0 miter, 1 round, 2 bevel).
func (b *Builder) SetLineJoin(style int) {
	if !b.isValid("j", objPage|objPath) {
		return
	}
	b.writeLine(b.num(float64(style)), "j")
}

// SetMiterLimit sets the miter limit used when LineJoin is miter.
func (b *Builder) SetMiterLimit(limit float64) {
	if !b.isValid("M", objPage|objPath) {
		return
	}
	b.writeLine(b.num(limit), "M")
}

// Concat concatenates an arbitrary matrix [a b c d e f] onto the CTM.
func (b *Builder) Concat(a, bb, c, d, e, f float64) {
	if !b.isValid("cm", objPage|objPath) {
		return
	}
	b.writeLine(b.num(a), b.num(bb), b.num(c), b.num(d), b.num(e), b.num(f), "cm")
}

// Scale concatenates a pure scale matrix onto the CTM.
func (b *Builder) Scale(sx, sy float64) {
	b.Concat(sx, 0, 0, sy, 0, 0)
}

// Translate concatenates a pure translation matrix onto the CTM. A
// translation's scale components are always 1, never the degenerate
// all-zero matrix the "invalid CTM" edge case warns about.
func (b *Builder) Translate(tx, ty float64) {
	b.Concat(1, 0, 0, 1, tx, ty)
}

// Rotate concatenates a rotation of angleDegrees (counterclockwise)
// onto the CTM: cm(cos, sin, -sin, cos, 0, 0).
func (b *Builder) Rotate(angleDegrees float64) {
	rad := angleDegrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	b.Concat(cos, sin, -sin, cos, 0, 0)
}

// SetGraphicsStateResource selects an ExtGState by name ("/<name> gs"),
// recording gs in the used-resource set under that name so that its
// dictionary is inlined into the resource dictionary's /ExtGState
// entry.
func (b *Builder) SetGraphicsStateResource(name string, gs resource.GraphicsState) {
	if !b.isValid("gs", objPage|objPath|objText) {
		return
	}
	b.used.gstates[name] = gs
	b.writeLine("/"+name, "gs")
}
