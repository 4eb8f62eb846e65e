package content

// This file implements path construction and path-painting operators
// (tables 58-60 of ISO 32000-2): m, l, c, re, h, S, s, f, B, B*, n, W,
// W*.

// MoveTo begins a new subpath at (x, y).
func (b *Builder) MoveTo(x, y float64) {
	if !b.isValid("m", objPage|objPath) {
		return
	}
	b.current = objPath
	b.writeLine(b.num(x), b.num(y), "m")
}

// LineTo appends a straight-line segment to the current subpath.
func (b *Builder) LineTo(x, y float64) {
	if !b.isValid("l", objPath) {
		return
	}
	b.writeLine(b.num(x), b.num(y), "l")
}

// CurveTo appends a cubic Bezier segment to the current subpath.
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !b.isValid("c", objPath) {
		return
	}
	b.writeLine(b.num(x1), b.num(y1), b.num(x2), b.num(y2), b.num(x3), b.num(y3), "c")
}

// Rectangle appends a rectangle to the current path as a closed
// subpath.
func (b *Builder) Rectangle(x, y, w, h float64) {
	if !b.isValid("re", objPage|objPath) {
		return
	}
	b.current = objPath
	b.writeLine(b.num(x), b.num(y), b.num(w), b.num(h), "re")
}

// ClosePath closes the current subpath with a straight line back to
// its starting point.
func (b *Builder) ClosePath() {
	if !b.isValid("h", objPath) {
		return
	}
	b.writeLine("h")
}

// Stroke strokes the current path.
func (b *Builder) Stroke() {
	if !b.isValid("S", objPath|objClip) {
		return
	}
	b.current = objPage
	b.writeLine("S")
}

// CloseAndStroke closes the current subpath, then strokes the path.
func (b *Builder) CloseAndStroke() {
	if !b.isValid("s", objPath|objClip) {
		return
	}
	b.current = objPage
	b.writeLine("s")
}

// Fill fills the current path using the nonzero winding rule.
func (b *Builder) Fill() {
	if !b.isValid("f", objPath|objClip) {
		return
	}
	b.current = objPage
	b.writeLine("f")
}

// FillEvenOdd fills the current path using the even-odd rule.
func (b *Builder) FillEvenOdd() {
	if !b.isValid("f*", objPath|objClip) {
		return
	}
	b.current = objPage
	b.writeLine("f*")
}

// FillAndStroke fills then strokes the current path (nonzero rule).
func (b *Builder) FillAndStroke() {
	if !b.isValid("B", objPath|objClip) {
		return
	}
	b.current = objPage
	b.writeLine("B")
}

// FillAndStrokeEvenOdd fills then strokes the current path (even-odd
// rule).
func (b *Builder) FillAndStrokeEvenOdd() {
	if !b.isValid("B*", objPath|objClip) {
		return
	}
	b.current = objPage
	b.writeLine("B*")
}

// EndPath ends the current path without filling or stroking it,
// typically after establishing a clip.
func (b *Builder) EndPath() {
	if !b.isValid("n", objPath|objClip) {
		return
	}
	b.current = objPage
	b.writeLine("n")
}

// ClipNonZero marks the current path as a clipping path using the
// nonzero winding rule. A painting operator (usually EndPath) must
// follow to actually apply it.
func (b *Builder) ClipNonZero() {
	if !b.isValid("W", objPath) {
		return
	}
	b.current = objClip
	b.writeLine("W")
}

// ClipEvenOdd marks the current path as a clipping path using the
// even-odd rule.
func (b *Builder) ClipEvenOdd() {
	if !b.isValid("W*", objPath) {
		return
	}
	b.current = objClip
	b.writeLine("W*")
}
