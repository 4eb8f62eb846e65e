package content

import (
	"fmt"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/color"
)

// This file implements the color-selection operators (table 74 of ISO
// 32000-2): RG/rg, G/g, K/k for the device spaces, and CS/cs + SCN/scn
// for named (ICC/Lab/Separation/Pattern) spaces.

// SetStrokeColor selects col as the stroke color. If col is a device
// color and the document's output space differs, it is re-expressed
// through the converter before emission, per spec §4.2.
func (b *Builder) SetStrokeColor(col color.Color) {
	if !b.isValid("stroke color", objPage|objPath|objText) {
		return
	}
	b.emitColor(col, true)
}

// SetFillColor selects col as the non-stroking (fill) color.
func (b *Builder) SetFillColor(col color.Color) {
	if !b.isValid("fill color", objPage|objPath|objText) {
		return
	}
	b.emitColor(col, false)
}

func (b *Builder) emitColor(col color.Color, stroke bool) {
	switch v := col.(type) {
	case color.DeviceRGB, color.DeviceGray, color.DeviceCMYK:
		b.emitDeviceColor(b.conv.Convert(v, b.outputSpace), stroke)
	case color.ICCColor:
		num, err := b.reg.ICCObjectNumber(v.Space)
		if err != nil {
			b.fail(err)
			return
		}
		b.used.colorSpaces[num] = true
		b.selectSpace(num, stroke)
		b.writeComponents(v.Values, stroke)
	case color.LabColor:
		num, err := b.reg.LabObjectNumber(v.Space)
		if err != nil {
			b.fail(err)
			return
		}
		b.used.colorSpaces[num] = true
		b.selectSpace(num, stroke)
		b.writeLine(b.num(v.L), b.num(v.A), b.num(v.B), scnOp(stroke))
	case color.SeparationColor:
		if v.Space == color.AllSeparation {
			if _, err := b.reg.AllSeparationObjectNumber(); err != nil {
				b.fail(err)
				return
			}
			b.used.allSep = true
			b.writeLine("/All", csOp(stroke))
		} else {
			num, err := b.reg.SeparationObjectNumber(v.Space)
			if err != nil {
				b.fail(err)
				return
			}
			b.used.colorSpaces[num] = true
			b.selectSpace(num, stroke)
		}
		b.writeLine(b.num(v.V.Float()), scnOp(stroke))
	case color.PatternColor:
		num, err := b.reg.PatternObjectNumber(v.Pattern)
		if err != nil {
			b.fail(err)
			return
		}
		b.writeLine("/Pattern", csOp(stroke))
		b.writeLine(fmt.Sprintf("/P%d", num), scnOp(stroke))
	default:
		b.fail(pdfcore.NewError(pdfcore.ErrColorComponentOutOfRange, "unsupported color record"))
	}
}

// emitDeviceColor writes the operator matching col's concrete device
// type, which may differ from the caller's original type once the
// converter has re-expressed it in the document's output space.
func (b *Builder) emitDeviceColor(col color.Color, stroke bool) {
	switch c := col.(type) {
	case color.DeviceRGB:
		b.writeLine(b.num(c.R.Float()), b.num(c.G.Float()), b.num(c.B.Float()), rgOp(stroke))
	case color.DeviceGray:
		b.writeLine(b.num(c.V.Float()), gOp(stroke))
	case color.DeviceCMYK:
		b.writeLine(b.num(c.C.Float()), b.num(c.M.Float()), b.num(c.Y.Float()), b.num(c.K.Float()), kOp(stroke))
	}
}

func (b *Builder) selectSpace(num int, stroke bool) {
	b.writeLine(fmt.Sprintf("/CSpace%d", num), csOp(stroke))
}

func (b *Builder) writeComponents(vals []color.LimitDouble, stroke bool) {
	parts := make([]string, 0, len(vals)+1)
	for _, v := range vals {
		parts = append(parts, b.num(v.Float()))
	}
	parts = append(parts, scnOp(stroke))
	b.writeLine(parts...)
}

func rgOp(stroke bool) string {
	if stroke {
		return "RG"
	}
	return "rg"
}

func gOp(stroke bool) string {
	if stroke {
		return "G"
	}
	return "g"
}

func kOp(stroke bool) string {
	if stroke {
		return "K"
	}
	return "k"
}

func csOp(stroke bool) string {
	if stroke {
		return "CS"
	}
	return "cs"
}

func scnOp(stroke bool) string {
	if stroke {
		return "SCN"
	}
	return "scn"
}
