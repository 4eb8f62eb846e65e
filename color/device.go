package color

import pdfcore "github.com/Conan-Kudo/capypdf"

// Color is the sealed union of color records the content builder can
// select as the current stroke/fill color (spec §3 "Color records").
type Color interface {
	isColor()
}

// DeviceRGB is a color in the /DeviceRGB device color space.
type DeviceRGB struct{ R, G, B LimitDouble }

func (DeviceRGB) isColor() {}

// RGB constructs a DeviceRGB color, clamping each channel.
func RGB(r, g, b float64) DeviceRGB {
	return DeviceRGB{Limit(r), Limit(g), Limit(b)}
}

// DeviceGray is a color in the /DeviceGray device color space.
type DeviceGray struct{ V LimitDouble }

func (DeviceGray) isColor() {}

// Gray constructs a DeviceGray color, clamping the channel.
func Gray(v float64) DeviceGray { return DeviceGray{Limit(v)} }

// DeviceCMYK is a color in the /DeviceCMYK device color space.
type DeviceCMYK struct{ C, M, Y, K LimitDouble }

func (DeviceCMYK) isColor() {}

// CMYK constructs a DeviceCMYK color, clamping each channel.
func CMYK(c, m, y, k float64) DeviceCMYK {
	return DeviceCMYK{Limit(c), Limit(m), Limit(y), Limit(k)}
}

// ICCColor is a color expressed in an embedded ICC-based color space.
type ICCColor struct {
	Space  pdfcore.ICCSpaceID
	Values []LimitDouble
}

func (ICCColor) isColor() {}

// LabColor is a color expressed in an embedded CIE L*a*b* color
// space. L is in [0, 100]; A and B follow the space's declared range
// (commonly [-100, 100]) and are not clamped to [0, 1] since the Lab
// gamut is not unit-normalized.
type LabColor struct {
	Space pdfcore.LabSpaceID
	L, A, B float64
}

func (LabColor) isColor() {}

// SeparationColor is a tint value for a named separation (spot color).
type SeparationColor struct {
	Space pdfcore.SeparationID
	V     LimitDouble
}

func (SeparationColor) isColor() {}

// AllSeparation selects the special "/All" colorant (every ink at the
// given tint), which the registry maps to the first separation
// created — the open-question coupling spec §9 calls out made
// explicit through a reserved id instead of an implicit index.
const AllSeparation pdfcore.SeparationID = -1

// PatternColor selects a shading pattern as the current
// color.
type PatternColor struct {
	Pattern pdfcore.PatternID
}

func (PatternColor) isColor() {}
