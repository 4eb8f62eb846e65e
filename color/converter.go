package color

import "math"

// RenderingIntent names one of the four PDF rendering intents.
type RenderingIntent string

const (
	RelativeColorimetric RenderingIntent = "RelativeColorimetric"
	AbsoluteColorimetric RenderingIntent = "AbsoluteColorimetric"
	Saturation           RenderingIntent = "Saturation"
	Perceptual           RenderingIntent = "Perceptual"
)

// Converter performs device color-space conversions for the document.
// It keeps the three profiles (RGB, Gray, CMYK) it was built with, but
// the conversions do not read them: RGB/Gray conversions run on the
// builtin sRGB-like primaries and tone curve, CMYK conversions on a
// closed-form complement formula (see the individual methods). It
// holds no mutable state across calls: every method is a pure
// function of its inputs, per spec §4.4.
type Converter struct {
	rgb, gray, cmyk *Profile
	intent          RenderingIntent
}

// NewConverter builds a Converter from the three profiles that will
// back DeviceRGB/DeviceGray/DeviceCMYK conversions. A nil profile
// falls back to the library's built-in default for that channel
// count.
func NewConverter(rgb, gray, cmyk *Profile) *Converter {
	c := &Converter{intent: RelativeColorimetric}
	if rgb != nil {
		c.rgb = rgb
	} else {
		c.rgb = builtinRGBProfile
	}
	if gray != nil {
		c.gray = gray
	} else {
		c.gray = builtinGrayProfile
	}
	if cmyk != nil {
		c.cmyk = cmyk
	} else {
		c.cmyk = builtinCMYKProfile
	}
	return c
}

// WithIntent returns a copy of the Converter with its rendering intent
// set to intent, leaving the receiver untouched. The intent is only
// recorded: none of the conversion methods reads it, so every intent
// gives the same results.
func (c *Converter) WithIntent(intent RenderingIntent) *Converter {
	clone := *c
	clone.intent = intent
	return &clone
}

// rgbToPCS and pcsRowY are the RGB-to-XYZ (PCS) matrix and its Y row,
// D50-adapted sRGB primaries (the same Bradford-adapted constants any
// matrix/TRC ICC profile for an sRGB-like space carries in its
// rXYZ/gXYZ/bXYZ tags). srgbGamma is the matrix/TRC profile's shared
// tone response curve, applied per channel before the matrix step and
// inverted after it, the same linearize-matrix-delinearize pipeline a
// matrix/TRC transform runs (see the reference CMM transform this is
// grounded on). Because the matrix's Y row sums to 1, replicating a
// gray value across R, G and B and running it back through this row
// reproduces the original value exactly, which is what keeps
// to_gray(to_rgb(g)) exact for spec §8's round-trip property.
var (
	pcsRowY   = [3]float64{0.2225045, 0.7168786, 0.0606169}
	srgbGamma = 2.2
)

func linearize(v float64) float64 {
	return math.Pow(math.Max(0, v), srgbGamma)
}

func delinearize(v float64) float64 {
	return math.Pow(math.Max(0, v), 1/srgbGamma)
}

// ToGray converts a DeviceRGB color to DeviceGray via the profile
// connection space: each channel is linearized, combined with the
// PCS's Y (luminance) row, then delinearized, the relative
// colorimetric path spec §4.4 calls for rather than a video luma
// shortcut. A caller-supplied ICC profile's own primaries and tone
// curve are not substituted here: decoding only confirms the
// profile's channel count (icc.go), since this module has no verified
// way to read a profile's rXYZ/rTRC tags through the wired ICC
// decoder, so every RGB/Gray conversion runs through the builtin
// sRGB-like primaries regardless of which profile is active.
func (c *Converter) ToGray(rgb DeviceRGB) DeviceGray {
	y := pcsRowY[0]*linearize(rgb.R.Float()) +
		pcsRowY[1]*linearize(rgb.G.Float()) +
		pcsRowY[2]*linearize(rgb.B.Float())
	return Gray(delinearize(y))
}

// ToCMYK converts a DeviceRGB color to DeviceCMYK using the standard
// subtractive complement model. Device CMYK profiles are LUT-driven in
// practice (ink limiting, GCR curves baked into A2B/B2A tags); without
// a verified way to read those tags off the wired ICC decoder this is
// the same closed-form fallback a matrix/TRC transform falls back to
// when it can't resolve a profile's device link tables.
func (c *Converter) ToCMYK(rgb DeviceRGB) DeviceCMYK {
	r, g, b := rgb.R.Float(), rgb.G.Float(), rgb.B.Float()
	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1-1e-12 {
		return CMYK(0, 0, 0, 1)
	}
	cC := (1 - r - k) / (1 - k)
	cM := (1 - g - k) / (1 - k)
	cY := (1 - b - k) / (1 - k)
	return CMYK(cC, cM, cY, k)
}

// RGBFromCMYK converts a DeviceCMYK color to DeviceRGB; see ToCMYK for
// why this stays closed-form rather than profile-driven.
func (c *Converter) RGBFromCMYK(cmyk DeviceCMYK) DeviceRGB {
	k := cmyk.K.Float()
	r := (1 - cmyk.C.Float()) * (1 - k)
	g := (1 - cmyk.M.Float()) * (1 - k)
	b := (1 - cmyk.Y.Float()) * (1 - k)
	return RGB(r, g, b)
}

// RGBFromGray converts a DeviceGray color to DeviceRGB. Gray and RGB
// share the same tone response curve in the builtin profile set, so
// the PCS round trip collapses to replicating the value across all
// three channels; see ToGray's doc comment for the exact-round-trip
// argument.
func (c *Converter) RGBFromGray(gray DeviceGray) DeviceRGB {
	v := gray.V.Float()
	return RGB(v, v, v)
}

// Convert re-expresses col in the given output device color space, so
// that the content builder can emit a color operator that matches the
// document's declared output color space (spec §4.2, "Color
// selection"). Colors that are not one of the three device spaces
// (ICC/Lab/Separation/Pattern) pass through unchanged, since those
// are addressed directly rather than through a device fallback.
func (c *Converter) Convert(col Color, out OutputSpace) Color {
	switch v := col.(type) {
	case DeviceRGB:
		switch out {
		case OutputRGB:
			return v
		case OutputGray:
			return c.ToGray(v)
		case OutputCMYK:
			return c.ToCMYK(v)
		}
	case DeviceGray:
		switch out {
		case OutputGray:
			return v
		case OutputRGB:
			return c.RGBFromGray(v)
		case OutputCMYK:
			return c.ToCMYK(c.RGBFromGray(v))
		}
	case DeviceCMYK:
		switch out {
		case OutputCMYK:
			return v
		case OutputRGB:
			return c.RGBFromCMYK(v)
		case OutputGray:
			return c.ToGray(c.RGBFromCMYK(v))
		}
	}
	return col
}

// OutputSpace names the document's declared output color space
// (document.Options.OutputColorSpace).
type OutputSpace int

const (
	OutputRGB OutputSpace = iota
	OutputGray
	OutputCMYK
)
