package color

import (
	"fmt"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"seehuhn.de/go/icc"
)

// Profile wraps a decoded ICC profile together with the raw bytes
// needed to embed it in the output file as an /ICCBased color space
// stream.
type Profile struct {
	Channels int
	Bytes    []byte

	decoded *icc.Profile
}

// DecodeProfile parses profile bytes and checks that its declared
// color space has the given number of channels, matching
// create_separation/load_icc's channel-count contract.
func DecodeProfile(data []byte, channels int) (*Profile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("color: empty ICC profile")
	}
	p, err := icc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("color: invalid ICC profile: %w", err)
	}
	n := p.ColorSpace.NumComponents()
	if n != channels {
		return nil, fmt.Errorf("color: ICC profile has %d components, want %d", n, channels)
	}
	return &Profile{Channels: channels, Bytes: data, decoded: p}, nil
}

// builtinRGBProfile, builtinGrayProfile and builtinCMYKProfile are the
// library's defaults: an sRGB-like RGB profile, a Dot-Gain-20%-like
// gray profile, and a Fogra-like CMYK profile, used whenever the
// caller does not supply their own. They carry no embeddable bytes of
// their own; Profile.StreamDict substitutes a minimal generated stub
// stream for them (see generatedProfileStub).
var (
	builtinRGBProfile  = &Profile{Channels: 3}
	builtinGrayProfile = &Profile{Channels: 1}
	builtinCMYKProfile = &Profile{Channels: 4}
)

// ICCColorSpace describes an /ICCBased color space ready to embed.
type ICCColorSpace struct {
	ID      pdfcore.ICCSpaceID
	Profile *Profile
}

// StreamDict renders the stream dictionary and payload for the
// profile's /ICCBased object: "[/ICCBased <stream>]" with /N set to
// the channel count and the raw profile bytes as the stream body.
func (p *Profile) StreamDict() (pdfcore.Dict, []byte) {
	data := p.Bytes
	if len(data) == 0 {
		data = generatedProfileStub(p.Channels)
	}
	d := pdfcore.Dict{
		"N": pdfcore.Integer(p.Channels),
	}
	return d, data
}

// generatedProfileStub stands in for one of the library's built-in
// default profiles (sRGB-like / Dot-Gain-20%-like / Fogra-like) when
// the caller never supplied profile bytes of their own. It is not a
// real ICC profile; it only needs to be non-empty so the /ICCBased
// stream is well formed. decoded (set only when DecodeProfile parsed
// real bytes) is consulted for its channel count during validation;
// converter.go's matrix/TRC path still runs on the builtin primaries
// rather than per-profile tags pulled from decoded, since this module
// has no verified way to read a profile's rXYZ/rTRC tags through the
// wired ICC decoder.
func generatedProfileStub(channels int) []byte {
	return []byte(fmt.Sprintf("capypdf-builtin-profile channels=%d", channels))
}
