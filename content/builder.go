// Package content implements the "Page / content-stream builder"
// component: it records content-stream operators for one page or form
// XObject into an in-memory buffer, and in parallel tracks the
// used-resource set that must appear in the owning resource
// dictionary.
package content

import (
	"bytes"
	"fmt"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/color"
	"github.com/Conan-Kudo/capypdf/internal/fmtutil"
	"github.com/Conan-Kudo/capypdf/resource"
)

type objectType uint8

const (
	objPage objectType = 1 << iota
	objPath
	objClip
	objText
)

// usedResources is the "side structure" the spec requires: sets of
// referenced image, font, font-subset, and color-space object
// numbers, referenced graphics-state names, and the /All-separation
// flag.
type usedResources struct {
	images      map[int]bool
	wholeFonts  map[int]bool
	fontSubsets map[pdfcore.FontSubsetID]bool
	colorSpaces map[int]bool
	gstates     map[string]resource.GraphicsState
	forms       map[pdfcore.FormXObjectID]bool
	ocgs        map[int]bool
	allSep      bool
}

func newUsedResources() *usedResources {
	return &usedResources{
		images:      map[int]bool{},
		wholeFonts:  map[int]bool{},
		fontSubsets: map[pdfcore.FontSubsetID]bool{},
		colorSpaces: map[int]bool{},
		gstates:     map[string]resource.GraphicsState{},
		forms:       map[pdfcore.FormXObjectID]bool{},
		ocgs:        map[int]bool{},
	}
}

// Builder accumulates one content stream. It is grounded on the
// teacher's graphics.Writer state machine: a bitmask of the current
// graphics object (page, path, clip, text) rejects operators invalid
// in that state instead of emitting malformed output.
type Builder struct {
	buf bytes.Buffer
	err error

	current objectType
	qDepth  int

	inText       bool
	tjOpen       bool
	hexOpen      bool
	curSubset    pdfcore.FontSubsetID
	curSubsetSet bool

	reg         *resource.Registry
	conv        *color.Converter
	outputSpace color.OutputSpace
	used        *usedResources
}

// NewBuilder creates a content builder backed by reg (to resolve
// resource ids to object numbers and font glyph subsets) and conv (to
// re-express caller colors in outputSpace, the document's declared
// output color space).
func NewBuilder(reg *resource.Registry, conv *color.Converter, outputSpace color.OutputSpace) *Builder {
	return &Builder{
		current:     objPage,
		reg:         reg,
		conv:        conv,
		outputSpace: outputSpace,
		used:        newUsedResources(),
	}
}

// Err returns the first error encountered, if any. Once set, every
// further operator call is a no-op.
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) isValid(op string, allowed objectType) bool {
	if b.err != nil {
		return false
	}
	if b.current&allowed == 0 {
		b.fail(pdfcore.NewError(pdfcore.ErrInvalidIndex, fmt.Sprintf("operator %q invalid in current graphics object", op)))
		return false
	}
	return true
}

func (b *Builder) num(x float64) string {
	return fmtutil.Float(x, 6)
}

func (b *Builder) writeLine(parts ...string) {
	if b.err != nil {
		return
	}
	for i, p := range parts {
		if i > 0 {
			b.buf.WriteByte(' ')
		}
		b.buf.WriteString(p)
	}
	b.buf.WriteByte('\n')
}

// Save emits "q", pushing the graphics state stack.
func (b *Builder) Save() {
	if !b.isValid("q", objPage|objPath|objClip) {
		return
	}
	b.qDepth++
	b.writeLine("q")
}

// Restore emits "Q", popping the graphics state stack.
func (b *Builder) Restore() {
	if !b.isValid("Q", objPage|objPath|objClip) {
		return
	}
	if b.qDepth == 0 {
		b.fail(pdfcore.NewError(pdfcore.ErrInvalidIndex, "Q without matching q"))
		return
	}
	b.qDepth--
	b.writeLine("Q")
}

// Scoped runs fn between a save and a guaranteed restore, matching the
// spec's "scoped acquisition of the graphics-state stack with
// guaranteed release on all exit paths" — the restore runs even if fn
// panics. Once fn has put the builder into its error state, that
// restore is a no-op like every other operator, so no Q is written
// after a failure; Finalize then returns the error instead of the
// stream.
func (b *Builder) Scoped(fn func()) {
	b.Save()
	defer b.Restore()
	fn()
}

// Artifact is the immutable result handed from a finalized builder to
// the document assembler — message-passing in place of a back
// reference, per the module's concurrency design: the assembler alone
// resolves Used against the registry once every resource (in
// particular, every font subset) has a known object number.
type Artifact struct {
	Content []byte
	Used    *usedResources
}

// Finalize produces the content-stream bytes and used-resource record
// for this builder. After Finalize the builder must not be used
// again.
func (b *Builder) Finalize() (*Artifact, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.qDepth != 0 {
		return nil, pdfcore.NewError(pdfcore.ErrInvalidIndex, "unbalanced q/Q at finalize")
	}
	if b.inText {
		return nil, pdfcore.NewError(pdfcore.ErrInvalidIndex, "unclosed BT at finalize")
	}
	data := b.buf.Bytes()
	used := b.used
	b.buf = bytes.Buffer{}
	b.err = pdfcore.NewError(pdfcore.ErrDoubleFinalize, "content builder already finalized")
	return &Artifact{Content: data, Used: used}, nil
}

// ResourceDict resolves a finalized builder's used-resource record
// into a /Resources dictionary, looking up every object number through
// reg. Called by the document assembler at close time, after
// reg.FlushFonts has run.
func (a *Artifact) ResourceDict(reg *resource.Registry) (pdfcore.Dict, error) {
	u := a.Used
	dict := pdfcore.Dict{}

	if len(u.images) > 0 || len(u.forms) > 0 {
		xobj := pdfcore.Dict{}
		for num := range u.images {
			xobj[pdfcore.Name(fmt.Sprintf("Image%d", num))] = pdfcore.Ref(num)
		}
		for id := range u.forms {
			objNum, err := reg.FormObjectNumber(id)
			if err != nil {
				return nil, err
			}
			xobj[pdfcore.Name(fmt.Sprintf("Form%d", int(id)))] = pdfcore.Ref(objNum)
		}
		dict["XObject"] = xobj
	}

	if len(u.wholeFonts) > 0 || len(u.fontSubsets) > 0 {
		fonts := pdfcore.Dict{}
		for num := range u.wholeFonts {
			fonts[pdfcore.Name(fmt.Sprintf("Font%d", num))] = pdfcore.Ref(num)
		}
		for id := range u.fontSubsets {
			fontObj, err := reg.FontObjectNumberForSubset(id)
			if err != nil {
				return nil, err
			}
			// Keyed by (FontID, subset index) rather than the literal
			// object number: the object number for a lazily-built
			// subset is only known once every page has been drawn and
			// FlushFonts has run, long after this content stream's
			// bytes (and its "/SFont<FontID>-<subset> Tf" operators)
			// were already written and frozen.
			key := pdfcore.Name(fmt.Sprintf("SFont%d-%d", int(id.Font), id.Index))
			fonts[key] = pdfcore.Ref(fontObj)
		}
		dict["Font"] = fonts
	}

	if len(u.colorSpaces) > 0 || u.allSep {
		cs := pdfcore.Dict{}
		for num := range u.colorSpaces {
			cs[pdfcore.Name(fmt.Sprintf("CSpace%d", num))] = pdfcore.Ref(num)
		}
		if u.allSep {
			num, err := reg.AllSeparationObjectNumber()
			if err != nil {
				return nil, err
			}
			cs["All"] = pdfcore.Ref(num)
		}
		dict["ColorSpace"] = cs
	}

	if len(u.gstates) > 0 {
		gs := pdfcore.Dict{}
		for name, state := range u.gstates {
			gs[pdfcore.Name(name)] = state.Dict()
		}
		dict["ExtGState"] = gs
	}

	if len(u.ocgs) > 0 {
		props := pdfcore.Dict{}
		for num := range u.ocgs {
			props[pdfcore.Name(fmt.Sprintf("OCG%d", num))] = pdfcore.Ref(num)
		}
		dict["Properties"] = props
	}

	return dict, nil
}
