package document

import (
	"io"
	"log/slog"
	"runtime"
	"time"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/color"
	"github.com/Conan-Kudo/capypdf/content"
	"github.com/Conan-Kudo/capypdf/resource"
)

// pendingPage is a page whose builder has been finalized but whose
// resource dictionary, content stream and page object have not been
// written yet — that only happens at Close, once every font subset
// the page's content references has a known object number.
type pendingPage struct {
	artifact   *content.Artifact
	mediaBox   pdfcore.Rectangle
	cropBox    *pdfcore.Rectangle
	bleedBox   *pdfcore.Rectangle
	trimBox    *pdfcore.Rectangle
	artBox     *pdfcore.Rectangle
	transition *pdfcore.Transition
	annots     []pdfcore.AnnotationID
}

type pendingForm struct {
	id       pdfcore.FormXObjectID
	artifact *content.Artifact
}

// Document is the document assembler. It is created by Open, bound to
// an output writer, and is finalized exactly once by Close.
type Document struct {
	w    *pdfcore.Writer
	Reg  *resource.Registry
	Conv *color.Converter

	opts Options

	infoObjNum int

	pages   []pendingPage
	forms   []pendingForm
	outline *Outline

	closed bool
}

// Open creates a new document, writing the PDF header, the binary
// marker comment and the info dictionary (always object 1) per spec
// §4.1's write protocol.
func Open(w io.Writer, opts Options) (*Document, error) {
	writer, err := pdfcore.NewWriter(w)
	if err != nil {
		return nil, err
	}

	conv, err := buildConverter(opts)
	if err != nil {
		return nil, err
	}

	reg := resource.NewRegistry(writer, conv, opts.PreferLZW)

	info := pdfcore.DocInfo{
		Title:   opts.Title,
		Author:  opts.Author,
		Created: now(),
	}
	infoNum, err := writer.WriteIndirect(info.Dict())
	if err != nil {
		return nil, err
	}

	doc := &Document{
		w:          writer,
		Reg:        reg,
		Conv:       conv,
		opts:       opts,
		infoObjNum: infoNum,
	}
	runtime.SetFinalizer(doc, finalizeAbandonedDocument)
	return doc, nil
}

// now is a seam so tests can avoid depending on wall-clock time; the
// info dictionary's /CreationDate is cosmetic and not part of any
// spec invariant.
var now = time.Now

func buildConverter(opts Options) (*color.Converter, error) {
	rgb, err := optionalProfile(opts.RGBProfile, 3)
	if err != nil {
		return nil, err
	}
	gray, err := optionalProfile(opts.GrayProfile, 1)
	if err != nil {
		return nil, err
	}
	cmyk, err := optionalProfile(opts.CMYKProfile, 4)
	if err != nil {
		return nil, err
	}
	return color.NewConverter(rgb, gray, cmyk), nil
}

func optionalProfile(data []byte, channels int) (*color.Profile, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return color.DecodeProfile(data, channels)
}

// LoadImage registers a decoded raster image with the document.
func (d *Document) LoadImage(img resource.DecodedImage) (pdfcore.ImageID, error) {
	return d.Reg.LoadImage(img)
}

// LoadFont parses a TrueType/OpenType font and registers it for lazy
// subsetting.
func (d *Document) LoadFont(data []byte) (pdfcore.FontID, error) {
	return d.Reg.LoadFont(data)
}

// LoadICC embeds an ICC profile as an /ICCBased color space.
func (d *Document) LoadICC(data []byte, channels int) (pdfcore.ICCSpaceID, error) {
	return d.Reg.LoadICC(data, channels)
}

// CreateSeparation registers a named separation with a fallback
// DeviceCMYK conversion.
func (d *Document) CreateSeparation(name string, fallback color.DeviceCMYK) (pdfcore.SeparationID, error) {
	return d.Reg.CreateSeparation(name, fallback)
}

// AddGraphicsState registers an ExtGState dictionary.
func (d *Document) AddGraphicsState(gs resource.GraphicsState) pdfcore.GraphicsStateID {
	return d.Reg.AddGraphicsState(gs)
}

// AddFunction embeds a PDF function object.
func (d *Document) AddFunction(fn resource.Function) (pdfcore.FunctionID, error) {
	return d.Reg.AddFunction(fn)
}

// AddShading embeds an axial or radial shading dictionary.
func (d *Document) AddShading(s resource.Shading) (pdfcore.ShadingID, error) {
	return d.Reg.AddShading(s)
}

// AddAnnotation registers a page annotation, independently of the
// page it will be attached to; pass the returned id to Page.Annotate.
func (d *Document) AddAnnotation(a resource.AnnotationDict) (pdfcore.AnnotationID, error) {
	return d.Reg.AddAnnotation(a)
}

// AddOptionalContentGroup registers a new optional content group
// (layer), visible by default unless defaultOn is false.
func (d *Document) AddOptionalContentGroup(name string, defaultOn bool) (pdfcore.OptionalContentGroupID, error) {
	return d.Reg.AddOptionalContentGroup(name, defaultOn)
}

// Outline returns the document's outline (bookmark) tree, creating an
// empty one on first use.
func (d *Document) Outline() *Outline {
	if d.outline == nil {
		d.outline = &Outline{}
	}
	return d.outline
}

// AddOutline appends a new outline (bookmark) item, either at the top
// level (parent == nil) or as a child of an existing item, matching
// the spec's add_outline(title, dest, parent?) entry point.
func (d *Document) AddOutline(title string, dest pdfcore.PageID, parent *Item) *Item {
	if parent != nil {
		return parent.AddChild(title, dest)
	}
	return d.Outline().AddItem(title, dest)
}

// finalizeAbandonedDocument is the safety-net half of spec §5's
// "generator guard runs close-finalization when the owning scope
// exits": Go has no deterministic scope-exit hook, so callers are
// expected to `defer doc.Close()` themselves; this finalizer only
// catches documents the caller dropped without closing; it logs
// rather than writing, since writing from a finalizer after the
// caller has moved on risks corrupting a file the caller may already
// be reading.
func finalizeAbandonedDocument(d *Document) {
	if !d.closed {
		slog.Warn("capypdf: document finalized by GC without Close; output file is incomplete")
	}
}
