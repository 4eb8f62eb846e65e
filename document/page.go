package document

import (
	"log/slog"
	"runtime"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/content"
)

// Page is a page builder: the content package's low-level operator
// recorder, plus the page-level metadata (boxes, transition,
// annotations) the document assembler needs once the page is added.
type Page struct {
	*content.Builder

	mediaBox   pdfcore.Rectangle
	cropBox    *pdfcore.Rectangle
	bleedBox   *pdfcore.Rectangle
	trimBox    *pdfcore.Rectangle
	artBox     *pdfcore.Rectangle
	transition *pdfcore.Transition
	annots     []pdfcore.AnnotationID

	doc   *Document
	added bool
}

// NewPage creates a page builder with the document's default media
// box. The page is not part of the document until AddPage is called.
func (d *Document) NewPage() *Page {
	p := &Page{
		Builder:  content.NewBuilder(d.Reg, d.Conv, d.opts.OutputColorSpace),
		mediaBox: d.opts.pageBox(),
		doc:      d,
	}
	runtime.SetFinalizer(p, finalizeAbandonedPage)
	return p
}

// SetMediaBox overrides the page's /MediaBox.
func (p *Page) SetMediaBox(r pdfcore.Rectangle) { p.mediaBox = r }

// SetCropBox, SetBleedBox, SetTrimBox and SetArtBox set the page's
// optional alternate page boxes (spec §3 "Page record").
func (p *Page) SetCropBox(r pdfcore.Rectangle)  { p.cropBox = &r }
func (p *Page) SetBleedBox(r pdfcore.Rectangle) { p.bleedBox = &r }
func (p *Page) SetTrimBox(r pdfcore.Rectangle)  { p.trimBox = &r }
func (p *Page) SetArtBox(r pdfcore.Rectangle)   { p.artBox = &r }

// SetTransition attaches a presentation transition to the page.
func (p *Page) SetTransition(t pdfcore.Transition) { p.transition = &t }

// Annotate attaches a previously registered annotation to this page.
func (p *Page) Annotate(a pdfcore.AnnotationID) { p.annots = append(p.annots, a) }

// finalize closes the builder and returns the immutable artifact the
// document assembler resolves at Close. After finalize the page must
// not be used again.
func (p *Page) finalize() (*content.Artifact, error) {
	return p.Builder.Finalize()
}

// AddPage finalizes p's content stream and queues it for emission at
// Close, returning the page's eventual identity. The page object
// itself is not written until Close, since the page tree's parent
// object number can only be predicted once every pending page is
// known (spec §4.1's close protocol, step 2).
func (d *Document) AddPage(p *Page) (pdfcore.PageID, error) {
	artifact, err := p.finalize()
	if err != nil {
		return 0, err
	}
	p.added = true

	d.pages = append(d.pages, pendingPage{
		artifact:   artifact,
		mediaBox:   p.mediaBox,
		cropBox:    p.cropBox,
		bleedBox:   p.bleedBox,
		trimBox:    p.trimBox,
		artBox:     p.artBox,
		transition: p.transition,
		annots:     p.annots,
	})
	return pdfcore.PageID(len(d.pages)), nil
}

// finalizeAbandonedPage is the page-builder half of the auto-finalize
// requirement in spec §3's Lifecycle section: a page builder not
// finalized on scope exit must auto-finalize and log any failure
// rather than propagate. Go has no deterministic scope-exit hook, so
// this finalizer is the best-effort analogue; callers that care about
// a page actually appearing in the file must still call AddPage
// themselves.
func finalizeAbandonedPage(p *Page) {
	if p.added {
		return
	}
	slog.Warn("capypdf: page builder finalized by GC without AddPage; auto-adding")
	if _, err := p.doc.AddPage(p); err != nil {
		slog.Warn("capypdf: auto-finalize of abandoned page failed", "error", err)
	}
}
