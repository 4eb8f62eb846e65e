package document

import (
	"bytes"
	"strings"
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

func TestOpenAddPageClose(t *testing.T) {
	var buf bytes.Buffer
	doc, err := Open(&buf, Options{Title: "t"})
	if err != nil {
		t.Fatal(err)
	}

	p := doc.NewPage()
	p.MoveTo(10, 10)
	p.LineTo(100, 100)
	p.Fill()
	if _, err := doc.AddPage(p); err != nil {
		t.Fatal(err)
	}

	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-1.7") {
		t.Error("output missing PDF header")
	}
	if !strings.Contains(out, "/Type/Pages") && !strings.Contains(out, "/Type /Pages") {
		t.Error("output missing page tree root")
	}
	if !strings.Contains(out, "%%EOF") {
		t.Error("output missing trailing EOF marker")
	}

	if err := doc.Close(); !pdfcore.IsKind(err, pdfcore.ErrDoubleFinalize) {
		t.Errorf("second Close() = %v, want ErrDoubleFinalize", err)
	}
}

func TestEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	doc, err := Open(&buf, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "/Count 0") {
		t.Error("expected an empty page tree with /Count 0")
	}
	if !strings.Contains(out, "xref\n0 4\n") {
		t.Errorf("expected 4 xref entries (free head, info, pages, catalog), got:\n%s", out)
	}
	if !strings.Contains(out, "/Size 4") {
		t.Error("expected trailer /Size 4")
	}
}

func TestAddOutlineTopLevelAndChild(t *testing.T) {
	var buf bytes.Buffer
	doc, err := Open(&buf, Options{})
	if err != nil {
		t.Fatal(err)
	}

	p := doc.NewPage()
	page1, err := doc.AddPage(p)
	if err != nil {
		t.Fatal(err)
	}

	top := doc.AddOutline("Chapter 1", page1, nil)
	doc.AddOutline("Section 1.1", page1, top)

	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "/Type/Outlines") && !strings.Contains(out, "/Type /Outlines") {
		t.Error("output missing outline root")
	}
}

func TestFormXObjectDrawnFromPage(t *testing.T) {
	var buf bytes.Buffer
	doc, err := Open(&buf, Options{})
	if err != nil {
		t.Fatal(err)
	}

	form, formID := doc.NewForm(pdfcore.Rectangle{URx: 10, URy: 10}, [6]float64{1, 0, 0, 1, 0, 0})
	form.MoveTo(0, 0)
	form.LineTo(10, 10)
	form.Stroke()
	if err := doc.AddFormXObject(formID, form); err != nil {
		t.Fatal(err)
	}

	page := doc.NewPage()
	page.DrawForm(formID)
	if _, err := doc.AddPage(page); err != nil {
		t.Fatal(err)
	}

	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
}
