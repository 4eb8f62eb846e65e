package content

import (
	"strings"
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

func TestDrawFormEmitsOperatorAndRecordsUsage(t *testing.T) {
	b := newTestBuilder(t)
	id := pdfcore.FormXObjectID(3)
	b.DrawForm(id)
	if !b.used.forms[id] {
		t.Error("DrawForm() did not record the form as used")
	}
	if !strings.Contains(b.buf.String(), "/Form3 Do\n") {
		t.Errorf("got %q, want /Form3 Do", b.buf.String())
	}
}

func TestDrawImageUnknownIDFails(t *testing.T) {
	b := newTestBuilder(t)
	b.DrawImage(pdfcore.ImageID(99))
	if b.Err() == nil {
		t.Fatal("DrawImage() with an unregistered id: want error, got nil")
	}
}

func TestBeginOptionalContentUnknownIDFails(t *testing.T) {
	b := newTestBuilder(t)
	b.BeginOptionalContent(pdfcore.OptionalContentGroupID(99))
	if b.Err() == nil {
		t.Fatal("BeginOptionalContent() with an unregistered id: want error, got nil")
	}
}

func TestEndMarkedContentOutsideTextOrPath(t *testing.T) {
	b := newTestBuilder(t)
	b.EndMarkedContent()
	if !strings.Contains(b.buf.String(), "EMC\n") {
		t.Errorf("got %q, want EMC", b.buf.String())
	}
}
