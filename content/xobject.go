package content

import (
	"fmt"

	pdfcore "github.com/Conan-Kudo/capypdf"
)

// This file implements the external-resource invocation operator
// "Do" for images and form XObjects, and the marked-content operators
// used to tag optional-content membership.

// DrawImage paints a previously loaded image within the current unit
// square, as transformed by the CTM in effect.
func (b *Builder) DrawImage(id pdfcore.ImageID) {
	if !b.isValid("Do", objPage|objPath) {
		return
	}
	num, err := b.reg.ImageObjectNumber(id)
	if err != nil {
		b.fail(err)
		return
	}
	b.used.images[num] = true
	b.writeLine(fmt.Sprintf("/Image%d", num), "Do")
}

// DrawForm paints a previously reserved form XObject. The form's
// object number is not resolved here: like a font subset, a form is
// only written at document close, after FlushFonts, so the resource
// dictionary key names the form by its FormXObjectID and is resolved
// to the real object number at Artifact.ResourceDict time.
func (b *Builder) DrawForm(id pdfcore.FormXObjectID) {
	if !b.isValid("Do", objPage|objPath) {
		return
	}
	b.used.forms[id] = true
	b.writeLine(fmt.Sprintf("/Form%d", int(id)), "Do")
}

// BeginOptionalContent opens a marked-content sequence tagged with an
// optional content group, so everything drawn until EndMarkedContent
// can be hidden or shown by toggling the group.
func (b *Builder) BeginOptionalContent(id pdfcore.OptionalContentGroupID) {
	if !b.isValid("BDC", objPage|objPath|objText) {
		return
	}
	num, err := b.reg.OCGObjectNumber(id)
	if err != nil {
		b.fail(err)
		return
	}
	b.used.ocgs[num] = true
	b.writeLine("/OC", fmt.Sprintf("/OCG%d", num), "BDC")
}

// EndMarkedContent closes the most recently opened marked-content
// sequence.
func (b *Builder) EndMarkedContent() {
	if !b.isValid("EMC", objPage|objPath|objText) {
		return
	}
	b.writeLine("EMC")
}
