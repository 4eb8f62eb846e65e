package capypdf

import (
	"time"

	"golang.org/x/text/encoding/unicode"
)

// DocInfo is the document information dictionary. It is always
// written as object 1, immediately after the file header, per the
// write protocol.
type DocInfo struct {
	Title, Author, Producer string
	Created, Modified       time.Time
}

// Dict renders the information dictionary's PDF object body.
func (info DocInfo) Dict() Dict {
	d := Dict{}
	if info.Title != "" {
		d["Title"] = TextString(info.Title)
	}
	if info.Author != "" {
		d["Author"] = TextString(info.Author)
	}
	producer := info.Producer
	if producer == "" {
		producer = "capypdf"
	}
	d["Producer"] = TextString(producer)
	if !info.Created.IsZero() {
		d["CreationDate"] = dateString(info.Created)
	}
	if !info.Modified.IsZero() {
		d["ModDate"] = dateString(info.Modified)
	}
	return d
}

func dateString(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	return String(s[:k] + "'" + s[k:])
}

// TextString encodes s for use as a PDF "text string": plain ASCII
// passes through as a literal string, anything outside 7-bit ASCII is
// written as a hex string carrying a UTF-16BE byte-order mark, per
// §4.1's string-escaping rule.
func TextString(s string) Object {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return HexString(utf16BEWithBOM(s))
		}
	}
	return String(s)
}

func utf16BEWithBOM(s string) []byte {
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Encoding a valid UTF-8 string to UTF-16BE cannot fail; if it
		// somehow does, fall back to a BOM-only, content-free string
		// rather than propagating a panic into a string-escaping helper.
		return []byte{0xFE, 0xFF}
	}
	return out
}
