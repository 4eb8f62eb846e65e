package capypdf

import (
	"fmt"
	"io"
)

// xrefEntryWidth is the fixed byte width of every table entry,
// including its trailing newline. The spec mandates exactly 20 bytes
// per entry so that readers can index into the table directly.
const xrefEntryWidth = 20

// WriteXRefAndTrailer emits the classic cross-reference table and
// trailer, then "%%EOF\n", and marks the writer finalized. It must be
// called exactly once, after every indirect object the document needs
// has already been written.
//
// root is the catalog's object number and info is the document
// information dictionary's object number (conventionally 1).
func (w *Writer) WriteXRefAndTrailer(root, info int) error {
	if w.err != nil {
		return w.err
	}
	if w.finalized {
		return NewError(ErrDoubleFinalize, "document already closed")
	}

	xrefPos := w.out.pos
	n := len(w.entries)

	if _, err := fmt.Fprintf(w.out, "xref\n0 %d\n", n); err != nil {
		return w.fail("xref header", err)
	}
	for i, e := range w.entries {
		var line string
		if i == 0 || e.Free {
			line = fmt.Sprintf("%010d %05d f \n", 0, 65535)
		} else {
			line = fmt.Sprintf("%010d %05d n \n", e.Offset, e.Generation)
		}
		if len(line) != xrefEntryWidth {
			return w.fail("xref entry", fmt.Errorf("entry %d has width %d, want %d", i, len(line), xrefEntryWidth))
		}
		if _, err := io.WriteString(w.out, line); err != nil {
			return w.fail("xref entry", err)
		}
	}

	trailer := fmt.Sprintf("trailer\n<<\n /Size %d\n /Root %d 0 R\n /Info %d 0 R\n>>\nstartxref\n%d\n%%%%EOF\n",
		n, root, info, xrefPos)
	if _, err := io.WriteString(w.out, trailer); err != nil {
		return w.fail("trailer", err)
	}

	w.finalized = true
	return nil
}

func (w *Writer) fail(subject string, cause error) error {
	w.err = WrapIOError(subject, cause)
	return w.err
}
