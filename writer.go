package capypdf

import (
	"fmt"
	"io"
)

// countingWriter wraps an io.Writer and tracks the number of bytes
// written so far, the way the teacher's posWriter tracks file
// position for a sequential, non-seeking PDF writer.
type countingWriter struct {
	w   io.Writer
	pos int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.pos += int64(n)
	return n, err
}

// xRefEntry records where one indirect object landed in the file.
type xRefEntry struct {
	Offset     int64
	Generation uint16
	Free       bool
}

// Writer is the document assembler's low-level half: it owns the
// output byte stream, allocates object numbers in write order, and
// remembers the offset of every object it has written so it can
// produce the cross-reference table at close time.
//
// A Writer is not safe for concurrent use; per the spec's concurrency
// model the document assembler must only ever be driven from one
// goroutine at a time.
type Writer struct {
	out     *countingWriter
	nextNum int
	entries []xRefEntry // index 0 is the reserved free-list head

	err       error
	finalized bool
}

// NewWriter writes the PDF header and the binary marker comment and
// returns a Writer ready to accept indirect objects. Object number 1
// is reserved by convention for the document information dictionary
// (see DocInfo).
func NewWriter(w io.Writer) (*Writer, error) {
	cw := &countingWriter{w: w}
	if _, err := cw.Write(Header); err != nil {
		return nil, WrapIOError("header", err)
	}
	wr := &Writer{
		out:     cw,
		nextNum: 1,
		entries: []xRefEntry{{Generation: 65535, Free: true}},
	}
	return wr, nil
}

// Closed reports whether WriteXRefAndTrailer has already produced the
// trailer.
func (w *Writer) Closed() bool { return w.finalized }

// Err returns the first write error encountered, if any. Once set, no
// further writes are attempted.
func (w *Writer) Err() error { return w.err }

// Pos returns the writer's current byte offset into the output file.
func (w *Writer) Pos() int64 { return w.out.pos }

// NextObjectNumber returns the object number that will be assigned to
// the next call to WriteIndirect, without allocating it. The page
// builder's close protocol uses this to predict the page tree root's
// future object number before any page objects are written.
func (w *Writer) NextObjectNumber() int { return w.nextNum }

// WriteIndirect serializes obj as a complete indirect object
// ("N 0 obj\n...\nendobj\n") and returns the object number it was
// assigned. Objects are always written with generation 0; generation
// 65535 is reserved for the free-list head at object 0.
func (w *Writer) WriteIndirect(obj Object) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.finalized {
		return 0, NewError(ErrDoubleFinalize, "WriteIndirect after Close")
	}

	num := w.nextNum
	w.nextNum++
	offset := w.out.pos

	if _, err := fmt.Fprintf(w.out, "%d 0 obj\n", num); err != nil {
		w.err = WrapIOError("object header", err)
		return 0, w.err
	}
	if err := obj.WritePDF(w.out); err != nil {
		w.err = WrapIOError("object body", err)
		return 0, w.err
	}
	if _, err := io.WriteString(w.out, "\nendobj\n"); err != nil {
		w.err = WrapIOError("endobj", err)
		return 0, w.err
	}

	w.entries = append(w.entries, xRefEntry{Offset: offset, Generation: 0})
	debugAssert(len(w.entries) == num+1, "object table out of sync with object number")
	if len(w.entries) != num+1 {
		w.err = NewError(ErrIO, "object table out of sync with object number")
		return 0, w.err
	}
	return num, nil
}

// WriteStream writes a stream object whose dictionary is extended
// with /Length set to len(data), following the spec's
// "<< /Length N >>\nstream\n<bytes>\nendstream\n" framing.
func (w *Writer) WriteStream(dict Dict, data []byte) (int, error) {
	if dict == nil {
		dict = Dict{}
	}
	dict["Length"] = Integer(len(data))
	return w.WriteIndirect(&Stream{Dict: dict, Data: data})
}

// Ref builds a Reference to an object number already written, or one
// that the caller knows will be written at exactly this number (used
// for the page-tree parent reference, which is predicted before the
// Pages object itself is emitted).
func Ref(number int) Reference { return Reference{Number: number} }
