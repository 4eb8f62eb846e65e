package content

import (
	"strings"
	"testing"
)

func TestMoveToLineToEmitsOperators(t *testing.T) {
	b := newTestBuilder(t)
	b.MoveTo(1, 2)
	b.LineTo(3, 4)
	b.Stroke()
	if _, err := b.Finalize(); err != nil {
		t.Fatal(err)
	}
	out := b.buf.String()
	if !strings.Contains(out, "1 2 m\n") {
		t.Errorf("missing 'm' operator, got %q", out)
	}
	if !strings.Contains(out, "3 4 l\n") {
		t.Errorf("missing 'l' operator, got %q", out)
	}
	if !strings.Contains(out, "S\n") {
		t.Errorf("missing 'S' operator, got %q", out)
	}
}

func TestCurveAndClosePath(t *testing.T) {
	b := newTestBuilder(t)
	b.MoveTo(0, 0)
	b.CurveTo(1, 1, 2, 2, 3, 3)
	b.ClosePath()
	b.Fill()
	out := b.buf.String()
	if !strings.Contains(out, "1 1 2 2 3 3 c\n") {
		t.Errorf("missing 'c' operator, got %q", out)
	}
	if !strings.Contains(out, "h\n") {
		t.Errorf("missing 'h' operator, got %q", out)
	}
	if !strings.Contains(out, "f\n") {
		t.Errorf("missing 'f' operator, got %q", out)
	}
}

func TestLineToOutsidePathIsRejected(t *testing.T) {
	b := newTestBuilder(t)
	b.LineTo(1, 1)
	if b.Err() == nil {
		t.Fatal("LineTo() without a preceding MoveTo/Rectangle: want error, got nil")
	}
}

func TestClipThenEndPathReturnsToPageState(t *testing.T) {
	b := newTestBuilder(t)
	b.Rectangle(0, 0, 10, 10)
	b.ClipNonZero()
	b.EndPath()
	// back in objPage, so a fresh path can be started.
	b.MoveTo(0, 0)
	if b.Err() != nil {
		t.Fatalf("MoveTo() after clip/EndPath: %v", b.Err())
	}
}

func TestFillVariantsEmitExpectedOperator(t *testing.T) {
	cases := []struct {
		name string
		op   func(*Builder)
		want string
	}{
		{"FillEvenOdd", (*Builder).FillEvenOdd, "f*\n"},
		{"FillAndStroke", (*Builder).FillAndStroke, "B\n"},
		{"FillAndStrokeEvenOdd", (*Builder).FillAndStrokeEvenOdd, "B*\n"},
		{"CloseAndStroke", (*Builder).CloseAndStroke, "s\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBuilder(t)
			b.Rectangle(0, 0, 1, 1)
			tc.op(b)
			if !strings.HasSuffix(b.buf.String(), tc.want) {
				t.Errorf("%s: got %q, want suffix %q", tc.name, b.buf.String(), tc.want)
			}
		})
	}
}
