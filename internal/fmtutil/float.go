// Package fmtutil formats numbers the way PDF content streams expect:
// minimal decimal representations with no trailing zeros.
package fmtutil

import (
	"regexp"
	"strconv"
	"strings"
)

// Float formats x with at most precision digits after the decimal
// point, trimming trailing zeros and a leading "0" before the point
// (PDF numbers never need it).
func Float(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if strings.HasPrefix(out, "0.") {
		out = out[1:]
	} else if strings.HasPrefix(out, "-0.") {
		out = "-" + out[2:]
	}
	return out
}

var tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
