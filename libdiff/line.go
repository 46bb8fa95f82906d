package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff compares a and b line by line and returns every line
// prefixed with "-" (only in a), "+" (only in b) or " " (in both).
// It returns "" when a and b are equal.
func LineDiff(a, b string) string {
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	out := &strings.Builder{}
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				out.WriteByte('\n')
			}
		}
	}
	return out.String()
}
