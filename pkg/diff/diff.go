// Package diff produces line-oriented unified diffs for snapshot comparison.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified returns a unified diff from want to got, or "" when they are
// identical. Output longer than 10,000 lines is truncated with a marker.
func Unified(want, got []byte, wantLabel, gotLabel string) string {
	if bytes.Equal(want, got) {
		return ""
	}

	dmp := diffmatchpatch.New()
	wantChars, gotChars, lines := dmp.DiffLinesToChars(string(want), string(got))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(wantChars, gotChars, false), lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", wantLabel)
	fmt.Fprintf(&buf, "+++ %s\n", gotLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(want), countLines(got))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	out := strings.Split(result, "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(data []byte) int {
	return len(splitLines(string(data)))
}
