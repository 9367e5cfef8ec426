package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines in a diff.
type Stats struct {
	Added   int
	Removed int
}

// Unified renders a line-oriented unified diff of before and after under a
// single hunk. It returns "" when the inputs are identical. Output longer
// than 10,000 lines is truncated with a marker.
func Unified(before, after, beforeLabel, afterLabel string) (string, Stats) {
	if before == after {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var (
		body  []string
		stats Stats
	)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				body = append(body, " "+line)
			case diffmatchpatch.DiffDelete:
				body = append(body, "-"+line)
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				body = append(body, "+"+line)
				stats.Added++
			}
		}
	}

	header := []string{
		"--- " + beforeLabel,
		"+++ " + afterLabel,
		fmt.Sprintf("@@ -1,%d +1,%d @@", len(splitLines(before)), len(splitLines(after))),
	}
	lines := append(header, body...)
	if len(lines) > maxDiffLines {
		lines = append(lines[:maxDiffLines], truncateMessage)
	}
	return strings.Join(lines, "\n") + "\n", stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
