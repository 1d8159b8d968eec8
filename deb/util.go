package deb

import (
	"io"
	"strconv"
	"strings"
)

// countingWriter wraps an io.Writer and counts the bytes written.
// It also remembers the last error of the underlying writer so that callers
// can tell an I/O failure from a header encoding failure.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

// Write writes p to the underlying io.Writer and increments the byte count.
func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	if err != nil {
		cw.err = err
	}
	return n, err
}

// splitLines splits text into lines the way a line iterator does: on "\n",
// with a trailing "\r" left for the caller to trim, and without an extra empty
// line after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// parseSkipLines returns the number of leading license lines to drop.
// Anything that is not a non-negative decimal integer counts as 0.
func parseSkipLines(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
