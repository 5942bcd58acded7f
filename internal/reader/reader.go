// Package reader streams raw lines from a log file, one at a time, so
// a miner never needs the whole file resident in memory.
package reader

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"
)

// maxLineSize bounds the longest single line the scanner will accept,
// matching the 1MB buffer every other streaming reader in this module
// family uses.
const maxLineSize = 1024 * 1024

// LineFunc is called once per valid UTF-8 line with its 1-based line
// number. An
// error return stops the stream (used for cancellation and for the
// job pool's should_stop semantics at the line-reader level).
type LineFunc func(lineNum int, raw string) error

// StreamFile opens path and streams its lines to fn.
func StreamFile(path string, fn LineFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Stream(f, fn)
}

// Stream reads lines from r and calls fn for each one. A line that is
// not valid UTF-8 is dropped with a warning; it still advances the
// line number.
func Stream(r io.Reader, fn LineFunc) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, maxLineSize)
	scanner.Buffer(buf, maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := scanner.Text()
		if !utf8.ValidString(text) {
			slog.Warn("dropping malformed (non-UTF-8) line", "line", lineNum)
			continue
		}
		if err := fn(lineNum, text); err != nil {
			return err
		}
	}
	return scanner.Err()
}
