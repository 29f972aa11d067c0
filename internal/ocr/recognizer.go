// Package ocr turns a captured image into the ordered sequence of text lines
// the document parsers consume. The engine is a black box: lines come back in
// the scanner's top-to-bottom, left-to-right detection order and may contain
// noise lines with no semantic meaning.
package ocr

import (
	"context"
	"errors"
	"strings"
)

// ErrNoText reports that the engine ran but produced no usable output at all.
// An empty line set from a readable image is not an error.
var ErrNoText = errors.New("ocr: no text recognized")

// Config selects and tunes the recognition backend.
type Config struct {
	Backend string // "tesseract" | "vision"

	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	PSM           int // e.g. 6 for a uniform block of text
	OEM           int // 1 = LSTM; leave 0 for engine default
}

// Recognizer is the OCR boundary: one image in, ordered text lines out.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) ([]string, error)
}

// SplitLines breaks raw engine output into trimmed, non-empty lines,
// preserving detection order.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
