// Package fieldmatch classifies a single OCR-recognized line of text as one of
// the label field types, tolerating scanner noise (misread characters, dropped
// punctuation) via edit-distance matching.
package fieldmatch

import (
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// FieldType tags the semantic meaning of a recognized line.
type FieldType int

const (
	FieldUnknown FieldType = iota
	FieldRadiopharmaceutical
	FieldRx
	FieldPatientID
	FieldActualAmount
	FieldCalibrationDate
	FieldLotNumber
	FieldOrderedAmount
	FieldVolume
	FieldManufacturer
)

var fieldNames = map[FieldType]string{
	FieldUnknown:             "Unknown",
	FieldRadiopharmaceutical: "Radiopharmaceutical",
	FieldRx:                  "Rx",
	FieldPatientID:           "PatientID",
	FieldActualAmount:        "ActualAmount",
	FieldCalibrationDate:     "CalibrationDate",
	FieldLotNumber:           "LotNumber",
	FieldOrderedAmount:       "OrderedAmount",
	FieldVolume:              "Volume",
	FieldManufacturer:        "Manufacturer",
}

func (f FieldType) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return "Unknown"
}

// MatchThreshold is the minimum fuzzy confidence for a field classification.
const MatchThreshold = 0.7

// dispAmtPrefix bypasses fuzzy scoring entirely; dispensed-amount lines on the
// shield label carry this literal prefix and collide badly with other amounts.
const dispAmtPrefix = "disp amt :"

// Match is the best-scoring field interpretation of a line.
type Match struct {
	Field      FieldType
	Confidence float64
}

type identifierGroup struct {
	field       FieldType
	identifiers []string
}

// identifierTable maps each field type to the literal label strings that
// announce it on printed documents. The slice order is the tie-break order:
// the first exact prefix match in declaration order wins.
var identifierTable = []identifierGroup{
	{FieldRadiopharmaceutical, []string{"Product", "Prod"}},
	{FieldRx, []string{"RX#", "Rx#"}},
	{FieldPatientID, []string{"Patient:", "Patient :", "Patient.", "Subject:", "Subject :"}},
	{FieldActualAmount, []string{"Disp Amt :", "Actual Amt :", "Actual Amount :"}},
	{FieldCalibrationDate, []string{"Cal", "Calibration", "elibration"}},
	{FieldLotNumber, []string{"Lot", "BOSEN", "Batch", "Lo#"}},
	{FieldOrderedAmount, []string{"Ordered Amount:", "Ordered Amount :", "Order Amount:", "Order Amt:"}},
	{FieldVolume, []string{"Volume:", "Volume :", "Vol:", "Vol :"}},
	{FieldManufacturer, []string{"Manufacturer:", "Manufacturer :", "Mfr:", "Mfr :"}},
}

// Classify returns the best field interpretation of a raw recognized line.
// An exact prefix match against a cleaned identifier scores 1.0 and
// short-circuits; otherwise the best fuzzy score above MatchThreshold wins.
// The second return is false when no identifier matched at all.
func Classify(line string) (Match, bool) {
	if strings.HasPrefix(strings.ToLower(line), dispAmtPrefix) {
		return Match{Field: FieldActualAmount, Confidence: 1.0}, true
	}

	cleanLine := clean(strings.TrimSpace(strings.ToLower(line)))

	var best Match
	for _, grp := range identifierTable {
		for _, ident := range grp.identifiers {
			cleanIdent := clean(strings.ToLower(ident))

			if strings.HasPrefix(cleanLine, cleanIdent) {
				return Match{Field: grp.field, Confidence: 1.0}, true
			}

			if c := Confidence(cleanLine, cleanIdent); c > best.Confidence && c > MatchThreshold {
				best = Match{Field: grp.field, Confidence: c}
			}
		}
	}

	if best.Confidence > 0 {
		return best, true
	}
	return Match{}, false
}

// Confidence scores how closely text matches identifier: the line is split
// into whitespace-separated words and each word is compared by normalized
// edit distance; the best word wins.
func Confidence(text, identifier string) float64 {
	var max float64
	for _, word := range strings.Fields(text) {
		length := utf8.RuneCountInString(word)
		if n := utf8.RuneCountInString(identifier); n > length {
			length = n
		}
		if length == 0 {
			continue
		}
		d := levenshtein.Distance(word, identifier, nil)
		if c := 1.0 - float64(d)/float64(length); c > max {
			max = c
		}
	}
	return max
}

// PhraseConfidence scores a multi-word phrase against free text using the
// same normalized edit distance as Confidence: the phrase is compared to
// every run of the same number of consecutive words in the text and the best
// window wins.
func PhraseConfidence(text, phrase string) float64 {
	words := strings.Fields(text)
	n := len(strings.Fields(phrase))
	if n == 0 {
		return 0
	}
	if len(words) < n {
		return windowConfidence(strings.Join(words, " "), phrase)
	}
	var max float64
	for i := 0; i+n <= len(words); i++ {
		if c := windowConfidence(strings.Join(words[i:i+n], " "), phrase); c > max {
			max = c
		}
	}
	return max
}

func windowConfidence(window, phrase string) float64 {
	length := utf8.RuneCountInString(window)
	if n := utf8.RuneCountInString(phrase); n > length {
		length = n
	}
	if length == 0 {
		return 0
	}
	d := levenshtein.Distance(window, phrase, nil)
	return 1.0 - float64(d)/float64(length)
}

func clean(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ":", ""))
}
