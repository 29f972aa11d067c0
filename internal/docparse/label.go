// Package docparse turns the ordered text lines recognized on one scanned
// document (pharmacy label, certificate of analysis, or vial) into structured
// field values and a prescription-number reconciliation decision. Parsers are
// pure: they return new values instead of mutating shared state, so the
// capture session applies results on its own goroutine.
package docparse

import (
	"strings"

	"github.com/unithera/vialscan/internal/fieldmatch"
)

// LabelFields holds everything extracted from one pharmacy-label scan.
// A label scan starts a fresh record, so zero values here mean "not found".
type LabelFields struct {
	Radiopharmaceutical string
	Rx                  string // digits only
	PatientID           string
	ActualAmount        string
	CalibrationDate     string
	LotNumber           string
	OrderedAmount       string
	Volume              string
	Manufacturer        string
}

// ParseLabel classifies each recognized line and routes its value into the
// matching field. The value is whatever follows the first ':', '#' or '-' on
// the line; lines without a delimiter take the following line as their value.
// Later lines overwrite earlier ones, except the patient ID which keeps the
// highest-confidence non-empty candidate (first seen wins ties).
func ParseLabel(lines []string) LabelFields {
	var f LabelFields
	var bestPatientID struct {
		value      string
		confidence float64
	}

	for i, line := range lines {
		m, ok := fieldmatch.Classify(line)
		if !ok {
			continue
		}
		value := extractValue(lines, i)

		switch m.Field {
		case fieldmatch.FieldRadiopharmaceutical:
			f.Radiopharmaceutical = value
		case fieldmatch.FieldRx:
			f.Rx = DigitsOnly(value)
		case fieldmatch.FieldPatientID:
			if m.Confidence > bestPatientID.confidence && value != "" {
				bestPatientID.value = value
				bestPatientID.confidence = m.Confidence
			}
		case fieldmatch.FieldActualAmount:
			f.ActualAmount = value
		case fieldmatch.FieldCalibrationDate:
			f.CalibrationDate = value
		case fieldmatch.FieldLotNumber:
			f.LotNumber = strings.TrimSpace(strings.ReplaceAll(value, ":", ""))
		case fieldmatch.FieldOrderedAmount:
			f.OrderedAmount = value
		case fieldmatch.FieldVolume:
			f.Volume = value
		case fieldmatch.FieldManufacturer:
			f.Manufacturer = value
		}
	}

	f.PatientID = bestPatientID.value
	return f
}

// extractValue pulls the field value for the line at index i: the remainder
// after the first ':', '#' or '-', or failing that the next line, or "".
func extractValue(lines []string, i int) string {
	line := lines[i]
	if idx := strings.IndexAny(line, ":#-"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	if i+1 < len(lines) {
		return strings.TrimSpace(lines[i+1])
	}
	return ""
}

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
