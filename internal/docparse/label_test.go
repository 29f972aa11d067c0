package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLabel(t *testing.T) {
	t.Parallel()

	lines := []string{
		"UNITHERA PHARMACY",
		"Product: Lutathera 370 MBq/mL",
		"RX# 445566",
		"Patient: A1023",
		"Disp Amt : 201.5 mCi",
		"Cal: 05Feb2025",
		"Lot: LU-7789",
		"Volume: 25 mL",
		"Manufacturer: Advanced Accelerator Applications",
	}

	f := ParseLabel(lines)
	assert.Equal(t, "Lutathera 370 MBq/mL", f.Radiopharmaceutical)
	assert.Equal(t, "445566", f.Rx)
	assert.Equal(t, "A1023", f.PatientID)
	assert.Equal(t, "201.5 mCi", f.ActualAmount)
	assert.Equal(t, "05Feb2025", f.CalibrationDate)
	assert.Equal(t, "LU-7789", f.LotNumber)
	assert.Equal(t, "25 mL", f.Volume)
	assert.Equal(t, "Advanced Accelerator Applications", f.Manufacturer)
}

func TestParseLabelValueOnNextLine(t *testing.T) {
	t.Parallel()

	f := ParseLabel([]string{"Manufacturer", "Acme Corp"})
	assert.Equal(t, "Acme Corp", f.Manufacturer)
}

func TestParseLabelRxKeepsDigitsOnly(t *testing.T) {
	t.Parallel()

	f := ParseLabel([]string{"RX# 12-34"})
	assert.Equal(t, "1234", f.Rx)
}

func TestParseLabelPatientIDFirstSeenWinsTies(t *testing.T) {
	t.Parallel()

	// Both lines classify with confidence 1.0; a later candidate must beat,
	// not merely match, the earlier confidence.
	f := ParseLabel([]string{"Patient: A123", "Patient : B456"})
	assert.Equal(t, "A123", f.PatientID)
}

func TestParseLabelPatientIDSkipsEmptyValues(t *testing.T) {
	t.Parallel()

	f := ParseLabel([]string{"Patient:", "Patient : B456"})
	assert.Equal(t, "B456", f.PatientID)
}

func TestParseLabelIgnoresNoise(t *testing.T) {
	t.Parallel()

	f := ParseLabel([]string{"for intravenous use only", "keep refrigerated"})
	assert.Equal(t, LabelFields{}, f)
}

func TestParseLabelLaterLinesOverwrite(t *testing.T) {
	t.Parallel()

	f := ParseLabel([]string{"Volume: 20 mL", "Volume: 25 mL"})
	assert.Equal(t, "25 mL", f.Volume)
}

func TestDigitsOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"445566", "445566"},
		{"rx 44-55.66", "445566"},
		{"no digits", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DigitsOnly(tt.in), "input %q", tt.in)
	}
}
