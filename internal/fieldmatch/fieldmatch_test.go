package fieldmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExactPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want FieldType
	}{
		{name: "product", line: "Product: Lutathera", want: FieldRadiopharmaceutical},
		{name: "prod abbreviation", line: "Prod Lutathera", want: FieldRadiopharmaceutical},
		{name: "rx hash", line: "RX# 123456", want: FieldRx},
		{name: "rx lowercase hash", line: "Rx# 123456", want: FieldRx},
		{name: "patient colon", line: "Patient: A1023", want: FieldPatientID},
		{name: "subject", line: "Subject: A1023", want: FieldPatientID},
		{name: "disp amt literal", line: "Disp Amt : 201 mCi", want: FieldActualAmount},
		{name: "actual amount", line: "Actual Amount : 200.9 mCi", want: FieldActualAmount},
		{name: "cal", line: "Cal 05Feb2025 10:30 ET", want: FieldCalibrationDate},
		{name: "ocr-mangled calibration", line: "elibration 05Feb2025", want: FieldCalibrationDate},
		{name: "lot", line: "Lot: ABC-123", want: FieldLotNumber},
		{name: "bosen misread", line: "BOSEN 44521", want: FieldLotNumber},
		{name: "ordered amount", line: "Ordered Amount: 200 mCi", want: FieldOrderedAmount},
		{name: "volume", line: "Volume: 25 mL", want: FieldVolume},
		{name: "vol", line: "Vol: 25 mL", want: FieldVolume},
		{name: "manufacturer", line: "Manufacturer: Advanced Accelerator Applications", want: FieldManufacturer},
		{name: "mfr", line: "Mfr: AAA", want: FieldManufacturer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, ok := Classify(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, m.Field)
			assert.InDelta(t, 1.0, m.Confidence, 1e-9)
		})
	}
}

func TestClassifyDispAmtBypassIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	m, ok := Classify("disp amt : 180 mCi")
	require.True(t, ok)
	assert.Equal(t, FieldActualAmount, m.Field)
	assert.InDelta(t, 1.0, m.Confidence, 1e-9)
}

func TestClassifyFuzzy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want FieldType
	}{
		// One misread character still classifies.
		{name: "oroduct", line: "Oroduct Lutathera", want: FieldRadiopharmaceutical},
		{name: "patlent", line: "Patlent: A1023", want: FieldPatientID},
		{name: "wolume", line: "Wolume: 25 mL", want: FieldVolume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, ok := Classify(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, m.Field)
			assert.Greater(t, m.Confidence, MatchThreshold)
			assert.Less(t, m.Confidence, 1.0)
		})
	}
}

func TestClassifyNoMatch(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"", "   ", "xqzw 123", "for intravenous use only"} {
		_, ok := Classify(line)
		assert.False(t, ok, "line %q should not classify", line)
	}
}

func TestClassifyTieBreakOrder(t *testing.T) {
	t.Parallel()

	// "Calibration" also contains "elibration", but the calibration group
	// comes first in declaration order and an exact prefix short-circuits.
	m, ok := Classify("Calibration: 05Feb2025")
	require.True(t, ok)
	assert.Equal(t, FieldCalibrationDate, m.Field)
}

func TestConfidence(t *testing.T) {
	t.Parallel()

	// Identical word scores 1.0.
	assert.InDelta(t, 1.0, Confidence("product", "product"), 1e-9)

	// One edit over seven runes.
	assert.InDelta(t, 1.0-1.0/7.0, Confidence("producl", "product"), 1e-9)

	// Best word in the line wins.
	assert.InDelta(t, 1.0, Confidence("some noise product here", "product"), 1e-9)

	// Empty inputs never score.
	assert.Zero(t, Confidence("", "product"))
	assert.Zero(t, Confidence("product", ""))
}

func TestConfidenceSymmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"product", "producl"},
		{"patient", "patlent"},
		{"volume", "volune"},
	}
	for _, p := range pairs {
		assert.InDelta(t, Confidence(p[0], p[1]), Confidence(p[1], p[0]), 1e-9)
	}
}

func TestPhraseConfidence(t *testing.T) {
	t.Parallel()

	// Exact phrase embedded in noise.
	c := PhraseConfidence("section 4 time of calibration 05feb2025", "time of calibration")
	assert.InDelta(t, 1.0, c, 1e-9)

	// A couple of misread characters stay above the threshold.
	c = PhraseConfidence("tine of calibratlon 05feb2025", "time of calibration")
	assert.Greater(t, c, MatchThreshold)

	// Unrelated text stays below it.
	c = PhraseConfidence("total radioactivity at expiry", "time of calibration")
	assert.Less(t, c, MatchThreshold)

	assert.Zero(t, PhraseConfidence("anything", ""))
}
