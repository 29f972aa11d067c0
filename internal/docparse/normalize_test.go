package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCalibration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "standard", in: "05Feb2025 10:30 ET", want: "2025-02-05 10:30:00", wantOK: true},
		{name: "december", in: "31Dec2024 23:59 PST", want: "2024-12-31 23:59:00", wantOK: true},
		{name: "unknown month falls back to january", in: "05Xyz2025 10:30", want: "2025-01-05 10:30:00", wantOK: true},
		{name: "single token", in: "pending", want: "pending"},
		{name: "short date", in: "05Feb25 10:30", want: "05Feb25 10:30"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := FormatCalibration(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitCalibration(t *testing.T) {
	t.Parallel()

	date, clock := SplitCalibration("2025-02-05 10:30:00")
	assert.Equal(t, "2025-02-05", date)
	assert.Equal(t, "10:30:00", clock)

	date, clock = SplitCalibration("2025-02-05")
	assert.Equal(t, "2025-02-05", date)
	assert.Empty(t, clock)
}

func TestNumericVolume(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10.5", NumericVolume("10.5 mL"))
	assert.Equal(t, "25", NumericVolume("Volume 25"))
	assert.Empty(t, NumericVolume("unknown"))
}
