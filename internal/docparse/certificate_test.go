package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCertificate(t *testing.T) {
	t.Parallel()

	lines := []string{
		"CERTIFICATE OF ANALYSIS",
		"Calibration Date and Time",
		"05Feb2025 10:30 ET",
		"Radioactivity Concentration",
		"370 MBq/mL at calibration",
	}

	f := ParseCertificate(lines)
	assert.Equal(t, "05Feb2025 10:30 ET", f.TimeOfCalibration)
	assert.Equal(t, "370 MBq/mL at calibration", f.RadioactivityConcentration)
}

func TestParseCertificateFuzzyHeading(t *testing.T) {
	t.Parallel()

	// Misread heading characters still trigger the calibration search.
	lines := []string{
		"Callbration Date and Tlme",
		"12Dec2025 08:15 CST",
	}
	f := ParseCertificate(lines)
	assert.Equal(t, "12Dec2025 08:15 CST", f.TimeOfCalibration)
}

func TestParseCertificateNoHeadingNoCalibration(t *testing.T) {
	t.Parallel()

	// A plausible timestamp line without the heading is ignored.
	lines := []string{
		"Expiry",
		"05Feb2025 10:30 ET",
	}
	f := ParseCertificate(lines)
	assert.Empty(t, f.TimeOfCalibration)
}

func TestParseCertificateTimezoneMustBeStandaloneWord(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Time of Calibration",
		"05Feb2025 target",             // "et" embedded in "target" must not count
		"05Feb2025 10:30 ET reference", // standalone token counts
	}
	f := ParseCertificate(lines)
	assert.Equal(t, "05Feb2025 10:30 ET reference", f.TimeOfCalibration)
}

func TestParseCertificateConcentrationWindow(t *testing.T) {
	t.Parallel()

	// The unit must appear within the three lines after the heading.
	lines := []string{
		"Radioactivity Concentration",
		"see below",
		"note",
		"another note",
		"370 MBq/mL",
	}
	f := ParseCertificate(lines)
	assert.Empty(t, f.RadioactivityConcentration)

	lines = []string{
		"Radioactivity Concentration",
		"see below",
		"370 MBq / mL",
	}
	f = ParseCertificate(lines)
	assert.Equal(t, "370 MBq / mL", f.RadioactivityConcentration)
}

func TestParseCertificateEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CertificateFields{}, ParseCertificate(nil))
}
