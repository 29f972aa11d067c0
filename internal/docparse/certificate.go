package docparse

import (
	"regexp"
	"strings"

	"github.com/unithera/vialscan/internal/fieldmatch"
)

// CertificateFields holds what a certificate-of-analysis scan contributes:
// the raw time-of-calibration line and the radioactivity concentration line.
type CertificateFields struct {
	TimeOfCalibration          string
	RadioactivityConcentration string
}

// calibrationPhrases are the headings labs print above the calibration
// timestamp. Matched fuzzily so a few misread characters still hit.
var calibrationPhrases = []string{
	"calibration date and time",
	"time of calibration",
	"date and time of calibration",
}

var monthTokens = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// timezoneTokens are matched as standalone words; substrings like the "et"
// in "something" must not count.
var timezoneTokens = []string{
	"et", "est", "edt", "ct", "cst", "cdt",
	"mt", "mst", "mdt", "pt", "pst", "pdt",
	"utc", "gmt",
}

var concentrationUnits = []string{"mci/ml", "mbq/ml", "gbq/ml", "uci/ml", "µci/ml"}

var reYear = regexp.MustCompile(`20\d{2}`)

// ParseCertificate scans the recognized lines of a certificate of analysis.
// If the document mentions a calibration heading, the first line carrying a
// month abbreviation, a timezone token and a year is taken verbatim as the
// time of calibration. Independently, a line containing both "Radioactivity"
// and "Concentration" promotes the first of the next three lines that carries
// a concentration unit.
func ParseCertificate(lines []string) CertificateFields {
	var f CertificateFields

	blob := strings.ToLower(strings.Join(lines, " "))
	if hasCalibrationPhrase(blob) {
		for _, line := range lines {
			if isCalibrationTimeLine(line) {
				f.TimeOfCalibration = strings.TrimSpace(line)
				break
			}
		}
	}

	for i, line := range lines {
		low := strings.ToLower(line)
		if !strings.Contains(low, "radioactivity") || !strings.Contains(low, "concentration") {
			continue
		}
		for j := i + 1; j <= i+3 && j < len(lines); j++ {
			if containsConcentrationUnit(lines[j]) {
				f.RadioactivityConcentration = strings.TrimSpace(lines[j])
				break
			}
		}
		break
	}

	return f
}

func hasCalibrationPhrase(blob string) bool {
	for _, phrase := range calibrationPhrases {
		if strings.Contains(blob, phrase) {
			return true
		}
		if fieldmatch.PhraseConfidence(blob, phrase) > fieldmatch.MatchThreshold {
			return true
		}
	}
	return false
}

func isCalibrationTimeLine(line string) bool {
	low := strings.ToLower(line)
	if !reYear.MatchString(low) {
		return false
	}
	hasMonth := false
	for _, m := range monthTokens {
		if strings.Contains(low, m) {
			hasMonth = true
			break
		}
	}
	if !hasMonth {
		return false
	}
	for _, word := range strings.Fields(low) {
		for _, tz := range timezoneTokens {
			if word == tz {
				return true
			}
		}
	}
	return false
}

func containsConcentrationUnit(line string) bool {
	packed := strings.ReplaceAll(strings.ToLower(line), " ", "")
	for _, unit := range concentrationUnits {
		if strings.Contains(packed, unit) {
			return true
		}
	}
	return false
}
