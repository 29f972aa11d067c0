package docparse

import "strings"

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// FormatCalibration normalizes a raw calibration string like
// "05Feb2025 10:30 ET" into "2025-02-05 10:30:00". The second return is false
// when the raw string does not follow the expected shape; callers keep the
// raw value in that case.
func FormatCalibration(raw string) (string, bool) {
	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return raw, false
	}
	date, clock := parts[0], parts[1]
	if len(date) < 9 {
		return raw, false
	}

	day := date[:2]
	month := strings.ToLower(date[2:5])
	year := date[len(date)-4:]

	num, ok := monthNumbers[month]
	if !ok {
		num = "01"
	}
	return year + "-" + num + "-" + day + " " + clock + ":00", true
}

// SplitCalibration separates a normalized calibration string into its date
// and time components.
func SplitCalibration(formatted string) (date, clock string) {
	parts := strings.SplitN(formatted, " ", 2)
	date = parts[0]
	if len(parts) > 1 {
		clock = parts[1]
	}
	return date, clock
}

// NumericVolume keeps the digits and decimal points of a volume string, so
// "10.5 mL" becomes "10.5".
func NumericVolume(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
}
