package constants

// ScanType identifies which physical document a captured image shows.
type ScanType string

// Stable values (store these exact strings in DB).
const (
	ScanTypeLargeLabel ScanType = "LARGE_LABEL" // pharmacy label on the shield
	ScanTypeCOA        ScanType = "COA"         // certificate of analysis
	ScanTypeVial       ScanType = "VIAL"        // the vial itself
)

// ScanTypes lists all scan types in capture order.
var ScanTypes = []ScanType{ScanTypeLargeLabel, ScanTypeCOA, ScanTypeVial}

// AsStrings returns the scan type values for enum validation.
func AsStrings() []string {
	out := make([]string, 0, len(ScanTypes))
	for _, st := range ScanTypes {
		out = append(out, string(st))
	}
	return out
}

// StoragePrefix returns the object-store key prefix for images of this scan type.
func (s ScanType) StoragePrefix() string {
	switch s {
	case ScanTypeLargeLabel:
		return "largeLabel/"
	case ScanTypeCOA:
		return "coa/"
	case ScanTypeVial:
		return "pharma-documents/"
	default:
		return "misc/"
	}
}

// ParseScanType maps a wire value to a ScanType.
func ParseScanType(s string) (ScanType, bool) {
	switch ScanType(s) {
	case ScanTypeLargeLabel, ScanTypeCOA, ScanTypeVial:
		return ScanType(s), true
	}
	return "", false
}
