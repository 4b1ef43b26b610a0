package constants

// Precision is the segmentation strictness tier. It controls the minimum clause
// body length and how broad the marker-pattern set is.
type Precision string

const (
	PrecisionLoose  Precision = "LOOSE"
	PrecisionMedium Precision = "MEDIUM"
	PrecisionStrict Precision = "STRICT"
)

// MinBodyLen returns the minimum clause body length (in bytes) for the tier.
// Bodies shorter than this are dropped as likely mis-segmentation.
func (p Precision) MinBodyLen() int {
	switch p {
	case PrecisionLoose:
		return 10
	case PrecisionStrict:
		return 40
	default:
		return 20
	}
}

// ParsePrecision maps a config string to a tier, defaulting to MEDIUM.
func ParsePrecision(s string) Precision {
	switch Precision(s) {
	case PrecisionLoose, PrecisionMedium, PrecisionStrict:
		return Precision(s)
	}
	return PrecisionMedium
}
