// Package types - Energy method tags
package types

// Method identifies the estimation method actually used for an option
type Method string

const (
	// MethodFullLoad estimates from the full-load EER alone
	MethodFullLoad Method = "full-load"

	// MethodIPLV treats IPLV as a single effective seasonal EER
	MethodIPLV Method = "iplv"

	// MethodPartLoad uses the 4-point binned part-load estimate
	MethodPartLoad Method = "part-load"
)

// String returns the string representation
func (m Method) String() string {
	return string(m)
}

// Label returns a human-readable method name for reports
func (m Method) Label() string {
	switch m {
	case MethodPartLoad:
		return "4-point part-load"
	case MethodIPLV:
		return "IPLV"
	case MethodFullLoad:
		return "Full-load EER"
	default:
		return string(m)
	}
}

// MethodChoice is the user's requested estimation method
type MethodChoice string

const (
	// ChoiceAuto picks the most granular data actually supplied
	ChoiceAuto MethodChoice = "auto"

	// ChoiceIPLVOnly requests the IPLV method
	ChoiceIPLVOnly MethodChoice = "iplv"

	// ChoicePartLoad requests the 4-point part-load method
	ChoicePartLoad MethodChoice = "part-load"
)
