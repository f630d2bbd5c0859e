package expr

// Strictness controls which catalog identifiers the validator accepts.
type Strictness int

const (
	// AllowAny accepts unknown, deprecated, and current identifiers.
	AllowAny Strictness = iota
	// AllowDeprecated rejects unknown identifiers but accepts deprecated
	// and current ones.
	AllowDeprecated
	// AllowCurrent rejects anything but current, non-deprecated
	// identifiers.
	AllowCurrent
)

func (s Strictness) String() string {
	switch s {
	case AllowAny:
		return "AllowAny"
	case AllowDeprecated:
		return "AllowDeprecated"
	case AllowCurrent:
		return "AllowCurrent"
	default:
		return "?"
	}
}
