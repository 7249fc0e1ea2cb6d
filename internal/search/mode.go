package search

// Mode selects how a query is compared against each line.
type Mode int

const (
	// CaseSensitive matches the query byte for byte.
	CaseSensitive Mode = iota
	// CaseInsensitive lowercases both query and line before comparing.
	CaseInsensitive
)

// String returns the mode name used in logs and settings.
func (m Mode) String() string {
	switch m {
	case CaseInsensitive:
		return "insensitive"
	default:
		return "sensitive"
	}
}

// ModeFromCaseInsensitive maps a presence flag to a Mode.
func ModeFromCaseInsensitive(insensitive bool) Mode {
	if insensitive {
		return CaseInsensitive
	}
	return CaseSensitive
}
