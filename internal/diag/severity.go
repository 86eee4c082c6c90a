package diag

// Severity defines the importance of a diagnostic. Warnings are findings the
// formatter corrects in place; errors require manual source changes.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for auto-corrected findings, reported for transparency.
	SevWarning
	// SevError is for findings that cannot be fixed automatically.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
