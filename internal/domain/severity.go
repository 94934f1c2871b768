package domain

type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityCritical
	SeverityUnknown
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the severity onto the monitoring plugin exit status.
func (s Severity) ExitCode() int {
	switch s {
	case SeverityOK, SeverityWarning, SeverityCritical:
		return int(s)
	default:
		return int(SeverityUnknown)
	}
}

// Classify compares the remaining days against the thresholds. Critical is
// checked first, so a critical threshold above the warning one wins.
func Classify(days, warning, critical int) Severity {
	switch {
	case days <= critical:
		return SeverityCritical
	case days <= warning:
		return SeverityWarning
	default:
		return SeverityOK
	}
}
