package domain

import (
	"fmt"
	"time"
)

const PerfDataLabel = "days_till_exp"

type PerfData struct {
	Label    string
	Value    int
	Warning  int
	Critical int
}

// Report is the terminal value of a check: one severity and the text that
// goes after it on the plugin output line.
type Report struct {
	Severity Severity
	Summary  string
	PerfData *PerfData
}

func NewReport(severity Severity, format string, args ...any) Report {
	return Report{Severity: severity, Summary: fmt.Sprintf(format, args...)}
}

// ExpirationReport classifies the expiry relative to now.
func ExpirationReport(expiry Expiry, now time.Time, cfg CheckConfig) Report {
	days := expiry.DaysUntil(now)
	report := NewReport(
		Classify(days, cfg.Warning, cfg.Critical),
		"Mullvad VPN account expiration in %s (%s)",
		DaysLabel(days),
		expiry.Format(),
	)
	if cfg.PerfData {
		report.PerfData = &PerfData{
			Label:    PerfDataLabel,
			Value:    days,
			Warning:  cfg.Warning,
			Critical: cfg.Critical,
		}
	}

	return report
}

// ErrorReport is the catch-all outcome for failures that were not
// classified on the way.
func ErrorReport(err error) Report {
	return NewReport(SeverityUnknown, "Error Occurred:  %v", err)
}
