package domain

type AccountID string

// CheckConfig is the resolved input of a single check run.
type CheckConfig struct {
	Account  AccountID
	Warning  int
	Critical int
	Verbose  bool
	PerfData bool
}
