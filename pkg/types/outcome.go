package types

import "fmt"

// Status is the reachability classification of a probed host
type Status uint8

const (
	StatusDown Status = iota
	StatusUp
)

func (s Status) String() string {
	switch s {
	case StatusUp:
		return "up"
	case StatusDown:
		return "down"
	default:
		return "unknown"
	}
}

// Outcome is the result of probing a single host address.
// It is created once per host and never modified afterwards.
type Outcome struct {
	IP     string
	Status Status

	// Unavailable is set when the probe mechanism itself could not be
	// launched. Such hosts are always classified down. Its message is
	// expected to read "probe unavailable: <cause>".
	Unavailable error
}

// IsUp reports whether the host answered at least one echo request
func (o Outcome) IsUp() bool {
	return o.Status == StatusUp
}

// LogLine renders the audit log line for the outcome (without newline)
func (o Outcome) LogLine() string {
	if o.Status == StatusUp {
		return fmt.Sprintf("%s is up!", o.IP)
	}
	if o.Unavailable != nil {
		return fmt.Sprintf("%s is down or can't be pinged! (%v)", o.IP, o.Unavailable)
	}
	return fmt.Sprintf("%s is down or can't be pinged!", o.IP)
}
