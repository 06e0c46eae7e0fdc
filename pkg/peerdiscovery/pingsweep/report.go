package pingsweep

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/projectdiscovery/subnetping/pkg/netutil"
	"github.com/projectdiscovery/subnetping/pkg/types"
)

// SummaryWriter records the closing summary of a sweep
type SummaryWriter interface {
	WriteSummary(summary string, finished time.Time, interrupted bool) error
}

// Exporter persists the sorted outcomes of a finished sweep
type Exporter interface {
	Export(outcomes []types.Outcome) error
}

// Report is the result of a sweep, sorted by ascending numeric address
type Report struct {
	Total       int
	Up          int
	Outcomes    []types.Outcome
	Completed   time.Time
	Interrupted bool
}

// NewReport sorts outcomes and builds the report
func NewReport(total, up int, outcomes []types.Outcome) *Report {
	SortOutcomes(outcomes)
	return &Report{
		Total:    total,
		Up:       up,
		Outcomes: outcomes,
	}
}

// SortOutcomes orders outcomes by ascending numeric address, IPv4 first
func SortOutcomes(outcomes []types.Outcome) {
	slices.SortStableFunc(outcomes, func(a, b types.Outcome) int {
		return netutil.CompareAddr(a.IP, b.IP)
	})
}

// Summary is the one line result of the sweep
func (r *Report) Summary() string {
	return fmt.Sprintf("%d of %d hosts could be pinged.", r.Up, r.Total)
}

// Probed returns how many hosts produced an outcome
func (r *Report) Probed() int {
	return len(r.Outcomes)
}

// Publish writes the summary to log and, for a complete sweep, exports the
// outcomes. Both sinks are attempted even when the first one fails.
func (r *Report) Publish(log SummaryWriter, exporter Exporter) error {
	var errs []error
	if log != nil {
		if err := log.WriteSummary(r.Summary(), r.Completed, r.Interrupted); err != nil {
			errs = append(errs, fmt.Errorf("could not write summary: %w", err))
		}
	}
	if exporter != nil && !r.Interrupted {
		if err := exporter.Export(r.Outcomes); err != nil {
			errs = append(errs, fmt.Errorf("could not export results: %w", err))
		}
	}
	return errors.Join(errs...)
}
