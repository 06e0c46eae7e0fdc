package pingsweep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/projectdiscovery/subnetping/pkg/types"
	syncutil "github.com/projectdiscovery/utils/sync"
)

// Strategy selects how the worker pool admits hosts
type Strategy string

const (
	// StrategyBatch dispatches fixed-size batches and waits for the whole
	// batch before admitting the next one
	StrategyBatch Strategy = "batch"
	// StrategySliding keeps up to Workers probes in flight and admits a new
	// host whenever one finishes
	StrategySliding Strategy = "sliding"
)

// OutcomeWriter receives every outcome as soon as it is classified
type OutcomeWriter interface {
	WriteOutcome(outcome types.Outcome) error
}

// Options contains the configuration of a sweep
type Options struct {
	// Workers is the maximum number of probes in flight
	Workers  int
	Strategy Strategy
	Prober   Prober

	// Log is written one line per outcome, optional
	Log OutcomeWriter
	// OnLogError is called when Log fails to record an outcome
	OnLogError func(outcome types.Outcome, err error)
	// OnOutcome is called after each outcome is recorded
	OnOutcome func(outcome types.Outcome, done, up, total int)
}

// Sweeper dispatches one probe per host with bounded concurrency
type Sweeper struct {
	options Options
}

// New creates a sweeper, validating the options
func New(options Options) (*Sweeper, error) {
	if options.Prober == nil {
		return nil, errors.New("no prober configured")
	}
	if options.Workers < 1 {
		return nil, fmt.Errorf("invalid worker count %d: must be at least 1", options.Workers)
	}
	switch options.Strategy {
	case "":
		options.Strategy = StrategyBatch
	case StrategyBatch, StrategySliding:
	default:
		return nil, fmt.Errorf("unknown strategy %q", options.Strategy)
	}
	return &Sweeper{options: options}, nil
}

// sweepState is the state shared by all probes of one run
type sweepState struct {
	total   int
	up      *Counter
	results *Collection
}

// Run probes every host exactly once and returns the sorted report once all
// dispatched probes have finished. Cancelling ctx stops admission of new
// hosts; probes cut short by the cancellation are not recorded and the
// report is marked interrupted.
func (s *Sweeper) Run(ctx context.Context, hosts []string) (*Report, error) {
	state := &sweepState{
		total:   len(hosts),
		up:      &Counter{},
		results: NewCollection(len(hosts)),
	}

	var err error
	switch s.options.Strategy {
	case StrategySliding:
		err = s.runSliding(ctx, hosts, state)
	default:
		err = s.runBatches(ctx, hosts, state)
	}
	if err != nil {
		return nil, err
	}

	report := NewReport(state.total, int(state.up.Value()), state.results.Drain())
	report.Completed = time.Now()
	// a cancellation after the last outcome leaves the sweep complete
	report.Interrupted = ctx.Err() != nil && report.Probed() < state.total
	return report, nil
}

// runBatches walks hosts in consecutive batches of Workers. Each batch is
// joined on a wait group sized by its actual member count, so a short last
// batch joins exactly like a full one.
func (s *Sweeper) runBatches(ctx context.Context, hosts []string, state *sweepState) error {
	for start := 0; start < len(hosts); start += s.options.Workers {
		if ctx.Err() != nil {
			return nil
		}

		end := min(start+s.options.Workers, len(hosts))
		batch := hosts[start:end]

		awg, err := syncutil.New(syncutil.WithSize(len(batch)))
		if err != nil {
			return err
		}
		for _, ip := range batch {
			awg.Add()
			go func(ip string) {
				defer awg.Done()
				s.probeHost(ctx, ip, state)
			}(ip)
		}
		awg.Wait()
	}
	return nil
}

// runSliding admits hosts one by one; Add blocks while Workers probes are
// in flight.
func (s *Sweeper) runSliding(ctx context.Context, hosts []string, state *sweepState) error {
	awg, err := syncutil.New(syncutil.WithSize(s.options.Workers))
	if err != nil {
		return err
	}

	for _, ip := range hosts {
		if ctx.Err() != nil {
			break
		}
		awg.Add()
		go func(ip string) {
			defer awg.Done()
			s.probeHost(ctx, ip, state)
		}(ip)
	}

	awg.Wait()
	return nil
}

func (s *Sweeper) probeHost(ctx context.Context, ip string, state *sweepState) {
	if ctx.Err() != nil {
		return
	}

	status, probeErr := s.options.Prober.Probe(ctx, ip)
	if ctx.Err() != nil {
		return
	}

	outcome := types.Outcome{IP: ip, Status: status}
	if probeErr != nil {
		if !errors.Is(probeErr, ErrProbeUnavailable) {
			probeErr = fmt.Errorf("%w: %v", ErrProbeUnavailable, probeErr)
		}
		outcome.Status = types.StatusDown
		outcome.Unavailable = probeErr
	}

	if s.options.Log != nil {
		if err := s.options.Log.WriteOutcome(outcome); err != nil && s.options.OnLogError != nil {
			s.options.OnLogError(outcome, err)
		}
	}

	up := state.up.Value()
	if outcome.IsUp() {
		up = state.up.Inc()
	}
	done := state.results.Append(outcome)

	if s.options.OnOutcome != nil {
		s.options.OnOutcome(outcome, done, int(up), state.total)
	}
}
