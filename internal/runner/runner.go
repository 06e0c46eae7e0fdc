package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/subnetping/pkg/netutil"
	"github.com/projectdiscovery/subnetping/pkg/peerdiscovery/pingsweep"
	"github.com/projectdiscovery/subnetping/pkg/rlimit"
	"github.com/projectdiscovery/subnetping/pkg/sink"
	"github.com/projectdiscovery/subnetping/pkg/types"
	errorutil "github.com/projectdiscovery/utils/errors"
	"github.com/rs/xid"
)

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
	runID   xid.ID
	prober  pingsweep.Prober
}

// NewRunner validates the options and creates a runner instance
func NewRunner(options *Options) (*Runner, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		options: options,
		runID:   xid.New(),
	}
	r.prober = r.newProber()
	return r, nil
}

func (r *Runner) newProber() pingsweep.Prober {
	switch r.options.Probe {
	case ProbeICMP:
		return pingsweep.NewICMPProber(r.options.Count, r.options.Timeout, r.options.Privileged)
	default:
		prober := pingsweep.NewExecProber(r.options.Count, r.options.Timeout)
		prober.Binary = r.options.PingBinary
		return prober
	}
}

// Run performs the sweep and writes its log and csv export
func (r *Runner) Run(ctx context.Context) error {
	hosts, err := r.resolveHosts()
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	r.configureLimits()
	r.preflight()

	archived, err := sink.ArchiveLog(r.options.LogFile, r.options.ArchiveDir, time.Now())
	if err != nil {
		return withExitCode(ExitSinkError, err)
	}
	if archived != "" {
		gologger.Verbose().Msgf("Archived previous log to %s", archived)
	}

	auditLog, err := sink.OpenAuditLog(r.options.LogFile)
	if err != nil {
		return withExitCode(ExitSinkError, err)
	}
	defer func() {
		_ = auditLog.Close()
	}()

	failures := &logFailures{path: r.options.LogFile}
	sweeper, err := pingsweep.New(pingsweep.Options{
		Workers:    r.options.Workers,
		Strategy:   pingsweep.Strategy(r.options.Strategy),
		Prober:     r.prober,
		Log:        auditLog,
		OnLogError: failures.record,
		OnOutcome:  r.onOutcome,
	})
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	gologger.Info().Msgf("Run %s: pinging %d hosts with %d workers (%s strategy, %s probe)", r.runID, len(hosts), r.options.Workers, r.options.Strategy, r.options.Probe)
	started := time.Now()

	report, err := sweeper.Run(ctx, hosts)
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	sinkErr := report.Publish(auditLog, &sink.CSVExporter{Path: r.options.CSVFile})
	if closeErr := auditLog.Close(); closeErr != nil {
		sinkErr = errors.Join(sinkErr, fmt.Errorf("could not close log file: %w", closeErr))
	}
	if n := failures.count(); n > 0 {
		sinkErr = errors.Join(fmt.Errorf("%d log lines could not be written to %s", n, r.options.LogFile), sinkErr)
	}

	gologger.Silent().Msg(report.Summary())
	gologger.Verbose().Msgf("Run %s finished in %s", r.runID, time.Since(started).Round(time.Millisecond))

	if sinkErr != nil {
		return withExitCode(ExitSinkError, sinkErr)
	}
	if report.Interrupted {
		gologger.Warning().Msgf("Sweep interrupted after %d of %d hosts, %s was not written", report.Probed(), report.Total, r.options.CSVFile)
		return withExitCode(ExitInterrupted, errors.New("sweep interrupted"))
	}

	gologger.Info().Msgf("Results written to %s, log written to %s", r.options.CSVFile, r.options.LogFile)
	return nil
}

// resolveHosts expands the configured targets into host addresses
func (r *Runner) resolveHosts() ([]string, error) {
	targets := append([]string{}, r.options.Hosts...)

	if r.options.Local {
		networks, err := netutil.LocalNetworks()
		if err != nil {
			return nil, errorutil.NewWithErr(err).Msgf("could not list local networks")
		}
		if len(networks) == 0 {
			gologger.Warning().Msg("No private local networks found")
		}
		for _, network := range networks {
			gologger.Verbose().Msgf("Using local network %s", network)
			targets = append(targets, network.String())
		}
	}

	hosts, err := pingsweep.ExpandTargets(targets, r.options.MaxHostBits)
	if err != nil {
		return nil, errorutil.NewWithErr(err).Msgf("could not parse targets")
	}
	if len(hosts) == 0 {
		return nil, errorutil.New("no usable host addresses in %s", strings.Join(targets, ","))
	}
	return hosts, nil
}

// configureLimits raises the open file limit and warns when it cannot
// sustain the configured worker count
func (r *Runner) configureLimits() {
	if !rlimit.Supported {
		return
	}

	if r.options.NoFile > 0 {
		limit, err := rlimit.Raise(uint64(r.options.NoFile))
		if err != nil {
			gologger.Warning().Msgf("Could not raise open file limit to %d: %s", r.options.NoFile, err)
		} else {
			gologger.Verbose().Msgf("Open file limit set to %d", limit)
		}
	}

	current, err := rlimit.Current()
	if err != nil {
		return
	}
	if required := rlimit.Required(r.options.Workers); current < required {
		gologger.Warning().Msgf("Open file limit %d is below the %d needed by %d workers, probes may fail to start", current, required, r.options.Workers)
	}
}

// preflight warns early when the ping binary cannot be found, since every
// host would then be reported down
func (r *Runner) preflight() {
	if r.options.Probe != ProbeExec {
		return
	}
	if _, err := exec.LookPath(r.options.PingBinary); err != nil {
		gologger.Warning().Msgf("%s is not available, hosts will be reported down: %s", r.options.PingBinary, err)
	}
}

func (r *Runner) onOutcome(outcome types.Outcome, done, up, total int) {
	gologger.Verbose().Msgf("[%d/%d] %s", done, total, outcome.LogLine())
}

// logFailures counts audit log write failures, reporting only the first
type logFailures struct {
	path string
	mu   sync.Mutex
	n    int
}

func (f *logFailures) record(outcome types.Outcome, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.n++
	if f.n == 1 {
		gologger.Error().Msgf("Could not write %s to %s: %s", outcome.IP, f.path, err)
	}
}

func (f *logFailures) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.n
}
