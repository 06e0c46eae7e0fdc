package runner

import (
	"os"
	"strconv"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/subnetping/pkg/peerdiscovery/pingsweep"
	"github.com/projectdiscovery/subnetping/pkg/rlimit"
	"github.com/projectdiscovery/subnetping/pkg/sink"
	envutil "github.com/projectdiscovery/utils/env"
	errorutil "github.com/projectdiscovery/utils/errors"
)

var (
	WorkersEnv = envutil.GetEnvOrDefault("SUBNETPING_WORKERS", strconv.Itoa(pingsweep.DefaultWorkers))
	NoFileEnv  = envutil.GetEnvOrDefault("SUBNETPING_NOFILE", strconv.Itoa(rlimit.DefaultNoFile))
	TimeoutEnv = envutil.GetEnvOrDefault("SUBNETPING_TIMEOUT", pingsweep.DefaultTimeout.String())
)

const (
	ProbeExec = "exec"
	ProbeICMP = "icmp"
)

// Options contains the configuration options for a sweep
type Options struct {
	Hosts goflags.StringSlice
	Local bool

	Workers     int
	Strategy    string
	NoFile      int
	MaxHostBits int

	Probe      string
	PingBinary string
	Count      int
	Timeout    time.Duration
	Privileged bool

	LogFile    string
	ArchiveDir string
	CSVFile    string

	ConfigFile string
	Verbose    bool
	Silent     bool
	NoColor    bool
	Version    bool
}

// DefaultOptions returns options with every default applied
func DefaultOptions() *Options {
	return &Options{
		Workers:     defaultInt(WorkersEnv, pingsweep.DefaultWorkers),
		Strategy:    string(pingsweep.StrategyBatch),
		NoFile:      defaultInt(NoFileEnv, rlimit.DefaultNoFile),
		MaxHostBits: pingsweep.DefaultMaxHostBits,
		Probe:       ProbeExec,
		PingBinary:  "ping",
		Count:       pingsweep.DefaultCount,
		Timeout:     defaultDuration(TimeoutEnv, pingsweep.DefaultTimeout),
		LogFile:     sink.DefaultLogFile,
		ArchiveDir:  sink.DefaultArchiveDir,
		CSVFile:     sink.DefaultCSVFile,
	}
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	defaults := DefaultOptions()
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`subnetping sweeps every host of a network with ICMP echo and reports which hosts are up`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&options.Hosts, "hosts", "t", nil, "networks to ping in CIDR notation or single IPs (comma separated), e.g. 10.0.0.0/24", goflags.CommaSeparatedStringSliceOptions),
		flagSet.BoolVarP(&options.Local, "local", "l", false, "ping the private /24 networks of the local interfaces"),
		flagSet.IntVarP(&options.MaxHostBits, "max-host-bits", "mhb", defaults.MaxHostBits, "largest network accepted, as host bits (20 = 1048576 addresses)"),
	)

	flagSet.CreateGroup("rate-limit", "Rate-Limit",
		flagSet.IntVarP(&options.Workers, "workers", "w", defaults.Workers, "number of hosts probed concurrently"),
		flagSet.StringVarP(&options.Strategy, "strategy", "st", defaults.Strategy, "worker pool strategy (batch, sliding)"),
		flagSet.IntVarP(&options.NoFile, "nofile", "nf", defaults.NoFile, "open file limit requested before probing (0 to keep the current limit)"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.StringVarP(&options.Probe, "probe", "p", defaults.Probe, "probe backend (exec, icmp)"),
		flagSet.StringVarP(&options.PingBinary, "ping-binary", "pb", defaults.PingBinary, "ping executable used by the exec backend"),
		flagSet.IntVarP(&options.Count, "count", "c", defaults.Count, "echo requests sent per host"),
		flagSet.DurationVarP(&options.Timeout, "timeout", "to", defaults.Timeout, "time limit for probing a single host"),
		flagSet.BoolVarP(&options.Privileged, "privileged", "priv", false, "use raw icmp sockets with the icmp backend"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&options.LogFile, "log", "o", defaults.LogFile, "audit log file"),
		flagSet.StringVarP(&options.ArchiveDir, "archive-dir", "ad", defaults.ArchiveDir, "folder receiving the log of the previous run"),
		flagSet.StringVar(&options.CSVFile, "csv", defaults.CSVFile, "csv export of the results"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.StringVar(&options.ConfigFile, "config", "", "yaml flag configuration file"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only the summary"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	if options.ConfigFile != "" {
		if err := flagSet.MergeConfigFile(options.ConfigFile); err != nil {
			gologger.Fatal().Msgf("Could not read config file %s: %s\n", options.ConfigFile, err)
		}
	}

	options.configureOutput()

	if !options.Silent {
		showBanner()
	}

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version)
		os.Exit(0)
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

// Validate checks the options before any host is probed
func (options *Options) Validate() error {
	if len(options.Hosts) == 0 && !options.Local {
		return errorutil.New("no targets specified: use -hosts with a CIDR (e.g. 10.0.0.0/24) or -local")
	}
	if options.Workers < 1 {
		return errorutil.New("invalid worker count %d: must be at least 1", options.Workers)
	}
	switch pingsweep.Strategy(options.Strategy) {
	case pingsweep.StrategyBatch, pingsweep.StrategySliding:
	default:
		return errorutil.New("invalid strategy %q: must be %s or %s", options.Strategy, pingsweep.StrategyBatch, pingsweep.StrategySliding)
	}
	switch options.Probe {
	case ProbeExec:
		if options.PingBinary == "" {
			return errorutil.New("empty ping binary")
		}
	case ProbeICMP:
	default:
		return errorutil.New("invalid probe %q: must be %s or %s", options.Probe, ProbeExec, ProbeICMP)
	}
	if options.Count < 1 {
		return errorutil.New("invalid count %d: must be at least 1", options.Count)
	}
	if options.Timeout <= 0 {
		return errorutil.New("invalid timeout %s: must be positive", options.Timeout)
	}
	if options.NoFile < 0 {
		return errorutil.New("invalid open file limit %d", options.NoFile)
	}
	if options.LogFile == "" || options.CSVFile == "" {
		return errorutil.New("log and csv file names must not be empty")
	}
	return nil
}

func defaultInt(value string, fallback int) int {
	if val, err := strconv.Atoi(value); err == nil && val > 0 {
		return val
	}
	return fallback
}

func defaultDuration(value string, fallback time.Duration) time.Duration {
	if val, err := time.ParseDuration(value); err == nil && val > 0 {
		return val
	}
	return fallback
}
