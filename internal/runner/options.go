package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/rangeping/pkg/version"
	envutil "github.com/projectdiscovery/utils/env"
	fileutil "github.com/projectdiscovery/utils/file"
)

const (
	ProbeCommand = "command"
	ProbeICMP    = "icmp"
)

var au = aurora.NewAurora(true)

var (
	ConcurrencyEnv = envutil.GetEnvOrDefault("RANGEPING_CONCURRENCY", "1")
	TimeoutEnv     = envutil.GetEnvOrDefault("RANGEPING_TIMEOUT", "0s")
)

// Options contains the configuration options for a sweep.
type Options struct {
	ConfigFile string

	// Targets holds positional tokens followed by -target values
	Targets goflags.StringSlice
	Local   bool

	Probe       string
	Timeout     time.Duration
	Concurrency int
	ProbeCache  bool

	Output  string
	JSON    bool
	NoColor bool
	Silent  bool
	Verbose bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`rangeping expands IPv4 ranges and reports which addresses answer a ping.

Targets may be given as 192.168.0.1, 192.168.0.1-10, 192.168.0.1-192.168.0.10
or 192.168.0.0/24 (network address required). Flags must come before targets.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&options.Targets, "target", "t", nil, "address ranges to sweep (comma separated or file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.BoolVar(&options.Local, "local", false, "sweep the private /24 networks of local interfaces"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.StringVarP(&options.Probe, "probe", "p", ProbeCommand, "probe implementation to use (command, icmp)"),
		flagSet.DurationVar(&options.Timeout, "timeout", envDuration(TimeoutEnv), "timeout per probe (0 uses the probe default)"),
		flagSet.IntVarP(&options.Concurrency, "concurrency", "c", envInt(ConcurrencyEnv, 1), "number of probes in flight"),
		flagSet.BoolVarP(&options.ProbeCache, "probe-cache", "pc", false, "probe addresses repeated across ranges only once"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&options.Output, "output", "o", "", "file to write the report to"),
		flagSet.BoolVarP(&options.JSON, "json", "j", false, "write the report as json"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only the report"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&options.ConfigFile, "config", "", "cli flag configuration file"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	if options.ConfigFile != "" {
		if err := options.loadConfigFrom(flagSet, options.ConfigFile); err != nil {
			gologger.Fatal().Msgf("Could not read config: %s\n", err)
		}
	}

	// positional tokens come first, in the order given
	options.Targets = append(goflags.StringSlice(flagSet.CommandLine.Args()), options.Targets...)

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.GetVersion())
		os.Exit(0)
	}

	if err := options.validate(); err != nil {
		gologger.Fatal().Msgf("Program exiting: %s\n", err)
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	au = aurora.NewAurora(!options.NoColor)

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

// validate checks option combinations that cannot work
func (options *Options) validate() error {
	if len(options.Targets) == 0 && !options.Local {
		return errors.New("no address specification given, pass targets as arguments, -target or -local")
	}
	for _, target := range options.Targets {
		if strings.HasPrefix(target, "-") {
			return fmt.Errorf("flags must precede targets, got %q", target)
		}
	}
	switch options.Probe {
	case ProbeCommand, ProbeICMP:
	default:
		return fmt.Errorf("unknown probe %q (valid: %s, %s)", options.Probe, ProbeCommand, ProbeICMP)
	}
	if options.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", options.Concurrency)
	}
	if options.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", options.Timeout)
	}
	if options.Verbose && options.Silent {
		return errors.New("verbose and silent can't be used together")
	}
	return nil
}

func (options *Options) loadConfigFrom(flagSet *goflags.FlagSet, location string) error {
	if !fileutil.FileExists(location) {
		return fmt.Errorf("config file %s does not exist", location)
	}
	return flagSet.MergeConfigFile(location)
}

func envInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(value string) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return d
}
