package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/rangeping/pkg/iprange"
	"github.com/projectdiscovery/rangeping/pkg/peerdiscovery/common"
	"github.com/projectdiscovery/rangeping/pkg/pingsweep"
	"github.com/projectdiscovery/rangeping/pkg/probe"
	"github.com/projectdiscovery/rangeping/pkg/report"
	sliceutil "github.com/projectdiscovery/utils/slice"
	"github.com/rs/xid"
)

// probeCacheSize bounds the verdict cache used by -probe-cache
const probeCacheSize = 65536

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
	prober  probe.Prober
	id      string
	output  io.WriteCloser
}

// NewRunner selects the prober for this host. An unsupported platform is
// reported here, before anything is probed.
func NewRunner(options *Options) (*Runner, error) {
	prober, err := newProber(context.Background(), options)
	if err != nil {
		return nil, err
	}
	return &Runner{
		options: options,
		prober:  prober,
		id:      xid.New().String(),
	}, nil
}

func newProber(ctx context.Context, options *Options) (probe.Prober, error) {
	var prober probe.Prober

	switch options.Probe {
	case ProbeCommand:
		platform := probe.DetectPlatform()
		if options.Verbose {
			logHostDetails(ctx)
		}
		gologger.Verbose().Msgf("using ping invocation for %s", platform)
		commandProber, err := probe.NewCommandProber(platform, options.Timeout)
		if err != nil {
			return nil, err
		}
		prober = commandProber
	case ProbeICMP:
		icmpProber, err := probe.NewICMPProber(options.Timeout)
		if err != nil {
			return nil, fmt.Errorf("could not create icmp prober: %w", err)
		}
		prober = icmpProber
	default:
		return nil, fmt.Errorf("unknown probe %q", options.Probe)
	}

	if options.ProbeCache {
		prober = probe.NewCachedProber(prober, probeCacheSize, 0)
	}
	return prober, nil
}

func logHostDetails(ctx context.Context) {
	details, err := probe.HostDetails(ctx)
	if err != nil {
		gologger.Verbose().Msgf("%s", err)
		return
	}
	gologger.Verbose().Msgf("running on %s", details)
}

// Run expands the targets, sweeps them and writes the report
func (r *Runner) Run(ctx context.Context) error {
	addresses, err := r.addresses()
	if err != nil {
		return err
	}
	gologger.Verbose().Msgf("[%s] sweeping %d addresses", r.id, len(addresses))

	sweeper := pingsweep.New(probe.ProberFunc(r.probe), pingsweep.WithConcurrency(r.options.Concurrency))
	partition, err := sweeper.Sweep(ctx, addresses)
	if err != nil {
		return fmt.Errorf("sweep interrupted: %w", err)
	}

	gologger.Info().Msgf("%s of %d addresses reachable", au.Green(len(partition.Reachable)), partition.Total())

	return r.writeReport(partition)
}

// addresses builds the ordered address list from every configured source
func (r *Runner) addresses() ([]string, error) {
	tokens := sliceutil.PruneEmptyStrings(r.options.Targets)

	if r.options.Local {
		networks, err := common.GetLocalNetworks24()
		if err != nil {
			return nil, fmt.Errorf("could not list local networks: %w", err)
		}
		for _, network := range networks {
			gologger.Verbose().Msgf("adding local network %s", network)
			tokens = append(tokens, network.String())
		}
	}

	addresses, err := iprange.Convert(tokens)
	if err != nil {
		return nil, fmt.Errorf("could not build address list: %w", err)
	}
	return addresses, nil
}

// probe forwards to the configured prober and logs the verdict
func (r *Runner) probe(ctx context.Context, address string) bool {
	reachable := r.prober.Probe(ctx, address)
	if reachable {
		gologger.Verbose().Msgf("%s is %s", address, au.Green("reachable"))
	} else {
		gologger.Verbose().Msgf("%s is %s", address, au.Red("unreachable"))
	}
	return reachable
}

func (r *Runner) writeReport(partition *pingsweep.Partition) error {
	var w io.Writer = os.Stdout
	if r.options.Output != "" {
		file, err := os.Create(r.options.Output)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		r.output = file
		w = file
	} else if !r.options.JSON {
		// keep the table apart from the progress lines
		fmt.Fprintln(w)
	}

	if r.options.JSON {
		return report.WriteJSON(w, r.id, partition)
	}
	return report.WriteTable(w, partition)
}

// Close releases the output file, if any
func (r *Runner) Close() {
	if r.output != nil {
		_ = r.output.Close()
		r.output = nil
	}
}
