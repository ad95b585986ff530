package pingsweep

import (
	"context"
	"fmt"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/rangeping/pkg/probe"
	mapsutil "github.com/projectdiscovery/utils/maps"
	syncutil "github.com/projectdiscovery/utils/sync"
)

// Result is the verdict for one entry of the swept list
type Result struct {
	Address   string `json:"address"`
	Reachable bool   `json:"reachable"`
}

// Partition splits the swept list by verdict, each side in input order
type Partition struct {
	Reachable   []string `json:"reachable"`
	Unreachable []string `json:"unreachable"`
	Results     []Result `json:"-"`
}

// Total returns the number of probed entries
func (p *Partition) Total() int {
	return len(p.Reachable) + len(p.Unreachable)
}

// Sweeper probes address lists with a single Prober
type Sweeper struct {
	prober      probe.Prober
	concurrency int
	progress    func(address string)
}

// Option configures a Sweeper
type Option func(*Sweeper)

// WithConcurrency sets the number of probes in flight. Values below 2 keep
// the sweep sequential.
func WithConcurrency(n int) Option {
	return func(s *Sweeper) {
		if n < 1 {
			n = 1
		}
		s.concurrency = n
	}
}

// WithProgress sets the callback invoked as each probe begins
func WithProgress(fn func(address string)) Option {
	return func(s *Sweeper) {
		if fn != nil {
			s.progress = fn
		}
	}
}

// New returns a sequential Sweeper that logs each address it checks
func New(prober probe.Prober, opts ...Option) *Sweeper {
	s := &Sweeper{
		prober:      prober,
		concurrency: 1,
		progress: func(address string) {
			gologger.Info().Msgf("Check: %s", address)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sweep probes every address once and partitions them by verdict
func (s *Sweeper) Sweep(ctx context.Context, addresses []string) (*Partition, error) {
	var (
		verdicts []bool
		err      error
	)
	if s.concurrency > 1 {
		verdicts, err = s.sweepParallel(ctx, addresses)
	} else {
		verdicts, err = s.sweepSequential(ctx, addresses)
	}
	if err != nil {
		return nil, err
	}

	partition := &Partition{
		Reachable:   []string{},
		Unreachable: []string{},
		Results:     make([]Result, 0, len(addresses)),
	}
	for i, address := range addresses {
		if verdicts[i] {
			partition.Reachable = append(partition.Reachable, address)
		} else {
			partition.Unreachable = append(partition.Unreachable, address)
		}
		partition.Results = append(partition.Results, Result{Address: address, Reachable: verdicts[i]})
	}
	return partition, nil
}

func (s *Sweeper) sweepSequential(ctx context.Context, addresses []string) ([]bool, error) {
	verdicts := make([]bool, len(addresses))
	for i, address := range addresses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.progress(address)
		verdicts[i] = s.prober.Probe(ctx, address)
	}
	// the last probe may have been cut short
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return verdicts, nil
}

func (s *Sweeper) sweepParallel(ctx context.Context, addresses []string) ([]bool, error) {
	awg, err := syncutil.New(syncutil.WithSize(s.concurrency))
	if err != nil {
		return nil, fmt.Errorf("failed to create adaptive waitgroup: %w", err)
	}

	// input index -> verdict
	results := mapsutil.NewSyncLockMap[int, bool]()

	for i, address := range addresses {
		if ctx.Err() != nil {
			break
		}

		awg.Add()
		s.progress(address)
		go func(index int, target string) {
			defer awg.Done()
			_ = results.Set(index, s.prober.Probe(ctx, target))
		}(i, address)
	}
	awg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	verdicts := make([]bool, len(addresses))
	for i := range addresses {
		reachable, ok := results.Get(i)
		if !ok {
			return nil, fmt.Errorf("no verdict recorded for %s", addresses[i])
		}
		verdicts[i] = reachable
	}
	return verdicts, nil
}
