// Package pingsweep probes an ordered list of addresses and partitions them
// into reachable and unreachable hosts.
//
// Every entry in the list receives exactly one probe: there are no retries
// and a sweep never stops early on its own. Duplicate entries are probed once
// per occurrence.
//
// Example usage:
//
//	sweeper := pingsweep.New(prober, pingsweep.WithConcurrency(10))
//	partition, err := sweeper.Sweep(ctx, []string{"192.168.0.1", "192.168.0.2"})
//
// Ordering:
//   - Both partitions keep the relative order of the input list, also when
//     probes run in parallel. Results are placed by input index, never by
//     completion order.
//
// Cancellation:
//   - The context is checked before each probe is started. A cancelled sweep
//     returns the context error and no partial partition.
package pingsweep
