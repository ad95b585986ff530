// Package probe decides whether a single IPv4 address answers an echo
// request.
//
// Two probers are provided:
//   - CommandProber: runs the host ping tool for exactly one echo and
//     classifies its textual output (see Classify)
//   - ICMPProber: sends one ICMP echo itself and waits for the matching reply
//
// CommandProber needs to know the host platform because ping spells its
// count flag differently on Windows ("-n 1") and Unix-likes ("-c 1").
// Unknown platforms are rejected when the prober is built, before any probe
// is attempted.
//
// Example usage:
//
//	prober, err := probe.NewCommandProber(probe.DetectPlatform(), 0)
//	if err != nil {
//		return err
//	}
//	alive := prober.Probe(ctx, "192.168.0.1")
//
// Privilege Requirements:
//   - ICMPProber uses a raw socket when running as root and an unprivileged
//     datagram socket otherwise; the latter needs net.ipv4.ping_group_range
//     to cover the current group on Linux
package probe
