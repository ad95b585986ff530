//go:build !windows

package probe

import "golang.org/x/sys/unix"

// icmpNetwork picks a raw socket for root and a datagram socket otherwise
func icmpNetwork() (network string, privileged bool, err error) {
	if unix.Geteuid() == 0 {
		return "ip4:icmp", true, nil
	}
	return "udp4", false, nil
}
