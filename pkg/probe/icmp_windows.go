//go:build windows

package probe

import "errors"

func icmpNetwork() (string, bool, error) {
	return "", false, errors.New("icmp probing is not supported on windows, use the command prober")
}
