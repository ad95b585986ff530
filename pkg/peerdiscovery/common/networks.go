package common

import (
	"net"
)

// GetLocalNetworks24 returns the private IPv4 networks of all local interfaces
// as /24 ranges, in interface order and without duplicates
func GetLocalNetworks24() ([]*net.IPNet, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var networks []*net.IPNet
	seen := make(map[string]struct{})

	for _, iface := range interfaces {
		if !usableInterface(iface) {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			network := privateNetwork24(addr)
			if network == nil {
				continue
			}

			key := network.String()
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}

			networks = append(networks, network)
		}
	}

	return networks, nil
}

// usableInterface skips loopback and down interfaces
func usableInterface(iface net.Interface) bool {
	if iface.Flags&net.FlagLoopback != 0 {
		return false
	}
	return iface.Flags&net.FlagUp != 0
}

// privateNetwork24 maps an interface address to its enclosing /24 when the
// address is a private IPv4 address
func privateNetwork24(addr net.Addr) *net.IPNet {
	ipNet, ok := addr.(*net.IPNet)
	if !ok {
		return nil
	}

	ip4 := ipNet.IP.To4()
	if ip4 == nil || !ip4.IsPrivate() {
		return nil
	}

	mask24 := net.CIDRMask(24, 32)
	return &net.IPNet{
		IP:   ip4.Mask(mask24),
		Mask: mask24,
	}
}
