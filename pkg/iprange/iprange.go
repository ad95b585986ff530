package iprange

import (
	"encoding/binary"
	"math"
	"net"
	"net/netip"
	"strconv"
	"strings"

	"github.com/projectdiscovery/mapcidr"
	"github.com/projectdiscovery/rangeping/pkg/peerdiscovery/common"
	"go4.org/netipx"
)

// Expand turns a single token into its ordered list of addresses.
// Grammars are tried as CIDR, then hyphen range, then bare address.
func Expand(token string) ([]string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInput
	}

	if prefix, err := netip.ParsePrefix(token); err == nil {
		return expandPrefix(token, prefix)
	}

	if left, right, ok := strings.Cut(token, "-"); ok {
		start, err := parseAddr(left)
		if err != nil {
			return nil, newParseError(token, "invalid start address %q", left)
		}
		if end, err := parseAddr(right); err == nil {
			return expandRange(token, start, end)
		}
		if count, err := strconv.ParseUint(right, 10, 32); err == nil {
			return expandCount(token, start, count)
		}
		return nil, newParseError(token, "%q is neither an IPv4 address nor a count", right)
	}

	addr, err := parseAddr(token)
	if err != nil {
		return nil, newParseError(token, "not a valid IPv4 address")
	}
	return []string{addr.String()}, nil
}

// expandPrefix returns the usable hosts of an IPv4 network in ascending order
func expandPrefix(token string, prefix netip.Prefix) ([]string, error) {
	if !prefix.Addr().Is4() {
		return nil, newParseError(token, "only IPv4 networks are supported")
	}
	// /31 and /32 have no interior hosts
	if prefix.Bits() >= 31 {
		return nil, newParseError(token, "/%d has no usable host addresses", prefix.Bits())
	}
	if masked := prefix.Masked(); masked != prefix {
		return nil, newParseError(token, "host bits set, did you mean %s", masked)
	}

	_, network, err := net.ParseCIDR(token)
	if err != nil {
		return nil, newParseError(token, "invalid network: %s", err)
	}

	ips, err := mapcidr.IPAddresses(token)
	if err != nil {
		return nil, newParseError(token, "failed to expand network: %s", err)
	}

	hosts := make([]string, 0, len(ips))
	for _, ipStr := range ips {
		ip := net.ParseIP(ipStr)
		if ip == nil {
			continue
		}
		if common.IsNetworkOrBroadcast(ip, network) {
			continue
		}
		hosts = append(hosts, ip.String())
	}
	return hosts, nil
}

// expandRange returns every address from start to end inclusive
func expandRange(token string, start, end netip.Addr) ([]string, error) {
	r := netipx.IPRangeFrom(start, end)
	if !r.IsValid() {
		return nil, newParseError(token, "end address %s precedes start address %s", end, start)
	}

	addrs := make([]string, 0, uint64(toUint32(end)-toUint32(start))+1)
	for addr := r.From(); ; addr = addr.Next() {
		addrs = append(addrs, addr.String())
		if addr == r.To() {
			break
		}
	}
	return addrs, nil
}

// expandCount returns count addresses beginning at start (start itself included)
func expandCount(token string, start netip.Addr, count uint64) ([]string, error) {
	if count == 0 {
		return nil, newParseError(token, "address count must be positive")
	}
	if uint64(toUint32(start))+count-1 > math.MaxUint32 {
		return nil, newParseError(token, "range of %d addresses from %s overflows 255.255.255.255", count, start)
	}

	addrs := make([]string, 0, count)
	addr := start
	for i := uint64(0); i < count; i++ {
		addrs = append(addrs, addr.String())
		addr = addr.Next()
	}
	return addrs, nil
}

func parseAddr(value string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return netip.Addr{}, err
	}
	if !addr.Is4() {
		return netip.Addr{}, &net.AddrError{Err: "not an IPv4 address", Addr: value}
	}
	return addr, nil
}

func toUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:])
}
