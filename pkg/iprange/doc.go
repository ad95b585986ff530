// Package iprange expands compact IPv4 range expressions into explicit
// address lists.
//
// Four token grammars are accepted and tried in this order:
//   - CIDR:      192.168.0.0/29         usable hosts only (network/broadcast dropped)
//   - A-B:       1.1.1.1-1.1.1.3        every address from A to B inclusive
//   - A-K:       1.1.1.1-4              K addresses starting at A (A..A+K-1)
//   - address:   8.8.8.8                the address itself
//
// Note the asymmetry between the two hyphen forms: "1.1.1.1-4" yields four
// addresses ending at 1.1.1.4, while "2.2.2.2-5" yields five addresses ending
// at 2.2.2.6. The right-hand integer is a count, not a last octet.
//
// Example usage:
//
//	addrs, err := iprange.Convert([]string{"8.8.8.8", "1.1.1.1-1.1.1.3", "2.2.2.2-5"})
//
// Lists are concatenated in input order and never deduplicated.
package iprange
