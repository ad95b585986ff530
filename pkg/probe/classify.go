package probe

import "regexp"

// Verdict is the interpretation of a ping tool's output.
type Verdict int

const (
	// VerdictAmbiguous means neither a success nor a failure marker was found.
	// It is reported as unreachable.
	VerdictAmbiguous Verdict = iota
	VerdictReachable
	VerdictUnreachable
)

func (v Verdict) String() string {
	switch v {
	case VerdictReachable:
		return "reachable"
	case VerdictUnreachable:
		return "unreachable"
	default:
		return "ambiguous"
	}
}

var (
	// failure markers win over success markers: windows reports
	// "Destination host unreachable" replies as received with 0% loss
	failureMarkers = regexp.MustCompile(`(?i)unreachable|timed out|time to live exceeded|ttl expired|unknown host|could not find host|name or service not known|(^|[^0-9.])100(\.0+)?% (packet )?loss`)
	// a reply carrying a ttl, or a clean loss summary
	successMarkers = regexp.MustCompile(`(?i)\sttl=|(^|[\s(,])0(\.0+)?% (packet )?loss`)
)

// Classify interprets the combined output of a single ping invocation.
func Classify(output string) Verdict {
	switch {
	case failureMarkers.MatchString(output):
		return VerdictUnreachable
	case successMarkers.MatchString(output):
		return VerdictReachable
	default:
		return VerdictAmbiguous
	}
}
