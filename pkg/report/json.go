package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/projectdiscovery/rangeping/pkg/pingsweep"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Summary is the machine readable form of a sweep
type Summary struct {
	ID          string   `json:"id"`
	Reachable   []string `json:"reachable"`
	Unreachable []string `json:"unreachable"`
	Total       int      `json:"total"`
}

// WriteJSON writes the partition as a single JSON object followed by a newline
func WriteJSON(w io.Writer, id string, partition *pingsweep.Partition) error {
	summary := Summary{
		ID:          id,
		Reachable:   nonNil(partition.Reachable),
		Unreachable: nonNil(partition.Unreachable),
		Total:       partition.Total(),
	}
	return json.NewEncoder(w).Encode(summary)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
