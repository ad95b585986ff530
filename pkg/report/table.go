package report

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/projectdiscovery/rangeping/pkg/pingsweep"
)

const (
	ReachableHeader   = "Reachable"
	UnreachableHeader = "Unreachable"

	// headers get at least this much room beyond their own text
	headerPadding = 2
)

// simpleStyle draws a plain header, a dashed rule and two-space column gaps
var simpleStyle = table.Style{
	Name: "simple",
	Box: table.BoxStyle{
		MiddleHorizontal: "-",
		MiddleSeparator:  "  ",
		MiddleVertical:   "  ",
	},
	Format: table.FormatOptions{
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: true,
		SeparateHeader:  true,
		SeparateRows:    false,
	},
}

// WriteTable renders the partition as two aligned columns. The shorter
// column is padded with blanks.
func WriteTable(w io.Writer, partition *pingsweep.Partition) error {
	tw := table.NewWriter()
	tw.SetStyle(simpleStyle)
	tw.AppendHeader(table.Row{ReachableHeader, UnreachableHeader})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMin: len(ReachableHeader) + headerPadding},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMin: len(UnreachableHeader) + headerPadding},
	})

	rows := max(len(partition.Reachable), len(partition.Unreachable))
	for i := 0; i < rows; i++ {
		tw.AppendRow(table.Row{cell(partition.Reachable, i), cell(partition.Unreachable, i)})
	}

	var out strings.Builder
	for _, line := range strings.Split(tw.Render(), "\n") {
		out.WriteString(strings.TrimRight(line, " "))
		out.WriteByte('\n')
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func cell(column []string, i int) string {
	if i < len(column) {
		return column[i]
	}
	return ""
}
