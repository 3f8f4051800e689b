package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itembridge/internal/mapping"
)

// statsOutput is the JSON shape of the stats command.
type statsOutput struct {
	Source    string          `json:"source"`
	Protocols []mapping.Stats `json:"protocols"`
	Simple    int             `json:"simple"`
	Complex   int             `json:"complex"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show mapping counts per protocol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBridge()
			if err != nil {
				return err
			}

			res := statsOutput{Source: b.Source(), Protocols: []mapping.Stats{}}
			for _, p := range b.Tables().Protocols() {
				s := b.Tables().Stats(p)
				res.Protocols = append(res.Protocols, s)
				res.Simple += s.Simple
				res.Complex += s.Complex
			}

			out := cmd.OutOrStdout()
			if a.jsonMode {
				return printJSON(out, res)
			}

			fmt.Fprintf(out, "Source: %s\n", res.Source)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PROTOCOL\tVERSION\tSIMPLE\tCOMPLEX")
			for _, s := range res.Protocols {
				label, _ := b.Registry().Label(s.Protocol)
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Protocol, label,
					humanize.Comma(int64(s.Simple)), humanize.Comma(int64(s.Complex)))
			}
			fmt.Fprintf(tw, "total\t\t%s\t%s\n", humanize.Comma(int64(res.Simple)), humanize.Comma(int64(res.Complex)))
			return tw.Flush()
		},
	}
}
