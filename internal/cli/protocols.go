package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itembridge/internal/protocol"
	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// protocolInfo is one row of the protocols output.
type protocolInfo struct {
	Protocol types.Protocol   `json:"protocol"`
	Label    string           `json:"label"`
	Aliases  []types.Protocol `json:"aliases"`
	Enabled  bool             `json:"enabled"`
	Current  bool             `json:"current"`
}

func newProtocolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List supported protocol versions and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := protocol.NewRegistry()
			enabled := reg.Filter(a.cfg.DisabledProtocols)

			rows := make([]protocolInfo, 0, len(reg.Versions()))
			for _, v := range reg.Versions() {
				aliases := reg.Aliases(v.Protocol)
				if aliases == nil {
					aliases = []types.Protocol{}
				}
				rows = append(rows, protocolInfo{
					Protocol: v.Protocol,
					Label:    v.Name,
					Aliases:  aliases,
					Enabled:  enabled(v.Protocol),
					Current:  v.Protocol == reg.Current(),
				})
			}

			out := cmd.OutOrStdout()
			if a.jsonMode {
				return printJSON(out, rows)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PROTOCOL\tVERSION\tALIASES\tSTATUS")
			for _, r := range rows {
				status := "enabled"
				if !r.Enabled {
					status = "disabled"
				}
				if r.Current {
					status += ", current"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Protocol, r.Label, joinProtocols(r.Aliases), status)
			}
			return tw.Flush()
		},
	}
}

func joinProtocols(ps []types.Protocol) string {
	if len(ps) == 0 {
		return "-"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}
