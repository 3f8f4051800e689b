package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itembridge/internal/protocol"
	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// lookupResult is the JSON shape of to-net and from-net.
type lookupResult struct {
	Protocol  types.Protocol `json:"protocol"`
	Canonical types.Protocol `json:"canonical"`
	ID        int32          `json:"id"`
	Meta      int32          `json:"meta"`
	Complex   *bool          `json:"complex,omitempty"`
}

// lookupFailed classifies translation failures as user errors.
func lookupFailed(err error) error {
	var le *types.LookupError
	if errors.As(err, &le) {
		return userError(err)
	}
	return sysError(err)
}

func parseItemArgs(args []string) (int32, int32, error) {
	id, err := parseInt32("id", args[0])
	if err != nil {
		return 0, 0, err
	}
	meta, err := parseInt32("meta", args[1])
	if err != nil {
		return 0, 0, err
	}
	return id, meta, nil
}

func (a *app) printLookup(cmd *cobra.Command, direction string, res lookupResult) error {
	out := cmd.OutOrStdout()
	if a.jsonMode {
		return printJSON(out, res)
	}
	suffix := ""
	if res.Complex != nil && *res.Complex {
		suffix = " (complex)"
	}
	_, err := fmt.Fprintf(out, "%s %d:%d on protocol %s%s\n", direction, res.ID, res.Meta,
		formatProtocol(res.Protocol, res.Canonical), suffix)
	return err
}

func newToNetCmd(a *app) *cobra.Command {
	var proto int32
	cmd := &cobra.Command{
		Use:   "to-net <id> <meta>",
		Short: "Translate a stable id and meta to the network form",
		Long: `Translate a stable item id and meta to the network id and meta of a protocol.
A meta of -1 is the wildcard; pass it after "--" so it is not read as a flag.

Example:
  itembridge to-net 351 15 --protocol 431
  itembridge to-net --protocol 431 -- 260 -1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, meta, err := parseItemArgs(args)
			if err != nil {
				return err
			}
			b, err := a.openBridge()
			if err != nil {
				return err
			}

			p := types.Protocol(proto)
			net, err := b.ToNetwork(id, meta, p)
			if err != nil {
				return lookupFailed(err)
			}
			return a.printLookup(cmd, "network", lookupResult{
				Protocol:  p,
				Canonical: b.Registry().Canonicalize(p),
				ID:        net.ID,
				Meta:      net.Meta,
			})
		},
	}
	cmd.Flags().Int32Var(&proto, "protocol", int32(protocol.Current), "client protocol version")
	return cmd
}

func newFromNetCmd(a *app) *cobra.Command {
	var (
		proto    int32
		wildcard bool
	)
	cmd := &cobra.Command{
		Use:   "from-net <id> <meta>",
		Short: "Translate a network id and meta to the stable form",
		Long: `Translate a network item id and meta of a protocol to the stable id and meta.
With --wildcard, a meta of 32767 is the wildcard.

Example:
  itembridge from-net 276 0 --protocol 431
  itembridge from-net 259 32767 --protocol 431 --wildcard`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, meta, err := parseItemArgs(args)
			if err != nil {
				return err
			}
			b, err := a.openBridge()
			if err != nil {
				return err
			}

			p := types.Protocol(proto)
			res := lookupResult{Protocol: p, Canonical: b.Registry().Canonicalize(p)}
			if wildcard {
				core, err := b.FromNetworkWithWildcard(id, meta, p)
				if err != nil {
					return lookupFailed(err)
				}
				res.ID, res.Meta = core.ID, core.Meta
			} else {
				core, isComplex, err := b.FromNetwork(id, meta, p)
				if err != nil {
					return lookupFailed(err)
				}
				res.ID, res.Meta = core.ID, core.Meta
				res.Complex = &isComplex
			}
			return a.printLookup(cmd, "stable", res)
		},
	}
	cmd.Flags().Int32Var(&proto, "protocol", int32(protocol.Current), "client protocol version")
	cmd.Flags().BoolVar(&wildcard, "wildcard", false, "treat meta 32767 as the wildcard")
	return cmd
}
