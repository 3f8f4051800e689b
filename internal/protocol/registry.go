// Package protocol lists the Bedrock protocol versions itembridge supports
// and folds point-release protocol numbers onto the canonical protocol whose
// item tables they share.
package protocol

import (
	"slices"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// Canonical protocol versions.
const (
	Bedrock1_16_220 types.Protocol = 431
	Bedrock1_17_0   types.Protocol = 440
	Bedrock1_17_10  types.Protocol = 448
	Bedrock1_17_30  types.Protocol = 465
	Bedrock1_17_40  types.Protocol = 471
	Bedrock1_18_0   types.Protocol = 475
	Bedrock1_18_10  types.Protocol = 486
)

// Point-release and beta protocols that reuse a canonical table.
const (
	Bedrock1_16_220_50 types.Protocol = 433
	Bedrock1_16_220_51 types.Protocol = 434
	Bedrock1_16_230_50 types.Protocol = 435
	Bedrock1_16_230_52 types.Protocol = 436
	Bedrock1_16_230_54 types.Protocol = 437
	Bedrock1_17_10_20  types.Protocol = 441
	Bedrock1_17_20_20  types.Protocol = 449
	Bedrock1_17_20_21  types.Protocol = 450
	Bedrock1_17_20_22  types.Protocol = 451
	Bedrock1_17_20_23  types.Protocol = 452
	Bedrock1_17_30_20  types.Protocol = 466
	Bedrock1_17_30_22  types.Protocol = 467
)

// Current is the newest protocol. It needs no alias entry.
const Current = Bedrock1_18_10

// Version is a supported protocol and its game version label.
type Version struct {
	Protocol types.Protocol `json:"protocol"`
	Name     string         `json:"name"`
}

// supported is ordered oldest first.
var supported = []Version{
	{Bedrock1_16_220, "1.16.220"},
	{Bedrock1_17_0, "1.17.0"},
	{Bedrock1_17_10, "1.17.10"},
	{Bedrock1_17_30, "1.17.30"},
	{Bedrock1_17_40, "1.17.40"},
	{Bedrock1_18_0, "1.18.0"},
	{Bedrock1_18_10, "1.18.10"},
}

var aliases = map[types.Protocol]types.Protocol{
	Bedrock1_16_220_50: Bedrock1_16_220,
	Bedrock1_16_220_51: Bedrock1_16_220,
	Bedrock1_16_230_50: Bedrock1_16_220,
	Bedrock1_16_230_52: Bedrock1_16_220,
	Bedrock1_16_230_54: Bedrock1_16_220,
	Bedrock1_17_10_20:  Bedrock1_17_0,
	Bedrock1_17_20_20:  Bedrock1_17_10,
	Bedrock1_17_20_21:  Bedrock1_17_10,
	Bedrock1_17_20_22:  Bedrock1_17_10,
	Bedrock1_17_20_23:  Bedrock1_17_10,
	Bedrock1_17_30_20:  Bedrock1_17_30,
	Bedrock1_17_30_22:  Bedrock1_17_30,
}

// Registry answers questions about supported protocols. The zero value is
// not usable; call NewRegistry.
type Registry struct {
	versions []Version
	names    map[types.Protocol]string
	aliases  map[types.Protocol]types.Protocol
}

// NewRegistry returns the registry of built-in protocol versions.
func NewRegistry() *Registry {
	return newRegistry(supported, aliases)
}

func newRegistry(versions []Version, alias map[types.Protocol]types.Protocol) *Registry {
	r := &Registry{
		versions: slices.Clone(versions),
		names:    make(map[types.Protocol]string, len(versions)),
		aliases:  make(map[types.Protocol]types.Protocol, len(alias)),
	}
	for _, v := range versions {
		r.names[v.Protocol] = v.Name
	}
	for from, to := range alias {
		r.aliases[from] = to
	}
	return r
}

// Canonicalize returns the canonical protocol for raw. Protocols without an
// alias entry, including unknown ones, are returned unchanged.
func (r *Registry) Canonicalize(raw types.Protocol) types.Protocol {
	if c, ok := r.aliases[raw]; ok {
		return c
	}
	return raw
}

// Versions returns the supported versions, oldest first.
func (r *Registry) Versions() []Version {
	return slices.Clone(r.versions)
}

// Supported returns the canonical protocol numbers, oldest first.
func (r *Registry) Supported() []types.Protocol {
	out := make([]types.Protocol, len(r.versions))
	for i, v := range r.versions {
		out[i] = v.Protocol
	}
	return out
}

// IsSupported reports whether p, after normalization, is a supported protocol.
func (r *Registry) IsSupported(p types.Protocol) bool {
	_, ok := r.names[r.Canonicalize(p)]
	return ok
}

// Label returns the game version of p. Aliases report their canonical label.
func (r *Registry) Label(p types.Protocol) (string, bool) {
	name, ok := r.names[r.Canonicalize(p)]
	return name, ok
}

// Aliases returns the raw protocols that normalize to canonical, ascending.
func (r *Registry) Aliases(canonical types.Protocol) []types.Protocol {
	var out []types.Protocol
	for from, to := range r.aliases {
		if to == canonical {
			out = append(out, from)
		}
	}
	slices.Sort(out)
	return out
}

// Current returns the newest supported protocol.
func (r *Registry) Current() types.Protocol {
	return r.versions[len(r.versions)-1].Protocol
}

// Filter returns a ProtocolFilter that rejects the disabled protocols.
// Disabled aliases disable their canonical protocol.
func (r *Registry) Filter(disabled []types.Protocol) types.ProtocolFilter {
	if len(disabled) == 0 {
		return types.AllProtocols
	}
	off := make(map[types.Protocol]bool, len(disabled))
	for _, p := range disabled {
		off[r.Canonicalize(p)] = true
	}
	return func(p types.Protocol) bool {
		return !off[p]
	}
}
