package translator

import (
	"math"

	"github.com/sandertv/gophertunnel/minecraft/protocol"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// ToItemType translates a stable id and meta into the ItemType carried by
// item stacks on protocol. ItemType metadata is unsigned, so a negative meta
// other than the wildcard has no network form and is ErrUnmappedIdentifier.
func (t *Translator) ToItemType(id, meta int32, proto types.Protocol) (protocol.ItemType, error) {
	if meta < 0 && meta != types.StableWildcard {
		return protocol.ItemType{}, t.unmapped(types.ToNetwork, id, meta, proto)
	}
	net, err := t.ToNetwork(id, meta, proto)
	if err != nil {
		return protocol.ItemType{}, err
	}
	return protocol.ItemType{
		NetworkID:     net.ID,
		MetadataValue: uint32(net.Meta),
	}, nil
}

// FromItemType translates an ItemType received on protocol back to the
// stable space, resolving metadata wildcards. Metadata above math.MaxInt32
// is ErrUnmappedIdentifier.
func (t *Translator) FromItemType(it protocol.ItemType, proto types.Protocol) (types.CoreItem, error) {
	if it.MetadataValue > math.MaxInt32 {
		return types.CoreItem{}, t.unmapped(types.FromNetwork, it.NetworkID, int32(it.MetadataValue), proto)
	}
	return t.FromNetworkWithWildcard(it.NetworkID, int32(it.MetadataValue), proto)
}

func (t *Translator) unmapped(dir types.Direction, id, meta int32, proto types.Protocol) error {
	return &types.LookupError{
		Kind:      types.ErrUnmappedIdentifier,
		Direction: dir,
		Protocol:  proto,
		Canonical: t.norm.Canonicalize(proto),
		ID:        id,
		Meta:      meta,
	}
}
