// Package translator converts item identifiers between the stable item space
// and the network item space of a protocol version, using tables built by
// package mapping.
package translator

import (
	"github.com/mesh-intelligence/itembridge/internal/mapping"
	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// Normalizer folds a raw protocol number onto its canonical protocol.
type Normalizer interface {
	Canonicalize(raw types.Protocol) types.Protocol
}

// Translator implements types.Translator. All methods only read immutable
// tables and are safe for concurrent use.
type Translator struct {
	tables *mapping.Tables
	norm   Normalizer
}

var _ types.Translator = (*Translator)(nil)

// New returns a Translator over tables.
func New(tables *mapping.Tables, norm Normalizer) *Translator {
	return &Translator{tables: tables, norm: norm}
}

// ToNetwork converts a stable id and meta to the network form of protocol.
func (t *Translator) ToNetwork(id, meta int32, protocol types.Protocol) (types.NetworkItem, error) {
	if meta == types.StableWildcard {
		meta = types.NetworkWildcard
	}
	canonical := t.norm.Canonicalize(protocol)

	if net, ok := t.tables.ComplexToNetwork(canonical, id, meta); ok {
		return types.NetworkItem{ID: net, Meta: 0}, nil
	}
	if net, ok := t.tables.SimpleToNetwork(canonical, id); ok {
		return types.NetworkItem{ID: net, Meta: meta}, nil
	}
	return types.NetworkItem{}, &types.LookupError{
		Kind:      types.ErrUnmappedIdentifier,
		Direction: types.ToNetwork,
		Protocol:  protocol,
		Canonical: canonical,
		ID:        id,
		Meta:      meta,
	}
}

// FromNetwork converts a network id and meta of protocol to the stable form.
func (t *Translator) FromNetwork(id, meta int32, protocol types.Protocol) (types.CoreItem, bool, error) {
	canonical := t.norm.Canonicalize(protocol)
	return t.fromNetwork(id, meta, protocol, canonical)
}

func (t *Translator) fromNetwork(id, meta int32, protocol, canonical types.Protocol) (types.CoreItem, bool, error) {
	if core, ok := t.tables.ComplexFromNetwork(canonical, id); ok {
		if meta != 0 {
			return types.CoreItem{}, false, &types.LookupError{
				Kind:      types.ErrInconsistentMetadata,
				Direction: types.FromNetwork,
				Protocol:  protocol,
				Canonical: canonical,
				ID:        id,
				Meta:      meta,
			}
		}
		return core, true, nil
	}
	if core, ok := t.tables.SimpleFromNetwork(canonical, id); ok {
		return types.CoreItem{ID: core, Meta: meta}, false, nil
	}
	return types.CoreItem{}, false, &types.LookupError{
		Kind:      types.ErrUnmappedIdentifier,
		Direction: types.FromNetwork,
		Protocol:  protocol,
		Canonical: canonical,
		ID:        id,
		Meta:      meta,
	}
}

// FromNetworkWithWildcard is FromNetwork that understands NetworkWildcard.
// A wildcard on a complex item resolves to the item's concrete meta; on a
// simple item it becomes StableWildcard.
func (t *Translator) FromNetworkWithWildcard(id, meta int32, protocol types.Protocol) (types.CoreItem, error) {
	canonical := t.norm.Canonicalize(protocol)
	if meta != types.NetworkWildcard {
		core, _, err := t.fromNetwork(id, meta, protocol, canonical)
		return core, err
	}

	core, isComplex, err := t.fromNetwork(id, 0, protocol, canonical)
	if err != nil {
		return types.CoreItem{}, err
	}
	if !isComplex {
		core.Meta = types.StableWildcard
	}
	return core, nil
}
