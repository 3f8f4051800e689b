// Package mapping builds the per-protocol lookup tables that relate stable
// item ids to network item ids. Tables are built once from immutable source
// data and are read-only afterwards.
package mapping

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/itembridge/internal/source"
	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// Options carries the optional inputs of Build.
type Options struct {
	// Filter selects the protocols to build. Nil builds every protocol.
	Filter types.ProtocolFilter
	// Logger receives build progress. Nil discards it.
	Logger *zap.Logger
}

// MergeSimple resolves the simple remap against the legacy table into a map
// of current string id to legacy numeric id.
//
// Remapped old ids without a legacy id are skipped. Every legacy id is then
// added under its own name; a legacy name that is already a remap target is
// an ErrIdentifierCollision.
func MergeSimple(remap []source.SimpleRemap, legacy source.LegacyIDs) (map[string]int32, error) {
	merged := make(map[string]int32, len(remap)+len(legacy))
	for _, r := range remap {
		id, ok := legacy[r.Old]
		if !ok {
			// new item without a fixed legacy id
			continue
		}
		merged[r.New] = id
	}
	for name, id := range legacy {
		if _, ok := merged[name]; ok {
			return nil, fmt.Errorf("%w: old ID %q collides with new ID", types.ErrIdentifierCollision, name)
		}
		merged[name] = id
	}
	return merged, nil
}

// CollectComplex resolves the complex remap against the legacy table into a
// map of current string id to legacy numeric id and meta. Old ids without a
// legacy id are skipped.
func CollectComplex(remap []source.ComplexRemap, legacy source.LegacyIDs) map[string]types.CoreItem {
	out := make(map[string]types.CoreItem, len(remap))
	for _, r := range remap {
		id, ok := legacy[r.Old]
		if !ok {
			continue
		}
		out[r.New] = types.CoreItem{ID: id, Meta: r.Meta}
	}
	return out
}

// Build produces the lookup tables of every enabled protocol in dir.
// Directory entries with a complex mapping take precedence over a simple
// one; entries with neither are skipped.
func Build(remap *source.RemapTable, legacy source.LegacyIDs, dir types.Directory, opts Options) (*Tables, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	filter := opts.Filter
	if filter == nil {
		filter = types.AllProtocols
	}

	simple, err := MergeSimple(remap.Simple, legacy)
	if err != nil {
		return nil, err
	}
	complexMappings := CollectComplex(remap.Complex, legacy)

	entries, err := dir.Entries()
	if err != nil {
		return nil, fmt.Errorf("reading item directory: %w", err)
	}

	tables := &Tables{protocols: make(map[types.Protocol]*protocolTables, len(entries))}
	for p, list := range entries {
		if !filter(p) {
			log.Debug("protocol disabled, skipping", zap.Stringer("protocol", p))
			continue
		}

		pt := newProtocolTables()
		skipped := 0
		for _, e := range list {
			if core, ok := complexMappings[e.StringID]; ok {
				pt.complexCoreToNet[coreKey{core.ID, core.Meta}] = e.NetworkID
				pt.complexNetToCore[e.NetworkID] = core
			} else if id, ok := simple[e.StringID]; ok {
				pt.simpleCoreToNet[id] = e.NetworkID
				pt.simpleNetToCore[e.NetworkID] = id
			} else {
				// no legacy form on this protocol
				skipped++
			}
		}
		tables.protocols[p] = pt

		log.Debug("built item tables",
			zap.Stringer("protocol", p),
			zap.Int("simple", len(pt.simpleCoreToNet)),
			zap.Int("complex", len(pt.complexCoreToNet)),
			zap.Int("skipped", skipped),
		)
	}

	log.Info("item tables ready",
		zap.Int("protocols", len(tables.protocols)),
		zap.Int("simple_ids", len(simple)),
		zap.Int("complex_ids", len(complexMappings)),
	)
	return tables, nil
}
