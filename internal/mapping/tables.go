package mapping

import (
	"cmp"
	"maps"
	"slices"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// SimpleMapping is a 1:1 core id to network id relation. Meta passes through.
type SimpleMapping struct {
	CoreID    int32 `json:"core_id"`
	NetworkID int32 `json:"network_id"`
}

// ComplexMapping relates a core id and meta to a network id whose meta is
// always zero.
type ComplexMapping struct {
	CoreID    int32 `json:"core_id"`
	CoreMeta  int32 `json:"core_meta"`
	NetworkID int32 `json:"network_id"`
}

// Stats counts the mappings of one protocol.
type Stats struct {
	Protocol types.Protocol `json:"protocol"`
	Simple   int            `json:"simple"`
	Complex  int            `json:"complex"`
}

type coreKey struct {
	id   int32
	meta int32
}

// protocolTables holds the four lookup structures of one canonical protocol.
type protocolTables struct {
	simpleCoreToNet  map[int32]int32
	simpleNetToCore  map[int32]int32
	complexCoreToNet map[coreKey]int32
	complexNetToCore map[int32]types.CoreItem
}

func newProtocolTables() *protocolTables {
	return &protocolTables{
		simpleCoreToNet:  make(map[int32]int32),
		simpleNetToCore:  make(map[int32]int32),
		complexCoreToNet: make(map[coreKey]int32),
		complexNetToCore: make(map[int32]types.CoreItem),
	}
}

// Tables holds the lookup structures of every built protocol. It is never
// modified after Build returns, so concurrent reads need no locking.
type Tables struct {
	protocols map[types.Protocol]*protocolTables
}

// Protocols returns the protocols that have tables, ascending.
func (t *Tables) Protocols() []types.Protocol {
	return slices.Sorted(maps.Keys(t.protocols))
}

// Has reports whether tables were built for the canonical protocol p.
func (t *Tables) Has(p types.Protocol) bool {
	_, ok := t.protocols[p]
	return ok
}

// SimpleToNetwork returns the network id for a simple core id.
func (t *Tables) SimpleToNetwork(p types.Protocol, coreID int32) (int32, bool) {
	pt, ok := t.protocols[p]
	if !ok {
		return 0, false
	}
	id, ok := pt.simpleCoreToNet[coreID]
	return id, ok
}

// SimpleFromNetwork returns the core id for a simple network id.
func (t *Tables) SimpleFromNetwork(p types.Protocol, netID int32) (int32, bool) {
	pt, ok := t.protocols[p]
	if !ok {
		return 0, false
	}
	id, ok := pt.simpleNetToCore[netID]
	return id, ok
}

// ComplexToNetwork returns the network id for a core id and meta pair.
func (t *Tables) ComplexToNetwork(p types.Protocol, coreID, meta int32) (int32, bool) {
	pt, ok := t.protocols[p]
	if !ok {
		return 0, false
	}
	id, ok := pt.complexCoreToNet[coreKey{coreID, meta}]
	return id, ok
}

// ComplexFromNetwork returns the core id and meta folded into netID.
func (t *Tables) ComplexFromNetwork(p types.Protocol, netID int32) (types.CoreItem, bool) {
	pt, ok := t.protocols[p]
	if !ok {
		return types.CoreItem{}, false
	}
	item, ok := pt.complexNetToCore[netID]
	return item, ok
}

// Simple lists the simple mappings of p ordered by core id.
func (t *Tables) Simple(p types.Protocol) []SimpleMapping {
	pt, ok := t.protocols[p]
	if !ok {
		return nil
	}
	out := make([]SimpleMapping, 0, len(pt.simpleCoreToNet))
	for core, net := range pt.simpleCoreToNet {
		out = append(out, SimpleMapping{CoreID: core, NetworkID: net})
	}
	slices.SortFunc(out, func(a, b SimpleMapping) int {
		return cmp.Compare(a.CoreID, b.CoreID)
	})
	return out
}

// Complex lists the complex mappings of p ordered by core id then meta.
func (t *Tables) Complex(p types.Protocol) []ComplexMapping {
	pt, ok := t.protocols[p]
	if !ok {
		return nil
	}
	out := make([]ComplexMapping, 0, len(pt.complexCoreToNet))
	for k, net := range pt.complexCoreToNet {
		out = append(out, ComplexMapping{CoreID: k.id, CoreMeta: k.meta, NetworkID: net})
	}
	slices.SortFunc(out, func(a, b ComplexMapping) int {
		if c := cmp.Compare(a.CoreID, b.CoreID); c != 0 {
			return c
		}
		return cmp.Compare(a.CoreMeta, b.CoreMeta)
	})
	return out
}

// Stats counts the core to network mappings of p.
func (t *Tables) Stats(p types.Protocol) Stats {
	s := Stats{Protocol: p}
	if pt, ok := t.protocols[p]; ok {
		s.Simple = len(pt.simpleCoreToNet)
		s.Complex = len(pt.complexCoreToNet)
	}
	return s
}
