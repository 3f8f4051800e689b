// Package directory provides per-protocol item directories: the list of
// string item ids and network ids each protocol version knows.
package directory

import (
	"maps"
	"slices"

	"github.com/sandertv/gophertunnel/minecraft/protocol"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// Static is an in-memory Directory.
type Static map[types.Protocol][]types.DirectoryEntry

// Entries returns a copy of the directory contents.
func (s Static) Entries() (map[types.Protocol][]types.DirectoryEntry, error) {
	out := make(map[types.Protocol][]types.DirectoryEntry, len(s))
	for p, entries := range s {
		out[p] = slices.Clone(entries)
	}
	return out, nil
}

// Protocols returns the protocols in the directory, ascending.
func (s Static) Protocols() []types.Protocol {
	return slices.Sorted(maps.Keys(s))
}

// FromItemEntries builds a Static directory from the item entries a server
// sends in its StartGame packet, keyed by canonical protocol.
func FromItemEntries(entries map[types.Protocol][]protocol.ItemEntry) Static {
	s := make(Static, len(entries))
	for p, items := range entries {
		list := make([]types.DirectoryEntry, 0, len(items))
		for _, it := range items {
			list = append(list, types.DirectoryEntry{
				StringID:  it.Name,
				NetworkID: int32(it.RuntimeID),
			})
		}
		s[p] = list
	}
	return s
}
