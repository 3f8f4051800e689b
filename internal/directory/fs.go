package directory

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// itemListEntry is one value of a required_item_list.json document.
type itemListEntry struct {
	RuntimeID      int32 `json:"runtime_id"`
	ComponentBased bool  `json:"component_based"`
}

// FS reads one <protocol>.json item list per protocol from a directory of
// a filesystem.
type FS struct {
	fsys fs.FS
	dir  string
}

// NewFS returns a Directory over the item lists in dir.
func NewFS(fsys fs.FS, dir string) *FS {
	return &FS{fsys: fsys, dir: dir}
}

// Entries reads every item list. Entries of each protocol are sorted by
// network id. A missing directory wraps types.ErrResourceUnavailable and a
// bad file wraps types.ErrMalformedSourceData.
func (d *FS) Entries() (map[types.Protocol][]types.DirectoryEntry, error) {
	files, err := fs.ReadDir(d.fsys, d.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrResourceUnavailable, d.dir, err)
	}

	out := make(map[types.Protocol][]types.DirectoryEntry)
	for _, f := range files {
		if f.IsDir() || path.Ext(f.Name()) != ".json" {
			continue
		}
		p, err := strconv.ParseInt(strings.TrimSuffix(f.Name(), ".json"), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: item list %s: name is not a protocol number", types.ErrMalformedSourceData, f.Name())
		}

		entries, err := d.readList(path.Join(d.dir, f.Name()))
		if err != nil {
			return nil, err
		}
		out[types.Protocol(p)] = entries
	}
	return out, nil
}

func (d *FS) readList(name string) ([]types.DirectoryEntry, error) {
	data, err := fs.ReadFile(d.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrResourceUnavailable, name, err)
	}

	var list map[string]itemListEntry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: item list %s: %w", types.ErrMalformedSourceData, name, err)
	}

	entries := make([]types.DirectoryEntry, 0, len(list))
	for id, e := range list {
		entries = append(entries, types.DirectoryEntry{StringID: id, NetworkID: e.RuntimeID})
	}
	slices.SortFunc(entries, func(a, b types.DirectoryEntry) int {
		if c := cmp.Compare(a.NetworkID, b.NetworkID); c != 0 {
			return c
		}
		return strings.Compare(a.StringID, b.StringID)
	})
	return entries, nil
}
