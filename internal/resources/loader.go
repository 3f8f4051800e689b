// Package resources loads the raw item data files. The vanilla files ship
// embedded in the binary; an operator may point at a directory with the same
// layout instead.
package resources

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// Resource names, relative to the loader root.
const (
	LegacyIDMap = "vanilla/item_id_map.json"
	RemapTable  = "vanilla/r16_to_current_item_map.json"
	ItemListDir = "item_lists"
)

//go:embed data
var embedded embed.FS

// Loader reads whole files from a filesystem.
type Loader struct {
	fsys fs.FS
	name string
}

// Embedded returns a Loader over the bundled vanilla data.
func Embedded() *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("resources: embedded data: %v", err))
	}
	return &Loader{fsys: sub, name: "embedded"}
}

// Dir returns a Loader rooted at path on the local filesystem.
func Dir(path string) *Loader {
	return &Loader{fsys: os.DirFS(path), name: path}
}

// New returns a Loader over an arbitrary filesystem.
func New(fsys fs.FS, name string) *Loader {
	return &Loader{fsys: fsys, name: name}
}

// FS returns the underlying filesystem.
func (l *Loader) FS() fs.FS { return l.fsys }

// String names the loader root for logs.
func (l *Loader) String() string { return l.name }

// Load opens the named resource and reads it fully. Any failure wraps
// types.ErrResourceUnavailable.
func (l *Loader) Load(name string) ([]byte, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrResourceUnavailable, name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", types.ErrResourceUnavailable, name, err)
	}
	return data, nil
}
