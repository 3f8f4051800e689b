// Package bridge assembles a ready translator: it loads the raw tables,
// parses them, reads the item directory, and builds the lookup tables.
package bridge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/itembridge/internal/directory"
	"github.com/mesh-intelligence/itembridge/internal/mapping"
	"github.com/mesh-intelligence/itembridge/internal/protocol"
	"github.com/mesh-intelligence/itembridge/internal/resources"
	"github.com/mesh-intelligence/itembridge/internal/source"
	"github.com/mesh-intelligence/itembridge/internal/translator"
	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// Bridge is a translator together with the registry and tables it serves.
type Bridge struct {
	*translator.Translator

	registry *protocol.Registry
	tables   *mapping.Tables
	loader   *resources.Loader
	log      *zap.Logger
}

// Option configures Open.
type Option func(*options)

type options struct {
	dir    types.Directory
	logger *zap.Logger
}

// WithDirectory replaces the item directory. By default the item lists are
// read from the same resources as the raw tables.
func WithDirectory(d types.Directory) Option {
	return func(o *options) { o.dir = d }
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Open builds a Bridge from cfg. Any failure aborts; no partial tables are
// returned.
func Open(cfg types.Config, opts ...Option) (*Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = zap.NewNop()
	}

	loader := resources.Embedded()
	if cfg.ResourceDir != "" {
		loader = resources.Dir(cfg.ResourceDir)
	}

	legacyData, err := loader.Load(resources.LegacyIDMap)
	if err != nil {
		return nil, err
	}
	remapData, err := loader.Load(resources.RemapTable)
	if err != nil {
		return nil, err
	}
	legacy, err := source.ParseLegacyIDs(legacyData)
	if err != nil {
		return nil, err
	}
	remap, err := source.ParseRemapTable(remapData)
	if err != nil {
		return nil, err
	}

	dir := o.dir
	if dir == nil {
		dir = directory.NewFS(loader.FS(), resources.ItemListDir)
	}

	reg := protocol.NewRegistry()
	filter := reg.Filter(cfg.DisabledProtocols)
	tables, err := mapping.Build(remap, legacy, dir, mapping.Options{
		Filter: filter,
		Logger: log,
	})
	if err != nil {
		return nil, fmt.Errorf("building item tables: %w", err)
	}

	for _, p := range reg.Supported() {
		if filter(p) && !tables.Has(p) {
			log.Warn("supported protocol has no item list", zap.Stringer("protocol", p))
		}
	}

	return &Bridge{
		Translator: translator.New(tables, reg),
		registry:   reg,
		tables:     tables,
		loader:     loader,
		log:        log,
	}, nil
}

// Registry returns the protocol registry.
func (b *Bridge) Registry() *protocol.Registry { return b.registry }

// Tables returns the built lookup tables.
func (b *Bridge) Tables() *mapping.Tables { return b.tables }

// Source names where the raw tables were loaded from.
func (b *Bridge) Source() string { return b.loader.String() }
