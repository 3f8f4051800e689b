// Package bridge provides the public API for building an item translator.
// It exposes the constructor and fx module while keeping the table builder
// and resource parsing internal.
//
// Example:
//
//	b, err := bridge.Open(types.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	net, err := b.ToNetwork(id, meta, protocol)
package bridge

import (
	gtprotocol "github.com/sandertv/gophertunnel/minecraft/protocol"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/itembridge/internal/bridge"
	"github.com/mesh-intelligence/itembridge/internal/directory"
	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// Bridge is a ready translator with its protocol registry and tables.
type Bridge = bridge.Bridge

// Option configures Open.
type Option = bridge.Option

// Module provides *Bridge and types.Translator to an fx application that
// supplies a types.Config.
var Module = bridge.Module

// WithDirectory replaces the item directory read from the resources.
func WithDirectory(d types.Directory) Option { return bridge.WithDirectory(d) }

// WithItemEntries builds the tables from the item entries a client received
// in StartGame, one list per protocol.
func WithItemEntries(entries map[types.Protocol][]gtprotocol.ItemEntry) Option {
	return bridge.WithDirectory(directory.FromItemEntries(entries))
}

// WithLogger sets the logger used while building and serving.
func WithLogger(l *zap.Logger) Option { return bridge.WithLogger(l) }

// Open loads, parses, and builds everything described by cfg.
func Open(cfg types.Config, opts ...Option) (*Bridge, error) {
	return bridge.Open(cfg, opts...)
}

// New returns a translator built from cfg.
func New(cfg types.Config, opts ...Option) (types.Translator, error) {
	b, err := bridge.Open(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return b, nil
}
