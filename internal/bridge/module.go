package bridge

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// Module provides *Bridge and types.Translator from a types.Config.
// A types.Directory and *zap.Logger are used when the graph has them.
var Module = fx.Module("itembridge",
	fx.Provide(
		NewFromParams,
		func(b *Bridge) types.Translator { return b },
	),
	fx.Invoke(registerLifecycle),
)

// Params are the dependencies of NewFromParams.
type Params struct {
	fx.In

	Config    types.Config
	Directory types.Directory `optional:"true"`
	Logger    *zap.Logger     `optional:"true"`
}

// NewFromParams opens a Bridge from injected dependencies.
func NewFromParams(p Params) (*Bridge, error) {
	var opts []Option
	if p.Directory != nil {
		opts = append(opts, WithDirectory(p.Directory))
	}
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger.Named("itembridge")))
	}
	return Open(p.Config, opts...)
}

func registerLifecycle(lc fx.Lifecycle, b *Bridge) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			b.log.Info("item bridge serving",
				zap.String("source", b.Source()),
				zap.Int("protocols", len(b.tables.Protocols())),
				zap.Stringer("current", b.registry.Current()),
			)
			return nil
		},
		OnStop: func(context.Context) error {
			b.log.Debug("item bridge stopped")
			return nil
		},
	})
}
