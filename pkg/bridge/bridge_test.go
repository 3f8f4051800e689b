package bridge_test

import (
	"errors"
	"testing"

	gtprotocol "github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/itembridge/pkg/bridge"
	"github.com/mesh-intelligence/itembridge/pkg/types"
)

func TestNew(t *testing.T) {
	tr, err := bridge.New(types.DefaultConfig())
	require.NoError(t, err)

	// minecraft:dye meta 15 is minecraft:bone_meal on 1.16.220.
	net, err := tr.ToNetwork(351, 15, 431)
	require.NoError(t, err)
	assert.Equal(t, types.NetworkItem{ID: 276, Meta: 0}, net)

	_, err = tr.ToNetwork(9999, 0, 431)
	var lookup *types.LookupError
	require.True(t, errors.As(err, &lookup))
	assert.Equal(t, types.ToNetwork, lookup.Direction)
	assert.ErrorIs(t, err, types.ErrUnmappedIdentifier)
}

func TestOpenWithItemEntries(t *testing.T) {
	b, err := bridge.Open(types.DefaultConfig(), bridge.WithItemEntries(map[types.Protocol][]gtprotocol.ItemEntry{
		486: {
			{Name: "minecraft:apple", RuntimeID: 1000},
			{Name: "minecraft:red_dye", RuntimeID: 1001},
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, []types.Protocol{486}, b.Tables().Protocols())

	item, isComplex, err := b.FromNetwork(1001, 0, 486)
	require.NoError(t, err)
	assert.True(t, isComplex)
	assert.Equal(t, types.CoreItem{ID: 351, Meta: 1}, item)

	net, err := b.ToNetwork(260, types.StableWildcard, 486)
	require.NoError(t, err)
	assert.Equal(t, types.NetworkItem{ID: 1000, Meta: types.NetworkWildcard}, net)
}

func TestNewInvalidConfig(t *testing.T) {
	tr, err := bridge.New(types.Config{DisabledProtocols: []types.Protocol{-1}})
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, types.ErrProtocolInvalid)
}
