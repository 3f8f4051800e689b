package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

func TestCanonicalize(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		raw  types.Protocol
		want types.Protocol
	}{
		{"1.16.220 beta folds to 1.16.220", Bedrock1_16_220_50, Bedrock1_16_220},
		{"1.16.230 beta folds to 1.16.220", Bedrock1_16_230_54, Bedrock1_16_220},
		{"1.17.10 beta folds to 1.17.0", Bedrock1_17_10_20, Bedrock1_17_0},
		{"1.17.20 folds to 1.17.10", Bedrock1_17_20_23, Bedrock1_17_10},
		{"1.17.30 beta folds to 1.17.30", Bedrock1_17_30_22, Bedrock1_17_30},
		{"canonical is unchanged", Bedrock1_17_40, Bedrock1_17_40},
		{"current is unchanged", Current, Current},
		{"unknown passes through", 999, 999},
		{"zero passes through", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Canonicalize(tt.raw))
		})
	}
}

func TestCanonicalTargetsAreSupported(t *testing.T) {
	r := NewRegistry()
	for from, to := range aliases {
		assert.True(t, r.IsSupported(to), "alias %d targets unsupported %d", from, to)
		assert.NotContains(t, r.Supported(), from, "alias %d is also canonical", from)
	}
}

func TestLabel(t *testing.T) {
	r := NewRegistry()

	got, ok := r.Label(Bedrock1_17_30)
	require.True(t, ok)
	assert.Equal(t, "1.17.30", got)

	got, ok = r.Label(Bedrock1_17_30_20)
	require.True(t, ok)
	assert.Equal(t, "1.17.30", got)

	_, ok = r.Label(12)
	assert.False(t, ok)
}

func TestSupportedAndCurrent(t *testing.T) {
	r := NewRegistry()

	s := r.Supported()
	require.Len(t, s, 7)
	assert.Equal(t, Bedrock1_16_220, s[0])
	assert.Equal(t, Current, r.Current())
	assert.True(t, r.IsSupported(Bedrock1_17_20_21))
	assert.False(t, r.IsSupported(1))
}

func TestAliases(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, []types.Protocol{
		Bedrock1_16_220_50, Bedrock1_16_220_51,
		Bedrock1_16_230_50, Bedrock1_16_230_52, Bedrock1_16_230_54,
	}, r.Aliases(Bedrock1_16_220))
	assert.Empty(t, r.Aliases(Current))
}

func TestFilter(t *testing.T) {
	r := NewRegistry()

	t.Run("nil disables nothing", func(t *testing.T) {
		f := r.Filter(nil)
		for _, p := range r.Supported() {
			assert.True(t, f(p))
		}
	})

	t.Run("alias disables its canonical protocol", func(t *testing.T) {
		f := r.Filter([]types.Protocol{Bedrock1_17_20_22, Bedrock1_18_0})
		assert.False(t, f(Bedrock1_17_10))
		assert.False(t, f(Bedrock1_18_0))
		assert.True(t, f(Bedrock1_17_0))
	})
}

func TestVersionsIsACopy(t *testing.T) {
	r := NewRegistry()
	v := r.Versions()
	v[0].Name = "changed"
	got, _ := r.Label(v[0].Protocol)
	assert.Equal(t, "1.16.220", got)
}
