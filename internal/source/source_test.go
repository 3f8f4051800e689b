package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

func TestParseLegacyIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    LegacyIDs
		wantErr error
	}{
		{
			name:  "flat object",
			input: `{"minecraft:stone": 1, "minecraft:dye": 351}`,
			want:  LegacyIDs{"minecraft:stone": 1, "minecraft:dye": 351},
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  LegacyIDs{},
		},
		{
			name:    "array is malformed",
			input:   `[1, 2]`,
			wantErr: types.ErrMalformedSourceData,
		},
		{
			name:    "null is malformed",
			input:   `null`,
			wantErr: types.ErrMalformedSourceData,
		},
		{
			name:    "string value is malformed",
			input:   `{"minecraft:stone": "1"}`,
			wantErr: types.ErrMalformedSourceData,
		},
		{
			name:    "fractional value is malformed",
			input:   `{"minecraft:stone": 1.5}`,
			wantErr: types.ErrMalformedSourceData,
		},
		{
			name:    "truncated document is malformed",
			input:   `{"minecraft:stone": 1`,
			wantErr: types.ErrMalformedSourceData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLegacyIDs([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRemapTableKeepsDocumentOrder(t *testing.T) {
	input := `{
		"simple": {
			"minecraft:totem": "minecraft:totem_of_undying",
			"minecraft:appleenchanted": "minecraft:enchanted_golden_apple"
		},
		"complex": {
			"minecraft:dye": {"15": "minecraft:bone_meal", "0": "minecraft:ink_sac"},
			"minecraft:coal": {"1": "minecraft:charcoal"}
		}
	}`

	got, err := ParseRemapTable([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, []SimpleRemap{
		{Old: "minecraft:totem", New: "minecraft:totem_of_undying"},
		{Old: "minecraft:appleenchanted", New: "minecraft:enchanted_golden_apple"},
	}, got.Simple)
	assert.Equal(t, []ComplexRemap{
		{Old: "minecraft:dye", Meta: 15, New: "minecraft:bone_meal"},
		{Old: "minecraft:dye", Meta: 0, New: "minecraft:ink_sac"},
		{Old: "minecraft:coal", Meta: 1, New: "minecraft:charcoal"},
	}, got.Complex)
}

func TestParseRemapTableEmptySections(t *testing.T) {
	got, err := ParseRemapTable([]byte(`{"simple": {}, "complex": {}}`))
	require.NoError(t, err)
	assert.Empty(t, got.Simple)
	assert.Empty(t, got.Complex)
}

func TestParseRemapTableMalformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"not an object", `[]`, "remap table"},
		{"missing simple", `{"complex": {}}`, `missing "simple"`},
		{"missing complex", `{"simple": {}}`, `missing "complex"`},
		{"null simple", `{"simple": null, "complex": {}}`, `missing "simple"`},
		{"simple is a list", `{"simple": ["a"], "complex": {}}`, "expected JSON object"},
		{"simple value is a number", `{"simple": {"a": 1}, "complex": {}}`, `simple "a"`},
		{"simple value is null", `{"simple": {"a": null}, "complex": {}}`, `simple "a"`},
		{"complex child is a string", `{"simple": {}, "complex": {"a": "b"}}`, "expected JSON object"},
		{"complex meta not numeric", `{"simple": {}, "complex": {"a": {"x": "b"}}}`, `meta "x" is not numeric`},
		{"complex meta fractional", `{"simple": {}, "complex": {"a": {"1.5": "b"}}}`, `meta "1.5" is not numeric`},
		{"complex value is a number", `{"simple": {}, "complex": {"a": {"1": 2}}}`, `complex "a" meta 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRemapTable([]byte(tt.input))
			require.ErrorIs(t, err, types.ErrMalformedSourceData)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
