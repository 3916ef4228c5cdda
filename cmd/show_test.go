package cmd

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 20, []string{""}},
		{"fits", "Renown.", 20, []string{"Renown."}},
		{"ascii", "Reaction: After you win a challenge", 12, []string{"Reaction:", "After you", "win a", "challenge"}},
		{"accents count as one", "Mère Mère Mère", 14, []string{"Mère Mère Mère"}},
		{"dash counts as one", "Lord — Night's Watch", 20, []string{"Lord — Night's Watch"}},
		{"narrow width falls back", "a b", 3, []string{"a b"}},
		{"long word keeps its line", "Interrupt:", 10, []string{"Interrupt:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}

func TestHouseColor(t *testing.T) {
	stark, err := colorful.Hex(houseColors["Stark"])
	require.NoError(t, err)
	targaryen, err := colorful.Hex(houseColors["Targaryen"])
	require.NoError(t, err)

	got, ok := houseColor([]string{"Stark"})
	require.True(t, ok)
	assert.Equal(t, stark.Hex(), got.Hex())

	got, ok = houseColor([]string{"Stark", "Unknown", "Targaryen"})
	require.True(t, ok)
	assert.Equal(t, stark.BlendLab(targaryen, 0.5).Hex(), got.Hex())

	_, ok = houseColor([]string{"Unknown"})
	assert.False(t, ok)

	_, ok = houseColor(nil)
	assert.False(t, ok)
}
