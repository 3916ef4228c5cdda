package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSet(t *testing.T) {
	tests := map[string]string{
		"Core":                     "Set_Core",
		"The War of Five Kings":    "Set_TheWarOfTheFiveKings",
		"The Raven's Song":         "Set_TheRavensSong",
		"Rituals of R'hllor":       "Set_RitualsOfRhllor",
		"The Isle of Ravens":       "Set_TheIlseOfRavens",
		"The Tourney for the Hand": "Set_TourneyForTheHand",
		"The Blue is Calling":      "Set_TheBlueIsCalling",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ResolveSet(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolveSet_Unknown(t *testing.T) {
	_, err := ResolveSet("Core Set")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSet)
	assert.False(t, errors.Is(err, ErrUnknownIcon))

	var unknown *UnknownError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "set", unknown.Table)
	assert.Equal(t, "Core Set", unknown.Key)
	assert.Equal(t, `unknown set "Core Set"`, err.Error())
}

func TestResolveSet_IsCaseSensitive(t *testing.T) {
	_, err := ResolveSet("core")
	assert.ErrorIs(t, err, ErrUnknownSet)
}

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		name string
		want Icon
	}{
		{"Military", Icon{Kind: "Military"}},
		{"Military (Naval)", Icon{Kind: "Military", Naval: true}},
		{"Intrigue", Icon{Kind: "Intrigue"}},
		{"Intrigue (Naval)", Icon{Kind: "Intrigue", Naval: true}},
		{"Power", Icon{Kind: "Power"}},
		{"Power (Naval)", Icon{Kind: "Power", Naval: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveIcon(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIcon_Unknown(t *testing.T) {
	for _, name := range []string{"Naval", "Power(Naval)", "military", ""} {
		t.Run(name, func(t *testing.T) {
			_, err := ResolveIcon(name)
			assert.ErrorIs(t, err, ErrUnknownIcon)
			assert.False(t, errors.Is(err, ErrUnknownSet))
		})
	}
}

func TestIcon_Constructor(t *testing.T) {
	assert.Equal(t, "Icon_Intrigue", Icon{Kind: "Intrigue", Naval: true}.Constructor())
}

func TestVocabulary(t *testing.T) {
	sets := Sets()
	assert.Len(t, sets, 79)
	assert.IsNonDecreasing(t, sets)

	assert.Equal(t, []string{
		"Intrigue", "Intrigue (Naval)",
		"Military", "Military (Naval)",
		"Power", "Power (Naval)",
	}, Icons())
}
