package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadConfig_DefaultPathFollowsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "cardscribe", "config.toml"), GetConfigFilePath())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, `
[literals]
cards_module = "Generated.Cards"

[images]
workers = 4

[images.portrait]
width = 300
height = 420
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Generated.Cards", cfg.Literals.CardsModule)
	assert.Equal(t, "all_cards", cfg.Literals.CardsSymbol)
	assert.Equal(t, "Faqs", cfg.Literals.FaqsModule)
	assert.Equal(t, 4, cfg.Images.Workers)
	assert.Equal(t, 90, cfg.Images.Quality)
	assert.Equal(t, Size{Width: 300, Height: 420}, cfg.Images.Portrait)
	assert.Equal(t, Size{Width: 325, Height: 227}, cfg.Images.Landscape)
	assert.Equal(t, ".html", cfg.HTML.Extension)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[images\nworkers = 1", "error decoding config file"},
		{"negative workers", "[images]\nworkers = -2", "images.workers"},
		{"quality too high", "[images]\njpeg_quality = 101", "images.jpeg_quality"},
		{"quality zero", "[images]\njpeg_quality = 0", "images.jpeg_quality"},
		{"empty symbol", "[literals]\nfaqs_symbol = \"\"", "literals.faqs_symbol"},
		{"zero size", "[images.landscape]\nwidth = 0", "images.landscape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cardscribe", "config.toml")

	want := Default()
	want.Literals.FaqsModule = "Rulings"
	want.Images.Workers = 2
	want.HTML.Extension = ".htm"
	require.NoError(t, WriteConfig(path, &want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}
