package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	Literals LiteralsConfig `toml:"literals"`
	Images   ImagesConfig   `toml:"images"`
	HTML     HTMLConfig     `toml:"html"`
}

// LiteralsConfig names the generated Elm modules and their exposed lists
type LiteralsConfig struct {
	CardsModule string `toml:"cards_module"`
	CardsSymbol string `toml:"cards_symbol"`
	FaqsModule  string `toml:"faqs_module"`
	FaqsSymbol  string `toml:"faqs_symbol"`
}

// ImagesConfig controls the image resizer
type ImagesConfig struct {
	Workers   int  `toml:"workers"` // 0 means one per CPU
	Quality   int  `toml:"jpeg_quality"`
	Landscape Size `toml:"landscape"`
	Portrait  Size `toml:"portrait"`
}

// Size is a target resolution in pixels
type Size struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// HTMLConfig controls the card page renderer
type HTMLConfig struct {
	Extension string `toml:"extension"`
}

// Default returns the configuration used when no config file exists
func Default() Config {
	return Config{
		Literals: LiteralsConfig{
			CardsModule: "Cards",
			CardsSymbol: "all_cards",
			FaqsModule:  "Faqs",
			FaqsSymbol:  "all_faqs",
		},
		Images: ImagesConfig{
			Workers:   0,
			Quality:   90,
			Landscape: Size{Width: 325, Height: 227},
			Portrait:  Size{Width: 245, Height: 350},
		},
		HTML: HTMLConfig{
			Extension: ".html",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardscribe", "config.toml")
}

// LoadConfig loads the config file at path, or at the default location when
// path is empty. Keys missing from the file keep their default values, and a
// missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config, nil
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &config, nil
}

// Validate checks the values a config file can get wrong
func (c *Config) Validate() error {
	l := c.Literals
	for key, value := range map[string]string{
		"literals.cards_module": l.CardsModule,
		"literals.cards_symbol": l.CardsSymbol,
		"literals.faqs_module":  l.FaqsModule,
		"literals.faqs_symbol":  l.FaqsSymbol,
	} {
		if value == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}

	if c.Images.Workers < 0 {
		return fmt.Errorf("images.workers must not be negative, got %d", c.Images.Workers)
	}
	if c.Images.Quality < 1 || c.Images.Quality > 100 {
		return fmt.Errorf("images.jpeg_quality must be between 1 and 100, got %d", c.Images.Quality)
	}
	for key, size := range map[string]Size{
		"images.landscape": c.Images.Landscape,
		"images.portrait":  c.Images.Portrait,
	} {
		if size.Width <= 0 || size.Height <= 0 {
			return fmt.Errorf("%s must have a positive width and height, got %dx%d", key, size.Width, size.Height)
		}
	}

	return nil
}

// WriteConfig encodes config as TOML at path, creating its directory
func WriteConfig(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
