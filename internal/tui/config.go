package tui

import (
	"time"

	"github.com/Veraticus/catalog-browser/internal/dataset"
	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/Veraticus/catalog-browser/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme themes.Theme
	// Source is read when the program starts unless Dataset is set.
	Source      dataset.Source
	Dataset     *model.Dataset
	LoadTimeout time.Duration
	Width       int
	Height      int
	ShowHelp    bool
	ShowSummary bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		Source:      dataset.EmbeddedSource{},
		LoadTimeout: 10 * time.Second,
		Width:       100,
		Height:      30,
		ShowHelp:    false,
		ShowSummary: true,
	}
}

// WithSource sets where the catalog is loaded from.
func WithSource(src dataset.Source) Option {
	return func(c *Config) {
		c.Source = src
	}
}

// WithDataset uses an already loaded dataset instead of a source.
func WithDataset(ds model.Dataset) Option {
	return func(c *Config) {
		c.Dataset = &ds
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithLoadTimeout bounds how long loading the source may take.
func WithLoadTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.LoadTimeout = d
	}
}

// WithSummary toggles the side panel with per-user and per-category counts.
func WithSummary(enabled bool) Option {
	return func(c *Config) {
		c.ShowSummary = enabled
	}
}
