package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Veraticus/catalog-browser/internal/common"
)

// Dataset sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
)

// Config keys shared by flags, the config file and CATALOG_* environment variables.
const (
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
	KeyLogFile      = "logging.file"
	KeyDataSource   = "data.source"
	KeyDataPath     = "data.path"
	KeyDatabasePath = "database.path"
	KeyTheme        = "ui.theme"
)

// Config is the typed view of the application configuration.
type Config struct {
	Logging  LoggingConfig
	Data     DataConfig
	Database DatabaseConfig
	UI       UIConfig
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
	// File receives log output while the terminal UI owns the screen.
	File string
}

// DataConfig selects where the reference data comes from.
type DataConfig struct {
	Source string
	Path   string
}

// DatabaseConfig locates the SQLite catalog.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	Theme string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, filepath.Join(home, ".local", "state", "catalog", "catalog.log"))
	v.SetDefault(KeyDataSource, SourceEmbedded)
	v.SetDefault(KeyDatabasePath, filepath.Join(home, ".local", "share", "catalog", "catalog.db"))
	v.SetDefault(KeyTheme, "default")
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   v.GetString(KeyLogFile),
		},
		Data: DataConfig{
			Source: v.GetString(KeyDataSource),
			Path:   v.GetString(KeyDataPath),
		},
		Database: DatabaseConfig{
			Path: v.GetString(KeyDatabasePath),
		},
		UI: UIConfig{
			Theme: v.GetString(KeyTheme),
		},
	}

	for _, p := range []struct {
		value *string
		key   string
	}{
		{&cfg.Logging.File, KeyLogFile},
		{&cfg.Data.Path, KeyDataPath},
		{&cfg.Database.Path, KeyDatabasePath},
	} {
		expanded, err := ExpandPath(*p.value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", p.key, err)
		}
		*p.value = expanded
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	switch c.Data.Source {
	case SourceEmbedded:
	case SourceFile:
		if c.Data.Path == "" {
			return fmt.Errorf("%w: data.path is required for the file source", common.ErrMissingConfig)
		}
	case SourceSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("%w: database.path is required for the sqlite source", common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: data source %q (want embedded, file or sqlite)", common.ErrInvalidConfig, c.Data.Source)
	}

	return nil
}
