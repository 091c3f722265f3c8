package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/catalog-browser/internal/common"
)

func newViper(t *testing.T, values map[string]any) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, SourceEmbedded, cfg.Data.Source)
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.Equal(t, "catalog.db", filepath.Base(cfg.Database.Path))
	assert.Equal(t, "catalog.log", filepath.Base(cfg.Logging.File))
}

func TestLoad_ExpandsPaths(t *testing.T) {
	t.Setenv("CATALOG_TEST_DIR", "/tmp/catalog")

	cfg, err := Load(newViper(t, map[string]any{
		KeyDataSource:   SourceFile,
		KeyDataPath:     "$CATALOG_TEST_DIR/data.yaml",
		KeyDatabasePath: "~/catalog.db",
	}))
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/catalog/data.yaml", cfg.Data.Path)
	assert.Equal(t, filepath.Join(home, "catalog.db"), cfg.Database.Path)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		values map[string]any
		want   error
		name   string
	}{
		{
			name:   "unknown source",
			values: map[string]any{KeyDataSource: "http"},
			want:   common.ErrInvalidConfig,
		},
		{
			name:   "file source without path",
			values: map[string]any{KeyDataSource: SourceFile},
			want:   common.ErrMissingConfig,
		},
		{
			name:   "sqlite source without database",
			values: map[string]any{KeyDataSource: SourceSQLite, KeyDatabasePath: ""},
			want:   common.ErrMissingConfig,
		},
		{
			name:   "bad log level",
			values: map[string]any{KeyLogLevel: "loud"},
			want:   common.ErrInvalidConfig,
		},
		{
			name:   "bad log format",
			values: map[string]any{KeyLogFormat: "xml"},
			want:   common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.values))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("CATALOG_TEST_DIR", "/srv/catalog")

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "empty", path: "", want: ""},
		{name: "home", path: "~", want: home},
		{name: "under home", path: "~/x/y", want: filepath.Join(home, "x", "y")},
		{name: "absolute", path: "/abs/path", want: "/abs/path"},
		{name: "env var", path: "$CATALOG_TEST_DIR/catalog.db", want: "/srv/catalog/catalog.db"},
		{name: "other user home", path: "~bob/catalog.db", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandPath_NoHome(t *testing.T) {
	t.Setenv("HOME", "")

	_, err := ExpandPath("~/catalog.db")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)

	got, err := ExpandPath("/abs/catalog.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/catalog.db", got)
}

func TestLoad_RejectsUnexpandablePath(t *testing.T) {
	v := newViper(t, map[string]any{KeyDatabasePath: "~bob/catalog.db"})

	_, err := Load(v)
	require.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Contains(t, err.Error(), KeyDatabasePath)
}
