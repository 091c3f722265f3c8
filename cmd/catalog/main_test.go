package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/config"
	"github.com/Veraticus/catalog-browser/internal/tui/components"
)

// useConfig swaps the loaded configuration for the duration of a test.
func useConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	prev := appConfig
	appConfig = cfg
	t.Cleanup(func() { appConfig = prev })
}

func embeddedConfig() config.Config {
	return config.Config{Data: config.DataConfig{Source: config.SourceEmbedded}}
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

func TestRootCmd(t *testing.T) {
	for _, name := range []string{"browse", "list", "db", "validate", "version"} {
		assert.NotNil(t, findCommand(rootCmd, name), "%s subcommand should exist", name)
	}

	db := findCommand(rootCmd, "db")
	require.NotNil(t, db)
	assert.NotNil(t, findCommand(db, "init"))
	assert.NotNil(t, findCommand(db, "status"))

	for _, flag := range []string{"config", "log-level", "log-format", "source", "data", "db", "theme"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "--%s flag should exist", flag)
	}
	assert.Equal(t, config.SourceEmbedded, rootCmd.PersistentFlags().Lookup("source").DefValue)
}

func TestBrowseCmd_LogsToFile(t *testing.T) {
	cmd := browseCmd()
	assert.Equal(t, "true", cmd.Annotations[annotationLogToFile])
	assert.NotNil(t, cmd.Flag("no-summary"))
}

func TestListFilters(t *testing.T) {
	tests := []struct {
		name           string
		user           string
		search         string
		wantQuery      string
		categories     []string
		wantCategories []string
	}{
		{
			name:           "repeated category stays selected",
			user:           "Anna",
			categories:     []string{"Fruits", "Grocery", "Fruits"},
			wantCategories: []string{"Fruits", "Grocery"},
		},
		{
			name:           "All clears earlier categories",
			categories:     []string{"Fruits", "All", "Drinks"},
			wantCategories: []string{"Drinks"},
		},
		{
			name:      "leading space dropped from search",
			search:    "  an ",
			wantQuery: "an ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := listFilters(tt.user, tt.categories, tt.search)
			assert.Equal(t, tt.user, filters.SelectedUser)
			assert.Equal(t, tt.wantCategories, filters.SelectedCategories)
			assert.Equal(t, tt.wantQuery, filters.Query)
		})
	}
}

func TestListCmd(t *testing.T) {
	useConfig(t, embeddedConfig())

	out, err := execute(t, listCmd(), "--user", "Anna", "--category", "Fruits")
	require.NoError(t, err)

	assert.Contains(t, out, "Banana")
	assert.Contains(t, out, "Apple")
	assert.Contains(t, out, "🍏 - Fruits")
	assert.Contains(t, out, "2 of 9 products")
	assert.NotContains(t, out, "Bread")
}

func TestListCmd_Search(t *testing.T) {
	useConfig(t, embeddedConfig())

	out, err := execute(t, listCmd(), "--search", "  BEE")
	require.NoError(t, err)

	assert.Contains(t, out, "Beer")
	assert.Contains(t, out, "Roma")
	assert.Contains(t, out, "1 of 9 products")
}

func TestListCmd_NoMatches(t *testing.T) {
	useConfig(t, embeddedConfig())

	out, err := execute(t, listCmd(), "--user", "John")
	require.NoError(t, err)
	assert.Contains(t, out, components.EmptyMessage)
}

func TestListCmd_WarnsOnUnknownNames(t *testing.T) {
	useConfig(t, embeddedConfig())

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	out, err := execute(t, listCmd(), "--user", "Nobody", "--category", "Toys", "--category", "All")
	require.NoError(t, err)

	assert.Contains(t, out, components.EmptyMessage)
	assert.Contains(t, logs.String(), "Unknown user")
	assert.Contains(t, logs.String(), "user=Nobody")
	assert.Contains(t, logs.String(), "category=Toys")
	assert.NotContains(t, logs.String(), "category=All")
}

func TestDBInitStatusAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	cfg := embeddedConfig()
	cfg.Database.Path = dbPath
	useConfig(t, cfg)

	out, err := execute(t, dbStatusCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Schema version: 3")
	assert.Contains(t, out, "No dataset imported yet")

	out, err = execute(t, dbInitCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog imported")
	assert.Contains(t, out, "Products:   9")

	out, err = execute(t, dbStatusCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "from embedded")
	assert.Contains(t, out, "4 users, 5 categories, 9 products")

	cfg.Data.Source = config.SourceSQLite
	useConfig(t, cfg)
	out, err = execute(t, listCmd(), "--category", "Drinks")
	require.NoError(t, err)
	assert.Contains(t, out, "Milk")
	assert.Contains(t, out, "Beer")
	assert.Contains(t, out, "2 of 9 products")
}

func TestDBInit_FromFile(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "small.yaml")
	require.NoError(t, os.WriteFile(data, []byte(`users:
  - {id: 1, name: Roma, sex: m}
categories:
  - {id: 1, title: Fruits, icon: "🍎", ownerId: 1}
products:
  - {id: 1, name: Apple, categoryId: 1}
  - {id: 2, name: Banana, categoryId: 1}
`), 0o600))

	cfg := embeddedConfig()
	cfg.Database.Path = filepath.Join(dir, "catalog.db")
	useConfig(t, cfg)

	out, err := execute(t, dbInitCmd(), "--from", data)
	require.NoError(t, err)
	assert.Contains(t, out, "Products:   2")
}

func TestDBInit_RejectsBrokenReferences(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(data, []byte(`{
  "users": [{"id": 1, "name": "Roma", "sex": "m"}],
  "categories": [{"id": 1, "title": "Fruits", "icon": "🍎", "ownerId": 9}],
  "products": [{"id": 1, "name": "Apple", "categoryId": 1}]
}`), 0o600))

	cfg := embeddedConfig()
	cfg.Database.Path = filepath.Join(dir, "catalog.db")
	useConfig(t, cfg)

	_, err := execute(t, dbInitCmd(), "--from", data)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnresolvedReference)
	assert.Contains(t, err.Error(), "category 1 references unknown user 9")
	assert.NoFileExists(t, cfg.Database.Path)
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	missingName := filepath.Join(dir, "missing.yaml")
	require.NoError(t, os.WriteFile(missingName, []byte(`users:
  - {id: 1, name: "", sex: m}
categories: []
products: []
`), 0o600))
	badRef := filepath.Join(dir, "badref.yaml")
	require.NoError(t, os.WriteFile(badRef, []byte(`users:
  - {id: 1, name: Roma, sex: m}
categories:
  - {id: 1, title: Fruits, icon: "🍎", ownerId: 1}
products:
  - {id: 5, name: Apple, categoryId: 3}
`), 0o600))

	useConfig(t, embeddedConfig())

	t.Run("embedded catalog is valid", func(t *testing.T) {
		out, err := execute(t, validateCmd())
		require.NoError(t, err)
		assert.Contains(t, out, "embedded is valid: 4 users, 5 categories, 9 products")
	})

	t.Run("field errors are listed", func(t *testing.T) {
		out, err := execute(t, validateCmd(), "--from", missingName)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidDataset)
		assert.Contains(t, out, "users[0].name: is required")
	})

	t.Run("broken reference", func(t *testing.T) {
		out, err := execute(t, validateCmd(), "--from", badRef)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrUnresolvedReference)
		assert.Contains(t, out, "product 5 references unknown category 3")
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, versionCmd())
	require.NoError(t, err)
	assert.Equal(t, "catalog version dev\n", out)
}

func TestSetupLogging_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logPath := filepath.Join(t.TempDir(), "logs", "catalog.log")
	err := setupLogging(config.LoggingConfig{Level: "debug", Format: "json", File: logPath}, true)
	require.NoError(t, err)

	slog.Info("hello from test")
	require.NoError(t, closeLogging(nil, nil))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from test"`)
}

func TestSetupLogging_InvalidLevel(t *testing.T) {
	err := setupLogging(config.LoggingConfig{Level: "loud"}, false)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
