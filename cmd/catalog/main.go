package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/config"
)

// annotationLogToFile marks commands that own the terminal; their logs go to logging.file.
const annotationLogToFile = "log-to-file"

var (
	cfgFile   string
	version   = "dev"
	appConfig config.Config
	logCloser io.Closer
	rootCmd   = &cobra.Command{
		Use:   "catalog",
		Short: "🛒 Browse a product catalog by owner, category and name",
		Long: `catalog joins products with their categories and owners and lets you
narrow them down by user, by category and by a free-text name search,
either interactively (catalog browse) or as a one-shot table (catalog list).

Data comes from the built-in sample catalog, a JSON/YAML file, or a
SQLite catalog database created with 'catalog db init'.`,
		PersistentPreRunE:  initConfig,
		PersistentPostRunE: closeLogging,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/catalog/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("source", config.SourceEmbedded, "dataset source (embedded, file, sqlite)")
	rootCmd.PersistentFlags().String("data", "", "dataset file for the file source (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().String("db", "", "catalog database path (default: $HOME/.local/share/catalog/catalog.db)")
	rootCmd.PersistentFlags().String("theme", "", "TUI theme (default, catppuccin-mocha)")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyDataSource, rootCmd.PersistentFlags().Lookup("source"))
	_ = viper.BindPFlag(config.KeyDataPath, rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag(config.KeyDatabasePath, rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag(config.KeyTheme, rootCmd.PersistentFlags().Lookup("theme"))

	config.SetDefaults(viper.GetViper())

	// Add commands
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(dbCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(filepath.Join(home, ".config", "catalog"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. CATALOG_DATA_SOURCE
	viper.SetEnvPrefix("CATALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	appConfig = cfg

	// Set up logging
	if err := setupLogging(cfg.Logging, cmd.Annotations[annotationLogToFile] == "true"); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("configuration loaded",
		"config_file", viper.ConfigFileUsed(),
		"source", cfg.Data.Source,
		"database", cfg.Database.Path)

	return nil
}

// setupLogging installs the default slog logger. Commands that draw a full screen UI
// log to a file so output does not tear the display.
func setupLogging(cfg config.LoggingConfig, toFile bool) error {
	level, err := common.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if toFile {
		f, err := openLogFile(cfg.File)
		if err != nil {
			return err
		}
		logCloser = f
		w = f
	}

	logger, err := common.NewLogger(w, level, cfg.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	return nil
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: logging.file", common.ErrMissingConfig)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "catalog version %s\n", version)
		},
	}
}
