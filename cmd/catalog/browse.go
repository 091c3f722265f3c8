package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/catalog-browser/internal/tui"
	"github.com/Veraticus/catalog-browser/internal/tui/themes"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Open the interactive catalog browser.

Pick a user tab, toggle category buttons and type in the search box;
the product table updates on every change. Tab moves between sections,
Ctrl+R resets all filters and q quits.`,
		Annotations: map[string]string{annotationLogToFile: "true"},
		RunE:        runBrowse,
	}

	cmd.Flags().Bool("no-summary", false, "Hide the per-user and per-category summary panel")

	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := appConfig
	noSummary, _ := cmd.Flags().GetBool("no-summary")

	src, release, err := newSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	if cfg.UI.Theme != "" && !themes.Exists(cfg.UI.Theme) {
		slog.Warn("Unknown theme, using default", "theme", cfg.UI.Theme, "available", themes.Names())
	}

	slog.Info("Starting catalog browser", "source", src.Name(), "theme", cfg.UI.Theme)

	return tui.Run(ctx,
		tui.WithSource(src),
		tui.WithTheme(themes.GetTheme(cfg.UI.Theme)),
		tui.WithSummary(!noSummary),
	)
}
