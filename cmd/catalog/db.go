package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/catalog-browser/internal/catalog"
	"github.com/Veraticus/catalog-browser/internal/cli"
	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/dataset"
	"github.com/Veraticus/catalog-browser/internal/storage"
)

func dbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the SQLite catalog database",
	}

	cmd.AddCommand(dbInitCmd())
	cmd.AddCommand(dbStatusCmd())

	return cmd
}

func dbInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the catalog database and import a dataset",
		Long: `Create or migrate the catalog database, then replace its contents with
a dataset. Without --from the built-in sample catalog is imported.

The dataset is validated and joined before anything is written, and the
import runs in a single transaction: a failed or interrupted import leaves
the previous catalog in place.`,
		RunE: runDBInit,
	}

	cmd.Flags().String("from", "", "Dataset file to import (.json, .yaml, .yml)")

	return cmd
}

func runDBInit(cmd *cobra.Command, _ []string) error {
	from, _ := cmd.Flags().GetString("from")

	src, err := fileOrEmbedded(from)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ds, err := dataset.Load(ctx, src)
	if err != nil {
		return err
	}
	if _, err := catalog.Build(ds); err != nil {
		return fmt.Errorf("%s: %w", src.Name(), err)
	}

	store, err := openStorage(ctx, appConfig.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx = handler.HandleInterrupts(ctx, "Import")

	users, categories, products := ds.Counts()
	bar := newImportProgress(cmd.ErrOrStderr(), users+categories+products)

	slog.Info("Importing catalog", "source", src.Name(), "database", appConfig.Database.Path)

	err = store.ReplaceDataset(ctx, ds, src.Name(), func() {
		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	})
	if err != nil {
		if handler.WasInterrupted() {
			return common.NewUserError("import canceled", err)
		}
		return fmt.Errorf("import failed: %w", err)
	}

	summary := strings.Join([]string{
		fmt.Sprintf("Database:   %s", appConfig.Database.Path),
		fmt.Sprintf("Source:     %s", src.Name()),
		fmt.Sprintf("Users:      %d", users),
		fmt.Sprintf("Categories: %d", categories),
		fmt.Sprintf("Products:   %d", products),
	}, "\n")
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(cli.FormatSuccess("Catalog imported"), summary))

	return nil
}

func dbStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the schema version and the last import",
		RunE:  runDBStatus,
	}
}

func runDBStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx, appConfig.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	version, err := store.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Catalog database"))
	fmt.Fprintf(out, "Path:           %s\n", appConfig.Database.Path)
	fmt.Fprintf(out, "Schema version: %d (expected %d)\n", version, storage.ExpectedSchemaVersion)

	last, err := store.LastImport(ctx)
	switch {
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(out, cli.FormatWarning("No dataset imported yet. Run 'catalog db init'."))
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "Last import:    %s from %s\n", last.ImportedAt.Local().Format(time.DateTime), last.Source)
	fmt.Fprintf(out, "Contents:       %d users, %d categories, %d products\n", last.Users, last.Categories, last.Products)
	return nil
}

func newImportProgress(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing catalog...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
