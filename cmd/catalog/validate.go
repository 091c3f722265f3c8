package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Veraticus/catalog-browser/internal/catalog"
	"github.com/Veraticus/catalog-browser/internal/cli"
	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/dataset"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a dataset for field errors and broken references",
		Long: `Load a dataset, check every record and resolve every reference.

Field problems (missing names, bad sex markers, duplicate ids) are listed
one per line. A product pointing at an unknown category, or a category
pointing at an unknown owner, is reported by id.`,
		RunE: runValidate,
	}

	cmd.Flags().String("from", "", "Dataset file to check instead of the configured source")

	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	from, _ := cmd.Flags().GetString("from")

	var (
		src     dataset.Source
		release = func() {}
		err     error
	)
	if from != "" {
		src, err = fileOrEmbedded(from)
	} else {
		src, release, err = newSource(ctx, appConfig)
	}
	if err != nil {
		return err
	}
	defer release()

	ds, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", src.Name(), err)
	}

	if err := dataset.Validate(ds); err != nil {
		var verr *common.ValidationError
		if errors.As(err, &verr) {
			printFieldErrors(out, verr)
		}
		return fmt.Errorf("%s: %w", src.Name(), common.ErrInvalidDataset)
	}

	if _, err := catalog.Build(ds); err != nil {
		fmt.Fprintln(out, cli.FormatError(err.Error()))
		return fmt.Errorf("%s: %w", src.Name(), err)
	}

	users, categories, products := ds.Counts()
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%s is valid: %d users, %d categories, %d products",
		src.Name(), users, categories, products)))
	return nil
}

func printFieldErrors(out io.Writer, verr *common.ValidationError) {
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		fmt.Fprintln(out, cli.FormatError(f+": "+verr.Fields[f]))
	}
}
