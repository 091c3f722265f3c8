package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/catalog-browser/internal/catalog"
	"github.com/Veraticus/catalog-browser/internal/cli"
	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/Veraticus/catalog-browser/internal/tui/components"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the products matching the given filters",
		Long: `Print a table of products narrowed by owner, category and name.

All filters are optional and combine with AND. --category may be repeated;
a product matches when its category is any of the given titles, and the
title "All" clears the categories given before it.`,
		Example: `  catalog list --user Anna
  catalog list --category Fruits --category Grocery
  catalog list --search "milk"`,
		RunE: runList,
	}

	cmd.Flags().String("user", "", "Only products owned by this user (exact name)")
	cmd.Flags().StringArray("category", nil, "Only products in this category (repeatable)")
	cmd.Flags().String("search", "", "Only products whose name contains this text (case-insensitive)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	user, _ := cmd.Flags().GetString("user")
	categories, _ := cmd.Flags().GetStringArray("category")
	search, _ := cmd.Flags().GetString("search")

	ds, products, err := loadCatalog(cmd.Context(), appConfig)
	if err != nil {
		return err
	}

	if user != "" && !slices.Contains(ds.UserNames(), user) {
		slog.Warn("Unknown user, no products will match", "user", user, "available", ds.UserNames())
	}
	for _, title := range categories {
		if title != catalog.AllCategories && !slices.Contains(ds.CategoryTitles(), title) {
			slog.Warn("Unknown category", "category", title, "available", ds.CategoryTitles())
		}
	}

	filters := listFilters(user, categories, search)
	return printProducts(cmd.OutOrStdout(), filters.Apply(products), len(products))
}

// listFilters builds the filter state the way the browser would after the same clicks,
// except that repeating a category does not deselect it.
func listFilters(user string, categories []string, search string) catalog.FilterState {
	filters := catalog.FilterState{}.
		SelectUser(user).
		SetQuery(search)

	for _, title := range categories {
		if title == catalog.AllCategories || !filters.IsCategorySelected(title) {
			filters = filters.ToggleCategory(title)
		}
	}
	return filters
}

func printProducts(out io.Writer, products []model.EnrichedProduct, total int) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(out, cli.InfoStyle.Render(components.EmptyMessage))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	// Header
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("ID"),
		cli.BoldStyle.Render("Product"),
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("User"))

	// User is the last column so its color codes cannot shift the alignment.
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Category.Label(), cli.StyleUser(p.User))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write products: %w", err)
	}

	_, err := fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("\n%d of %d products", len(products), total)))
	return err
}
