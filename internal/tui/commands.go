package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/catalog-browser/internal/catalog"
	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/dataset"
	"github.com/Veraticus/catalog-browser/internal/model"
)

var errNoSource = errors.New("no catalog source configured")

// loadCatalog reads, validates and joins the configured source.
func (m Model) loadCatalog() tea.Cmd {
	src := m.config.Source
	timeout := m.config.LoadTimeout

	return func() tea.Msg {
		if src == nil {
			return catalogLoadedMsg{err: errNoSource}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		ds, err := dataset.Load(ctx, src)
		if err != nil {
			return catalogLoadedMsg{source: src.Name(), err: err}
		}
		return joinCatalog(src.Name(), ds)
	}
}

// useDataset joins a dataset that was handed to the program directly.
func useDataset(ds model.Dataset) tea.Cmd {
	return func() tea.Msg {
		if err := dataset.Validate(ds); err != nil {
			return catalogLoadedMsg{source: "dataset", err: err}
		}
		return joinCatalog("dataset", ds)
	}
}

func joinCatalog(source string, ds model.Dataset) catalogLoadedMsg {
	products, err := catalog.Build(ds)
	if err != nil {
		common.LogError(err, "Catalog integrity check failed", common.Fields{"source": source})
		return catalogLoadedMsg{source: source, err: err}
	}
	return catalogLoadedMsg{
		source:   source,
		dataset:  ds,
		products: products,
	}
}
