package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/jo-hoe/aiexplorer/internal/models"
)

// Repository supplies the records the dashboard lists.
type Repository interface {
	SearchRecords(ctx context.Context) ([]models.DashboardSearchRecord, error)
	ImageRecords(ctx context.Context) ([]models.DashboardImageRecord, error)
}

// Page is the rendered dashboard: the filter result projected through the tab.
type Page struct {
	Filter       string                         `json:"filter"`
	Tab          Tab                            `json:"tab"`
	ShowSearches bool                           `json:"showSearches"`
	ShowImages   bool                           `json:"showImages"`
	Searches     []models.DashboardSearchRecord `json:"searches"`
	Images       []models.DashboardImageRecord  `json:"images"`
}

// View owns the filter text and selected tab of one mounted dashboard.
type View struct {
	repo Repository

	mu     sync.Mutex
	filter string
	tab    Tab
}

func NewView(repo Repository) *View {
	return &View{repo: repo, tab: TabAll}
}

// SetFilter replaces the filter text.
func (v *View) SetFilter(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = text
}

// SetTab selects a tab. It does not affect filtering.
func (v *View) SetTab(tab Tab) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tab = tab
}

// Render recomputes the filter against the repository.
func (v *View) Render(ctx context.Context) (Page, error) {
	v.mu.Lock()
	filter, tab := v.filter, v.tab
	v.mu.Unlock()

	return Build(ctx, v.repo, filter, tab)
}

// Build filters the repository contents and applies the tab projection.
func Build(ctx context.Context, repo Repository, filter string, tab Tab) (Page, error) {
	searches, err := repo.SearchRecords(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("failed to load search records: %w", err)
	}
	images, err := repo.ImageRecords(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("failed to load image records: %w", err)
	}

	filtered := Filter(filter, searches, images)
	page := Page{
		Filter:       filter,
		Tab:          tab,
		ShowSearches: tab.ShowsSearches(),
		ShowImages:   tab.ShowsImages(),
		Searches:     []models.DashboardSearchRecord{},
		Images:       []models.DashboardImageRecord{},
	}
	if page.ShowSearches {
		page.Searches = filtered.Searches
	}
	if page.ShowImages {
		page.Images = filtered.Images
	}
	return page, nil
}
