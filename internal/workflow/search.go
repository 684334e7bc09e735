package workflow

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/jo-hoe/aiexplorer/internal/models"
	"github.com/jo-hoe/aiexplorer/internal/provider"
)

// SearchState is what the search page renders.
type SearchState struct {
	Query       string
	Loading     bool
	HasSearched bool
	Results     []models.SearchResult
	LastError   error
}

// SearchView owns the state of one mounted search page.
type SearchView struct {
	searcher provider.Searcher
	base     context.Context

	mu      sync.Mutex
	state   SearchState
	pending pending
}

func NewSearchView(searcher provider.Searcher) *SearchView {
	return &SearchView{
		searcher: searcher,
		base:     context.Background(),
	}
}

// Submit starts a search for query. Blank queries are ignored and leave the
// state untouched. A submission while another search is in flight cancels
// the earlier one.
func (v *SearchView) Submit(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyInput
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pending.closed {
		return ErrViewClosed
	}

	v.state.Query = query
	v.state.Loading = true
	v.state.HasSearched = true
	v.state.LastError = nil

	t, ctx := v.pending.start(v.base)
	go v.run(ctx, t, query)
	return nil
}

func (v *SearchView) run(ctx context.Context, t *task, query string) {
	defer close(t.done)

	results, err := v.searcher.Search(ctx, query)

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.pending.finish(t) {
		slog.Debug("search superseded", "query", query)
		return
	}
	v.state.Loading = false
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("search failed", "query", query, "error", err)
			v.state.LastError = err
		}
		return
	}
	v.state.Results = results
	slog.Info("search completed", "query", query, "result_count", len(results))
}

// Snapshot returns a copy of the current state.
func (v *SearchView) Snapshot() SearchState {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := v.state
	if v.state.Results != nil {
		snap.Results = make([]models.SearchResult, len(v.state.Results))
		copy(snap.Results, v.state.Results)
	}
	return snap
}

// Result returns the result at index from the current list.
func (v *SearchView) Result(index int) (models.SearchResult, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if index < 0 || index >= len(v.state.Results) {
		return models.SearchResult{}, false
	}
	return v.state.Results[index], true
}

// Wait blocks until no search is in flight or ctx ends.
func (v *SearchView) Wait(ctx context.Context) error {
	return waitIdle(ctx, &v.mu, &v.pending)
}

// Close unmounts the view and cancels any in-flight search.
func (v *SearchView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pending.abort()
	v.pending.closed = true
	v.state.Loading = false
}
