package workflow

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/jo-hoe/aiexplorer/internal/models"
	"github.com/jo-hoe/aiexplorer/internal/provider"
)

// gatedSearcher blocks every call until release is closed or ctx ends.
type gatedSearcher struct {
	release chan struct{}
	calls   atomic.Int32
	results []models.SearchResult
}

func newGatedSearcher(results []models.SearchResult) *gatedSearcher {
	return &gatedSearcher{release: make(chan struct{}), results: results}
}

func (g *gatedSearcher) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	g.calls.Add(1)
	select {
	case <-g.release:
		return g.results, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type failingSearcher struct{ err error }

func (f failingSearcher) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	return nil, f.err
}

type failingGenerator struct{ err error }

func (f failingGenerator) Generate(ctx context.Context, prompt string, model models.Model) (provider.Generation, error) {
	return provider.Generation{}, f.err
}

var errUpstream = errors.New("upstream unavailable")
