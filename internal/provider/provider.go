package provider

import (
	"context"
	"time"

	"github.com/jo-hoe/aiexplorer/internal/models"
)

// Searcher looks up and summarizes web content for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// Generation is what an image provider returns for a prompt.
type Generation struct {
	URL   string
	Model models.Model
}

// Generator turns a prompt into an image.
type Generator interface {
	Generate(ctx context.Context, prompt string, model models.Model) (Generation, error)
}

// wait blocks for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
