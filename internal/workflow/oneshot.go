package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/jo-hoe/aiexplorer/internal/models"
	"github.com/jo-hoe/aiexplorer/internal/provider"
)

// Search runs a single blocking search outside of any view. The call ends
// when ctx does.
func Search(ctx context.Context, searcher provider.Searcher, query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyInput
	}
	return searcher.Search(ctx, query)
}

// Generate runs a single blocking generation outside of any view and returns
// the finished record.
func Generate(ctx context.Context, generator provider.Generator, prompt, model string) (models.GeneratedImage, error) {
	if strings.TrimSpace(prompt) == "" {
		return models.GeneratedImage{}, ErrEmptyInput
	}
	m, err := models.ParseModel(model)
	if err != nil {
		return models.GeneratedImage{}, err
	}

	gen, err := generator.Generate(ctx, prompt, m)
	if err != nil {
		return models.GeneratedImage{}, err
	}
	id, err := newImageID()
	if err != nil {
		return models.GeneratedImage{}, err
	}
	return models.GeneratedImage{
		ID:        id,
		Prompt:    prompt,
		URL:       gen.URL,
		Model:     gen.Model,
		Timestamp: time.Now(),
	}, nil
}
