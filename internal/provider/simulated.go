package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/jo-hoe/aiexplorer/internal/models"
)

const (
	DefaultSearchDelay   = 2 * time.Second
	DefaultGenerateDelay = 3 * time.Second

	// PlaceholderImageURL is served by the frontend as an embedded asset.
	PlaceholderImageURL = "/placeholder.svg"
)

var fixedResults = []models.SearchResult{
	{
		Title:   "Understanding Quantum Computing Fundamentals",
		Summary: "Quantum computing represents a paradigm shift in computational power, utilizing quantum mechanical phenomena like superposition and entanglement to process information in ways that classical computers cannot. This technology promises to revolutionize fields such as cryptography, drug discovery, and optimization problems.",
		URL:     "https://example.com/quantum-computing",
		Source:  "MIT Technology Review",
	},
	{
		Title:   "Current State of Quantum Computing Research",
		Summary: "Recent advances in quantum computing have brought us closer to achieving quantum advantage in practical applications. Major tech companies and research institutions are making significant investments in quantum hardware and software development.",
		URL:     "https://example.com/quantum-research",
		Source:  "Nature",
	},
	{
		Title:   "Quantum Computing Applications in Industry",
		Summary: "Industries are beginning to explore quantum computing applications for solving complex optimization problems, financial modeling, and machine learning tasks. The potential impact on various sectors is substantial.",
		URL:     "https://example.com/quantum-industry",
		Source:  "Science Direct",
	},
}

// FixedResults returns a copy of the canned result set used by SimulatedSearcher.
func FixedResults() []models.SearchResult {
	out := make([]models.SearchResult, len(fixedResults))
	copy(out, fixedResults)
	return out
}

// SimulatedSearcher waits a fixed delay and returns FixedResults regardless of the query.
type SimulatedSearcher struct {
	Delay time.Duration
}

func NewSimulatedSearcher(delay time.Duration) *SimulatedSearcher {
	return &SimulatedSearcher{Delay: delay}
}

func (s *SimulatedSearcher) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	slog.Debug("SimulatedSearcher: start", "query", query, "delay_ms", s.Delay.Milliseconds())
	if err := wait(ctx, s.Delay); err != nil {
		slog.Debug("SimulatedSearcher: cancelled", "query", query, "error", err)
		return nil, err
	}
	return FixedResults(), nil
}

// SimulatedGenerator waits a fixed delay and returns the placeholder image.
type SimulatedGenerator struct {
	Delay time.Duration
	URL   string
}

func NewSimulatedGenerator(delay time.Duration) *SimulatedGenerator {
	return &SimulatedGenerator{Delay: delay, URL: PlaceholderImageURL}
}

func (g *SimulatedGenerator) Generate(ctx context.Context, prompt string, model models.Model) (Generation, error) {
	slog.Debug("SimulatedGenerator: start", "model", model, "delay_ms", g.Delay.Milliseconds())
	if err := wait(ctx, g.Delay); err != nil {
		slog.Debug("SimulatedGenerator: cancelled", "model", model, "error", err)
		return Generation{}, err
	}
	url := g.URL
	if url == "" {
		url = PlaceholderImageURL
	}
	return Generation{URL: url, Model: model}, nil
}
