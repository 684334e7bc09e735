package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo-hoe/aiexplorer/internal/models"
)

func TestSimulatedSearcher_ReturnsFixedResults(t *testing.T) {
	s := NewSimulatedSearcher(5 * time.Millisecond)

	results, err := s.Search(context.Background(), "quantum")
	require.NoError(t, err)
	require.Len(t, results, 3)

	sources := []string{results[0].Source, results[1].Source, results[2].Source}
	assert.Equal(t, []string{"MIT Technology Review", "Nature", "Science Direct"}, sources)
}

func TestSimulatedSearcher_ResultsAreCopies(t *testing.T) {
	s := NewSimulatedSearcher(0)

	first, err := s.Search(context.Background(), "a")
	require.NoError(t, err)
	first[0].Title = "changed"

	second, err := s.Search(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "Understanding Quantum Computing Fundamentals", second[0].Title)
}

func TestSimulatedSearcher_Cancelled(t *testing.T) {
	s := NewSimulatedSearcher(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := s.Search(ctx, "quantum")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestSimulatedSearcher_WaitsForDelay(t *testing.T) {
	delay := 20 * time.Millisecond
	s := NewSimulatedSearcher(delay)

	start := time.Now()
	_, err := s.Search(context.Background(), "quantum")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestSimulatedGenerator_EchoesModel(t *testing.T) {
	g := NewSimulatedGenerator(time.Millisecond)

	for _, m := range models.Models() {
		gen, err := g.Generate(context.Background(), "A futuristic cityscape with flying cars", m)
		require.NoError(t, err)
		assert.Equal(t, m, gen.Model)
		assert.Equal(t, PlaceholderImageURL, gen.URL)
	}
}

func TestSimulatedGenerator_DeadlineExceeded(t *testing.T) {
	g := NewSimulatedGenerator(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := g.Generate(ctx, "prompt", models.ModelFlux)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
