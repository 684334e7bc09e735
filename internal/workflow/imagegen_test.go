package workflow

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo-hoe/aiexplorer/internal/models"
	"github.com/jo-hoe/aiexplorer/internal/provider"
)

func TestImageGenView_SubmitPrependsRecord(t *testing.T) {
	view := NewImageGenView(provider.NewSimulatedGenerator(10 * time.Millisecond))
	t.Cleanup(view.Close)

	fixed := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	view.now = func() time.Time { return fixed }

	require.NoError(t, view.Submit("A futuristic cityscape with flying cars", "flux"))
	assert.True(t, view.Snapshot().Generating)

	require.NoError(t, view.Wait(waitCtx(t)))

	snap := view.Snapshot()
	assert.False(t, snap.Generating)
	require.Len(t, snap.Images, 1)
	first := snap.Images[0]
	assert.Equal(t, "A futuristic cityscape with flying cars", first.Prompt)
	assert.Equal(t, models.ModelFlux, first.Model)
	assert.Equal(t, provider.PlaceholderImageURL, first.URL)
	assert.Equal(t, fixed, first.Timestamp)
	assert.NotEmpty(t, first.ID)
}

func TestImageGenView_NewestFirstWithUniqueIDs(t *testing.T) {
	view := NewImageGenView(provider.NewSimulatedGenerator(0))
	t.Cleanup(view.Close)

	selected := []string{"flux", "stable-diffusion", "midjourney", "flux", "midjourney"}
	for i, m := range selected {
		require.NoError(t, view.Submit(fmt.Sprintf("prompt %d", i), m))
		require.NoError(t, view.Wait(waitCtx(t)))
	}

	snap := view.Snapshot()
	require.Len(t, snap.Images, len(selected))

	seen := map[string]bool{}
	for i, img := range snap.Images {
		src := len(selected) - 1 - i
		assert.Equal(t, fmt.Sprintf("prompt %d", src), img.Prompt)
		assert.Equal(t, models.Model(selected[src]), img.Model)
		assert.False(t, seen[img.ID], "duplicate id %s", img.ID)
		seen[img.ID] = true
	}
}

func TestImageGenView_InvalidInputIsNoop(t *testing.T) {
	view := NewImageGenView(provider.NewSimulatedGenerator(0))
	t.Cleanup(view.Close)
	before := view.Snapshot()

	assert.ErrorIs(t, view.Submit("   ", "flux"), ErrEmptyInput)
	assert.ErrorIs(t, view.Submit("a cat", "dall-e"), models.ErrUnknownModel)
	assert.Equal(t, before, view.Snapshot())
	assert.Equal(t, models.DefaultModel, before.Model)
}

func TestImageGenView_ImageLookup(t *testing.T) {
	view := NewImageGenView(provider.NewSimulatedGenerator(0))
	t.Cleanup(view.Close)

	require.NoError(t, view.Submit("An astronaut riding a unicorn on Mars", "midjourney"))
	require.NoError(t, view.Wait(waitCtx(t)))

	snap := view.Snapshot()
	require.Len(t, snap.Images, 1)

	img, ok := view.Image(snap.Images[0].ID)
	require.True(t, ok)
	assert.Equal(t, models.ModelMidjourney, img.Model)

	_, ok = view.Image("missing")
	assert.False(t, ok)
}

func TestImageGenView_ProviderErrorKeepsImages(t *testing.T) {
	view := NewImageGenView(failingGenerator{err: errUpstream})
	t.Cleanup(view.Close)

	require.NoError(t, view.Submit("prompt", "flux"))
	require.NoError(t, view.Wait(waitCtx(t)))

	snap := view.Snapshot()
	assert.False(t, snap.Generating)
	assert.Empty(t, snap.Images)
	assert.ErrorIs(t, snap.LastError, errUpstream)
}

func TestImageGenView_CloseCancelsGeneration(t *testing.T) {
	view := NewImageGenView(provider.NewSimulatedGenerator(time.Hour))

	require.NoError(t, view.Submit("prompt", "flux"))
	view.Close()

	assert.False(t, view.Snapshot().Generating)
	assert.ErrorIs(t, view.Submit("prompt", "flux"), ErrViewClosed)
}
