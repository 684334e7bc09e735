package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jo-hoe/aiexplorer/internal/models"
	"github.com/jo-hoe/aiexplorer/internal/provider"
)

// ImageGenState is what the image generation page renders.
type ImageGenState struct {
	Prompt     string
	Model      models.Model
	Generating bool
	Images     []models.GeneratedImage
	LastError  error
}

// ImageGenView owns the state of one mounted image generation page.
type ImageGenView struct {
	generator provider.Generator
	base      context.Context
	now       func() time.Time
	newID     func() (string, error)

	mu      sync.Mutex
	state   ImageGenState
	pending pending
}

func NewImageGenView(generator provider.Generator) *ImageGenView {
	return &ImageGenView{
		generator: generator,
		base:      context.Background(),
		now:       time.Now,
		newID:     newImageID,
		state:     ImageGenState{Model: models.DefaultModel},
	}
}

// newImageID returns a UUIDv7, which embeds the creation time in milliseconds
// and stays unique for ids minted within the same millisecond.
func newImageID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate image id: %w", err)
	}
	return id.String(), nil
}

// Submit asks the generator for an image. Blank prompts and unknown models
// are ignored without touching the state.
func (v *ImageGenView) Submit(prompt string, model string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyInput
	}
	m, err := models.ParseModel(model)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pending.closed {
		return ErrViewClosed
	}

	v.state.Prompt = prompt
	v.state.Model = m
	v.state.Generating = true
	v.state.LastError = nil

	t, ctx := v.pending.start(v.base)
	go v.run(ctx, t, prompt, m)
	return nil
}

func (v *ImageGenView) run(ctx context.Context, t *task, prompt string, model models.Model) {
	defer close(t.done)

	gen, err := v.generator.Generate(ctx, prompt, model)
	var image models.GeneratedImage
	if err == nil {
		image, err = v.newImage(prompt, gen)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.pending.finish(t) {
		slog.Debug("generation superseded", "model", model)
		return
	}
	v.state.Generating = false
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("generation failed", "model", model, "error", err)
			v.state.LastError = err
		}
		return
	}

	v.state.Images = append([]models.GeneratedImage{image}, v.state.Images...)
	slog.Info("image generated", "image_id", image.ID, "model", image.Model, "total", len(v.state.Images))
}

func (v *ImageGenView) newImage(prompt string, gen provider.Generation) (models.GeneratedImage, error) {
	id, err := v.newID()
	if err != nil {
		return models.GeneratedImage{}, err
	}
	return models.GeneratedImage{
		ID:        id,
		Prompt:    prompt,
		URL:       gen.URL,
		Model:     gen.Model,
		Timestamp: v.now(),
	}, nil
}

// Snapshot returns a copy of the current state.
func (v *ImageGenView) Snapshot() ImageGenState {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := v.state
	if v.state.Images != nil {
		snap.Images = make([]models.GeneratedImage, len(v.state.Images))
		copy(snap.Images, v.state.Images)
	}
	return snap
}

// Image looks up a generated image by id.
func (v *ImageGenView) Image(id string) (models.GeneratedImage, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, img := range v.state.Images {
		if img.ID == id {
			return img, true
		}
	}
	return models.GeneratedImage{}, false
}

// Wait blocks until no generation is in flight or ctx ends.
func (v *ImageGenView) Wait(ctx context.Context) error {
	return waitIdle(ctx, &v.mu, &v.pending)
}

// Close unmounts the view and cancels any in-flight generation.
func (v *ImageGenView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pending.abort()
	v.pending.closed = true
	v.state.Generating = false
}
