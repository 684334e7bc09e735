package models

import (
	"errors"
	"fmt"
	"strings"
)

// Model identifies the image generation backend selected by the user.
type Model string

const (
	ModelFlux            Model = "flux"
	ModelStableDiffusion Model = "stable-diffusion"
	ModelMidjourney      Model = "midjourney"

	DefaultModel = ModelFlux
)

// ErrUnknownModel is returned when a model name is not one of the supported models.
var ErrUnknownModel = errors.New("unknown model")

var modelLabels = map[Model]string{
	ModelFlux:            "Flux (Recommended)",
	ModelStableDiffusion: "Stable Diffusion",
	ModelMidjourney:      "Midjourney Style",
}

// Models returns the supported models in display order.
func Models() []Model {
	return []Model{ModelFlux, ModelStableDiffusion, ModelMidjourney}
}

// ParseModel converts a raw form or JSON value into a Model.
func ParseModel(raw string) (Model, error) {
	m := Model(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := modelLabels[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, raw)
	}
	return m, nil
}

// Label returns the human readable name of the model.
func (m Model) Label() string {
	if label, ok := modelLabels[m]; ok {
		return label
	}
	return string(m)
}

func (m Model) String() string {
	return string(m)
}
