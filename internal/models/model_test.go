package models

import (
	"errors"
	"testing"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		raw     string
		want    Model
		wantErr bool
	}{
		{raw: "flux", want: ModelFlux},
		{raw: "  Stable-Diffusion ", want: ModelStableDiffusion},
		{raw: "MIDJOURNEY", want: ModelMidjourney},
		{raw: "dall-e", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseModel(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownModel) {
					t.Fatalf("ParseModel(%q) error = %v, want ErrUnknownModel", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseModel(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseModel(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestModelsHaveLabels(t *testing.T) {
	for _, m := range Models() {
		if m.Label() == string(m) {
			t.Errorf("model %q has no display label", m)
		}
	}
	if DefaultModel.Label() != "Flux (Recommended)" {
		t.Errorf("unexpected default label %q", DefaultModel.Label())
	}
}
