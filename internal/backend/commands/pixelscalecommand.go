package commands

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"

	"github.com/jo-hoe/aiexplorer/internal/backend/commandstructure"

	"golang.org/x/image/draw"
)

const PixelScaleCommandName = "PixelScaleCommand"

// PixelScaleParams represents typed parameters for pixel scale command
type PixelScaleParams struct {
	Height *int // Optional: if nil, will be calculated from width
	Width  *int // Optional: if nil, will be calculated from height
}

// NewPixelScaleParamsFromMap creates PixelScaleParams from a generic map
func NewPixelScaleParamsFromMap(params map[string]any) (*PixelScaleParams, error) {
	_, hasHeight := params["height"]
	_, hasWidth := params["width"]
	if !hasHeight && !hasWidth {
		return nil, fmt.Errorf("at least one of 'height' or 'width' must be specified")
	}

	result := &PixelScaleParams{}
	if hasHeight {
		height := commandstructure.GetIntParam(params, "height", 0)
		if height <= 0 {
			return nil, fmt.Errorf("height must be positive, got %d", height)
		}
		result.Height = &height
	}
	if hasWidth {
		width := commandstructure.GetIntParam(params, "width", 0)
		if width <= 0 {
			return nil, fmt.Errorf("width must be positive, got %d", width)
		}
		result.Width = &width
	}
	return result, nil
}

// PixelScaleCommand resizes a PNG, preserving the aspect ratio when only one
// dimension is configured.
type PixelScaleCommand struct {
	name   string
	params *PixelScaleParams
}

func NewPixelScaleCommand(params map[string]any) (commandstructure.Command, error) {
	typedParams, err := NewPixelScaleParamsFromMap(params)
	if err != nil {
		return nil, err
	}
	return &PixelScaleCommand{
		name:   PixelScaleCommandName,
		params: typedParams,
	}, nil
}

func (c *PixelScaleCommand) Name() string {
	return c.name
}

func (c *PixelScaleCommand) Execute(imageData []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG image: %w", err)
	}

	bounds := img.Bounds()
	targetWidth, targetHeight := c.targetSize(bounds.Dx(), bounds.Dy())
	slog.Debug("PixelScaleCommand: scaling image",
		"original_width", bounds.Dx(),
		"original_height", bounds.Dy(),
		"target_width", targetWidth,
		"target_height", targetHeight)

	if targetWidth == bounds.Dx() && targetHeight == bounds.Dy() {
		return imageData, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode scaled PNG image: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *PixelScaleCommand) targetSize(originalWidth, originalHeight int) (int, int) {
	aspectRatio := float64(originalWidth) / float64(originalHeight)

	switch {
	case c.params.Width != nil && c.params.Height != nil:
		return *c.params.Width, *c.params.Height
	case c.params.Width != nil:
		return *c.params.Width, max(1, int(float64(*c.params.Width)/aspectRatio))
	default:
		return max(1, int(float64(*c.params.Height)*aspectRatio)), *c.params.Height
	}
}

func (c *PixelScaleCommand) GetParams() *PixelScaleParams {
	return c.params
}

func init() {
	if err := commandstructure.DefaultRegistry.Register(PixelScaleCommandName, NewPixelScaleCommand); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", PixelScaleCommandName, err))
	}
}
