package commands

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jo-hoe/aiexplorer/internal/backend/commandstructure"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const PngConverterCommandName = "PngConverterCommand"

var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func hasCorrectPngSignature(data []byte) bool {
	return len(data) >= len(pngSignature) && bytes.Equal(data[:len(pngSignature)], pngSignature)
}

// PngConverterCommand normalizes image data to PNG. SVG input is rasterized,
// other decodable formats are re-encoded, PNG passes through unchanged.
type PngConverterCommand struct {
	name              string
	svgFallbackWidth  int
	svgFallbackHeight int
	background        color.RGBA
}

func NewPngConverterCommand(params map[string]any) (commandstructure.Command, error) {
	background, err := parseHexColor(commandstructure.GetStringParam(params, "background", "#ffffff"))
	if err != nil {
		return nil, fmt.Errorf("invalid background: %w", err)
	}
	w := commandstructure.GetIntParam(params, "svgFallbackWidth", 0)
	h := commandstructure.GetIntParam(params, "svgFallbackHeight", 0)
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("svg fallback size must not be negative, got %dx%d", w, h)
	}

	return &PngConverterCommand{
		name:              PngConverterCommandName,
		svgFallbackWidth:  w,
		svgFallbackHeight: h,
		background:        background,
	}, nil
}

func (c *PngConverterCommand) Name() string {
	return c.name
}

func (c *PngConverterCommand) Execute(imageData []byte) ([]byte, error) {
	if hasCorrectPngSignature(imageData) {
		slog.Debug("PngConverterCommand: PNG detected; returning original bytes")
		return imageData, nil
	}

	if isSVGData(imageData) {
		return c.convertSVG(imageData)
	}

	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	slog.Debug("PngConverterCommand: decoded raster image",
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *PngConverterCommand) convertSVG(svgData []byte) ([]byte, error) {
	w, h, ok := svgExplicitSize(svgData)
	if !ok {
		w, h = c.svgFallbackWidth, c.svgFallbackHeight
		if w <= 0 || h <= 0 {
			return nil, errors.New("SVG has no explicit size and no fallback size is configured")
		}
		slog.Debug("PngConverterCommand: SVG lacks explicit size; using fallback", "width", w, "height", h)
	}

	out, err := renderSVGToPNG(svgData, w, h, c.background)
	if err != nil {
		return nil, fmt.Errorf("failed to render SVG to PNG: %w", err)
	}
	return out, nil
}

// svgExplicitSize reads the width and height attributes of the root svg
// element. Units are ignored; a viewBox alone does not count as a size.
func svgExplicitSize(data []byte) (int, int, bool) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			return 0, 0, false
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if !strings.EqualFold(start.Name.Local, "svg") {
			return 0, 0, false
		}

		var w, h int
		for _, attr := range start.Attr {
			switch strings.ToLower(attr.Name.Local) {
			case "width":
				w = leadingInt(attr.Value)
			case "height":
				h = leadingInt(attr.Value)
			}
		}
		return w, h, w > 0 && h > 0
	}
}

func leadingInt(value string) int {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0
	}
	return n
}

func isSVGData(data []byte) bool {
	n := len(data)
	if n == 0 {
		return false
	}
	if n > 4096 {
		n = 4096
	}
	header := bytes.ToLower(data[:n])
	return bytes.Contains(header, []byte("<svg"))
}

func renderSVGToPNG(svgData []byte, targetW, targetH int, background color.RGBA) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}
	icon.SetTarget(0, 0, float64(targetW), float64(targetH))

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(targetW, targetH, dst, dst.Bounds())
	dasher := rasterx.NewDasher(targetW, targetH, scanner)
	icon.Draw(dasher, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode rendered SVG as PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// parseHexColor accepts #rrggbb.
func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func init() {
	if err := commandstructure.DefaultRegistry.Register(PngConverterCommandName, NewPngConverterCommand); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", PngConverterCommandName, err))
	}
}
