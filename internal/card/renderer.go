package card

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/logging"

	"github.com/fogleman/gg"
)

// Data is the member record slice the renderer needs. Fields may be empty;
// the layout substitutes placeholders rather than failing.
type Data struct {
	Name        string
	MemberSince time.Time
	MemberID    string
}

// Renderer rasterizes membership cards onto an offscreen surface.
// For a fixed template, font, and Data it is deterministic.
type Renderer struct {
	templates *common.TemplateService
	fontPath  string
}

// NewRenderer creates a card renderer. fontPath may be empty, in which case
// the built-in bitmap face is used.
func NewRenderer(templates *common.TemplateService, fontPath string) *Renderer {
	return &Renderer{
		templates: templates,
		fontPath:  fontPath,
	}
}

// Render draws the card at the canonical size and returns the bitmap.
// A configured-but-unreachable template is a render failure; an
// unconfigured template falls back to the solid background.
func (r *Renderer) Render(ctx context.Context, d Data) (image.Image, error) {
	dc := gg.NewContext(CanvasWidth, CanvasHeight)

	if err := r.drawBackground(ctx, dc); err != nil {
		return nil, err
	}

	sinceLong := ""
	if !d.MemberSince.IsZero() {
		sinceLong = d.MemberSince.Format("January 2, 2006")
	}

	layout := BuildLayout(CanvasWidth, CanvasHeight, d.Name, sinceLong, d.MemberID)

	for _, f := range layout.Fields {
		r.setFace(dc, f.Size)
		dc.SetRGB(f.R, f.G, f.B)
		dc.DrawStringAnchored(f.Text, f.X, f.Y, 0.5, 0.5)
	}

	return dc.Image(), nil
}

func (r *Renderer) drawBackground(ctx context.Context, dc *gg.Context) error {
	bg, err := r.templates.Background(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoTemplate) {
			r.drawFallbackBackground(dc)
			return nil
		}
		return fmt.Errorf("card background unavailable: %w", err)
	}

	// Scale the template to fill the surface
	bounds := bg.Bounds()
	sx := float64(CanvasWidth) / float64(bounds.Dx())
	sy := float64(CanvasHeight) / float64(bounds.Dy())

	dc.Push()
	dc.Scale(sx, sy)
	dc.DrawImage(bg, 0, 0)
	dc.Pop()

	return nil
}

// drawFallbackBackground paints the solid card face used when no template
// asset is configured (local dev, tests).
func (r *Renderer) drawFallbackBackground(dc *gg.Context) {
	dc.SetRGB(0.05, 0.22, 0.14)
	dc.Clear()

	// accent band along the bottom edge
	dc.SetRGB(0.93, 0.78, 0.35)
	dc.DrawRectangle(0, float64(CanvasHeight)*0.94, float64(CanvasWidth), float64(CanvasHeight)*0.06)
	dc.Fill()
}

func (r *Renderer) setFace(dc *gg.Context, size float64) {
	if r.fontPath == "" {
		return // keep gg's built-in face
	}
	if err := dc.LoadFontFace(r.fontPath, size); err != nil {
		logging.Warn("Failed to load card font, using built-in face",
			"font_path", r.fontPath, "error", err.Error())
	}
}
