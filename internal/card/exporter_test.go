package card

import (
	"bytes"
	"context"
	"image/png"
	"math"
	"testing"
	"time"

	"pyc-official/secretariat/internal/common"
)

func newTestRenderer() *Renderer {
	// No template URL configured: renders the solid fallback background
	templates := common.NewTemplateService("", common.NewCacheService(60, 60))
	return NewRenderer(templates, "")
}

func renderTestCard(t *testing.T) *Renderer {
	t.Helper()
	return newTestRenderer()
}

func TestExportPNG_CanonicalSize(t *testing.T) {
	r := renderTestCard(t)

	img, err := r.Render(context.Background(), Data{
		Name:        "Ada Lovelace",
		MemberSince: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		MemberID:    "abc-123",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := ExportPNG(img)
	if err != nil {
		t.Fatalf("ExportPNG failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Exported PNG does not decode: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != CanvasWidth || bounds.Dy() != CanvasHeight {
		t.Errorf("Expected %dx%d, got %dx%d", CanvasWidth, CanvasHeight, bounds.Dx(), bounds.Dy())
	}
}

func TestExportPDF_IDCardPageSize(t *testing.T) {
	r := renderTestCard(t)

	img, err := r.Render(context.Background(), Data{Name: "Ada Lovelace"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	pngData, err := ExportPNG(img)
	if err != nil {
		t.Fatalf("ExportPNG failed: %v", err)
	}

	pdf, err := newCardPDF(pngData)
	if err != nil {
		t.Fatalf("newCardPDF failed: %v", err)
	}

	w, h := pdf.GetPageSize()
	if math.Abs(w-CardWidthMM) > 0.01 || math.Abs(h-CardHeightMM) > 0.01 {
		t.Errorf("Expected page %vx%v mm, got %vx%v", CardWidthMM, CardHeightMM, w, h)
	}
}

func TestExportPDF_ProducesDocument(t *testing.T) {
	r := renderTestCard(t)

	img, err := r.Render(context.Background(), Data{Name: "Ada Lovelace"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := ExportPDF(img)
	if err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("Output does not start with a PDF header")
	}
}

func TestFilenames(t *testing.T) {
	cases := []struct {
		name    string
		wantPNG string
		wantPDF string
	}{
		{"Ada Lovelace", "Ada_Lovelace-card.png", "Ada_Lovelace-card.pdf"},
		{"  Ada   Lovelace  ", "Ada_Lovelace-card.png", "Ada_Lovelace-card.pdf"},
		{"", "member-card.png", "member-card.pdf"},
		{"   ", "member-card.png", "member-card.pdf"},
	}

	for _, tc := range cases {
		if got := PNGFilename(tc.name); got != tc.wantPNG {
			t.Errorf("PNGFilename(%q) = %q, want %q", tc.name, got, tc.wantPNG)
		}
		if got := PDFFilename(tc.name); got != tc.wantPDF {
			t.Errorf("PDFFilename(%q) = %q, want %q", tc.name, got, tc.wantPDF)
		}
	}
}
