package card

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Physical export dimensions: ISO/IEC 7810 ID-1 (standard ID card).
const (
	CardWidthMM  = 85.6
	CardHeightMM = 53.98
)

// ExportPNG encodes the rendered bitmap as a PNG byte stream. Either the
// full file is returned or an error; no partial artifact is produced.
func ExportPNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode card PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF embeds the bitmap as a single full-page image on an ID-1 sized
// page, whatever the source pixel resolution.
func ExportPDF(img image.Image) ([]byte, error) {
	pngData, err := ExportPNG(img)
	if err != nil {
		return nil, err
	}

	pdf, err := newCardPDF(pngData)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write card PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// newCardPDF builds the single-page document. Split out so the page
// geometry is checkable without serializing.
func newCardPDF(pngData []byte) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: CardWidthMM, Ht: CardHeightMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("card", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("card", 0, 0, CardWidthMM, CardHeightMM, false, opts, 0, "")

	if pdf.Err() {
		return nil, fmt.Errorf("failed to compose card PDF: %s", pdf.Error())
	}
	return pdf, nil
}

// PNGFilename derives the download filename from the member's name:
// whitespace collapses to underscores, absent names fall back to "member".
func PNGFilename(name string) string {
	return filenameBase(name) + "-card.png"
}

// PDFFilename is the PDF counterpart of PNGFilename.
func PDFFilename(name string) string {
	return filenameBase(name) + "-card.pdf"
}

func filenameBase(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "member"
	}
	return strings.Join(parts, "_")
}
