package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/kpauljoseph/cardprint/pkg/logger"
	"github.com/kpauljoseph/cardprint/pkg/models"
)

const (
	DefaultPaperSize = "Letter"
	FontFamily       = "Helvetica"

	// BorderedMarginPt is the sheet margin used when borders are shown.
	// Borderless sheets print edge to edge.
	BorderedMarginPt = 28.8
	CellPaddingPt    = 4.0

	pxToPt     = 0.75
	lineHeight = 1.2
)

var ErrNoPages = errors.New("no pages to render")

type Renderer struct {
	paperSize string
	logger    *logger.Logger
}

func NewRenderer(paperSize string, logger *logger.Logger) *Renderer {
	if paperSize == "" {
		paperSize = DefaultPaperSize
	}
	return &Renderer{
		paperSize: paperSize,
		logger:    logger,
	}
}

func (r *Renderer) RenderFile(ctx context.Context, path string, pages []models.Page) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := r.Render(ctx, f, pages); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	return f.Close()
}

// Render writes pages as a PDF, one PDF page per layout page, in order.
func (r *Renderer) Render(ctx context.Context, w io.Writer, pages []models.Page) error {
	if len(pages) == 0 {
		return ErrNoPages
	}

	doc := gofpdf.New(orientationCode(pages[0].Orientation), "pt", r.paperSize, "")
	if err := doc.Error(); err != nil {
		return fmt.Errorf("failed to set up %s paper: %w", r.paperSize, err)
	}
	doc.SetAutoPageBreak(false, 0)
	translate := doc.UnicodeTranslatorFromDescriptor("")

	for i, page := range pages {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.logger.Trace("Drawing page %d (sheet %d, %s)", i+1, page.Sheet+1, page.Side)
		doc.AddPage()
		if err := doc.Error(); err != nil {
			return fmt.Errorf("failed to add page %d: %w", i+1, err)
		}
		drawPage(doc, page, translate)
		if err := doc.Error(); err != nil {
			return fmt.Errorf("failed to draw page %d: %w", i+1, err)
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	r.logger.Debug("Rendered %d pages on %s paper", len(pages), r.paperSize)
	return nil
}

func drawPage(doc *gofpdf.Fpdf, page models.Page, translate func(string) string) {
	margin := 0.0
	if page.ShowBorders {
		margin = BorderedMarginPt
	}

	pageW, pageH := doc.GetPageSize()
	cellW := (pageW - 2*margin) / float64(page.Columns)
	cellH := (pageH - 2*margin) / float64(page.Rows)

	fontPt := page.FontSize * pxToPt
	lineH := fontPt * lineHeight
	doc.SetFont(FontFamily, "", fontPt)
	doc.SetLineWidth(0.5)

	for row := 0; row < page.Rows; row++ {
		for col := 0; col < page.Columns; col++ {
			x := margin + float64(col)*cellW
			y := margin + float64(row)*cellH

			if page.ShowBorders {
				doc.Rect(x, y, cellW, cellH, "D")
			}

			text := page.Cell(row, col)
			if text == "" {
				continue
			}

			textW := cellW - 2*CellPaddingPt
			lines := doc.SplitLines([]byte(translate(text)), textW)
			maxLines := int((cellH - 2*CellPaddingPt) / lineH)
			if maxLines < 1 {
				maxLines = 1
			}
			if len(lines) > maxLines {
				lines = lines[:maxLines]
			}

			top := y + (cellH-float64(len(lines))*lineH)/2
			for i, line := range lines {
				doc.SetXY(x+CellPaddingPt, top+float64(i)*lineH)
				doc.CellFormat(textW, lineH, string(line), "", 0, "CM", false, 0, "")
			}
		}
	}
}

func orientationCode(o models.Orientation) string {
	if o == models.OrientationLandscape {
		return "L"
	}
	return "P"
}
