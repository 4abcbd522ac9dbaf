package pdf

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/kpauljoseph/cardprint/pkg/logger"
)

// Rasterizer turns rendered sheets back into images, for previews and
// for checking print output without a printer.
type Rasterizer struct {
	outputDir string
	logger    *logger.Logger
}

func NewRasterizer(outputDir string, logger *logger.Logger) (*Rasterizer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Rasterizer{
		outputDir: outputDir,
		logger:    logger,
	}, nil
}

// RasterizePDF writes one PNG per page and returns their paths in page order.
func (r *Rasterizer) RasterizePDF(ctx context.Context, pdfPath string) ([]string, error) {
	r.logger.Debug("Rasterizing PDF: %s", pdfPath)

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	baseName := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	var images []string

	//Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := doc.Image(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract image for page %d: %w", pageNum+1, err)
		}

		imagePath := filepath.Join(r.outputDir, fmt.Sprintf("%s_page%d.png", baseName, pageNum+1))
		if err := saveImage(img, imagePath); err != nil {
			return nil, fmt.Errorf("failed to save image for page %d: %w", pageNum+1, err)
		}

		r.logger.Trace("Wrote page %d to %s", pageNum+1, imagePath)
		images = append(images, imagePath)
	}

	return images, nil
}

// ExtractText returns the text of every page, in page order.
func ExtractText(pdfPath string) ([]string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	texts := make([]string, 0, doc.NumPage())
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func saveImage(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func (r *Rasterizer) Cleanup() error {
	return os.RemoveAll(r.outputDir)
}
