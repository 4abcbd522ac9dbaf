package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/kpauljoseph/cardprint/pkg/models"
)

const DimensionTolerance = 1.0

type PageSize struct {
	Width  float64
	Height float64
}

func (p PageSize) Orientation() models.Orientation {
	if p.Width > p.Height {
		return models.OrientationLandscape
	}
	return models.OrientationPortrait
}

type Summary struct {
	PageCount int
	Pages     []PageSize
}

// Inspect reads page count and page sizes (in points) of a PDF file.
func Inspect(path string) (*Summary, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	summary := &Summary{PageCount: len(dims)}
	for _, dim := range dims {
		summary.Pages = append(summary.Pages, PageSize{Width: dim.Width, Height: dim.Height})
	}
	return summary, nil
}

// IsDuplexReady reports whether the document can be printed double sided:
// an even number of pages, all the same size.
func (s *Summary) IsDuplexReady() bool {
	if s.PageCount == 0 || s.PageCount%2 != 0 {
		return false
	}
	first := s.Pages[0]
	for _, p := range s.Pages[1:] {
		if abs(p.Width-first.Width) > DimensionTolerance || abs(p.Height-first.Height) > DimensionTolerance {
			return false
		}
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
