package layout

import (
	"fmt"
	"math"

	"github.com/kpauljoseph/cardprint/pkg/models"
)

// ConfigError reports a grid dimension the generator cannot lay cards out on.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "must be greater than zero"
	}
	return fmt.Sprintf("invalid print options: %s %s, got %d", e.Field, reason, e.Value)
}

func validate(opts models.PrintOptions) error {
	if opts.Rows <= 0 {
		return &ConfigError{Field: "rows", Value: opts.Rows}
	}
	if opts.Columns <= 0 {
		return &ConfigError{Field: "columns", Value: opts.Columns}
	}
	if opts.Rows > math.MaxInt/opts.Columns {
		return &ConfigError{Field: "rows", Value: opts.Rows, Reason: "times columns overflows the cards per page"}
	}
	return nil
}

// SheetCount returns how many front/back pairs GeneratePages would emit.
func SheetCount(cardCount int, opts models.PrintOptions) (int, error) {
	if err := validate(opts); err != nil {
		return 0, err
	}
	perPage := opts.CardsPerPage()
	sheets := cardCount / perPage
	if cardCount%perPage != 0 {
		sheets++
	}
	return sheets, nil
}

// GeneratePages lays cards out row-major on a Rows x Columns grid. Each sheet
// yields a front page followed by a back page whose columns are mirrored, so
// the sheet can be flipped along its vertical edge.
func GeneratePages(cards []models.Card, opts models.PrintOptions) ([]models.Page, error) {
	sheets, err := SheetCount(len(cards), opts)
	if err != nil {
		return nil, err
	}

	perPage := opts.CardsPerPage()
	pages := make([]models.Page, 0, 2*sheets)
	for sheet := 0; sheet < sheets; sheet++ {
		start := sheet * perPage
		end := start + min(perPage, len(cards)-start)
		chunk := cards[start:end]

		front := newPage(sheet, models.SideFront, opts)
		back := newPage(sheet, models.SideBack, opts)
		for i, card := range chunk {
			r, c := i/opts.Columns, i%opts.Columns
			front.Cells[r][c] = card.Front
			back.Cells[r][opts.Columns-1-c] = card.Back
		}
		pages = append(pages, front, back)
	}

	return pages, nil
}

// newPage returns a page whose cells are all blank placeholders; cells past
// the end of a short chunk keep that padding.
func newPage(sheet int, side models.Side, opts models.PrintOptions) models.Page {
	cells := make([][]string, opts.Rows)
	for r := range cells {
		cells[r] = make([]string, opts.Columns)
	}
	return models.Page{
		Sheet:       sheet,
		Side:        side,
		Rows:        opts.Rows,
		Columns:     opts.Columns,
		Cells:       cells,
		FontSize:    opts.FontSize,
		Orientation: opts.Orientation,
		ShowBorders: opts.ShowBorders,
	}
}
