package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kpauljoseph/cardprint/pkg/models"
)

const DefaultCellWidth = 16

var headerStyle = lipgloss.NewStyle().Bold(true)

// Preview draws pages as text grids, one block per page, as they will be
// printed. Back pages appear mirrored, exactly like the paper.
type Preview struct {
	cellWidth int
}

func NewPreview(cellWidth int) *Preview {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return &Preview{cellWidth: cellWidth}
}

func (p *Preview) Render(pages []models.Page) string {
	blocks := make([]string, 0, len(pages))
	for _, page := range pages {
		blocks = append(blocks, p.renderPage(page))
	}
	return strings.Join(blocks, "\n\n")
}

func (p *Preview) renderPage(page models.Page) string {
	border := lipgloss.HiddenBorder()
	if page.ShowBorders {
		border = lipgloss.NormalBorder()
	}
	text := lipgloss.NewStyle().Width(p.cellWidth).Align(lipgloss.Center)

	side := "front"
	if !page.IsFront() {
		side = "back, mirrored"
	}
	rows := []string{headerStyle.Render(fmt.Sprintf("Sheet %d (%s)", page.Sheet+1, side))}
	for r := 0; r < page.Rows; r++ {
		wrapped := make([]string, page.Columns)
		height := 1
		for c := 0; c < page.Columns; c++ {
			wrapped[c] = text.Render(page.Cell(r, c))
			height = max(height, lipgloss.Height(wrapped[c]))
		}

		cells := make([]string, page.Columns)
		cell := text.Height(height).Border(border)
		for c := range cells {
			cells[c] = cell.Render(page.Cell(r, c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
