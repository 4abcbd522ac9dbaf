package models

type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Page is one printable side of a sheet. Cells[r][c] is the text shown at
// row r, column c as it appears on paper, so back pages are already mirrored.
type Page struct {
	Sheet       int         `json:"sheet"`
	Side        Side        `json:"side"`
	Rows        int         `json:"rows"`
	Columns     int         `json:"columns"`
	Cells       [][]string  `json:"cells"`
	FontSize    float64     `json:"font_size"`
	Orientation Orientation `json:"orientation"`
	ShowBorders bool        `json:"show_borders"`
}

func (p Page) Cell(row, column int) string {
	return p.Cells[row][column]
}

func (p Page) IsFront() bool {
	return p.Side == SideFront
}
