package models

type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ExportSettings holds the delimiters of a plain-text set export.
type ExportSettings struct {
	BetweenTermAndDefinition string `json:"between_term_and_definition" yaml:"between_term_and_definition"`
	BetweenCards             string `json:"between_cards" yaml:"between_cards"`
}

// DefaultExportSettings matches the "Copy text" export of a Quizlet set.
func DefaultExportSettings() ExportSettings {
	return ExportSettings{
		BetweenTermAndDefinition: "\t",
		BetweenCards:             "\n",
	}
}

type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

func (o Orientation) IsValid() bool {
	return o == OrientationPortrait || o == OrientationLandscape
}

type PrintOptions struct {
	FontSize    float64     `json:"font_size" yaml:"font_size"`
	Rows        int         `json:"rows" yaml:"rows"`
	Columns     int         `json:"columns" yaml:"columns"`
	ShowBorders bool        `json:"show_borders" yaml:"show_borders"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
}

func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		FontSize:    20,
		Rows:        4,
		Columns:     4,
		ShowBorders: true,
		Orientation: OrientationPortrait,
	}
}

func (o PrintOptions) CardsPerPage() int {
	return o.Rows * o.Columns
}
