package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kpauljoseph/cardprint/internal/layout"
	"github.com/kpauljoseph/cardprint/internal/parser"
	"github.com/kpauljoseph/cardprint/internal/pdf"
	"github.com/kpauljoseph/cardprint/pkg/logger"
	"github.com/kpauljoseph/cardprint/pkg/models"
	"github.com/kpauljoseph/cardprint/pkg/utils"
)

var ErrBlankInput = errors.New("input is blank, paste an exported set first")

type Result struct {
	InputPath  string
	OutputPath string
	CardCount  int
	SheetCount int
	Pages      []models.Page
	LayoutHash string
}

// Pipeline runs export text through the parser and the layout generator and
// hands the pages to a renderer.
type Pipeline struct {
	settings models.ExportSettings
	options  models.PrintOptions
	renderer pdf.PageRenderer
	logger   *logger.Logger
}

func New(settings models.ExportSettings, options models.PrintOptions, renderer pdf.PageRenderer, logger *logger.Logger) *Pipeline {
	return &Pipeline{
		settings: settings,
		options:  options,
		renderer: renderer,
		logger:   logger,
	}
}

func (p *Pipeline) Build(text string) (*Result, error) {
	if parser.IsBlank(text) {
		return nil, ErrBlankInput
	}

	cards, err := parser.ParseWith(text, p.settings)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Parsed %d cards", len(cards))

	sheets, err := layout.SheetCount(len(cards), p.options)
	if err != nil {
		return nil, err
	}
	p.logger.Info("Laying out %d cards on %d sheets", len(cards), sheets)

	pages, err := layout.GeneratePages(cards, p.options)
	if err != nil {
		return nil, err
	}

	result := &Result{
		CardCount:  len(cards),
		SheetCount: sheets,
		Pages:      pages,
		LayoutHash: utils.GenerateLayoutHash(pages),
	}
	p.logger.Debug("Laid out %d cards on %d sheets (%dx%d grid, layout %s)",
		result.CardCount, result.SheetCount, p.options.Rows, p.options.Columns, result.LayoutHash[:8])

	return result, nil
}

// RenderFile reads an export from inputPath and writes the PDF to outputPath.
func (p *Pipeline) RenderFile(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	result, err := p.Build(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}
	result.InputPath = inputPath

	if err := p.renderer.RenderFile(ctx, outputPath, result.Pages); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", outputPath, err)
	}
	result.OutputPath = outputPath

	p.logger.Info("Wrote %d sheets (%d pages) to %s", result.SheetCount, len(result.Pages), outputPath)
	return result, nil
}
