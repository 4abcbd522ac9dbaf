package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardprint/internal/pdf"
	"github.com/kpauljoseph/cardprint/internal/pipeline"
	"github.com/kpauljoseph/cardprint/pkg/logger"
)

func newRenderCmd(root *rootOptions, log *logger.Logger) *cobra.Command {
	flags := &printFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render an exported set to a printable PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, root, flags, log)
			if err != nil {
				return err
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			renderer := pdf.NewRenderer(s.paper, log)
			result, err := pipeline.New(s.export, s.options, renderer, log).Build(text)
			if err != nil {
				return err
			}

			if err := renderer.RenderFile(cmd.Context(), output, result.Pages); err != nil {
				return fmt.Errorf("failed to render %s: %w", output, err)
			}

			log.Info("Rendered %d cards on %d sheets (%d pages) to %s",
				result.CardCount, result.SheetCount, len(result.Pages), output)
			log.Info("Print double-sided and flip on the long edge")
			return nil
		},
	}

	addPrintFlags(cmd, flags)
	cmd.Flags().StringVarP(&output, "output", "o", "cards.pdf", "PDF file to write")
	return cmd
}
