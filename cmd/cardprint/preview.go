package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardprint/internal/pdf"
	"github.com/kpauljoseph/cardprint/internal/pipeline"
	"github.com/kpauljoseph/cardprint/internal/terminal"
	"github.com/kpauljoseph/cardprint/pkg/logger"
)

func newPreviewCmd(root *rootOptions, log *logger.Logger) *cobra.Command {
	flags := &printFlags{}
	var cellWidth int

	cmd := &cobra.Command{
		Use:   "preview [file|-]",
		Short: "Show the sheets of an exported set in the terminal",
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

			result, err := pipeline.New(s.export, s.options, pdf.NewRenderer(s.paper, log), log).Build(text)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), terminal.NewPreview(cellWidth).Render(result.Pages))
			return nil
		},
	}

	addPrintFlags(cmd, flags)
	cmd.Flags().IntVar(&cellWidth, "cell-width", terminal.DefaultCellWidth, "width of a card in terminal columns")
	return cmd
}
