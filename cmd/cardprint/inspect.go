package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardprint/internal/pdf"
	"github.com/kpauljoseph/cardprint/pkg/logger"
)

func newInspectCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <pdf>",
		Short: "Print page count and page dimensions of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug("Analyzing PDF: %s", args[0])

			summary, err := pdf.Inspect(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pages: %d\n", summary.PageCount)
			for i, page := range summary.Pages {
				fmt.Fprintf(out, "Page %d: %.3f x %.3f points (%s)\n", i+1, page.Width, page.Height, page.Orientation())
			}
			fmt.Fprintf(out, "Double-sided ready: %t\n", summary.IsDuplexReady())
			return nil
		},
	}
}
