package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardprint/internal/pdf"
	"github.com/kpauljoseph/cardprint/pkg/logger"
	"github.com/kpauljoseph/cardprint/pkg/utils"
)

func newRasterizeCmd(log *logger.Logger) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "rasterize <pdf>",
		Short: "Write every page of a PDF as a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputDir == "" {
				outputDir = utils.GetDefaultOutputDir()
			}

			rasterizer, err := pdf.NewRasterizer(outputDir, log)
			if err != nil {
				return err
			}

			images, err := rasterizer.RasterizePDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			for _, image := range images {
				fmt.Fprintln(cmd.OutOrStdout(), image)
			}
			log.Info("Wrote %d page images to %s", len(images), outputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for the PNG files (default: a new temp directory)")
	return cmd
}
