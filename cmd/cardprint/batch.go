package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardprint/internal/batch"
	"github.com/kpauljoseph/cardprint/internal/pdf"
	"github.com/kpauljoseph/cardprint/internal/pipeline"
	"github.com/kpauljoseph/cardprint/internal/scanner"
	"github.com/kpauljoseph/cardprint/pkg/logger"
)

func newBatchCmd(root *rootOptions, log *logger.Logger) *cobra.Command {
	flags := &printFlags{}
	var (
		outputDir string
		jobs      int
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Render every export (.txt, .tsv) below a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, root, flags, log)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("output-dir") {
				outputDir = s.cfg.OutputDir
			}

			p := pipeline.New(s.export, s.options, pdf.NewRenderer(s.paper, log), log)
			runner := batch.NewRunner(scanner.New(log), p, outputDir, jobs, log)

			report, err := runner.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			report.Print(log)
			log.Info("- Output directory: %s", outputDir)

			if len(report.Failed) > 0 {
				return fmt.Errorf("%d of %d exports failed", len(report.Failed), report.ProcessedFiles)
			}
			return nil
		},
	}

	addPrintFlags(cmd, flags)
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory to write PDFs to (overrides config)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "exports to render in parallel (default: number of CPUs)")
	return cmd
}
