package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardprint/internal/pdf"
	"github.com/kpauljoseph/cardprint/internal/pipeline"
	"github.com/kpauljoseph/cardprint/internal/watcher"
	"github.com/kpauljoseph/cardprint/pkg/logger"
)

func newWatchCmd(root *rootOptions, log *logger.Logger) *cobra.Command {
	flags := &printFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-render the PDF every time the export file is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, root, flags, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p := pipeline.New(s.export, s.options, pdf.NewRenderer(s.paper, log), log)
			rerender := func(ctx context.Context) error {
				_, err := p.RenderFile(ctx, args[0], output)
				return err
			}

			if err := rerender(ctx); err != nil {
				log.Info("Initial render failed: %v", err)
			}

			err = watcher.New(args[0], watcher.DefaultDebounce, log).Run(ctx, rerender)
			log.Info("Stopped watching %s", args[0])
			return err
		},
	}

	addPrintFlags(cmd, flags)
	cmd.Flags().StringVarP(&output, "output", "o", "cards.pdf", "PDF file to write")
	return cmd
}
