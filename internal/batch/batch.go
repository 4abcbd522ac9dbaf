package batch

import (
	"context"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kpauljoseph/cardprint/internal/pipeline"
	"github.com/kpauljoseph/cardprint/internal/scanner"
	"github.com/kpauljoseph/cardprint/pkg/logger"
	"github.com/kpauljoseph/cardprint/pkg/utils"
)

// Runner renders every export found under a directory to its own PDF.
type Runner struct {
	scanner   *scanner.DirectoryScanner
	pipeline  *pipeline.Pipeline
	outputDir string
	jobs      int
	logger    *logger.Logger
}

func NewRunner(s *scanner.DirectoryScanner, p *pipeline.Pipeline, outputDir string, jobs int, logger *logger.Logger) *Runner {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	return &Runner{
		scanner:   s,
		pipeline:  p,
		outputDir: outputDir,
		jobs:      jobs,
		logger:    logger,
	}
}

// Run renders all exports below dir. A bad export is recorded in the report
// and does not stop the others; only scanning errors and cancellation are
// returned.
func (r *Runner) Run(ctx context.Context, dir string) (*Report, error) {
	report := &Report{
		StartTime: time.Now(),
	}

	r.logger.Info("Scanning directory: %s", dir)
	exports, err := r.scanner.FindExports(ctx, dir)
	if err != nil {
		return nil, err
	}
	r.logger.Info("Found %d exports to render", len(exports))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for _, export := range exports {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outputPath := utils.OutputPathFor(r.outputDir, export.RelativePath)
			result, err := r.pipeline.RenderFile(gctx, export.AbsolutePath, outputPath)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				r.logger.Info("Error processing %s: %v", export.RelativePath, err)
				report.recordFailure(export.RelativePath, err)
				return nil
			}

			report.recordSuccess(result.CardCount, result.SheetCount)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(report.Failed, func(i, j int) bool {
		return report.Failed[i].RelativePath < report.Failed[j].RelativePath
	})
	report.EndTime = time.Now()
	return report, nil
}
