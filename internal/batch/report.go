package batch

import (
	"sync"
	"time"

	"github.com/kpauljoseph/cardprint/pkg/logger"
)

type FailedExport struct {
	RelativePath string
	Err          error
}

type Report struct {
	StartTime      time.Time
	EndTime        time.Time
	ProcessedFiles int
	TotalCards     int
	TotalSheets    int
	Failed         []FailedExport

	mu sync.Mutex
}

func (r *Report) recordSuccess(cards, sheets int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ProcessedFiles++
	r.TotalCards += cards
	r.TotalSheets += sheets
}

func (r *Report) recordFailure(relPath string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ProcessedFiles++
	r.Failed = append(r.Failed, FailedExport{RelativePath: relPath, Err: err})
}

func (r *Report) TimeTaken() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func (r *Report) Print(log *logger.Logger) {
	processingCompleteBanner := `
+------------------------------------------------------------------------------+
|                           PROCESSING COMPLETE                                |
+------------------------------------------------------------------------------+`

	failedBanner := `
+------------------------------------------------------------------------------+
|                              FAILED EXPORTS                                  |
+------------------------------------------------------------------------------+`

	log.Info("\n%s\n", processingCompleteBanner)
	log.Info("- Total exports processed: %d", r.ProcessedFiles)
	log.Info("- Total cards laid out: %d", r.TotalCards)
	log.Info("- Total sheets: %d", r.TotalSheets)
	log.Info("- Failed exports: %d", len(r.Failed))
	log.Info("- Time Taken: %v", r.TimeTaken())

	if len(r.Failed) > 0 {
		log.Info("\n%s\n", failedBanner)
		for _, failed := range r.Failed {
			log.Info("- %s: %v", failed.RelativePath, failed.Err)
		}
	}
}
