// File: /jobs/activity_processing_job.go
package jobs

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"stagechase-api/services"
)

// ActivityProcessingJob runs the batch matching pipeline on a fixed interval.
// Runs never overlap: if a pass is still going when the ticker fires, the
// tick is dropped.
type ActivityProcessingJob struct {
	processor *services.ProcessorService
	ticker    *time.Ticker
	done      chan bool
	running   sync.Mutex
	logger    zerolog.Logger
}

// NewActivityProcessingJob creates a new processing job.
func NewActivityProcessingJob(processor *services.ProcessorService, interval time.Duration, logger zerolog.Logger) *ActivityProcessingJob {
	return &ActivityProcessingJob{
		processor: processor,
		ticker:    time.NewTicker(interval),
		done:      make(chan bool),
		logger:    logger,
	}
}

// Start begins the processing loop.
func (j *ActivityProcessingJob) Start() {
	j.logger.Info().Msg("activity processing job started")

	go func() {
		// Run immediately on start
		j.run()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.run()
			case <-j.done:
				j.logger.Info().Msg("activity processing job stopped")
				return
			}
		}
	}()
}

// Stop stops the processing loop.
func (j *ActivityProcessingJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

// run performs one pass, skipping the tick when the previous pass is still in
// flight.
func (j *ActivityProcessingJob) run() {
	if !j.running.TryLock() {
		j.logger.Warn().Msg("previous processing run still in progress, skipping tick")
		return
	}
	defer j.running.Unlock()

	if _, err := j.processor.Process(); err != nil {
		j.logger.Error().Err(err).Msg("processing run failed")
	}
}
