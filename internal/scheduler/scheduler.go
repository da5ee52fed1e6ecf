// Package scheduler runs the node's periodic simulation jobs.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Job is one recurring action. Run is invoked once per tick; a returned error
// is logged and the cadence continues.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	clock  clockwork.Clock
	logger *zap.Logger
	jobs   []Job
	wg     sync.WaitGroup
}

func New(clock clockwork.Clock, logger *zap.Logger) *Scheduler {
	return &Scheduler{clock: clock, logger: logger}
}

func (s *Scheduler) Add(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start launches one goroutine per job. Jobs stop when ctx is cancelled;
// Wait blocks until all of them have returned.
func (s *Scheduler) Start(ctx context.Context) {
	for _, job := range s.jobs {
		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			s.runJob(ctx, job)
		}(job)
	}
}

func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	ticker := s.clock.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if err := job.Run(ctx); err != nil {
				s.logger.Warn("periodic job failed",
					zap.String("job", job.Name),
					zap.Error(err))
			}
		}
	}
}
