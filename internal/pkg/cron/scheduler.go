package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on fixed intervals. Jobs are
// registered before Start and each runs on its own goroutine until
// Stop cancels them.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	slog.Info("scheduled job registered", "job", name, "interval", interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}

	slog.Info("scheduler started", "jobs", len(s.jobs))
}

// Stop cancels every running job and waits for in-flight runs to
// finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	// First run happens at startup rather than one interval in, so an
	// expiry sweep is never a day behind after a restart.
	s.run(s.ctx, j)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.run(s.ctx, j)
		}
	}
}

func (s *Scheduler) run(ctx context.Context, j job) {
	start := time.Now()
	if err := j.fn(ctx); err != nil {
		slog.Error("scheduled job failed", "job", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("scheduled job finished", "job", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time on the caller's
// context, bypassing the tickers.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.run(ctx, j)
	}
}
