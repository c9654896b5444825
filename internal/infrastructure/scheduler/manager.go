// Package scheduler runs the background jobs of the helpdesk worker on cron
// schedules.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/synerjet/bendesk/internal/shared/biztime"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// DefaultMailPollSchedule polls the mailbox every two minutes.
const DefaultMailPollSchedule = "@every 2m"

// BatchJob processes one batch and returns the number of items handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// BatchJobFunc adapts a function to BatchJob.
type BatchJobFunc func(ctx context.Context) (int, error)

func (f BatchJobFunc) Execute(ctx context.Context) (int, error) { return f(ctx) }

// SchedulerManager owns one cron instance. Every job is wrapped so that a
// run still in progress causes the next tick to be skipped.
type SchedulerManager struct {
	cron   *cron.Cron
	logger logger.Interface

	started   bool
	startedMu sync.Mutex
}

func NewSchedulerManager(log logger.Interface) *SchedulerManager {
	cl := cronLogger{log: log.Named("cron")}
	return &SchedulerManager{
		cron: cron.New(
			cron.WithLocation(biztime.Location()),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: log,
	}
}

// RegisterMailPollJob schedules the mail ingestion. An empty spec uses
// DefaultMailPollSchedule.
func (m *SchedulerManager) RegisterMailPollJob(spec string, job BatchJob) error {
	if spec == "" {
		spec = DefaultMailPollSchedule
	}
	return m.register("mail-poll", spec, 5*time.Minute, job)
}

func (m *SchedulerManager) register(name, spec string, timeout time.Duration, job BatchJob) error {
	_, err := m.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		m.run(ctx, name, job)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for %s: %w", spec, name, err)
	}
	m.logger.Infow("registered job", "job", name, "schedule", spec)
	return nil
}

func (m *SchedulerManager) run(ctx context.Context, name string, job BatchJob) {
	m.logger.Debugw("job started", "job", name)

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			m.logger.Warnw("job interrupted", "job", name, "error", err)
			return
		}
		m.logger.Errorw("job failed", "job", name, "error", err, "duration", time.Since(startTime))
		return
	}

	if count > 0 {
		m.logger.Infow("job completed", "job", name, "count", count, "duration", time.Since(startTime))
	} else {
		m.logger.Debugw("job completed with nothing to do", "job", name, "duration", time.Since(startTime))
	}
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}
	m.cron.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.cron.Entries()))
}

// Stop waits for running jobs until ctx expires.
func (m *SchedulerManager) Stop(ctx context.Context) error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}
	m.logger.Infow("stopping scheduler manager")
	done := m.cron.Stop()
	m.started = false

	select {
	case <-done.Done():
		m.logger.Infow("scheduler manager stopped")
		return nil
	case <-ctx.Done():
		m.logger.Warnw("scheduler manager stop timed out")
		return ctx.Err()
	}
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	return m.started
}

// cronLogger routes cron's own messages to the application logger.
type cronLogger struct {
	log logger.Interface
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
