// Package scheduler runs named cron jobs, currently the periodic re-publish of every
// published site.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyJobName  = errors.New("job name is required")
	ErrEmptyCronExpr = errors.New("cron expression is required")
	ErrDuplicateJob  = errors.New("job already registered")
	ErrUnknownJob    = errors.New("unknown job")
)

// Task is one run of a job. The context is cancelled after the job's timeout.
type Task func(ctx context.Context) error

type Scheduler struct {
	cron gocron.Scheduler

	mu   sync.Mutex
	jobs map[string]gocron.Job

	stopOnce sync.Once
	stopErr  error
}

func New() (*Scheduler, error) {
	cron, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			// A run still going when the next tick fires is skipped, not stacked.
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithError(func(jobID uuid.UUID, jobName string, err error) {
					log.Error().Err(err).Str("job_id", jobID.String()).Str("job_name", jobName).Msg("Scheduled job failed")
				}),
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error().
						Str("job_id", jobID.String()).
						Str("job_name", jobName).
						Interface("panic", recoverData).
						Msg("Scheduled job panicked")
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{cron: cron, jobs: make(map[string]gocron.Job)}, nil
}

// Add registers task under name on a five-field cron expression.
func (s *Scheduler) Add(name, cronExpr string, timeout time.Duration, task Task) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return ErrEmptyCronExpr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateJob, name)
	}

	jobLogger := log.With().Str("job_name", name).Str("cron", cronExpr).Logger()
	run := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		jobLogger.Debug().Msg("Scheduled job started")
		err := task(jobLogger.WithContext(ctx))
		jobLogger.Debug().Dur("duration", time.Since(start)).Msg("Scheduled job finished")
		return err
	}

	job, err := s.cron.NewJob(gocron.CronJob(cronExpr, false), gocron.NewTask(run), gocron.WithName(name))
	if err != nil {
		return fmt.Errorf("register job %s: %w", name, err)
	}
	s.jobs[name] = job
	jobLogger.Info().Msg("Scheduled job registered")
	return nil
}

// RunNow triggers name outside its schedule. The scheduler must be started.
func (s *Scheduler) RunNow(name string) error {
	job, err := s.job(name)
	if err != nil {
		return err
	}
	return job.RunNow()
}

func (s *Scheduler) NextRun(name string) (time.Time, error) {
	job, err := s.job(name)
	if err != nil {
		return time.Time{}, err
	}
	return job.NextRun()
}

// Jobs lists the registered job names in order.
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scheduler) job(name string) (gocron.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return job, nil
}

func (s *Scheduler) Start() {
	log.Info().Int("jobs", len(s.Jobs())).Msg("Scheduler starting")
	s.cron.Start()
}

// Stop waits for running jobs and is safe to call more than once.
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		log.Info().Msg("Scheduler stopping")
		s.stopErr = s.cron.Shutdown()
	})
	return s.stopErr
}
