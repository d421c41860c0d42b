package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/publish"
)

// Runs on January 1st only, so nothing fires during a test unless triggered.
const yearly = "0 0 1 1 *"

func newScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Stop() })
	return s
}

func noop(context.Context) error { return nil }

func TestAddValidation(t *testing.T) {
	s := newScheduler(t)

	tests := []struct {
		name     string
		job      string
		cronExpr string
		want     error
	}{
		{name: "empty_name", job: " ", cronExpr: yearly, want: ErrEmptyJobName},
		{name: "empty_cron", job: "job", cronExpr: "", want: ErrEmptyCronExpr},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := s.Add(test.job, test.cronExpr, time.Second, noop); !errors.Is(err, test.want) {
				t.Fatalf("Add() error = %v, want %v", err, test.want)
			}
		})
	}

	if err := s.Add("bad", "not a cron", time.Second, noop); err == nil {
		t.Fatalf("Add() accepted an invalid cron expression")
	}
	if err := s.Add("job", yearly, time.Second, noop); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add("job", yearly, time.Second, noop); !errors.Is(err, ErrDuplicateJob) {
		t.Fatalf("duplicate Add() error = %v", err)
	}
	if got := s.Jobs(); len(got) != 1 || got[0] != "job" {
		t.Fatalf("Jobs() = %v", got)
	}
	if err := s.AddPublishJob(yearly, nil, nil); err == nil {
		t.Fatalf("AddPublishJob() accepted a nil publisher")
	}
}

func TestRunNow(t *testing.T) {
	s := newScheduler(t)

	ran := make(chan struct{}, 1)
	err := s.Add("ping", yearly, time.Second, func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Errorf("task context has no deadline")
		}
		ran <- struct{}{}
		return nil
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := s.NextRun("ping"); err != nil {
		t.Fatalf("NextRun() error = %v", err)
	}
	if err := s.RunNow("missing"); !errors.Is(err, ErrUnknownJob) {
		t.Fatalf("RunNow(missing) error = %v", err)
	}

	s.Start()
	if err := s.RunNow("ping"); err != nil {
		t.Fatalf("RunNow() error = %v", err)
	}
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatalf("job did not run")
	}
}

type signalLister struct {
	called chan struct{}
}

func (l *signalLister) ListPublishedProjects(ctx context.Context) ([]models.Project, error) {
	l.called <- struct{}{}
	return nil, nil
}

func TestPublishJob(t *testing.T) {
	s := newScheduler(t)
	lister := &signalLister{called: make(chan struct{}, 1)}
	publisher := publish.NewPublisher(nil, nil, t.TempDir(), nil)

	if err := s.AddPublishJob(yearly, publisher, lister); err != nil {
		t.Fatalf("AddPublishJob() error = %v", err)
	}
	s.Start()
	if err := s.RunNow(PublishJobName); err != nil {
		t.Fatalf("RunNow() error = %v", err)
	}
	select {
	case <-lister.called:
	case <-time.After(5 * time.Second):
		t.Fatalf("publish job did not list projects")
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop() error = %v", err)
	}
}
