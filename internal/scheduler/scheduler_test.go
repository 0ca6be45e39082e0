package scheduler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func noopRun(ctx context.Context) error { return nil }

func TestSchedulerLifecycle(t *testing.T) {
	s := NewScheduler(noopRun, testLogger())

	if err := s.Start(); err == nil {
		t.Fatal("expected Start to fail with no jobs scheduled")
	}

	if err := s.ScheduleBacktest("0 6 * * *"); err != nil {
		t.Fatalf("ScheduleBacktest failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !s.IsRunning() {
		t.Fatal("scheduler should report running after Start")
	}
	if s.GetNextRun().IsZero() {
		t.Fatal("expected a next run time while running")
	}
	if err := s.ScheduleBacktest("0 7 * * *"); err == nil {
		t.Fatal("expected scheduling to fail while running")
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if s.IsRunning() {
		t.Fatal("scheduler should report stopped after Stop")
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop should be a no-op, got %v", err)
	}
}

func TestScheduleBacktestRejectsBadExpression(t *testing.T) {
	s := NewScheduler(noopRun, testLogger())

	if err := s.ScheduleBacktest("not a cron spec"); err == nil {
		t.Fatal("expected an invalid cron expression to be rejected")
	}
	if len(s.Entries()) != 0 {
		t.Fatalf("invalid job should not be recorded, got %d entries", len(s.Entries()))
	}
}

func TestScheduleIntervalFloorsShortIntervals(t *testing.T) {
	s := NewScheduler(noopRun, testLogger())

	if err := s.ScheduleInterval(time.Second); err != nil {
		t.Fatalf("ScheduleInterval failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	next := s.GetNextRun()
	if until := time.Until(next); until < 30*time.Second {
		t.Fatalf("interval below one minute should be floored, next run in %s", until)
	}
}
