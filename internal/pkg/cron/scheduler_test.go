package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_Start_RunsImmediatelyAndOnInterval(t *testing.T) {
	s := NewScheduler(context.Background(), nil)

	var runs atomic.Int32
	s.AddJob("tick", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)

	s.Stop()
	stopped := runs.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load(), "job ran after Stop")
}

func TestScheduler_ParentCancel_StopsJobs(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	s := NewScheduler(parent, nil)

	var runs atomic.Int32
	s.AddJob("tick", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after parent cancel")
	}
}

func TestScheduler_RunOnce_ContinuesAfterFailure(t *testing.T) {
	s := NewScheduler(context.Background(), nil)

	var second bool
	s.AddJob("fails", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})
	s.AddJob("succeeds", time.Hour, func(ctx context.Context) error {
		second = true
		return nil
	})

	s.RunOnce(context.Background())
	assert.True(t, second)
}
