package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennedia_site/internal/adapters/scheduler"
)

type countingJob struct {
	calls atomic.Int32
	err   error
	ran   chan struct{}
}

func (j *countingJob) Refresh(ctx context.Context) (bool, error) {
	j.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return false, errors.New("refresh called without a deadline")
	}
	select {
	case j.ran <- struct{}{}:
	default:
	}
	return true, j.err
}

func TestRunOnce(t *testing.T) {
	job := &countingJob{ran: make(chan struct{}, 1), err: errors.New("db down")}
	s, err := scheduler.New(job, time.Second)
	require.NoError(t, err)

	s.RunOnce(context.Background()) // errors are logged, not returned
	assert.EqualValues(t, 1, job.calls.Load())
}

func TestStart_RunsImmediately(t *testing.T) {
	job := &countingJob{ran: make(chan struct{}, 1)}
	s, err := scheduler.New(job, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown() })

	require.NoError(t, s.Start(time.Hour))

	select {
	case <-job.ran:
	case <-time.After(3 * time.Second):
		t.Fatal("refresh did not run on start")
	}
}

func TestStart_RejectsNonPositiveInterval(t *testing.T) {
	s, err := scheduler.New(&countingJob{}, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown() })
	assert.Error(t, s.Start(0))
}
