package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSweeper struct {
	calls int
	n     int64
	err   error
}

func (f *fakeSweeper) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	f.calls++
	return f.n, f.err
}

func TestNightlySweepRuns(t *testing.T) {
	sweeper := &fakeSweeper{n: 3}
	s := NewScheduler(sweeper)

	s.runNightlyJobs()
	assert.Equal(t, 1, sweeper.calls)
}

func TestNightlySweepSurvivesFailure(t *testing.T) {
	sweeper := &fakeSweeper{err: errors.New("db down")}
	s := NewScheduler(sweeper)

	// A failed sweep logs and returns; the scheduler keeps running.
	s.runNightlyJobs()
	assert.Equal(t, 1, sweeper.calls)
}
