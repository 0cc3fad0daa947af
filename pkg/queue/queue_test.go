package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handled atomic.Int32

type countingJob struct {
	Delta int32 `json:"delta"`
}

func (j *countingJob) Handle() error {
	handled.Add(j.Delta)
	return nil
}

type failingJob struct{}

func (failingJob) Handle() error { return errors.New("always fails") }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatchAndProcess(t *testing.T) {
	Register("*queue.countingJob", func() Job { return &countingJob{} })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartWorkers(ctx, 1)

	before := handled.Load()
	require.NoError(t, Dispatch(&countingJob{Delta: 3}))
	require.NoError(t, Dispatch(&countingJob{Delta: 4}))

	waitFor(t, func() bool { return handled.Load() == before+7 })
}

func TestUnregisteredJobIsDropped(t *testing.T) {
	m := &Manager{
		registry: map[string]func() Job{},
		maxRetry: 1,
		driver:   NewMemoryDriver(),
	}

	// processing an unknown type logs and moves on without a failed entry
	m.process([]byte(`{"type":"*queue.unknownJob","payload":{}}`))
	assert.Empty(t, m.failed)
}

func TestFailedJobRecorded(t *testing.T) {
	m := &Manager{
		registry: map[string]func() Job{},
		maxRetry: 1,
		driver:   NewMemoryDriver(),
	}

	m.runWithRetry(failingJob{}, "*queue.failingJob")

	require.Len(t, m.failed, 1)
	assert.EqualError(t, m.failed[0].Err, "always fails")
	assert.Equal(t, 1, m.failed[0].Attempts)
}

func TestMemoryDriverPopHonorsContext(t *testing.T) {
	d := NewMemoryDriver()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := d.Pop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryDriverRoundTrip(t *testing.T) {
	d := NewMemoryDriver()
	require.NoError(t, d.Push([]byte("payload")))

	raw, err := d.Pop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "payload", string(raw))
}
