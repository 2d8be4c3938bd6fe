package queue_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/pkg/queue"
	"github.com/shashiranjanraj/vastra/pkg/workerpool"
)

var handled int64

type countingJob struct {
	Delta int64 `json:"delta"`
}

func (*countingJob) Name() string { return "counting" }

func (j *countingJob) Handle() error {
	atomic.AddInt64(&handled, j.Delta)
	return nil
}

func TestDispatchAndWork(t *testing.T) {
	queue.UseDriver(queue.NewMemoryDriver())
	queue.Register("counting", func() queue.Job { return &countingJob{} })
	atomic.StoreInt64(&handled, 0)

	for i := 0; i < 5; i++ {
		require.NoError(t, queue.Dispatch(&countingJob{Delta: 2}))
	}

	pool := workerpool.New(2)
	defer pool.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go queue.Work(ctx, pool)

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&handled) == 10
	}, 2*time.Second, 10*time.Millisecond)
}

func TestMemoryDriverReportsFull(t *testing.T) {
	d := queue.NewMemoryDriver()

	var err error
	for i := 0; i < 2000; i++ {
		if err = d.Push([]byte("x")); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, queue.ErrQueueFull)
}

func TestMemoryDriverPopHonoursContext(t *testing.T) {
	d := queue.NewMemoryDriver()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := d.Pop(ctx)
	assert.Error(t, err)
}
