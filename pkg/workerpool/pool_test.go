package workerpool_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/pkg/workerpool"
)

func TestPoolRunsTasks(t *testing.T) {
	p := workerpool.New(4)
	defer p.Shutdown()

	var counter int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		require.NoError(t, p.SubmitWait(func() {
			defer wg.Done()
			atomic.AddInt64(&counter, 1)
		}))
	}
	wg.Wait()
	assert.Equal(t, int64(50), atomic.LoadInt64(&counter))
}

func TestSubmitReturnsErrPoolFull(t *testing.T) {
	p := workerpool.New(1)
	defer p.Shutdown()

	block := make(chan struct{})
	defer close(block)

	// Occupy the single worker, then fill the buffered queue.
	require.NoError(t, p.Submit(func() { <-block }))
	for i := 0; i < 10; i++ {
		if err := p.Submit(func() { <-block }); err != nil {
			assert.ErrorIs(t, err, workerpool.ErrPoolFull)
			return
		}
	}
	t.Fatal("pool never reported full")
}

func TestSubmitAfterShutdown(t *testing.T) {
	p := workerpool.New(2)
	p.Shutdown()

	assert.ErrorIs(t, p.Submit(func() {}), workerpool.ErrPoolClosed)
	assert.ErrorIs(t, p.SubmitWait(func() {}), workerpool.ErrPoolClosed)
}

func TestPanicDoesNotKillWorker(t *testing.T) {
	p := workerpool.New(1)
	defer p.Shutdown()

	require.NoError(t, p.SubmitWait(func() { panic("boom") }))

	done := make(chan struct{})
	require.NoError(t, p.SubmitWait(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive panic")
	}
}
