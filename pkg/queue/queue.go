// Package queue provides background job processing.
//
// Define a job, register its constructor, dispatch it:
//
//	type WelcomeJob struct{ Email string }
//	func (WelcomeJob) Name() string  { return "welcome" }
//	func (j WelcomeJob) Handle() error { ... }
//
//	queue.Register("welcome", func() queue.Job { return &WelcomeJob{} })
//	queue.Dispatch(WelcomeJob{Email: email})
//
// Jobs run on a workerpool-backed worker started at boot; dispatch is
// fire-and-forget and never affects the request that enqueued it.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/workerpool"
)

// Job is the interface every queued job must satisfy.
type Job interface {
	// Name identifies the job type in the serialized envelope.
	Name() string
	// Handle executes the job. A non-nil error marks it failed.
	Handle() error
}

// Driver is the queue storage backend.
type Driver interface {
	Push(payload []byte) error
	Pop(ctx context.Context) ([]byte, error)
}

// envelope is the serialized form stored in the driver.
type envelope struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

const maxAttempts = 3

// Manager is the central queue hub.
type Manager struct {
	mu       sync.RWMutex
	driver   Driver
	registry map[string]func() Job
}

var defaultManager = &Manager{
	driver:   NewMemoryDriver(),
	registry: map[string]func() Job{},
}

// UseDriver swaps the storage backend. Call once at boot.
func UseDriver(d Driver) {
	defaultManager.mu.Lock()
	defaultManager.driver = d
	defaultManager.mu.Unlock()
}

// Register adds a job constructor under the given type name.
func Register(name string, fn func() Job) {
	defaultManager.mu.Lock()
	defaultManager.registry[name] = fn
	defaultManager.mu.Unlock()
}

// Dispatch pushes a job onto the queue.
func Dispatch(j Job) error {
	payload, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("queue: marshal %s: %w", j.Name(), err)
	}
	data, err := json.Marshal(envelope{Type: j.Name(), Payload: payload})
	if err != nil {
		return err
	}

	defaultManager.mu.RLock()
	driver := defaultManager.driver
	defaultManager.mu.RUnlock()
	return driver.Push(data)
}

// Work drains the queue until ctx is cancelled, running each job on
// the pool. Blocks; run it in its own goroutine.
func Work(ctx context.Context, pool *workerpool.Pool) {
	for {
		defaultManager.mu.RLock()
		driver := defaultManager.driver
		defaultManager.mu.RUnlock()

		data, err := driver.Pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("queue: pop failed", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if data == nil {
			continue // driver timeout, poll again
		}

		payload := data
		if err := pool.SubmitWait(func() { process(payload) }); err != nil {
			logger.Warn("queue: submit failed", "error", err)
			return
		}
	}
}

func process(data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		logger.Error("queue: bad envelope", "error", err)
		return
	}

	defaultManager.mu.RLock()
	fn, ok := defaultManager.registry[env.Type]
	driver := defaultManager.driver
	defaultManager.mu.RUnlock()
	if !ok {
		logger.Error("queue: unknown job type", "type", env.Type)
		return
	}

	job := fn()
	if err := json.Unmarshal(env.Payload, job); err != nil {
		logger.Error("queue: decode job", "type", env.Type, "error", err)
		return
	}

	start := time.Now()
	if err := job.Handle(); err != nil {
		env.Attempts++
		logger.Warn("queue: job failed",
			"type", env.Type, "attempts", env.Attempts, "error", err)
		if env.Attempts < maxAttempts {
			if retry, mErr := json.Marshal(env); mErr == nil {
				_ = driver.Push(retry)
			}
		}
		return
	}
	logger.Debug("queue: job done", "type", env.Type, "duration", time.Since(start).String())
}
