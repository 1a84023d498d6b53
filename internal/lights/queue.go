package lights

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CommandQueue serializes batch execution against one Device. Producers
// enqueue from any goroutine and never wait on the relay; a single
// worker drains the FIFO, holding at most one batch in flight. Batches
// run end-to-end in enqueue order and their commands never interleave.
type CommandQueue struct {
	device *Device

	mu       sync.Mutex
	cond     *sync.Cond
	pending  []Batch
	inFlight bool
	running  bool
	done     chan struct{}
}

func NewCommandQueue(device *Device) *CommandQueue {
	q := &CommandQueue{device: device}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends one batch to the FIFO. Safe from any goroutine; never
// blocks on execution.
func (q *CommandQueue) Enqueue(batch Batch) {
	q.mu.Lock()
	q.pending = append(q.pending, batch)
	q.mu.Unlock()
	q.cond.Signal()
}

func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *CommandQueue) InFlight() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inFlight
}

func (q *CommandQueue) Running() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running
}

// Start launches the worker. Calling Start on a running queue is a
// no-op. Canceling ctx stops the worker the same way Stop does: the
// batch in flight finishes, pending batches are abandoned.
func (q *CommandQueue) Start(ctx context.Context) {
	q.mu.Lock()
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.done = make(chan struct{})
	done := q.done
	q.mu.Unlock()

	go q.worker(ctx)

	// cond.Wait cannot select on ctx, so a watcher translates the
	// cancellation into a wakeup
	go func() {
		select {
		case <-ctx.Done():
			q.mu.Lock()
			q.running = false
			q.mu.Unlock()
			q.cond.Broadcast()
		case <-done:
		}
	}()
}

func (q *CommandQueue) worker(ctx context.Context) {
	defer close(q.done)

	for {
		q.mu.Lock()
		for q.running && (len(q.pending) == 0 || q.inFlight) {
			q.cond.Wait()
		}
		if !q.running {
			q.mu.Unlock()
			return
		}
		batch := q.pending[0]
		q.pending = q.pending[1:]
		q.inFlight = true
		q.mu.Unlock()

		logger.With(zap.String("device", q.device.Name()), zap.Any("batch", batch)).
			Debug("Executing command batch")

		// Execution happens outside the lock so producers are never
		// blocked by relay latency.
		if err := q.device.Execute(ctx, batch); err != nil {
			logger.With(zap.String("device", q.device.Name()), zap.Error(err)).
				Error("Command batch failed")
		}

		q.mu.Lock()
		q.inFlight = false
		q.mu.Unlock()
	}
}

// Stop asks the worker to exit and waits up to timeout for the batch in
// flight to finish. Commands already in flight are never aborted
// mid-batch.
func (q *CommandQueue) Stop(timeout time.Duration) {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return
	}
	q.running = false
	done := q.done
	q.mu.Unlock()
	q.cond.Broadcast()

	select {
	case <-done:
	case <-time.After(timeout):
		logger.With(zap.String("device", q.device.Name()), zap.Stringer("timeout", timeout)).
			Warn("Queue worker still busy after stop timeout")
	}
}
