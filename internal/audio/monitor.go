// Package audio watches an energy-sample stream for transient spikes and
// fires a handler for each one. Raw audio acquisition is external; the
// monitor only consumes chunks of normalized samples.
package audio

import (
	"context"
	"errors"
	"io"
	"math"
	"sync"

	"go.uber.org/zap"

	"glowsync/internal/logging"
)

var logger = logging.New("audio")

// Source delivers one chunk of normalized samples per call. io.EOF ends
// monitoring cleanly.
type Source interface {
	ReadChunk(ctx context.Context) ([]float64, error)
}

// Energy is the vector norm of a chunk, the scalar compared against the
// spike threshold.
func Energy(samples []float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum)
}

// Monitor reads chunks and triggers the handler when energy exceeds the
// threshold. At most one handler runs at a time: the gate is an atomic
// try-acquire, so a spike arriving while a handler is in flight is
// dropped rather than deferred.
type Monitor struct {
	source    Source
	threshold float64
	handler   func()

	gate sync.Mutex
	wg   sync.WaitGroup
}

func NewMonitor(source Source, threshold float64, handler func()) *Monitor {
	return &Monitor{
		source:    source,
		threshold: threshold,
		handler:   handler,
	}
}

// Run blocks until the source ends or ctx is canceled. Read errors other
// than EOF substitute silence and continue; the sampling loop never
// crashes on acquisition failures.
func (m *Monitor) Run(ctx context.Context) error {
	logger.With(zap.Float64("threshold", m.threshold)).Info("Listening for spikes")
	defer m.wg.Wait()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		chunk, err := m.source.ReadChunk(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info("Audio source ended")
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.With(zap.Error(err)).Warn("Failed to read audio chunk, substituting silence")
			continue
		}

		if Energy(chunk) <= m.threshold {
			continue
		}

		if !m.gate.TryLock() {
			logger.Debug("Spike dropped, handler already in flight")
			continue
		}
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			defer m.gate.Unlock()
			logger.Info("Spike detected, handling")
			m.handler()
			logger.Info("Spike handling complete")
		}()
	}
}
