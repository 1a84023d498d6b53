// Package backlight runs the periodic screen → light pipeline: sample a
// frame, classify the representative color, debounce, plan the
// transition and enqueue it for the device's queue worker.
package backlight

import (
	"context"
	"image"
	"time"

	"go.uber.org/zap"

	"glowsync/internal/lights"
	"glowsync/internal/logging"
	"glowsync/internal/screen"
)

var logger = logging.New("backlight")

type Config struct {
	DisplayID         int
	Interval          time.Duration
	Duration          time.Duration // 0 means no limit
	SampleStride      int
	DebounceThreshold float64
	Algorithm         screen.Algorithm
	Capture           screen.CaptureFunc
	Saver             *screen.Saver // optional snapshot persistence
}

// Monitor is the periodic producer. It owns the debounce state and only
// ever enqueues immutable batches; device state is mutated exclusively
// by the queue worker.
type Monitor struct {
	device  *lights.Device
	queue   *lights.CommandQueue
	planner lights.Planner
	cfg     Config

	lastSample *lights.Color
}

func NewMonitor(device *lights.Device, queue *lights.CommandQueue, planner lights.Planner, cfg Config) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = 100 * time.Millisecond
	}
	if cfg.SampleStride <= 0 {
		cfg.SampleStride = 4
	}
	if cfg.DebounceThreshold <= 0 {
		cfg.DebounceThreshold = 20
	}
	if cfg.Algorithm == nil {
		cfg.Algorithm = screen.ProminentColor
	}
	if cfg.Capture == nil {
		cfg.Capture = screen.CaptureFrame
	}
	return &Monitor{
		device:  device,
		queue:   queue,
		planner: planner,
		cfg:     cfg,
	}
}

// Run samples until ctx is canceled or the configured duration elapses.
// The sleep per cycle is interval minus elapsed processing time, so the
// cadence does not drift with capture latency.
func (m *Monitor) Run(ctx context.Context) {
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if m.cfg.Duration > 0 && time.Since(start) > m.cfg.Duration {
			logger.With(zap.Stringer("duration", m.cfg.Duration)).
				Info("Duration limit reached, stopping monitor")
			return
		}

		loopStart := time.Now()

		img := screen.CaptureOrFallback(m.cfg.Capture, m.cfg.DisplayID)
		colorName := m.ProcessFrame(img)

		if colorName != "" && m.cfg.Saver != nil {
			m.cfg.Saver.Save(img, m.device.Name())
		}

		untilNextTick := m.cfg.Interval - time.Since(loopStart)
		if untilNextTick > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(untilNextTick):
			}
		}
	}
}

// ProcessFrame classifies one frame and enqueues the planned transition.
// Returns the classified color name, or "" when the frame was debounced
// or suppressed as a semantic repeat.
func (m *Monitor) ProcessFrame(img *image.RGBA) string {
	color := m.cfg.Algorithm(img, m.cfg.SampleStride)

	// Debounce raw sensor noise: reclassify only once the sampled color
	// has moved far enough from the previous sample.
	if m.lastSample != nil && lights.Distance(color, *m.lastSample) <= m.cfg.DebounceThreshold {
		return ""
	}
	m.lastSample = &color

	colorName := m.device.Precomputed().Match(color)

	// Re-issuing the already applied color is wasted traffic. One
	// snapshot serves both the suppression check and the plan, so the
	// decision is taken against a single coherent device state even
	// while the queue worker is applying a batch.
	power, lastColor := m.device.State()
	if power != lights.PowerOff && colorName == lastColor {
		return ""
	}

	batch := m.planner.Plan(colorName, power)
	if len(batch) == 0 {
		return ""
	}
	m.queue.Enqueue(batch)

	logger.With(
		zap.String("device", m.device.Name()),
		zap.Uint8("red", color.Red),
		zap.Uint8("green", color.Green),
		zap.Uint8("blue", color.Blue),
		zap.String("color", colorName),
		zap.Any("batch", batch)).
		Info("Classified screen color")

	return colorName
}
