// Package spike drives a fixed-order list of devices from one shared
// frame whenever an acoustic spike fires. This path owns its devices
// exclusively for the episode and executes synchronously; it must not
// run concurrently with a command queue against the same device.
package spike

import (
	"context"
	"time"

	"go.uber.org/zap"

	"glowsync/internal/lights"
	"glowsync/internal/logging"
	"glowsync/internal/screen"
)

var logger = logging.New("spike")

type Config struct {
	DisplayID    int
	SampleStride int
	Algorithm    screen.Algorithm
	Capture      screen.CaptureFunc
	Saver        *screen.Saver // optional snapshot persistence
}

// Orchestrator lights every device in priority order with its own
// palette's classification of the shared frame, then turns them all off
// again in the same order.
type Orchestrator struct {
	devices []*lights.Device
	cfg     Config
}

// NewOrchestrator takes devices in the order they should light up.
func NewOrchestrator(devices []*lights.Device, cfg Config) *Orchestrator {
	if cfg.SampleStride <= 0 {
		cfg.SampleStride = 4
	}
	if cfg.Algorithm == nil {
		cfg.Algorithm = screen.ProminentColor
	}
	if cfg.Capture == nil {
		cfg.Capture = screen.CaptureFrame
	}
	return &Orchestrator{devices: devices, cfg: cfg}
}

// ClassifyFrame captures one frame and matches its representative color
// against each device's own palette.
func (o *Orchestrator) ClassifyFrame() map[string]string {
	img := screen.CaptureOrFallback(o.cfg.Capture, o.cfg.DisplayID)
	color := o.cfg.Algorithm(img, o.cfg.SampleStride)

	if o.cfg.Saver != nil {
		o.cfg.Saver.Save(img, "spike")
	}

	names := make(map[string]string, len(o.devices))
	for _, d := range o.devices {
		names[d.Name()] = d.Precomputed().Match(color)
	}
	return names
}

// HandleSpike is the spike callback: light every device in order, then
// issue off to every device in the same order.
func (o *Orchestrator) HandleSpike(ctx context.Context) {
	started := time.Now()
	names := o.ClassifyFrame()

	for _, d := range o.devices {
		colorName := names[d.Name()]
		// a light being turned on cannot meaningfully target "off" as
		// its lit color
		if colorName == lights.BlackColor {
			colorName = "red"
		}

		var batch lights.Batch
		if d.Power() == lights.PowerOff {
			batch = append(batch, lights.CmdOn)
		}
		batch = append(batch, lights.Command(colorName))

		logger.With(zap.String("device", d.Name()), zap.String("color", colorName)).
			Info("Changing color for spike")
		if err := d.Execute(ctx, batch); err != nil {
			logger.With(zap.String("device", d.Name()), zap.Error(err)).
				Error("Failed to apply spike colors")
		}
	}

	for _, d := range o.devices {
		if err := d.Execute(ctx, lights.Batch{lights.CmdOff}); err != nil {
			logger.With(zap.String("device", d.Name()), zap.Error(err)).
				Error("Failed to turn device off after spike")
		}
	}

	logger.With(zap.Stringer("took", time.Since(started))).Debug("Spike episode complete")
}
