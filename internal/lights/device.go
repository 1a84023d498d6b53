package lights

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PowerState is the device's last known power state.
type PowerState string

const (
	PowerOn  PowerState = "on"
	PowerOff PowerState = "off"
)

// DeviceConfig is the external descriptor of one command-based light:
// its vocabulary (command name to transport packet), brightness step
// count and palette.
type DeviceConfig struct {
	Name          string
	Vocabulary    map[Command]string
	MaxBrightness int
	Palette       Palette
}

// Device is the state machine for one remote light. It validates and
// applies commands one at a time; mutation happens inside the queue
// worker or the spike orchestrator's exclusive synchronous call.
// Producers communicate by enqueuing immutable batches and may read
// the tracked state concurrently through the accessors, which take the
// state mutex.
type Device struct {
	name          string
	vocabulary    map[Command]string
	maxBrightness int
	palette       Palette
	precomputed   *PrecomputedPalette

	mu              sync.Mutex
	power           PowerState
	lastColor       string
	brightness      int
	brightnessKnown bool

	sender Sender
	sleep  func(time.Duration)
}

func NewDevice(cfg DeviceConfig, sender Sender) (*Device, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("device name is required")
	}
	if len(cfg.Vocabulary) == 0 {
		return nil, fmt.Errorf("device %s: empty command vocabulary", cfg.Name)
	}
	if !cfg.Palette.Contains(BlackColor) {
		return nil, fmt.Errorf("device %s: palette is missing %q", cfg.Name, BlackColor)
	}
	if sender == nil {
		return nil, fmt.Errorf("device %s: sender is required", cfg.Name)
	}

	return &Device{
		name:          cfg.Name,
		vocabulary:    cfg.Vocabulary,
		maxBrightness: cfg.MaxBrightness,
		palette:       cfg.Palette,
		precomputed:   Precompute(cfg.Palette),
		power:         PowerOff,
		sender:        sender,
		sleep:         time.Sleep,
	}, nil
}

func (d *Device) Name() string                     { return d.name }
func (d *Device) Palette() Palette                 { return d.palette }
func (d *Device) Precomputed() *PrecomputedPalette { return d.precomputed }

func (d *Device) Power() PowerState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.power
}

func (d *Device) LastColor() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastColor
}

// State returns power and last applied color as one consistent
// snapshot, so a producer deciding on a transition never sees the
// power state of one command and the color of another.
func (d *Device) State() (PowerState, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.power, d.lastColor
}

// Brightness reports the tracked brightness counter. ok is false until
// initialization has established a known baseline.
func (d *Device) Brightness() (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.brightness, d.brightnessKnown
}

// Initialize forces the device into a deterministic starting state from
// an unknown physical baseline: power on, apply startingColor, drive
// brightness to the floor with maxBrightness decrease steps, step up to
// initialBrightness, then power off. State tracking is seeded once the
// batch completes.
func (d *Device) Initialize(ctx context.Context, startingColor string, initialBrightness int) error {
	logger.With(zap.String("device", d.name)).Info("Initializing light, please wait...")

	batch := Batch{CmdOn, Command(startingColor)}
	for i := 0; i < d.maxBrightness; i++ {
		batch = append(batch, CmdDecreaseBrightness)
	}
	for i := 0; i < initialBrightness; i++ {
		batch = append(batch, CmdIncreaseBrightness)
	}
	batch = append(batch, CmdOff)

	if err := d.Execute(ctx, batch); err != nil {
		return err
	}

	d.mu.Lock()
	d.lastColor = startingColor
	d.brightness = initialBrightness
	d.brightnessKnown = true
	d.mu.Unlock()

	logger.With(zap.String("device", d.name)).Info("Light initialized")
	return nil
}

// Execute validates and applies one batch. Validation covers every
// non-wait command up front: a batch with any unsupported command fails
// before the first send. A failed send is logged and the batch
// continues; there is no retry.
func (d *Device) Execute(ctx context.Context, batch Batch) error {
	for _, cmd := range batch {
		if cmd.IsWait() {
			continue
		}
		if _, ok := d.vocabulary[cmd]; !ok {
			return &UnsupportedCommandError{Device: d.name, Command: cmd}
		}
	}

	for _, cmd := range batch {
		if wait, ok := cmd.WaitDuration(); ok {
			d.sleep(wait)
			continue
		}

		if power, last := d.State(); string(cmd) == last && power == PowerOn {
			logger.With(zap.String("device", d.name), zap.String("command", string(cmd))).
				Debug("Skipping redundant color command")
			continue
		}

		if err := d.sender.Send(ctx, d.vocabulary[cmd]); err != nil {
			logger.With(zap.String("device", d.name), zap.String("command", string(cmd)), zap.Error(err)).
				Error("Failed to send command")
			continue
		}

		d.apply(cmd)
	}
	return nil
}

func (d *Device) apply(cmd Command) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch cmd {
	case CmdOn:
		d.power = PowerOn
	case CmdOff:
		d.power = PowerOff
	case CmdIncreaseBrightness:
		if d.brightnessKnown && d.brightness < d.maxBrightness {
			d.brightness++
		}
	case CmdDecreaseBrightness:
		if d.brightnessKnown && d.brightness > 0 {
			d.brightness--
		}
	default:
		if cmd.IsColor() {
			d.lastColor = string(cmd)
		}
	}
}
