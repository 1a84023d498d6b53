// Package config loads the environment configuration and the device
// descriptors that bind command vocabularies and palettes to devices.
package config

import (
	"time"

	"github.com/caarlos0/env"
)

type Config struct {
	RelayAPIURL  string        `env:"RELAY_API_URL"`
	RelayTimeout time.Duration `env:"RELAY_TIMEOUT" envDefault:"5s"`
	DevicesFile  string        `env:"DEVICES_FILE" envDefault:"config/remote_code.json"`

	DeviceName        string   `env:"DEVICE_NAME" envDefault:"monitor_backlight"`
	SpikeDevices      []string `env:"SPIKE_DEVICES" envSeparator:"," envDefault:"bottom_light"`
	StartingColor     string   `env:"STARTING_COLOR" envDefault:"red"`
	InitialBrightness int      `env:"INITIAL_BRIGHTNESS" envDefault:"9"`

	ScreenNumber      int           `env:"SCREEN_NUMBER" envDefault:"0"`
	CaptureInterval   time.Duration `env:"CAPTURE_INTERVAL" envDefault:"100ms"`
	MonitorDuration   time.Duration `env:"MONITOR_DURATION" envDefault:"0"`
	ColorAlgo         string        `env:"COLOR_ALGO" envDefault:"PROMINENT"`
	SampleStride      int           `env:"SAMPLE_STRIDE" envDefault:"4"`
	DebounceThreshold float64       `env:"DEBOUNCE_THRESHOLD" envDefault:"20"`
	BlinkDelay        time.Duration `env:"BLINK_DELAY" envDefault:"100ms"`
	SaveImages        bool          `env:"SAVE_IMAGES" envDefault:"false"`
	OutputDir         string        `env:"OUTPUT_DIR" envDefault:"screen_captures"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
