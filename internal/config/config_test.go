package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowsync/internal/lights"
)

const descriptorsJSON = `[
  {
    "device_name": "monitor_backlight",
    "max_brightness": 10,
    "command_mapping": {
      "on": "pkt-on",
      "off": "pkt-off",
      "red": "pkt-red"
    }
  },
  {
    "device_name": "bottom_light",
    "max_brightness": 6,
    "command_mapping": {
      "on": "pkt-on-2",
      "off": "pkt-off-2"
    }
  }
]`

func writeDescriptors(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "remote_code.json")
	require.NoError(t, os.WriteFile(path, []byte(descriptorsJSON), 0o644))
	return path
}

func TestLoadDescriptors(t *testing.T) {
	descriptors, err := LoadDescriptors(writeDescriptors(t))
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	assert.Equal(t, "monitor_backlight", descriptors[0].DeviceName)
	assert.Equal(t, 10, descriptors[0].MaxBrightness)
	assert.Equal(t, "pkt-red", descriptors[0].CommandMapping["red"])
}

func TestLoadDescriptorsMissingFile(t *testing.T) {
	_, err := LoadDescriptors(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadDescriptorsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadDescriptors(path)
	assert.Error(t, err)
}

func TestDeviceConfigBindsVocabularyAndPalette(t *testing.T) {
	descriptors, err := LoadDescriptors(writeDescriptors(t))
	require.NoError(t, err)

	cfg, err := DeviceConfig("monitor_backlight", descriptors)
	require.NoError(t, err)

	assert.Equal(t, "monitor_backlight", cfg.Name)
	assert.Equal(t, 10, cfg.MaxBrightness)
	assert.Equal(t, "pkt-red", cfg.Vocabulary[lights.Command("red")])
	assert.True(t, cfg.Palette.Contains(lights.BlackColor))
}

func TestDeviceConfigUnknownDevice(t *testing.T) {
	descriptors, err := LoadDescriptors(writeDescriptors(t))
	require.NoError(t, err)

	_, err = DeviceConfig("disco_ball", descriptors)
	assert.ErrorIs(t, err, lights.ErrUnknownDevice)
}

func TestBuiltinPalettesIncludeBlack(t *testing.T) {
	for _, name := range []string{"monitor_backlight", "bottom_light"} {
		palette, ok := PaletteFor(name)
		require.True(t, ok, name)
		assert.True(t, palette.Contains(lights.BlackColor), name)
	}

	_, ok := PaletteFor("unknown")
	assert.False(t, ok)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.CaptureInterval)
	assert.Equal(t, "PROMINENT", cfg.ColorAlgo)
	assert.Equal(t, 20.0, cfg.DebounceThreshold)
	assert.Equal(t, 100*time.Millisecond, cfg.BlinkDelay)
	assert.Equal(t, []string{"bottom_light"}, cfg.SpikeDevices)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("CAPTURE_INTERVAL", "250ms")
	t.Setenv("SPIKE_DEVICES", "bottom_light,monitor_backlight")
	t.Setenv("SAVE_IMAGES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.CaptureInterval)
	assert.Equal(t, []string{"bottom_light", "monitor_backlight"}, cfg.SpikeDevices)
	assert.True(t, cfg.SaveImages)
}
