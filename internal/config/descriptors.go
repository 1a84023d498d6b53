package config

import (
	"encoding/json"
	"fmt"
	"os"

	"glowsync/internal/lights"
)

// DeviceDescriptor is one entry of the devices file: the command
// vocabulary (command name → transport packet) and brightness step count
// of a remote.
type DeviceDescriptor struct {
	DeviceName     string            `json:"device_name"`
	MaxBrightness  int               `json:"max_brightness"`
	CommandMapping map[string]string `json:"command_mapping"`
}

func LoadDescriptors(path string) ([]DeviceDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading devices file: %w", err)
	}
	var descriptors []DeviceDescriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, fmt.Errorf("parsing devices file %s: %w", path, err)
	}
	return descriptors, nil
}

// DeviceConfig resolves one named device from the descriptors, binding
// its built-in palette. Returns ErrUnknownDevice when either the
// descriptor or the palette is missing.
func DeviceConfig(name string, descriptors []DeviceDescriptor) (lights.DeviceConfig, error) {
	var descriptor *DeviceDescriptor
	for i := range descriptors {
		if descriptors[i].DeviceName == name {
			descriptor = &descriptors[i]
			break
		}
	}
	if descriptor == nil {
		return lights.DeviceConfig{}, fmt.Errorf("%w: %s", lights.ErrUnknownDevice, name)
	}

	palette, ok := PaletteFor(name)
	if !ok {
		return lights.DeviceConfig{}, fmt.Errorf("%w: no palette for %s", lights.ErrUnknownDevice, name)
	}

	vocabulary := make(map[lights.Command]string, len(descriptor.CommandMapping))
	for command, packet := range descriptor.CommandMapping {
		vocabulary[lights.Command(command)] = packet
	}

	return lights.DeviceConfig{
		Name:          descriptor.DeviceName,
		Vocabulary:    vocabulary,
		MaxBrightness: descriptor.MaxBrightness,
		Palette:       palette,
	}, nil
}
