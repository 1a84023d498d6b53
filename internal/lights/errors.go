package lights

import (
	"errors"
	"fmt"
)

// ErrUnknownDevice marks a device name absent from the loaded
// descriptors. Fatal at construction.
var ErrUnknownDevice = errors.New("unknown device")

// UnsupportedCommandError rejects a batch containing a command outside
// the device's vocabulary. The whole batch fails before any send.
type UnsupportedCommandError struct {
	Device  string
	Command Command
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("device %s: command %q not supported", e.Device, string(e.Command))
}
