package lights

import (
	"strconv"
	"strings"
	"time"
)

// Command is one step of a device transition. Apart from the fixed
// commands below and wait pseudo-commands, a Command is a palette color
// name.
type Command string

const (
	CmdOn                 Command = "on"
	CmdOff                Command = "off"
	CmdIncreaseBrightness Command = "increase_brightness"
	CmdDecreaseBrightness Command = "decrease_brightness"
	CmdNormalMode         Command = "normal_mode"
	CmdBlinkMode          Command = "blink_mode"
)

const waitPrefix = "wait_"

// Wait builds a wait pseudo-command. Waits block the executing batch for
// the given duration and are never transmitted to the relay.
func Wait(d time.Duration) Command {
	return Command(waitPrefix + strconv.FormatFloat(d.Seconds(), 'g', -1, 64))
}

func (c Command) IsWait() bool {
	return strings.HasPrefix(string(c), waitPrefix)
}

// WaitDuration parses the delay of a wait pseudo-command. Malformed wait
// commands report ok=false and are skipped by the executor.
func (c Command) WaitDuration() (time.Duration, bool) {
	if !c.IsWait() {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(strings.TrimPrefix(string(c), waitPrefix), 64)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return time.Duration(seconds * float64(time.Second)), true
}

// IsColor reports whether the command names a palette color rather than
// a power, brightness, mode or wait command.
func (c Command) IsColor() bool {
	switch c {
	case CmdOn, CmdOff, CmdIncreaseBrightness, CmdDecreaseBrightness, CmdNormalMode, CmdBlinkMode:
		return false
	}
	return !c.IsWait()
}

// Batch is one ordered, atomically executed command sequence. Batches are
// immutable once enqueued and never interleave with one another.
type Batch []Command
