package lights

import "time"

// Planner maps a classified target color plus the device's current power
// state to the command batch realizing the transition. Callers must only
// plan when the device is off or the target differs from the device's
// last applied color; re-planning the already applied color is wasted
// traffic.
type Planner struct {
	// BlinkDelay is how long the acknowledgment blink is held before the
	// follow-up command.
	BlinkDelay time.Duration
}

func (p Planner) Plan(target string, power PowerState) Batch {
	if target == BlackColor {
		if power == PowerOff {
			// already effectively dark
			return Batch{}
		}
		return Batch{CmdBlinkMode, Wait(p.BlinkDelay), CmdOff}
	}

	if power == PowerOff {
		return Batch{CmdOn, Command(target), CmdNormalMode}
	}
	return Batch{CmdBlinkMode, Wait(p.BlinkDelay), Command(target), CmdNormalMode}
}
