package lights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanTransitions(t *testing.T) {
	planner := Planner{BlinkDelay: 100 * time.Millisecond}

	tests := []struct {
		name   string
		target string
		power  PowerState
		want   Batch
	}{
		{
			name:   "black while off is a no-op",
			target: "black",
			power:  PowerOff,
			want:   Batch{},
		},
		{
			name:   "black while on blinks then powers off",
			target: "black",
			power:  PowerOn,
			want:   Batch{CmdBlinkMode, "wait_0.1", CmdOff},
		},
		{
			name:   "color while off powers on first",
			target: "red",
			power:  PowerOff,
			want:   Batch{CmdOn, "red", CmdNormalMode},
		},
		{
			name:   "color while on blinks before switching",
			target: "red",
			power:  PowerOn,
			want:   Batch{CmdBlinkMode, "wait_0.1", "red", CmdNormalMode},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planner.Plan(tt.target, tt.power))
		})
	}
}

func TestWaitCommands(t *testing.T) {
	w := Wait(100 * time.Millisecond)
	assert.Equal(t, Command("wait_0.1"), w)
	assert.True(t, w.IsWait())
	assert.False(t, w.IsColor())

	d, ok := w.WaitDuration()
	assert.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, d)

	_, ok = Command("wait_bogus").WaitDuration()
	assert.False(t, ok)

	_, ok = CmdOn.WaitDuration()
	assert.False(t, ok)
}

func TestIsColor(t *testing.T) {
	for _, c := range []Command{CmdOn, CmdOff, CmdIncreaseBrightness, CmdDecreaseBrightness, CmdNormalMode, CmdBlinkMode, "wait_0.5"} {
		assert.False(t, c.IsColor(), "%q should not be a color", c)
	}
	assert.True(t, Command("sky_blue").IsColor())
}
