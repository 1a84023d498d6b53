// Package lights holds the core pipeline state: palettes, command
// planning, the per-device command state machine and the serialized
// command queue that feeds it.
package lights

import (
	"context"
	"math"

	"glowsync/internal/logging"
)

var logger = logging.New("lights")

// Color is an 8-bit RGB triple as sampled from a frame or declared in a
// palette.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// Distance returns the Euclidean distance between two colors in RGB
// channel space.
func Distance(a, b Color) float64 {
	dr := float64(a.Red) - float64(b.Red)
	dg := float64(a.Green) - float64(b.Green)
	db := float64(a.Blue) - float64(b.Blue)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Sender transmits one opaque command packet. A nil error means the relay
// accepted the packet for forwarding; nothing more is guaranteed.
type Sender interface {
	Send(ctx context.Context, packet string) error
}
