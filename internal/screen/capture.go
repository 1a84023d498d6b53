// Package screen captures display frames and reduces them to one
// representative color.
package screen

import (
	"image"

	"github.com/kbinani/screenshot"
	"go.uber.org/zap"

	"glowsync/internal/logging"
)

var logger = logging.New("screen")

// CaptureFunc produces one frame of the given display. Injectable so
// monitors can be driven from synthetic frames in tests.
type CaptureFunc func(displayID int) (*image.RGBA, error)

// CaptureFrame grabs one frame of the given display. 0 is the primary
// screen.
func CaptureFrame(displayID int) (*image.RGBA, error) {
	return screenshot.CaptureDisplay(displayID)
}

// CaptureOrFallback substitutes a small black frame when capture fails,
// so sampling loops survive acquisition errors instead of crashing.
func CaptureOrFallback(capture CaptureFunc, displayID int) *image.RGBA {
	img, err := capture(displayID)
	if err != nil || img == nil {
		logger.With(zap.Int("display", displayID), zap.Error(err)).
			Error("Failed to capture screen, substituting black frame")
		return image.NewRGBA(image.Rect(0, 0, 10, 10))
	}
	return img
}
