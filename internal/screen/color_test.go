package screen

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowsync/internal/lights"
)

func solidFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestProminentColorFavorsVividAccentOverDominantGray(t *testing.T) {
	// dominant gray background with a vivid red accent strip
	img := solidFrame(40, 40, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	for y := 0; y < 40; y++ {
		for x := 0; x < 10; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	got := ProminentColor(img, 1)
	assert.Equal(t, lights.Color{Red: 200, Green: 30, Blue: 30}, got)
}

func TestProminentColorDiscardsNearBlackAndNearWhite(t *testing.T) {
	// mostly near-black and near-white noise, one mid-tone color
	img := solidFrame(20, 20, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	for y := 0; y < 20; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
		}
	}
	for y := 0; y < 4; y++ {
		for x := 8; x < 12; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 60, G: 90, B: 160, A: 255})
		}
	}

	got := ProminentColor(img, 1)
	assert.Equal(t, lights.Color{Red: 60, Green: 90, Blue: 160}, got)
}

func TestProminentColorFallsBackToMostFrequentWhenAllFiltered(t *testing.T) {
	img := solidFrame(10, 10, color.RGBA{R: 5, G: 5, B: 5, A: 255})
	for x := 0; x < 3; x++ {
		img.SetRGBA(x, 0, color.RGBA{R: 250, G: 250, B: 250, A: 255})
	}

	got := ProminentColor(img, 1)
	assert.Equal(t, lights.Color{Red: 5, Green: 5, Blue: 5}, got)
}

func TestProminentColorIsDeterministic(t *testing.T) {
	img := solidFrame(30, 30, color.RGBA{R: 100, G: 40, B: 40, A: 255})
	for y := 0; y < 30; y++ {
		for x := 0; x < 15; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 40, G: 40, B: 100, A: 255})
		}
	}

	first := ProminentColor(img, 1)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ProminentColor(img, 1))
	}
}

func TestAverageColor(t *testing.T) {
	img := solidFrame(4, 2, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	for x := 0; x < 4; x++ {
		img.SetRGBA(x, 0, color.RGBA{R: 200, G: 0, B: 100, A: 255})
	}

	got := AverageColor(img, 1)
	assert.Equal(t, lights.Color{Red: 150, Green: 50, Blue: 100}, got)
}

func TestModeColor(t *testing.T) {
	img := solidFrame(10, 10, color.RGBA{R: 20, G: 30, B: 40, A: 255})
	img.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	got := ModeColor(img, 1)
	assert.Equal(t, lights.Color{Red: 20, Green: 30, Blue: 40}, got)
}

func TestAlgorithmByName(t *testing.T) {
	for _, name := range []string{"PROMINENT", "AVERAGE", "MODE"} {
		algorithm, err := AlgorithmByName(name)
		require.NoError(t, err)
		require.NotNil(t, algorithm)
	}

	_, err := AlgorithmByName("KMEANS")
	assert.Error(t, err)
}

func TestCaptureOrFallbackSubstitutesBlackFrame(t *testing.T) {
	failing := func(int) (*image.RGBA, error) {
		return nil, assert.AnError
	}

	img := CaptureOrFallback(failing, 0)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
	assert.Equal(t, lights.Color{}, ModeColor(img, 1))
}
