package screen

import (
	"fmt"
	"image"
	"sort"

	"glowsync/internal/lights"
)

// Algorithm reduces a frame to one representative color, visiting every
// stride-th pixel to bound cost.
type Algorithm func(img *image.RGBA, stride int) lights.Color

const (
	nearBlackMax = 30
	nearWhiteMin = 225
	topColors    = 10
)

// AlgorithmByName resolves a COLOR_ALGO value. Valid values are
// PROMINENT, AVERAGE and MODE.
func AlgorithmByName(name string) (Algorithm, error) {
	switch name {
	case "PROMINENT":
		return ProminentColor, nil
	case "AVERAGE":
		return AverageColor, nil
	case "MODE":
		return ModeColor, nil
	default:
		return nil, fmt.Errorf("unknown color algorithm: %v", name)
	}
}

type colorStat struct {
	color lights.Color
	count int
	seen  int
}

func countColors(img *image.RGBA, stride int) []colorStat {
	counts := make(map[lights.Color]int)
	firstSeen := make(map[lights.Color]int)
	bounds := img.Bounds()

	next := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			p := img.RGBAAt(x, y)
			c := lights.Color{Red: p.R, Green: p.G, Blue: p.B}
			if _, ok := counts[c]; !ok {
				firstSeen[c] = next
				next++
			}
			counts[c]++
		}
	}

	stats := make([]colorStat, 0, len(counts))
	for c, n := range counts {
		stats = append(stats, colorStat{color: c, count: n, seen: firstSeen[c]})
	}
	// most frequent first; first-seen order breaks count ties so results
	// stay deterministic
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].count != stats[j].count {
			return stats[i].count > stats[j].count
		}
		return stats[i].seen < stats[j].seen
	})
	return stats
}

func isNearBlack(c lights.Color) bool {
	return c.Red < nearBlackMax && c.Green < nearBlackMax && c.Blue < nearBlackMax
}

func isNearWhite(c lights.Color) bool {
	return c.Red > nearWhiteMin && c.Green > nearWhiteMin && c.Blue > nearWhiteMin
}

// ProminentColor finds the most eye-catching color in the frame: vivid,
// moderately prevalent colors beat merely-most-common ones. Near-black
// and near-white pixels rarely represent a meaningful ambient color and
// are discarded up front; if that empties the set the most frequent
// original color wins.
func ProminentColor(img *image.RGBA, stride int) lights.Color {
	stats := countColors(img, stride)
	if len(stats) == 0 {
		return lights.Color{}
	}

	filtered := make([]colorStat, 0, len(stats))
	filteredTotal := 0
	for _, s := range stats {
		if isNearBlack(s.color) || isNearWhite(s.color) {
			continue
		}
		filtered = append(filtered, s)
		filteredTotal += s.count
	}

	if len(filtered) == 0 {
		return stats[0].color
	}

	if len(filtered) > topColors {
		filtered = filtered[:topColors]
	}

	best := filtered[0].color
	maxScore := -1.0
	for _, s := range filtered {
		r := float64(s.color.Red)
		g := float64(s.color.Green)
		b := float64(s.color.Blue)

		maxChannel := max(r, max(g, b))
		minChannel := min(r, min(g, b))
		saturation := 0.0
		if maxChannel > 0 {
			saturation = (maxChannel - minChannel) / maxChannel
		}
		brightness := (r + g + b) / (3 * 255)
		prevalence := float64(s.count) / float64(filteredTotal)

		score := (saturation*0.7 + brightness*0.3) * (prevalence + 0.2)
		if score > maxScore {
			maxScore = score
			best = s.color
		}
	}
	return best
}

// AverageColor calculates the average color of the visited pixels.
func AverageColor(img *image.RGBA, stride int) lights.Color {
	var sumR, sumG, sumB, totalPixels uint64
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			p := img.RGBAAt(x, y)
			sumR += uint64(p.R)
			sumG += uint64(p.G)
			sumB += uint64(p.B)
			totalPixels++
		}
	}

	if totalPixels == 0 {
		return lights.Color{}
	}
	return lights.Color{
		Red:   uint8(sumR / totalPixels),
		Green: uint8(sumG / totalPixels),
		Blue:  uint8(sumB / totalPixels),
	}
}

// ModeColor calculates the most frequent color of the visited pixels.
func ModeColor(img *image.RGBA, stride int) lights.Color {
	stats := countColors(img, stride)
	if len(stats) == 0 {
		return lights.Color{}
	}
	return stats[0].color
}
