package lights

// PaletteEntry binds a color name to its reference RGB value.
type PaletteEntry struct {
	Name string
	RGB  Color
}

// Palette is the named set of reference colors for one device class.
// Entries keep their declaration order so that nearest-neighbor ties
// resolve to the earliest entry, deterministically.
type Palette []PaletteEntry

// BlackColor is the palette entry meaning "lights should be off or
// minimal". Every palette must contain it.
const BlackColor = "black"

func (p Palette) Contains(name string) bool {
	for _, e := range p {
		if e.Name == name {
			return true
		}
	}
	return false
}

func (p Palette) RGB(name string) (Color, bool) {
	for _, e := range p {
		if e.Name == name {
			return e.RGB, true
		}
	}
	return Color{}, false
}

type precomputedEntry struct {
	name string
	vec  [3]float64
}

// PrecomputedPalette is the float vector form of a Palette, derived once
// per device so repeated matching avoids per-call conversion.
type PrecomputedPalette struct {
	entries []precomputedEntry
}

func Precompute(p Palette) *PrecomputedPalette {
	pp := &PrecomputedPalette{entries: make([]precomputedEntry, 0, len(p))}
	for _, e := range p {
		pp.entries = append(pp.entries, precomputedEntry{
			name: e.Name,
			vec:  [3]float64{float64(e.RGB.Red), float64(e.RGB.Green), float64(e.RGB.Blue)},
		})
	}
	return pp
}

// Match returns the palette entry name closest to c by Euclidean
// distance. Exact ties keep the earliest entry: later entries only win
// with a strictly smaller distance.
func (pp *PrecomputedPalette) Match(c Color) string {
	vec := [3]float64{float64(c.Red), float64(c.Green), float64(c.Blue)}

	minDistance := -1.0
	closest := ""
	for _, e := range pp.entries {
		dr := vec[0] - e.vec[0]
		dg := vec[1] - e.vec[1]
		db := vec[2] - e.vec[2]
		distance := dr*dr + dg*dg + db*db
		if minDistance < 0 || distance < minDistance {
			minDistance = distance
			closest = e.name
		}
	}
	return closest
}
