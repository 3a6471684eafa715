package fov

// DecayTable caches 1/exp(Transparency*i) for integer distances i.
type DecayTable struct {
	Transparency float32
	values       []float32
}

// NewDecayTable builds a table for distances 0..maxDistance.
func NewDecayTable(transparency float32, maxDistance int) *DecayTable {
	t := &DecayTable{
		Transparency: transparency,
		values:       make([]float32, maxDistance+1),
	}
	for i := range t.values {
		t.values[i] = Falloff(transparency, i)
	}
	return t
}

// At returns the falloff at distance steps. Distances past the end of the
// table are computed directly.
func (t *DecayTable) At(steps int) float32 {
	if steps >= 0 && steps < len(t.values) {
		return t.values[steps]
	}
	return Falloff(t.Transparency, steps)
}

// Tables holds the two decay tables used by the fast path: open air and
// the current weather's open air. OpenAir never changes; Weather is
// rewritten by Refresh.
//
// Refresh must be called by a single goroutine before any cast of the turn
// starts. Casts only read the tables.
type Tables struct {
	maxDistance int
	OpenAir     *DecayTable
	Weather     *DecayTable
}

// NewTables builds the open-air table and seeds the weather table with
// clear weather.
func NewTables(maxDistance int) *Tables {
	open := NewDecayTable(OpenAir, maxDistance)
	return &Tables{
		maxDistance: maxDistance,
		OpenAir:     open,
		Weather:     open,
	}
}

// Refresh rebuilds the weather table for the given sight penalty. It
// reports whether the table changed.
func (t *Tables) Refresh(sightPenalty float32) bool {
	transparency := WeatherTransparency(sightPenalty)
	if t.Weather != nil && t.Weather.Transparency == transparency {
		return false
	}
	if transparency == OpenAir {
		t.Weather = t.OpenAir
	} else {
		t.Weather = NewDecayTable(transparency, t.maxDistance)
	}
	return true
}

// Lookup returns the table for transparency, or nil when neither constant
// matches exactly.
func (t *Tables) Lookup(transparency float32) *DecayTable {
	if t == nil {
		return nil
	}
	switch transparency {
	case t.OpenAir.Transparency:
		return t.OpenAir
	case t.Weather.Transparency:
		return t.Weather
	}
	return nil
}

// Nudge snaps a value within epsilon of a table constant onto it.
func (t *Tables) Nudge(v float32) float32 {
	if t == nil {
		return v
	}
	for _, c := range [2]float32{t.OpenAir.Transparency, t.Weather.Transparency} {
		if d := v - c; d > -nudgeEpsilon && d < nudgeEpsilon {
			return c
		}
	}
	return v
}

// WeatherTransparency is the open-air coefficient under a sight penalty.
func WeatherTransparency(sightPenalty float32) float32 {
	if sightPenalty <= 0 {
		sightPenalty = 1
	}
	return OpenAir * sightPenalty
}
