package scoringdomain

import "maps"

// Config is a snapshot of the coefficient table. It is never mutated after
// it is loaded; edits produce a new snapshot on the next load.
type Config struct {
	values map[Key]float64
}

// NewConfig copies values into a snapshot.
func NewConfig(values map[Key]float64) Config {
	return Config{values: maps.Clone(values)}
}

// Coefficient returns the weight for key. Missing keys weigh 0.
func (c Config) Coefficient(key Key) float64 {
	return c.values[key]
}

// Has reports whether key was present when the snapshot was taken.
func (c Config) Has(key Key) bool {
	_, ok := c.values[key]
	return ok
}

// Values returns a copy of the underlying mapping.
func (c Config) Values() map[Key]float64 {
	out := maps.Clone(c.values)
	if out == nil {
		out = map[Key]float64{}
	}
	return out
}

func (c Config) Len() int {
	return len(c.values)
}
