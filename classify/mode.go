package classify

// Mode is the exclusive transport category assigned to an alert.
type Mode string

// Mode constants
const (
	Train Mode = "train"
	Tram  Mode = "tram"
	Bus   Mode = "bus"
)

// Modes returns every mode in precedence order.
func Modes() []Mode {
	return []Mode{Train, Tram, Bus}
}

// Valid reports whether m is one of the closed set of modes.
func (m Mode) Valid() bool {
	switch m {
	case Train, Tram, Bus:
		return true
	}
	return false
}

// Column returns the reporting-table column that counts alerts of this mode.
func (m Mode) Column() string {
	switch m {
	case Train:
		return "Train alerts"
	case Tram:
		return "Tram/Light rail alerts"
	case Bus:
		return "Bus alerts"
	}
	return ""
}

// Counts tallies alerts per mode.
type Counts struct {
	Train int
	Tram  int
	Bus   int
}

// Add records one alert of mode m. Unknown modes are ignored, which surfaces as a
// total mismatch in the caller's invariant check.
func (c *Counts) Add(m Mode) {
	switch m {
	case Train:
		c.Train++
	case Tram:
		c.Tram++
	case Bus:
		c.Bus++
	}
}

// Total returns the sum of all mode counts.
func (c Counts) Total() int {
	return c.Train + c.Tram + c.Bus
}
