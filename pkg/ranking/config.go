package ranking

import "github.com/scottcagno/collections"

// DefaultPoints is the points table awarded by every voter to its
// favourite states, best first.
var DefaultPoints = []int{12, 10, 8, 7, 6, 5, 4, 3, 2, 1}

const DefaultTopN = 10

// Config controls how tallies turn into points.
type Config struct {
	// TopN is how many states each voter awards points to.
	TopN int
	// Points is awarded by position; Points[0] goes to the most voted.
	Points []int
}

// CheckConfig fills in defaults and keeps TopN within the points table.
func (c *Config) CheckConfig() collections.Config {
	if len(c.Points) == 0 {
		c.Points = DefaultPoints
	}
	if c.TopN < 1 {
		c.TopN = DefaultTopN
	}
	if c.TopN > len(c.Points) {
		c.TopN = len(c.Points)
	}
	return c
}
