package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation time source. Now advances by Step once per
// unpaused tick and is the only clock gameplay reads.
type ClockData struct {
	Now  time.Duration
	Step time.Duration
	Tick uint64
}

// Since returns the simulation time elapsed since t.
func (c *ClockData) Since(t time.Duration) time.Duration {
	return c.Now - t
}

var Clock = donburi.NewComponentType[ClockData]()
