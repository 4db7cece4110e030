package components

import (
	"time"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi"
)

// PowerUpsData tracks active star effects and the pickup spawn timers.
type PowerUpsData struct {
	Active [cfg.StarTypeCount]bool
	Since  [cfg.StarTypeCount]time.Duration

	LastStarSpawn time.Duration
	LastColaSpawn time.Duration
}

// Has reports whether star effect t is active.
func (p *PowerUpsData) Has(t cfg.StarType) bool {
	return p.Active[t]
}

var PowerUps = donburi.NewComponentType[PowerUpsData]()
