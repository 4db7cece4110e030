package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts n, never going below zero.
func (h *HealthData) Damage(n int) {
	h.Current = max(h.Current-n, 0)
}

// Heal adds n, capped at limit.
func (h *HealthData) Heal(n, limit int) {
	h.Current = min(h.Current+n, limit)
}

var Health = donburi.NewComponentType[HealthData]()
