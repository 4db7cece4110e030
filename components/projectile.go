package components

import "github.com/yohamta/donburi"

// ProjectileOwner is the side a projectile was fired by.
type ProjectileOwner int

const (
	PlayerOwned ProjectileOwner = iota
	EnemyOwned
)

type ProjectileData struct {
	// Seq is the creation order. Projectiles are updated in ascending Seq.
	Seq    uint64
	Owner  ProjectileOwner
	VX, VY float64
	Angle  float64
	Damage int

	Removed bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
