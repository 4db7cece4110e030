package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Boss        = donburi.NewTag().SetName("Boss")
	Bullet      = donburi.NewTag().SetName("Bullet")
	EnemyBullet = donburi.NewTag().SetName("EnemyBullet")
	Item        = donburi.NewTag().SetName("Item")
	Star        = donburi.NewTag().SetName("Star")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvBullet      = "Bullet"
	ResolvEnemyBullet = "EnemyBullet"
	ResolvItem        = "Item"
	ResolvStar        = "Star"
	ResolvFootprint   = "footprint"
)
