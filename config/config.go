package config

import (
	"image/color"
	"time"
)

// Config holds general arena configuration
type Config struct {
	Width  int
	Height int
	FPS    int

	// TickDuration is how far the simulation clock advances per tick.
	TickDuration time.Duration

	// Tile grid
	TileSize float64
	MapCols  int
	MapRows  int

	// ScrollEdge is the inset from each screen edge the player may not cross.
	ScrollEdge float64
}

// PlayerConfig contains player movement and health values
type PlayerConfig struct {
	Speed       float64
	Health      int
	Width       float64
	Height      float64
	HitCooldown time.Duration
}

// WeaponConfig contains player gun values
type WeaponConfig struct {
	BulletSpeed   float64
	BulletSize    float64
	Damage        int
	DamageJitter  int
	ShotCooldown  time.Duration
	FireLockout   time.Duration // shooting disabled after unpause / continue
	MuzzleOffsetX float64
	MuzzleOffsetY float64
	UpgradeDamage int

	// Multishot fires one extra bullet every MultishotStep degrees.
	MultishotStep float64

	LaserOffset float64
	LaserLength float64
}

// AnimationConfig contains frame timing shared by all characters
type AnimationConfig struct {
	FrameCooldown time.Duration
	FrameCount    int
	DeathLinger   time.Duration
}

// EffectsConfig contains cosmetic effect strengths
type EffectsConfig struct {
	ShakeHit           float64
	ShakeKill          float64
	ShakeBossDeath     float64
	ShakeBossSpawn     float64
	ShakeBossSpawnStep float64
	ShakeDecay         float64 // seconds for a shake to fade out
	HurtFlash          float64
	HurtFlashDecay     float64
	DamageTextLife     float64
	DamageTextRise     float64
	CelebrationFlash   float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool
	DrawHitboxes bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Weapon WeaponConfig
var Animation AnimationConfig
var Effects EffectsConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Background   = color.RGBA{R: 40, G: 25, B: 25, A: 255}
	Panel        = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	Floor        = color.RGBA{R: 58, G: 44, B: 40, A: 255}
	Wall         = color.RGBA{R: 110, G: 90, B: 80, A: 255}
	Yellow       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	Green        = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Gray         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Purple       = color.RGBA{R: 200, G: 80, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:        1200,
		Height:       600,
		FPS:          30,
		TickDuration: time.Second / 30,
		TileSize:     16,
		MapCols:      200,
		MapRows:      200,
		ScrollEdge:   150,
	}

	Player = PlayerConfig{
		Speed:       6.5,
		Health:      100,
		Width:       96,
		Height:      96,
		HitCooldown: 500 * time.Millisecond,
	}

	Weapon = WeaponConfig{
		BulletSpeed:   20,
		BulletSize:    10,
		Damage:        50,
		DamageJitter:  5,
		ShotCooldown:  100 * time.Millisecond,
		FireLockout:   300 * time.Millisecond,
		MuzzleOffsetX: 7,
		MuzzleOffsetY: 0,
		UpgradeDamage: 10,
		MultishotStep: 22,
		LaserOffset:   30,
		LaserLength:   800,
	}

	Animation = AnimationConfig{
		FrameCooldown: 60 * time.Millisecond,
		FrameCount:    4,
		DeathLinger:   240 * time.Millisecond,
	}

	Effects = EffectsConfig{
		ShakeHit:           3,
		ShakeKill:          5,
		ShakeBossDeath:     15,
		ShakeBossSpawn:     10,
		ShakeBossSpawnStep: 5,
		ShakeDecay:         0.4,
		HurtFlash:          50,
		HurtFlashDecay:     0.8,
		DamageTextLife:     0.6,
		DamageTextRise:     30,
		CelebrationFlash:   150,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 30, G: 18, B: 18, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
		TitleY:            140,
		MenuStartY:        240,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}
}
