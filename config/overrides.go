package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML tuning file. Zero values keep the
// built-in defaults.
type Overrides struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
		FPS    int `yaml:"fps"`
	} `yaml:"window"`

	Player struct {
		Speed  float64 `yaml:"speed"`
		Health int     `yaml:"health"`
	} `yaml:"player"`

	Combo struct {
		WindowMs int `yaml:"windowMs"`
	} `yaml:"combo"`

	Wave struct {
		CountdownMs     int `yaml:"countdownMs"`
		InitialRequired int `yaml:"initialRequired"`
		IntervalMs      int `yaml:"intervalMs"`
		MinIntervalMs   int `yaml:"minIntervalMs"`
		MaxAliveCap     int `yaml:"maxAliveCap"`
	} `yaml:"wave"`

	Shop struct {
		WeaponCostPerLevel int `yaml:"weaponCostPerLevel"`
		HealthCost         int `yaml:"healthCost"`
		FullHealCost       int `yaml:"fullHealCost"`
		LaserCost          int `yaml:"laserCost"`
	} `yaml:"shop"`
}

// LoadOverrides reads a YAML overrides file and applies it to the global
// configuration.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config overrides: %w", err)
	}
	o, err := ParseOverrides(data)
	if err != nil {
		return err
	}
	o.Apply()
	return nil
}

// ParseOverrides decodes YAML overrides without applying them.
func ParseOverrides(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse config overrides: %w", err)
	}
	if o.Window.FPS < 0 || o.Window.Width < 0 || o.Window.Height < 0 {
		return nil, fmt.Errorf("invalid window overrides: %+v", o.Window)
	}
	return &o, nil
}

// Apply copies every non-zero override into the global configuration.
func (o *Overrides) Apply() {
	if o.Window.Width > 0 {
		C.Width = o.Window.Width
	}
	if o.Window.Height > 0 {
		C.Height = o.Window.Height
	}
	if o.Window.FPS > 0 {
		C.FPS = o.Window.FPS
		C.TickDuration = time.Second / time.Duration(o.Window.FPS)
	}

	if o.Player.Speed > 0 {
		Player.Speed = o.Player.Speed
	}
	if o.Player.Health > 0 {
		Player.Health = o.Player.Health
		Shop.HealthCap = o.Player.Health
	}

	if o.Combo.WindowMs > 0 {
		Combo.Window = ms(o.Combo.WindowMs)
	}

	if o.Wave.CountdownMs > 0 {
		Wave.CountdownDuration = ms(o.Wave.CountdownMs)
	}
	if o.Wave.InitialRequired > 0 {
		Wave.InitialRequired = o.Wave.InitialRequired
	}
	if o.Wave.IntervalMs > 0 {
		Wave.InitialInterval = ms(o.Wave.IntervalMs)
		Wave.IntervalBase = ms(o.Wave.IntervalMs)
	}
	if o.Wave.MinIntervalMs > 0 {
		Wave.MinInterval = ms(o.Wave.MinIntervalMs)
	}
	if o.Wave.MaxAliveCap > 0 {
		Wave.MaxAliveCap = o.Wave.MaxAliveCap
	}

	if o.Shop.WeaponCostPerLevel > 0 {
		Shop.WeaponCostPerLevel = o.Shop.WeaponCostPerLevel
	}
	if o.Shop.HealthCost > 0 {
		Shop.HealthCost = o.Shop.HealthCost
	}
	if o.Shop.FullHealCost > 0 {
		Shop.FullHealCost = o.Shop.FullHealCost
	}
	if o.Shop.LaserCost > 0 {
		Shop.LaserCost = o.Shop.LaserCost
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
