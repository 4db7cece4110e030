package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/chinchilla/shared/logger"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	BestWave  int     `json:"bestWave"`
	BestKills int     `json:"bestKills"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for settings and save slots.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "chinchilla",
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	gdataManager = m
	return nil
}

// Store returns the opened gdata manager, or nil when persistence is off.
func Store() *gdata.Manager {
	return gdataManager
}

// LoadSettings loads settings from disk. It returns nil settings when
// nothing is saved yet or persistence is off.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplySavedSettings applies loaded settings to a running world.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetSFXVolume(e, saved.SFXVolume)
}

// RecordRun folds a finished run into the saved best results.
func RecordRun(e *ecs.ECS) {
	saved, err := LoadSettings()
	if err != nil {
		logger.Log.WithError(err).Warn("could not load settings")
	}
	if saved == nil {
		saved = &SavedSettings{SFXVolume: GetAudio(e).SFXVolume}
	}

	kills := 0
	if pe, ok := PlayerEntry(e); ok {
		kills = playerScore(pe)
	}
	saved.BestWave = max(saved.BestWave, GetWave(e).Number)
	saved.BestKills = max(saved.BestKills, kills)

	if err := SaveSettings(saved); err != nil {
		logger.Log.WithError(err).Warn("could not save settings")
	}
}
