// Command simulate plays the arena headlessly with the autopilot and
// reports how far it got. It is deterministic for a given seed, level and
// configuration.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/chinchilla/assets"
	"github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/game"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/systems"
	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Int64("seed", 1, "Session random seed")
	ticks := flag.Int("ticks", 30*60*10, "Maximum ticks to simulate")
	level := flag.String("level", assets.DefaultLevel, "Embedded level to play")
	legacy := flag.Bool("legacy", false, "Spawn enemies from level markers instead of waves")
	overrides := flag.String("config", "", "YAML file overriding the built-in tuning")
	dump := flag.Bool("json", false, "Print the final snapshot as JSON")
	flag.Parse()

	logger.Init()

	if *overrides != "" {
		if err := config.LoadOverrides(*overrides); err != nil {
			logger.Log.WithError(err).Fatal("Failed to load config overrides")
		}
	}
	grid, err := assets.LoadLevel(*level)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load level")
	}

	mode := config.ModeWaves
	if *legacy {
		mode = config.ModeLegacy
	}
	session := game.New(grid, game.WithSeed(*seed), game.WithMode(mode))
	pilot := systems.NewAutopilot(*seed)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	wave := session.Wave().Number
	tick := 0
loop:
	for ; tick < *ticks; tick++ {
		select {
		case <-sigChan:
			logger.Log.Info("Interrupted")
			break loop
		default:
		}

		session.Tick(pilot.Intent(session.ECS()))

		if n := session.Wave().Number; n != wave {
			wave = n
			logger.Log.WithFields(logrus.Fields{
				"wave":  n,
				"tick":  tick,
				"coins": session.Coins(),
				"hp":    session.PlayerHealth(),
			}).Info("Reached wave")
		}
		if session.Phase() == config.PhaseGameOver {
			break
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"seed":     *seed,
		"ticks":    tick,
		"phase":    session.Phase(),
		"wave":     session.Wave().Number,
		"survived": session.Wave().Survived,
		"kills":    session.Kills(),
		"coins":    session.Coins(),
	}).Info("Simulation finished")

	if *dump {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(session.Snapshot()); err != nil {
			logger.Log.WithError(err).Fatal("Failed to encode snapshot")
		}
	}
}
