//go:build !js
// +build !js

package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/guilhem-/chwazam/battle"
	"github.com/guilhem-/chwazam/common"
)

// Headless verification tool. It stages random snapshots and checks the
// two guarantees the whole trick rests on: every participant has a
// findable winning seed, and every found seed replays to the same result.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	v := viper.New()
	v.SetDefault("trials", 20)
	v.SetDefault("combatants", 4)
	v.SetDefault("layout-seed", 1)
	v.SetEnvPrefix("chwazam_verify")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	trials := v.GetInt("trials")
	combatants := v.GetInt("combatants")
	layoutRNG := common.NewSeededRNG(uint32(v.GetInt("layout-seed")))

	logger.Info("verifying",
		zap.Int("trials", trials),
		zap.Int("combatants", combatants))

	fallbacks := 0
	for trial := 0; trial < trials; trial++ {
		snap := randomSnapshot(layoutRNG, combatants)

		for _, p := range snap.Placements {
			seed, found := battle.FindWinningSeed(snap, p.ID)
			if !found {
				fallbacks++
				logger.Warn("no seed found, cinematic fallback required",
					zap.Int("trial", trial),
					zap.Int("participant", p.ID))
				continue
			}

			first := battle.Simulate(snap, seed)
			if first.WinnerID != p.ID {
				logger.Fatal("found seed does not produce its winner",
					zap.Int("trial", trial),
					zap.Uint32("seed", seed),
					zap.Int("wanted", p.ID),
					zap.Int("got", first.WinnerID))
			}
			if again := battle.Simulate(snap, seed); again != first {
				logger.Fatal("replay diverged",
					zap.Int("trial", trial),
					zap.Uint32("seed", seed))
			}

			logger.Debug("participant verified",
				zap.Int("trial", trial),
				zap.Int("participant", p.ID),
				zap.Uint32("seed", seed),
				zap.Int("ticks", first.Ticks))
		}
	}

	logger.Info("done",
		zap.Int("checked", trials*combatants),
		zap.Int("fallbacks", fallbacks))
}

// randomSnapshot places n towers at random positions with enough spacing
// that none starts inside another.
func randomSnapshot(rng *common.SeededRNG, n int) battle.Snapshot {
	placements := make([]battle.Placement, 0, n)
	for len(placements) < n {
		x := rng.RandomFloat(battle.TowerRadius*2, battle.Width-battle.TowerRadius*2)
		y := rng.RandomFloat(battle.TowerRadius*2, battle.Height-battle.TowerRadius*2)

		tooClose := false
		for _, p := range placements {
			dx, dy := p.X-x, p.Y-y
			if dx*dx+dy*dy < battle.TowerRadius*battle.TowerRadius*16 {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		placements = append(placements, battle.Placement{
			ID:    len(placements),
			X:     x,
			Y:     y,
			Color: len(placements),
		})
	}
	return battle.NewSnapshot(placements)
}
