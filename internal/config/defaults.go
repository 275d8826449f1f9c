package config

import (
	_ "embed"
)

//go:embed defaults/games.yaml
var defaultGamesYAML []byte

// Default returns the built-in tuning. It matches defaults/games.yaml and is
// used when the embedded file cannot be parsed.
func Default() Games {
	return Games{
		Clock:  ClockConfig{MaxStep: 0.033},
		Render: RenderConfig{PxPerCol: 8, PxPerRow: 16},
		Runner: RunnerConfig{
			Goal:             1600,
			Lanes:            3,
			WorldHeight:      900,
			Speed:            Ramp{Base: 220, Rate: 34},
			ObstacleInterval: Ramp{Base: 0.82, Rate: -0.018, Min: 0.33},
			CoinInterval:     Ramp{Base: 1.25, Rate: -0.02, Min: 0.55},
			FastChance:       Ramp{Base: 0.10, Rate: 0.015, Max: 0.35},
			LaneShiftChance:  0.6,
			ObstacleSpawnY:   -140,
			CoinSpawnY:       -90,
			CullY:            1400,
			Normal:           Block{HeightMin: 90, HeightSpan: 70, WidthMul: 0.7, SpeedMul: 1.0},
			Fast:             Block{HeightMin: 70, HeightSpan: 40, WidthMul: 0.55, SpeedMul: 1.35},
			CoinSpeedMul:     0.95,
			ScoreRate:        0.28,
			PlayerY:          0.80,
			PlayerRadius:     0.05,
			PickupRadius:     1.9,
			CoinsPerShield:   5,
		},
		Memory: MemoryConfig{
			Pairs:         []int{4, 5, 6, 7, 8, 10},
			LevelTime:     120,
			MatchDelay:    0.26,
			MismatchDelay: 0.52,
			AdvanceDelay:  0.45,
			SmallBoard:    16,
			LargeBoard:    20,
			Symbols: []string{
				"🍕", "🎮", "⚽", "🎧", "🚀", "🧩", "🎸", "🍔",
				"🛡", "🧠", "🎲", "🏎", "🎯", "🧨", "🏆", "🕹",
			},
			Filler: "✖",
		},
		Mines: MinesConfig{Size: 4, Hazards: 3, Goal: 10},
		Orbit: OrbitConfig{
			Goal:          30,
			StartSpeed:    1.10,
			SpeedStep:     0.015,
			MaxSpeed:      1.55,
			StartWindow:   1.05,
			HitShrink:     0.02,
			HitMinWindow:  0.55,
			MissShrink:    0.01,
			MissMinWindow: 0.50,
			MissPenalty:   5,
		},
		Tower: TowerConfig{
			Goal:             18,
			BaseWidth:        0.66,
			BaseY:            0.78,
			BlockHeight:      0.045,
			TopMargin:        0.22,
			Speed:            Ramp{Base: 175, Rate: 8, Min: 175, Max: 330},
			SpawnOffset:      0.7,
			BounceLeft:       0.85,
			BounceRight:      0.15,
			CameraRate:       6.5,
			MinOverlap:       10,
			PerfectTolerance: 6,
			PerfectBonus:     3,
			BaseHue:          210,
			HueStep:          24,
		},
		Fireworks: FireworksConfig{
			MaxParticles:   4000,
			InitialBursts:  4,
			BurstLife:      0.09,
			EmitMin:        18,
			EmitMax:        34,
			AutoBase:       0.78,
			AutoAmplitude:  0.18,
			AutoFrequency:  0.9,
			AutoRingChance: 0.35,
			TapRingChance:  0.45,
			SparkleMin:     0.75,
			SparkleChance:  0.10,
		},
	}
}
