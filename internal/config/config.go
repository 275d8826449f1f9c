// Package config provides YAML-based tuning for the Star Quest engines.
// Every constant that shapes a round (speeds, intervals, goals, tolerances)
// lives here so it can be tweaked without a rebuild.
package config

// Games is the root of games.yaml.
type Games struct {
	Clock     ClockConfig     `yaml:"clock"`
	Render    RenderConfig    `yaml:"render"`
	Runner    RunnerConfig    `yaml:"runner"`
	Memory    MemoryConfig    `yaml:"memory"`
	Mines     MinesConfig     `yaml:"mines"`
	Orbit     OrbitConfig     `yaml:"orbit"`
	Tower     TowerConfig     `yaml:"tower"`
	Fireworks FireworksConfig `yaml:"fireworks"`
}

// ClockConfig bounds the frame step.
type ClockConfig struct {
	MaxStep float64 `yaml:"max_step"` // seconds
}

// RenderConfig maps terminal cells to the virtual pixels used by the
// runner and tower engines.
type RenderConfig struct {
	PxPerCol float64 `yaml:"px_per_col"`
	PxPerRow float64 `yaml:"px_per_row"`
}

// RunnerConfig tunes the lane runner.
type RunnerConfig struct {
	Goal             int     `yaml:"goal"`
	Lanes            int     `yaml:"lanes"`
	WorldHeight      float64 `yaml:"world_height"` // virtual units mapped onto the screen height
	Speed            Ramp    `yaml:"speed"`
	ObstacleInterval Ramp    `yaml:"obstacle_interval"`
	CoinInterval     Ramp    `yaml:"coin_interval"`
	FastChance       Ramp    `yaml:"fast_chance"`
	LaneShiftChance  float64 `yaml:"lane_shift_chance"` // chance to move off a repeated lane
	ObstacleSpawnY   float64 `yaml:"obstacle_spawn_y"`
	CoinSpawnY       float64 `yaml:"coin_spawn_y"`
	CullY            float64 `yaml:"cull_y"`
	Normal           Block   `yaml:"normal"`
	Fast             Block   `yaml:"fast"`
	CoinSpeedMul     float64 `yaml:"coin_speed_mul"`
	ScoreRate        float64 `yaml:"score_rate"`
	PlayerY          float64 `yaml:"player_y"`      // fraction of screen height
	PlayerRadius     float64 `yaml:"player_radius"` // fraction of min(lane width, height)
	PickupRadius     float64 `yaml:"pickup_radius"` // multiple of the player radius
	CoinsPerShield   int     `yaml:"coins_per_shield"`
}

// Block describes one obstacle class.
type Block struct {
	HeightMin  float64 `yaml:"height_min"`
	HeightSpan float64 `yaml:"height_span"`
	WidthMul   float64 `yaml:"width_mul"` // fraction of lane width
	SpeedMul   float64 `yaml:"speed_mul"`
}

// MemoryConfig tunes the tile-matching engine.
type MemoryConfig struct {
	Pairs         []int    `yaml:"pairs"` // pairs per level, one entry per level
	LevelTime     float64  `yaml:"level_time"`
	MatchDelay    float64  `yaml:"match_delay"`
	MismatchDelay float64  `yaml:"mismatch_delay"`
	AdvanceDelay  float64  `yaml:"advance_delay"`
	SmallBoard    int      `yaml:"small_board"`
	LargeBoard    int      `yaml:"large_board"`
	Symbols       []string `yaml:"symbols"`
	Filler        string   `yaml:"filler"`
}

// MinesConfig tunes the grid-reveal engine.
type MinesConfig struct {
	Size    int `yaml:"size"`
	Hazards int `yaml:"hazards"`
	Goal    int `yaml:"goal"`
}

// OrbitConfig tunes the target-tracking engine.
type OrbitConfig struct {
	Goal          int     `yaml:"goal"`
	StartSpeed    float64 `yaml:"start_speed"` // rad/s
	SpeedStep     float64 `yaml:"speed_step"`
	MaxSpeed      float64 `yaml:"max_speed"`
	StartWindow   float64 `yaml:"start_window"` // rad
	HitShrink     float64 `yaml:"hit_shrink"`
	HitMinWindow  float64 `yaml:"hit_min_window"`
	MissShrink    float64 `yaml:"miss_shrink"`
	MissMinWindow float64 `yaml:"miss_min_window"`
	MissPenalty   int     `yaml:"miss_penalty"`
}

// TowerConfig tunes the stacking engine. Fractions are of the canvas size.
type TowerConfig struct {
	Goal             int     `yaml:"goal"`
	BaseWidth        float64 `yaml:"base_width"`
	BaseY            float64 `yaml:"base_y"`
	BlockHeight      float64 `yaml:"block_height"`
	TopMargin        float64 `yaml:"top_margin"`
	Speed            Ramp    `yaml:"speed"` // indexed by placed blocks
	SpawnOffset      float64 `yaml:"spawn_offset"`
	BounceLeft       float64 `yaml:"bounce_left"`
	BounceRight      float64 `yaml:"bounce_right"`
	CameraRate       float64 `yaml:"camera_rate"`
	MinOverlap       float64 `yaml:"min_overlap"` // px
	PerfectTolerance float64 `yaml:"perfect_tolerance"`
	PerfectBonus     int     `yaml:"perfect_bonus"`
	BaseHue          float64 `yaml:"base_hue"`
	HueStep          float64 `yaml:"hue_step"`
}

// FireworksConfig tunes the particle engine.
type FireworksConfig struct {
	MaxParticles   int     `yaml:"max_particles"`
	InitialBursts  int     `yaml:"initial_bursts"`
	BurstLife      float64 `yaml:"burst_life"`
	EmitMin        int     `yaml:"emit_min"`
	EmitMax        int     `yaml:"emit_max"`
	AutoBase       float64 `yaml:"auto_base"`
	AutoAmplitude  float64 `yaml:"auto_amplitude"`
	AutoFrequency  float64 `yaml:"auto_frequency"`
	AutoRingChance float64 `yaml:"auto_ring_chance"`
	TapRingChance  float64 `yaml:"tap_ring_chance"`
	SparkleMin     float64 `yaml:"sparkle_min"`
	SparkleChance  float64 `yaml:"sparkle_chance"`
}
