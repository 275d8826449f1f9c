package runner

import (
	"math"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
)

// Block is an obstacle scrolling down one lane. Y is its vertical center.
type Block struct {
	Lane     int
	Y        float64
	H        float64
	WidthMul float64 // Fraction of the lane width
	SpeedMul float64
	Fast     bool
}

// Rect returns the collision box of the block for the given lane geometry.
func (b Block) Rect(laneW float64) core.RectF {
	cx := (float64(b.Lane) + 0.5) * laneW
	return core.CenteredRectF(cx, b.Y, laneW*b.WidthMul, b.H)
}

// Coin is a pickup scrolling down one lane.
type Coin struct {
	Lane int
	Y    float64
}

// ObstacleManager handles spawning, movement, and removal of blocks and
// coins.
type ObstacleManager struct {
	blocks []Block
	coins  []Coin
	rng    *core.Rand
	cfg    *config.RunnerConfig

	blockTimer float64
	coinTimer  float64
	lastLane   int
}

// NewObstacleManager creates a manager drawing from rng.
func NewObstacleManager(rng *core.Rand, cfg *config.RunnerConfig) *ObstacleManager {
	om := &ObstacleManager{
		blocks: make([]Block, 0, 16),
		coins:  make([]Coin, 0, 16),
		rng:    rng,
		cfg:    cfg,
	}
	om.Reset()
	return om
}

// Reset clears all entities and spawn timers.
func (om *ObstacleManager) Reset() {
	om.blocks = om.blocks[:0]
	om.coins = om.coins[:0]
	om.blockTimer = 0
	om.coinTimer = 0
	om.lastLane = 1
}

// Update runs the spawn timers for run time t, then scrolls everything
// down at speed and culls what left the track.
func (om *ObstacleManager) Update(t, speed, dt float64) {
	om.blockTimer += dt
	if om.blockTimer >= om.cfg.ObstacleInterval.At(t) {
		om.blockTimer = 0
		om.spawnBlock(t)
	}

	om.coinTimer += dt
	if om.coinTimer >= om.cfg.CoinInterval.At(t) {
		om.coinTimer = 0
		om.spawnCoin()
	}

	for i := range om.blocks {
		om.blocks[i].Y += speed * om.blocks[i].SpeedMul * dt
	}
	for i := range om.coins {
		om.coins[i].Y += speed * om.cfg.CoinSpeedMul * dt
	}

	validBlocks := om.blocks[:0]
	for _, b := range om.blocks {
		if b.Y < om.cfg.CullY {
			validBlocks = append(validBlocks, b)
		}
	}
	om.blocks = validBlocks

	validCoins := om.coins[:0]
	for _, c := range om.coins {
		if c.Y < om.cfg.CullY {
			validCoins = append(validCoins, c)
		}
	}
	om.coins = validCoins
}

// pickLane chooses a lane, moving off the previous obstacle's lane with
// LaneShiftChance probability.
func (om *ObstacleManager) pickLane() int {
	lanes := om.cfg.Lanes
	lane := om.rng.Intn(lanes)
	if lanes > 1 && lane == om.lastLane && om.rng.Chance(om.cfg.LaneShiftChance) {
		lane = (lane + 1 + om.rng.Intn(lanes-1)) % lanes
	}
	om.lastLane = lane
	return lane
}

// spawnBlock adds one obstacle above the visible track.
func (om *ObstacleManager) spawnBlock(t float64) {
	lane := om.pickLane()
	fast := om.rng.Chance(om.cfg.FastChance.At(t))

	kind := om.cfg.Normal
	if fast {
		kind = om.cfg.Fast
	}

	om.blocks = append(om.blocks, Block{
		Lane:     lane,
		Y:        om.cfg.ObstacleSpawnY,
		H:        kind.HeightMin + om.rng.Float64()*kind.HeightSpan,
		WidthMul: kind.WidthMul,
		SpeedMul: kind.SpeedMul,
		Fast:     fast,
	})
}

// spawnCoin adds one coin in a uniformly random lane.
func (om *ObstacleManager) spawnCoin() {
	om.coins = append(om.coins, Coin{
		Lane: om.rng.Intn(om.cfg.Lanes),
		Y:    om.cfg.CoinSpawnY,
	})
}

// Blocks returns the current obstacles.
func (om *ObstacleManager) Blocks() []Block {
	return om.blocks
}

// Coins returns the current coins.
func (om *ObstacleManager) Coins() []Coin {
	return om.coins
}

// FirstHit returns the index of the first block whose box overlaps the
// player probe, or -1.
func (om *ObstacleManager) FirstHit(probe core.RectF, laneW float64) int {
	for i, b := range om.blocks {
		if probe.Overlaps(b.Rect(laneW)) {
			return i
		}
	}
	return -1
}

// RemoveBlock drops the block at index i.
func (om *ObstacleManager) RemoveBlock(i int) {
	om.blocks = append(om.blocks[:i], om.blocks[i+1:]...)
}

// Collect removes every coin within radius of (px, py) and returns how many
// were picked up.
func (om *ObstacleManager) Collect(px, py, radius, laneW float64) int {
	n := 0
	kept := om.coins[:0]
	for _, c := range om.coins {
		cx := (float64(c.Lane) + 0.5) * laneW
		if math.Hypot(px-cx, py-c.Y) < radius {
			n++
			continue
		}
		kept = append(kept, c)
	}
	om.coins = kept
	return n
}
