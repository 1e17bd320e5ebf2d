package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/dxtdz/sicbot/internal/dice Roller

// Sides on every die
const Sides = 6

// Roller produces three-die rolls
type Roller interface {
	// Roll returns three independent uniform picks in [1,6]
	Roll() (int, int, int)
}

// Config for the default roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// defaultRoller implements Roller with a seeded rand.Rand
type defaultRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *defaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &defaultRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll returns three independent uniform picks in [1,6]
func (r *defaultRoller) Roll() (int, int, int) {
	return r.random.Intn(Sides) + 1, r.random.Intn(Sides) + 1, r.random.Intn(Sides) + 1
}
