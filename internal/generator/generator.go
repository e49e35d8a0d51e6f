package generator

import (
	"sync"

	"github.com/Borislavv/go-ash-intersect/config"
	"github.com/brianvoe/gofakeit/v7"
)

// Generator populates collections with random values.
type Generator interface {
	// Ints returns n values drawn uniformly from [0, Range()).
	Ints(n int) []int
	Range() int
}

// Faker is a Generator backed by gofakeit. Safe for concurrent use; calls are serialized
// so that a seeded faker yields a reproducible sequence.
type Faker struct {
	mu         sync.Mutex
	faker      *gofakeit.Faker
	valueRange int
}

// New builds a generator from cfg. A zero seed picks a random one.
func New(cfg config.GeneratorCfg) *Faker {
	valueRange := cfg.Range
	if valueRange <= 0 {
		valueRange = config.DefaultGeneratorRange
	}
	return &Faker{
		faker:      gofakeit.New(cfg.Seed),
		valueRange: valueRange,
	}
}

func (f *Faker) Range() int {
	return f.valueRange
}

func (f *Faker) Ints(n int) []int {
	if n <= 0 {
		return []int{}
	}

	out := make([]int, n)

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range out {
		out[i] = f.faker.IntRange(0, f.valueRange-1)
	}
	return out
}
