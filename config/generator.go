package config

const DefaultGeneratorRange = 1000

type GeneratorCfg struct {
	// Range is the exclusive upper bound of generated values: [0, Range).
	// Smaller ranges produce larger intersections.
	Range int `yaml:"range"`

	// Seed makes generation reproducible. Zero means a random seed.
	Seed uint64 `yaml:"seed"`
}
