package config

type BatchCfg struct {
	// Workers bounds how many invocations run in parallel. Zero or negative means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Rate paces invocation starts per second. Zero means unpaced.
	Rate int `yaml:"rate"`

	// EffectiveWorkers is derived from Workers during initialization. Not read from YAML.
	EffectiveWorkers int // virtual: computed during init
}

func (cfg BatchCfg) Paced() bool {
	return cfg.Rate > 0
}
