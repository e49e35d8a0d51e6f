package config

type MemorySource string

const (
	// MemorySourceRuntime reads cgroup limits and /proc/meminfo.
	MemorySourceRuntime MemorySource = "runtime"

	// MemorySourceStatic reports MemoryCfg.StaticBytes.
	MemorySourceStatic MemorySource = "static"
)

type MemoryCfg struct {
	// Source selects the probe implementation: "runtime" or "static".
	Source MemorySource `yaml:"source"`

	// StaticBytes is the figure reported by the static probe.
	StaticBytes uint64 `yaml:"static_bytes"`

	// HeadroomCoefficient scales the detected figure, leaving room for the rest of the process.
	// Example: 0.9 -> only 90% of the detected available memory is offered to admission.
	HeadroomCoefficient float64 `yaml:"headroom_coefficient"`

	// IsStatic is derived from Source during initialization. Not read from YAML.
	IsStatic bool // virtual: computed during init
}

func (cfg *MemoryCfg) Enabled() bool {
	return cfg != nil
}
