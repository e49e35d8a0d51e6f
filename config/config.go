package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Intersect groups configuration of all subsystems.
// Sub-configs follow the nil == disabled convention unless stated otherwise.
type Intersect struct {
	// Admission configures the memory admission controller.
	// If nil, a NoOp controller admits every request (unbounded mode).
	Admission *AdmissionCfg `yaml:"admission"`

	// Memory configures the available-memory probe. If nil, the runtime probe is used.
	Memory *MemoryCfg `yaml:"memory"`

	// Generator configures random population of the two collections.
	Generator GeneratorCfg `yaml:"generator"`

	// Batch configures parallel execution of independent invocations.
	Batch BatchCfg `yaml:"batch"`

	Telemetry TelemetryCfg `yaml:"telemetry"`

	Server ServerCfg `yaml:"server"`
}

// Default returns a configuration with every tunable at its documented default.
func Default() *Intersect {
	cfg := &Intersect{
		Admission: DefaultAdmission(),
		Memory: &MemoryCfg{
			Source:              MemorySourceRuntime,
			HeadroomCoefficient: 1.0,
		},
		Generator: GeneratorCfg{Range: DefaultGeneratorRange},
		Telemetry: TelemetryCfg{
			LogsInterval:   DefaultLogsInterval,
			MetricsEnabled: true,
		},
		Server: ServerCfg{Addr: DefaultServerAddr},
	}
	cfg.AdjustConfig()
	return cfg
}

// AdjustConfig fills unusable tunables with defaults and derives virtual fields.
// Zero element cost and zero collection overhead are valid settings and are kept;
// their defaults come from Default.
func (cfg *Intersect) AdjustConfig() {
	if cfg.Admission.Enabled() {
		if cfg.Admission.IndexExpansionFactor <= 0 {
			cfg.Admission.IndexExpansionFactor = DefaultIndexExpansionFactor
		}
	}

	if cfg.Memory.Enabled() {
		if cfg.Memory.Source == "" {
			cfg.Memory.Source = MemorySourceRuntime
		}
		if cfg.Memory.HeadroomCoefficient <= 0 || cfg.Memory.HeadroomCoefficient > 1 {
			cfg.Memory.HeadroomCoefficient = 1.0
		}
		cfg.Memory.IsStatic = cfg.Memory.Source == MemorySourceStatic
	}

	if cfg.Generator.Range <= 0 {
		cfg.Generator.Range = DefaultGeneratorRange
	}

	cfg.Batch.EffectiveWorkers = cfg.Batch.Workers
	if cfg.Batch.EffectiveWorkers <= 0 {
		cfg.Batch.EffectiveWorkers = runtime.GOMAXPROCS(0)
	}

	if cfg.Telemetry.LogsInterval <= 0 {
		cfg.Telemetry.LogsInterval = DefaultLogsInterval
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
}

// LoadConfig reads a yaml file. Keys absent from the file keep their defaults.
func LoadConfig(path string) (*Intersect, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	cfg.AdjustConfig()

	return cfg, nil
}
