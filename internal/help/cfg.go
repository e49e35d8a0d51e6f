package help

import (
	"time"

	"github.com/Borislavv/go-ash-intersect/config"
)

// Cfg is a deterministic configuration: static memory, seeded generator, metrics on.
func Cfg() *config.Intersect {
	c := &config.Intersect{
		Admission: &config.AdmissionCfg{
			PerElementCost:        config.DefaultPerElementCost,
			PerCollectionOverhead: config.DefaultPerCollectionOverhead,
			IndexExpansionFactor:  config.DefaultIndexExpansionFactor,
		},
		Memory: &config.MemoryCfg{
			Source:      config.MemorySourceStatic,
			StaticBytes: 1024 * 1024 * 1024,
		},
		Generator: config.GeneratorCfg{
			Range: 1000,
			Seed:  42,
		},
		Batch: config.BatchCfg{
			Workers: 4,
		},
		Telemetry: config.TelemetryCfg{
			LogsInterval:   time.Second * 5,
			MetricsEnabled: true,
		},
	}
	c.AdjustConfig()
	return c
}

// StaticMemoryCfg is Cfg with a custom amount of available memory.
func StaticMemoryCfg(available uint64) *config.Intersect {
	c := Cfg()
	c.Memory.StaticBytes = available
	return c
}

// UnboundedCfg disables admission control entirely.
func UnboundedCfg() *config.Intersect {
	c := Cfg()
	c.Admission = nil
	c.Memory.StaticBytes = 0
	return c
}

// PacedCfg runs batches with the given parallelism and start rate.
func PacedCfg(workers, rate int) *config.Intersect {
	c := Cfg()
	c.Batch = config.BatchCfg{Workers: workers, Rate: rate}
	c.AdjustConfig()
	return c
}
