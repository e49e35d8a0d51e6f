package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "ASH_INTERSECT_"

// LoadEnv loads the given .env files (missing files are skipped) and applies
// ASH_INTERSECT_* overrides on top of cfg. Variables already present in the
// process environment win over the files.
func LoadEnv(cfg *Intersect, files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	if v, ok := lookup("PER_ELEMENT_COST"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %sPER_ELEMENT_COST: %w", envPrefix, err)
		}
		cfg.admission().PerElementCost = n
	}
	if v, ok := lookup("PER_COLLECTION_OVERHEAD"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %sPER_COLLECTION_OVERHEAD: %w", envPrefix, err)
		}
		cfg.admission().PerCollectionOverhead = n
	}
	if v, ok := lookup("INDEX_EXPANSION_FACTOR"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse %sINDEX_EXPANSION_FACTOR: %w", envPrefix, err)
		}
		cfg.admission().IndexExpansionFactor = f
	}
	if v, ok := lookup("MEMORY_SOURCE"); ok {
		src := MemorySource(v)
		if src != MemorySourceRuntime && src != MemorySourceStatic {
			return fmt.Errorf("parse %sMEMORY_SOURCE: unknown source %q", envPrefix, v)
		}
		cfg.memory().Source = src
	}
	if v, ok := lookup("MEMORY_STATIC_BYTES"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %sMEMORY_STATIC_BYTES: %w", envPrefix, err)
		}
		cfg.memory().StaticBytes = n
	}
	if v, ok := lookup("GENERATOR_RANGE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sGENERATOR_RANGE: %w", envPrefix, err)
		}
		cfg.Generator.Range = n
	}
	if v, ok := lookup("GENERATOR_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %sGENERATOR_SEED: %w", envPrefix, err)
		}
		cfg.Generator.Seed = n
	}
	if v, ok := lookup("SERVER_ADDR"); ok {
		cfg.Server.Addr = v
	}

	cfg.AdjustConfig()
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// admission returns the admission config, enabling it when an override targets it.
func (cfg *Intersect) admission() *AdmissionCfg {
	if cfg.Admission == nil {
		cfg.Admission = DefaultAdmission()
	}
	return cfg.Admission
}

func (cfg *Intersect) memory() *MemoryCfg {
	if cfg.Memory == nil {
		cfg.Memory = &MemoryCfg{}
	}
	return cfg.Memory
}
