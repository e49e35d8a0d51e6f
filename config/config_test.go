package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDefault_Tunables verifies the documented defaults of the accounting model.
func TestDefault_Tunables(t *testing.T) {
	cfg := Default()

	require.True(t, cfg.Admission.Enabled())
	require.Equal(t, uint64(4), cfg.Admission.PerElementCost)
	require.Equal(t, uint64(16), cfg.Admission.PerCollectionOverhead)
	require.Equal(t, 1.2, cfg.Admission.IndexExpansionFactor)
	require.Equal(t, MemorySourceRuntime, cfg.Memory.Source)
	require.False(t, cfg.Memory.IsStatic)
	require.Equal(t, 1000, cfg.Generator.Range)
	require.Greater(t, cfg.Batch.EffectiveWorkers, 0)
	require.Equal(t, ":8080", cfg.Server.Addr)
}

// TestAdjustConfig_NilSubConfigs keeps disabled components disabled.
func TestAdjustConfig_NilSubConfigs(t *testing.T) {
	cfg := &Intersect{}
	cfg.AdjustConfig()

	require.False(t, cfg.Admission.Enabled())
	require.False(t, cfg.Memory.Enabled())
	require.Equal(t, DefaultGeneratorRange, cfg.Generator.Range)
	require.Equal(t, DefaultLogsInterval, cfg.Telemetry.LogsInterval)
}

// TestLoadConfig_Yaml overrides defaults with file values and derives virtual fields.
func TestLoadConfig_Yaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intersect.yaml")
	data := []byte(`
admission:
  per_element_cost: 8
  index_expansion_factor: 1.5
memory:
  source: static
  static_bytes: 1048576
generator:
  range: 50
  seed: 42
batch:
  workers: 3
  rate: 10
telemetry:
  logs_enabled: true
  logs_interval: 2s
server:
  addr: "127.0.0.1:9090"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, uint64(8), cfg.Admission.PerElementCost)
	require.Equal(t, uint64(16), cfg.Admission.PerCollectionOverhead)
	require.Equal(t, 1.5, cfg.Admission.IndexExpansionFactor)
	require.True(t, cfg.Memory.IsStatic)
	require.Equal(t, uint64(1<<20), cfg.Memory.StaticBytes)
	require.Equal(t, 50, cfg.Generator.Range)
	require.Equal(t, uint64(42), cfg.Generator.Seed)
	require.Equal(t, 3, cfg.Batch.EffectiveWorkers)
	require.True(t, cfg.Batch.Paced())
	require.True(t, cfg.Telemetry.LogsEnabled)
	require.Equal(t, 2*time.Second, cfg.Telemetry.LogsInterval)
	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
}

// TestLoadConfig_Missing returns a wrapped stat error.
func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadEnv_Overrides applies .env file values and process variables.
func TestLoadEnv_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ASH_INTERSECT_PER_COLLECTION_OVERHEAD=32\nASH_INTERSECT_MEMORY_SOURCE=static\n"), 0o600))
	t.Setenv("ASH_INTERSECT_MEMORY_STATIC_BYTES", "4096")
	t.Setenv("ASH_INTERSECT_INDEX_EXPANSION_FACTOR", "2")
	t.Setenv("ASH_INTERSECT_SERVER_ADDR", ":9999")
	// godotenv.Load sets variables for the whole process; clean them up afterwards.
	t.Setenv("ASH_INTERSECT_PER_COLLECTION_OVERHEAD", "")
	t.Setenv("ASH_INTERSECT_MEMORY_SOURCE", "")
	require.NoError(t, os.Unsetenv("ASH_INTERSECT_PER_COLLECTION_OVERHEAD"))
	require.NoError(t, os.Unsetenv("ASH_INTERSECT_MEMORY_SOURCE"))

	cfg := Default()
	require.NoError(t, LoadEnv(cfg, path, filepath.Join(t.TempDir(), "missing.env")))

	require.Equal(t, uint64(32), cfg.Admission.PerCollectionOverhead)
	require.Equal(t, 2.0, cfg.Admission.IndexExpansionFactor)
	require.True(t, cfg.Memory.IsStatic)
	require.Equal(t, uint64(4096), cfg.Memory.StaticBytes)
	require.Equal(t, ":9999", cfg.Server.Addr)
}

// TestLoadEnv_Malformed reports the offending variable.
func TestLoadEnv_Malformed(t *testing.T) {
	t.Setenv("ASH_INTERSECT_PER_ELEMENT_COST", "four")

	err := LoadEnv(Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "PER_ELEMENT_COST")
}

// TestLoadConfig_ZeroCosts keeps explicit zero costs instead of restoring defaults.
func TestLoadConfig_ZeroCosts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intersect.yaml")
	data := []byte(`
admission:
  per_element_cost: 0
  per_collection_overhead: 0
  index_expansion_factor: 1.0
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Zero(t, cfg.Admission.PerElementCost)
	require.Zero(t, cfg.Admission.PerCollectionOverhead)
	require.Equal(t, 1.0, cfg.Admission.IndexExpansionFactor)

	cfg.AdjustConfig()
	require.Zero(t, cfg.Admission.PerCollectionOverhead)
}

// TestLoadConfig_AdmissionKey: an absent key keeps admission on, an explicit null turns it off.
func TestLoadConfig_AdmissionKey(t *testing.T) {
	dir := t.TempDir()

	absent := filepath.Join(dir, "absent.yaml")
	require.NoError(t, os.WriteFile(absent, []byte("generator:\n  range: 10\n"), 0o600))
	cfg, err := LoadConfig(absent)
	require.NoError(t, err)
	require.True(t, cfg.Admission.Enabled())
	require.Equal(t, DefaultPerCollectionOverhead, cfg.Admission.PerCollectionOverhead)

	null := filepath.Join(dir, "null.yaml")
	require.NoError(t, os.WriteFile(null, []byte("admission:\n"), 0o600))
	cfg, err = LoadConfig(null)
	require.NoError(t, err)
	require.False(t, cfg.Admission.Enabled())
}

// TestLoadEnv_ZeroOverhead honours an explicit zero and seeds defaults for a nil admission config.
func TestLoadEnv_ZeroOverhead(t *testing.T) {
	t.Setenv("ASH_INTERSECT_PER_COLLECTION_OVERHEAD", "0")

	cfg := Default()
	require.NoError(t, LoadEnv(cfg))
	cfg.AdjustConfig()
	require.Zero(t, cfg.Admission.PerCollectionOverhead)
	require.Equal(t, DefaultPerElementCost, cfg.Admission.PerElementCost)

	cfg = &Intersect{}
	require.NoError(t, LoadEnv(cfg))
	cfg.AdjustConfig()
	require.Zero(t, cfg.Admission.PerCollectionOverhead)
	require.Equal(t, DefaultPerElementCost, cfg.Admission.PerElementCost)
	require.Equal(t, DefaultIndexExpansionFactor, cfg.Admission.IndexExpansionFactor)
}
