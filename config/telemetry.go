package config

import "time"

const DefaultLogsInterval = 5 * time.Second

type TelemetryCfg struct {
	// LogsEnabled turns on periodic summary logs of admission and computation counters.
	LogsEnabled bool `yaml:"logs_enabled"`

	// LogsInterval is the period of the summary logs. Example: "5s".
	LogsInterval time.Duration `yaml:"logs_interval"`

	// MetricsEnabled registers prometheus collectors on the intersector's registry.
	MetricsEnabled bool `yaml:"metrics_enabled"`
}
