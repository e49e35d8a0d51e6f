package memory

import (
	"errors"

	"github.com/Borislavv/go-ash-intersect/config"
)

var ErrNotDetected = errors.New("available memory not detected")

// Probe reports how many bytes are currently available for a new invocation.
// The admission controller never calls a Probe itself; the caller takes a snapshot
// and passes it in, which keeps admission deterministic.
type Probe interface {
	Available() (uint64, error)
}

// New selects the probe implementation. A nil cfg selects the runtime probe.
func New(cfg *config.MemoryCfg) Probe {
	if !cfg.Enabled() {
		return NewRuntime(1.0)
	}
	if cfg.IsStatic || cfg.Source == config.MemorySourceStatic {
		return NewStatic(cfg.StaticBytes)
	}
	return NewRuntime(cfg.HeadroomCoefficient)
}

// Static always reports the same figure.
type Static struct {
	bytes uint64
}

func NewStatic(bytes uint64) *Static {
	return &Static{bytes: bytes}
}

func (s *Static) Available() (uint64, error) {
	return s.bytes, nil
}
