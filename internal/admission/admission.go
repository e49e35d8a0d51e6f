package admission

import (
	"github.com/Borislavv/go-ash-intersect/config"
	"github.com/Borislavv/go-ash-intersect/model"
)

// Controller decides ahead of allocation whether two collections and the hash index
// over one of them fit into the available memory.
// Implementations are pure: the same inputs always give the same Outcome.
type Controller interface {
	Estimate(sizeA, sizeB uint64, side model.HashSide) model.Estimate
	Admit(sizeA, sizeB uint64, side model.HashSide, available uint64) model.Outcome
}

// NewAdmissionControl returns the accounting controller, or a NoOp one that admits
// everything when cfg is nil.
func NewAdmissionControl(cfg *config.AdmissionCfg) Controller {
	if cfg.Enabled() {
		return newAccountant(cfg)
	} else {
		return newNoOp()
	}
}
