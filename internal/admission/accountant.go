package admission

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/Borislavv/go-ash-intersect/config"
	"github.com/Borislavv/go-ash-intersect/internal/shared/bytes"
	"github.com/Borislavv/go-ash-intersect/model"
)

// accountant implements the declared cost model:
//
//	base(n)  = perElementCost*n + perCollectionOverhead
//	index(b) = ceil(indexExpansionFactor * b)
//	total    = base(a) + base(b) + index(base(hashed side))
//
// All sums saturate at math.MaxUint64; a saturated total never fits.
type accountant struct {
	perElement uint64
	overhead   uint64
	factor     float64
}

func newAccountant(cfg *config.AdmissionCfg) *accountant {
	return &accountant{
		perElement: cfg.PerElementCost,
		overhead:   cfg.PerCollectionOverhead,
		factor:     cfg.IndexExpansionFactor,
	}
}

func (a *accountant) Estimate(sizeA, sizeB uint64, side model.HashSide) model.Estimate {
	est := model.Estimate{
		HashSide: side,
		BaseA:    a.base(sizeA),
		BaseB:    a.base(sizeB),
	}
	if side == model.HashA {
		est.Index = a.index(est.BaseA)
	} else {
		est.Index = a.index(est.BaseB)
	}
	est.Total = addSat(addSat(est.BaseA, est.BaseB), est.Index)
	return est
}

// Admit checks the requested configuration first and only then the alternative,
// so a rejection names the cheapest lever (switching the hashed side) when it helps.
func (a *accountant) Admit(sizeA, sizeB uint64, side model.HashSide, available uint64) model.Outcome {
	requested := a.Estimate(sizeA, sizeB, side)
	if fits(requested, available) {
		return model.Admit(requested, available)
	}

	alt := a.Estimate(sizeA, sizeB, side.Other())
	out := model.Outcome{
		Requested:   requested,
		Alternative: alt,
		Available:   available,
	}

	if fits(alt, available) {
		out.AlternativeFits = true
		out.Suggested = alt.HashSide
		out.Reason = fmt.Sprintf(
			"not enough memory for an index over %s: need %s, available %s; hash %s instead (needs %s)",
			side, bytes.FmtMemExact(requested.Total), bytes.FmtMemExact(available),
			alt.HashSide, bytes.FmtMemExact(alt.Total),
		)
		return out
	}

	out.Reason = fmt.Sprintf(
		"not enough memory for collections A and B and an index over either side: need %s hashing %s or %s hashing %s, available %s; reduce input sizes",
		bytes.FmtMemExact(requested.Total), side, bytes.FmtMemExact(alt.Total), alt.HashSide, bytes.FmtMemExact(available),
	)
	return out
}

func (a *accountant) base(n uint64) uint64 {
	hi, lo := bits.Mul64(a.perElement, n)
	if hi != 0 {
		return math.MaxUint64
	}
	return addSat(lo, a.overhead)
}

func (a *accountant) index(base uint64) uint64 {
	if base == math.MaxUint64 {
		return math.MaxUint64
	}
	cost := math.Ceil(a.factor * float64(base))
	if cost >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(cost)
}

func fits(est model.Estimate, available uint64) bool {
	return est.Total != math.MaxUint64 && est.Total <= available
}

func addSat(x, y uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}
