package model

// Estimate is the declared peak memory footprint of one hash-side configuration.
// All values are bytes; the arithmetic saturates at math.MaxUint64.
type Estimate struct {
	HashSide HashSide `json:"hash_side"`
	BaseA    uint64   `json:"base_a"`
	BaseB    uint64   `json:"base_b"`
	Index    uint64   `json:"index"`
	Total    uint64   `json:"total"`
}

// Outcome is the result of an admission check.
// Suggested is set only when AlternativeFits is true.
type Outcome struct {
	Admitted        bool     `json:"admitted"`
	Reason          string   `json:"reason,omitempty"`
	AlternativeFits bool     `json:"alternative_fits"`
	Suggested       HashSide `json:"suggested,omitempty"`
	Requested       Estimate `json:"requested"`
	Alternative     Estimate `json:"alternative"`
	Available       uint64   `json:"available"`
}

// Admit builds an admitted outcome.
func Admit(requested Estimate, available uint64) Outcome {
	return Outcome{Admitted: true, Requested: requested, Available: available}
}

// Err returns nil for an admitted outcome and a *RejectionError otherwise.
func (o Outcome) Err() error {
	if o.Admitted {
		return nil
	}
	return NewRejectionError(o)
}
