package config

const (
	DefaultPerElementCost        uint64  = 4
	DefaultPerCollectionOverhead uint64  = 16
	DefaultIndexExpansionFactor  float64 = 1.2
)

// AdmissionCfg holds the declared memory accounting model.
// The defaults are heuristics, not a model of any particular allocator; tune them
// for the element type and runtime actually in use.
type AdmissionCfg struct {
	// PerElementCost is the number of bytes one element occupies in a flat collection.
	PerElementCost uint64 `yaml:"per_element_cost"`

	// PerCollectionOverhead is a fixed number of bytes charged once per collection.
	PerCollectionOverhead uint64 `yaml:"per_collection_overhead"`

	// IndexExpansionFactor is applied to the hashed side's base estimate only.
	// Example: 1.2 -> the index costs 20% more than the flat collection it is built from.
	IndexExpansionFactor float64 `yaml:"index_expansion_factor"`
}

// DefaultAdmission returns the accounting model with every tunable at its default.
func DefaultAdmission() *AdmissionCfg {
	return &AdmissionCfg{
		PerElementCost:        DefaultPerElementCost,
		PerCollectionOverhead: DefaultPerCollectionOverhead,
		IndexExpansionFactor:  DefaultIndexExpansionFactor,
	}
}

func (cfg *AdmissionCfg) Enabled() bool {
	return cfg != nil
}
