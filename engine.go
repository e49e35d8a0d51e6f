package ashintersect

import (
	"time"

	"github.com/Borislavv/go-ash-intersect/internal/engine"
	"github.com/Borislavv/go-ash-intersect/model"
)

// Size intersects caller-owned data and times only the engine pass.
// The caller must have admitted the collections before materializing them.
func Size[T comparable](a, b []T, side model.HashSide) (model.SizeResult, error) {
	start := time.Now()
	n, err := engine.Size(a, b, side)
	if err != nil {
		return model.SizeResult{}, err
	}
	return model.SizeResult{Cardinality: n, Elapsed: time.Since(start)}, nil
}

// Set intersects caller-owned data and times only the engine pass.
func Set[T comparable](a, b []T, side model.HashSide) (model.SetResult[T], error) {
	start := time.Now()
	s, err := engine.Set(a, b, side)
	if err != nil {
		return model.SetResult[T]{}, err
	}
	return model.SetResult[T]{Elements: s, Elapsed: time.Since(start)}, nil
}

// SizeBytes is Size for byte-slice elements.
func SizeBytes(a, b [][]byte, side model.HashSide) (model.SizeResult, error) {
	start := time.Now()
	n, err := engine.SizeBytes(a, b, side)
	if err != nil {
		return model.SizeResult{}, err
	}
	return model.SizeResult{Cardinality: n, Elapsed: time.Since(start)}, nil
}

// SetBytes is Set for byte-slice elements. The returned slices alias the inputs.
func SetBytes(a, b [][]byte, side model.HashSide) (model.BytesSetResult, error) {
	start := time.Now()
	out, err := engine.SetBytes(a, b, side)
	if err != nil {
		return model.BytesSetResult{}, err
	}
	return model.BytesSetResult{Elements: out, Elapsed: time.Since(start)}, nil
}
