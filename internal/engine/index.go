// Package engine intersects two resident collections in linear time by turning the
// caller-selected side into a hash index and scanning the other side once.
//
// The engine never checks memory: the admission controller must have run before the
// collections were materialized. Every index and result is allocated per call and
// owned by the caller afterwards, so concurrent calls share nothing.
package engine

import (
	"fmt"
	"runtime"

	"github.com/Borislavv/go-ash-intersect/model"
)

// sides orders the inputs as (hashed, scanned).
func sides[S any](a, b S, side model.HashSide) (hashed, scanned S, err error) {
	switch side {
	case model.HashA:
		return a, b, nil
	case model.HashB:
		return b, a, nil
	default:
		return hashed, scanned, fmt.Errorf("%w: unknown hash side %q", model.ErrInvalidRequest, side)
	}
}

// guard converts a runtime panic raised while hashing an element (e.g. an interface
// value holding a slice) into a ComputationFault. Other panics are re-raised.
func guard(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if rerr, ok := r.(runtime.Error); ok {
		*err = fmt.Errorf("%w: %v", model.ErrComputationFault, rerr)
		return
	}
	panic(r)
}
