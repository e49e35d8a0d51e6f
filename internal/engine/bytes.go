package engine

import (
	"bytes"
	"fmt"

	"github.com/Borislavv/go-ash-intersect/model"
	"github.com/zeebo/xxh3"
)

// digestEntry keeps the first value seen under a digest so hits can be verified.
type digestEntry struct {
	value   []byte
	counted bool
}

// SizeBytes is Size for byte-slice elements, which are not comparable in Go.
// Elements are keyed by their 128-bit xxh3 digest; two different values sharing a
// digest break the hashing contract and fail the call with a ComputationFault.
func SizeBytes(a, b [][]byte, side model.HashSide) (uint64, error) {
	hashed, scanned, err := sides(a, b, side)
	if err != nil {
		return 0, err
	}
	if len(hashed) == 0 || len(scanned) == 0 {
		return 0, nil
	}

	index, err := digestIndex(hashed)
	if err != nil {
		return 0, err
	}

	var n uint64
	for _, v := range scanned {
		e, ok := index[xxh3.Hash128(v)]
		if !ok || e.counted {
			continue
		}
		if !bytes.Equal(e.value, v) {
			return 0, collision(e.value, v)
		}
		e.counted = true
		n++
	}
	return n, nil
}

// SetBytes is Set for byte-slice elements. The returned slices alias the inputs.
func SetBytes(a, b [][]byte, side model.HashSide) ([][]byte, error) {
	hashed, scanned, err := sides(a, b, side)
	if err != nil {
		return nil, err
	}
	if len(hashed) == 0 || len(scanned) == 0 {
		return [][]byte{}, nil
	}

	index, err := digestIndex(hashed)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0)
	for _, v := range scanned {
		e, ok := index[xxh3.Hash128(v)]
		if !ok || e.counted {
			continue
		}
		if !bytes.Equal(e.value, v) {
			return nil, collision(e.value, v)
		}
		e.counted = true
		out = append(out, e.value)
	}
	return out, nil
}

func digestIndex(values [][]byte) (map[xxh3.Uint128]*digestEntry, error) {
	index := make(map[xxh3.Uint128]*digestEntry, len(values))
	for _, v := range values {
		key := xxh3.Hash128(v)
		if e, ok := index[key]; ok {
			if !bytes.Equal(e.value, v) {
				return nil, collision(e.value, v)
			}
			continue
		}
		index[key] = &digestEntry{value: v}
	}
	return index, nil
}

func collision(x, y []byte) error {
	return fmt.Errorf("%w: digest collision between %d-byte and %d-byte values", model.ErrComputationFault, len(x), len(y))
}
