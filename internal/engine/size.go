package engine

import "github.com/Borislavv/go-ash-intersect/model"

// Size returns the number of distinct elements present in both a and b.
// The result set is never materialized: the index maps each hashed element to a
// counted flag, so a value repeated on the scanned side is counted once.
func Size[T comparable](a, b []T, side model.HashSide) (n uint64, err error) {
	hashed, scanned, err := sides(a, b, side)
	if err != nil {
		return 0, err
	}
	if len(hashed) == 0 || len(scanned) == 0 {
		return 0, nil
	}
	defer guard(&err)

	counted := make(map[T]bool, len(hashed))
	for _, v := range hashed {
		counted[v] = false
	}

	for _, v := range scanned {
		if done, ok := counted[v]; ok && !done {
			counted[v] = true
			n++
		}
	}
	return n, nil
}
