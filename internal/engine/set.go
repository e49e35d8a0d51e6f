package engine

import "github.com/Borislavv/go-ash-intersect/model"

// Set returns the distinct elements present in both a and b, in no particular order.
func Set[T comparable](a, b []T, side model.HashSide) (out model.Set[T], err error) {
	hashed, scanned, err := sides(a, b, side)
	if err != nil {
		return nil, err
	}
	if len(hashed) == 0 || len(scanned) == 0 {
		return model.NewSet[T](0), nil
	}
	defer guard(&err)

	lookup := model.NewSet[T](len(hashed))
	for _, v := range hashed {
		lookup.Add(v)
	}

	out = model.NewSet[T](min(len(lookup), len(scanned)))
	for _, v := range scanned {
		if lookup.Has(v) {
			out.Add(v)
		}
	}
	return out, nil
}
