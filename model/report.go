package model

import "time"

// Report is the caller-owned result of one full invocation.
type Report struct {
	ID          string        `json:"id"`
	Request     Request       `json:"request"`
	Outcome     Outcome       `json:"outcome"`
	Cardinality uint64        `json:"cardinality"`
	Elements    []int         `json:"elements,omitempty"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// SizeResult is the cardinality of an intersection and the time it took.
type SizeResult struct {
	Cardinality uint64
	Elapsed     time.Duration
}

// SetResult is the intersection itself and the time it took.
type SetResult[T comparable] struct {
	Elements Set[T]
	Elapsed  time.Duration
}

// BytesSetResult is SetResult for byte-slice elements. Elements alias the inputs.
type BytesSetResult struct {
	Elements [][]byte
	Elapsed  time.Duration
}
