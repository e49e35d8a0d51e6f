package model

import "errors"

var (
	// ErrInvalidRequest is returned for negative sizes or unknown enum values.
	// It is always produced before any estimation arithmetic runs.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAdmissionRejected marks a request whose estimated peak memory does not fit.
	// The concrete error is a *RejectionError carrying the diagnosis.
	ErrAdmissionRejected = errors.New("admission rejected")

	// ErrComputationFault marks an element that broke the hashable/equatable contract
	// during the intersection pass. Fatal to the invocation.
	ErrComputationFault = errors.New("computation fault")
)

// RejectionError carries a rejected Outcome through an error return.
type RejectionError struct {
	Outcome Outcome
}

func NewRejectionError(outcome Outcome) *RejectionError {
	return &RejectionError{Outcome: outcome}
}

func (e *RejectionError) Error() string {
	return ErrAdmissionRejected.Error() + ": " + e.Outcome.Reason
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrAdmissionRejected
}
