package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Request describes one invocation: how many elements to generate per side,
// which side to hash and what to compute.
type Request struct {
	SizeA    int64    `json:"size_a" yaml:"size_a" validate:"gte=0"`
	SizeB    int64    `json:"size_b" yaml:"size_b" validate:"gte=0"`
	HashSide HashSide `json:"hash_side" yaml:"hash_side" validate:"oneof=A B"`
	Mode     Mode     `json:"mode,omitempty" yaml:"mode" validate:"omitempty,oneof=size set"`
}

// Validate reports malformed input wrapped with ErrInvalidRequest.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", f.Field(), f.Tag(), f.Param(), f.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}
