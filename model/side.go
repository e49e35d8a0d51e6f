package model

import (
	"fmt"
	"strings"
)

// HashSide selects which of the two collections is converted into the lookup index.
type HashSide string

const (
	HashA HashSide = "A"
	HashB HashSide = "B"
)

// Other returns the opposite side. Unknown values are returned unchanged.
func (s HashSide) Other() HashSide {
	switch s {
	case HashA:
		return HashB
	case HashB:
		return HashA
	default:
		return s
	}
}

func (s HashSide) Valid() bool {
	return s == HashA || s == HashB
}

func (s HashSide) String() string {
	return string(s)
}

// ParseHashSide accepts "A", "b", "hash_a", "HashB" and the like.
func ParseHashSide(v string) (HashSide, error) {
	norm := strings.ToUpper(strings.TrimSpace(v))
	norm = strings.TrimPrefix(norm, "HASH_")
	norm = strings.TrimPrefix(norm, "HASH")
	switch HashSide(norm) {
	case HashA:
		return HashA, nil
	case HashB:
		return HashB, nil
	}
	return "", fmt.Errorf("%w: unknown hash side %q", ErrInvalidRequest, v)
}

// UnmarshalText leaves an empty value unset so that optional fields round-trip.
func (s *HashSide) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = ""
		return nil
	}
	side, err := ParseHashSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Mode selects between the cardinality-only and the element-set computation.
type Mode string

const (
	ModeSize Mode = "size"
	ModeSet  Mode = "set"
)

func (m Mode) Valid() bool {
	return m == "" || m == ModeSize || m == ModeSet
}

// OrDefault maps the empty mode to ModeSize.
func (m Mode) OrDefault() Mode {
	if m == "" {
		return ModeSize
	}
	return m
}
