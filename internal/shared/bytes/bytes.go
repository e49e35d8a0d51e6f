package bytes

import (
	"fmt"
	"math"
)

var units = [...]struct {
	name, sub string
	size      uint64
}{
	{"TB", "GB", 1 << 40},
	{"GB", "MB", 1 << 30},
	{"MB", "KB", 1 << 20},
	{"KB", "B", 1 << 10},
}

// FmtMem renders a byte count as its two most significant units, e.g. "10MB 512KB".
func FmtMem(bytes uint64) string {
	if bytes == math.MaxUint64 {
		return "overflow"
	}
	for _, u := range units {
		if bytes >= u.size {
			return fmt.Sprintf("%d%s %d%s", bytes/u.size, u.name, (bytes%u.size)/(u.size>>10), u.sub)
		}
	}
	return fmt.Sprintf("%dB", bytes)
}

// FmtMemExact appends the exact byte count to FmtMem when the short form rounds.
func FmtMemExact(bytes uint64) string {
	short := FmtMem(bytes)
	if bytes < 1<<10 || bytes == math.MaxUint64 {
		return short
	}
	return fmt.Sprintf("%s (%dB)", short, bytes)
}
