package memory

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// unlimited is the threshold above which cgroup v1 limits mean "no limit".
const unlimited = 1 << 60

// Runtime detects available memory the way a containerized process sees it:
// cgroup v2, then cgroup v1, then /proc/meminfo MemAvailable. The detected figure
// is scaled by the headroom coefficient.
type Runtime struct {
	cgroupRoot string
	procRoot   string
	headroom   float64
}

func NewRuntime(headroom float64) *Runtime {
	return newRuntimeAt("/sys/fs/cgroup", "/proc", headroom)
}

func newRuntimeAt(cgroupRoot, procRoot string, headroom float64) *Runtime {
	if headroom <= 0 || headroom > 1 {
		headroom = 1
	}
	return &Runtime{cgroupRoot: cgroupRoot, procRoot: procRoot, headroom: headroom}
}

func (r *Runtime) Available() (uint64, error) {
	avail, err := r.detect()
	if err != nil {
		return 0, err
	}
	if r.headroom < 1 {
		avail = uint64(math.Floor(float64(avail) * r.headroom))
	}
	return avail, nil
}

func (r *Runtime) detect() (uint64, error) {
	// cgroup v2
	if limit, ok := r.readLimit("memory.max"); ok {
		if used, ok := r.readLimit("memory.current"); ok {
			return sub(limit, used), nil
		}
	}

	// cgroup v1
	if limit, ok := r.readLimit(filepath.Join("memory", "memory.limit_in_bytes")); ok {
		if used, ok := r.readLimit(filepath.Join("memory", "memory.usage_in_bytes")); ok {
			return sub(limit, used), nil
		}
	}

	avail, err := r.memAvailable()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotDetected, err)
	}
	return avail, nil
}

// readLimit reads a single-number cgroup file. "max" and huge values are treated as no limit.
func (r *Runtime) readLimit(name string) (uint64, bool) {
	b, err := os.ReadFile(filepath.Join(r.cgroupRoot, name))
	if err != nil {
		return 0, false
	}
	s := strings.TrimSpace(string(b))
	if s == "" || s == "max" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v > unlimited {
		return 0, false
	}
	return v, true
}

func (r *Runtime) memAvailable() (uint64, error) {
	path := filepath.Join(r.procRoot, "meminfo")
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemAvailable:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			break
		}
		kb, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse MemAvailable in %s: %w", path, err)
		}
		return kb * 1024, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return 0, fmt.Errorf("no MemAvailable line in %s", path)
}

func sub(limit, used uint64) uint64 {
	if used >= limit {
		return 0
	}
	return limit - used
}
