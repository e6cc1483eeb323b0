package sysinfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultMeminfoPath is the Linux memory statistics file.
const DefaultMeminfoPath = "/proc/meminfo"

// ErrMeminfoIncomplete is returned when a required meminfo field is
// missing.
var ErrMeminfoIncomplete = errors.New("meminfo incomplete")

// Memory holds memory statistics in bytes.
type Memory struct {
	Total     int64
	Available int64
	Free      int64
}

// Used returns total minus available memory.
func (m Memory) Used() int64 {
	return m.Total - m.Available
}

// ReadMeminfo reads memory statistics from the file at path.
func ReadMeminfo(path string) (Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return Memory{}, err
	}
	defer f.Close()
	return ParseMeminfo(f)
}

// ParseMeminfo parses the /proc/meminfo format. Values are given in kB
// and converted to bytes. Kernels without MemAvailable fall back to
// MemFree + Buffers + Cached.
func ParseMeminfo(r io.Reader) (Memory, error) {
	fields := make(map[string]int64)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		parts := strings.Fields(rest)
		if len(parts) == 0 {
			continue
		}
		n, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return Memory{}, fmt.Errorf("meminfo %s: %w", key, err)
		}
		if len(parts) > 1 && parts[1] == "kB" {
			n *= 1024
		}
		fields[key] = n
	}
	if err := scanner.Err(); err != nil {
		return Memory{}, err
	}

	var m Memory
	var ok bool
	if m.Total, ok = fields["MemTotal"]; !ok {
		return Memory{}, fmt.Errorf("%w: MemTotal", ErrMeminfoIncomplete)
	}
	if m.Free, ok = fields["MemFree"]; !ok {
		return Memory{}, fmt.Errorf("%w: MemFree", ErrMeminfoIncomplete)
	}
	if m.Available, ok = fields["MemAvailable"]; !ok {
		m.Available = m.Free + fields["Buffers"] + fields["Cached"]
	}
	return m, nil
}
