package model

import (
	"fmt"
	"strings"
)

// Flags controls which operations the responder permits on an attribute.
type Flags uint8

const (
	// FlagRead allows reading the attribute.
	FlagRead Flags = 1 << iota

	// FlagWrite allows writing the attribute.
	FlagWrite

	// FlagReadWrite is read and write.
	FlagReadWrite = FlagRead | FlagWrite
)

// Flag names as they appear on the wire and in configuration files.
const (
	FlagNameRead  = "READ"
	FlagNameWrite = "WRITE"
)

// CanRead returns true if reading is allowed.
func (f Flags) CanRead() bool { return f&FlagRead != 0 }

// CanWrite returns true if writing is allowed.
func (f Flags) CanWrite() bool { return f&FlagWrite != 0 }

// Names returns the wire names of the set flags, read first.
func (f Flags) Names() []string {
	names := make([]string, 0, 2)
	if f.CanRead() {
		names = append(names, FlagNameRead)
	}
	if f.CanWrite() {
		names = append(names, FlagNameWrite)
	}
	return names
}

// String returns the flags joined by "|", or "-" when none are set.
func (f Flags) String() string {
	if names := f.Names(); len(names) > 0 {
		return strings.Join(names, "|")
	}
	return "-"
}

// ParseFlags converts wire names back into Flags.
// Names are matched case-insensitively.
func ParseFlags(names []string) (Flags, error) {
	var f Flags
	for _, name := range names {
		switch strings.ToUpper(strings.TrimSpace(name)) {
		case FlagNameRead:
			f |= FlagRead
		case FlagNameWrite:
			f |= FlagWrite
		default:
			return 0, fmt.Errorf("unknown flag %q", name)
		}
	}
	return f, nil
}
