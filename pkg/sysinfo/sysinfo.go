package sysinfo

import (
	"context"
	"os"

	"github.com/mdcs-protocol/mdcs-go/pkg/codec"
	"github.com/mdcs-protocol/mdcs-go/pkg/model"
)

// Attribute paths.
const (
	PathMemoryTotal     = "memory.total"
	PathMemoryAvailable = "memory.available"
	PathMemoryUsed      = "memory.used"
	PathMemoryFree      = "memory.free"
	PathHostname        = "hostname"
)

var (
	longSchema   = codec.MustParseSchema(`"long"`)
	stringSchema = codec.MustParseSchema(`"string"`)
)

// Config selects the data sources.
type Config struct {
	// MeminfoPath defaults to DefaultMeminfoPath.
	MeminfoPath string

	// Hostname defaults to os.Hostname.
	Hostname func() (string, error)
}

// Register adds the built-in attributes to device using the default
// configuration.
func Register(device *model.Device) error {
	return RegisterWithConfig(device, Config{})
}

// RegisterWithConfig adds the built-in attributes to device.
func RegisterWithConfig(device *model.Device, config Config) error {
	if config.MeminfoPath == "" {
		config.MeminfoPath = DefaultMeminfoPath
	}
	if config.Hostname == nil {
		config.Hostname = os.Hostname
	}

	memory := func(pick func(Memory) int64) model.ReadFunc {
		return func(context.Context) (any, error) {
			m, err := ReadMeminfo(config.MeminfoPath)
			if err != nil {
				return nil, err
			}
			return pick(m), nil
		}
	}

	attrs := []model.Attribute{
		model.NewDelegatedAttribute(PathMemoryTotal, longSchema, model.FlagRead,
			memory(func(m Memory) int64 { return m.Total }), nil),
		model.NewDelegatedAttribute(PathMemoryAvailable, longSchema, model.FlagRead,
			memory(func(m Memory) int64 { return m.Available }), nil),
		model.NewDelegatedAttribute(PathMemoryUsed, longSchema, model.FlagRead,
			memory(Memory.Used), nil),
		model.NewDelegatedAttribute(PathMemoryFree, longSchema, model.FlagRead,
			memory(func(m Memory) int64 { return m.Free }), nil),
		model.NewDelegatedAttribute(PathHostname, stringSchema, model.FlagRead,
			func(context.Context) (any, error) { return config.Hostname() }, nil),
	}

	for _, attr := range attrs {
		if err := device.AddAttribute(attr); err != nil {
			return err
		}
	}
	return nil
}

// DeviceName returns the default host device name, "host-<hostname>".
func DeviceName() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return ""
	}
	return "host-" + name
}
