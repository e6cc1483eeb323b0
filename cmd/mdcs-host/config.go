package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mdcs-protocol/mdcs-go/pkg/codec"
	"github.com/mdcs-protocol/mdcs-go/pkg/model"
	"github.com/mdcs-protocol/mdcs-go/pkg/service"
	"github.com/mdcs-protocol/mdcs-go/pkg/sysinfo"
)

// Config is the host configuration file.
type Config struct {
	Device  DeviceConfig  `yaml:"device"`
	Node    NodeConfig    `yaml:"node"`
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

// DeviceConfig describes the served device.
type DeviceConfig struct {
	// Name defaults to "host-<hostname>".
	Name string `yaml:"name"`

	// Config is passed through to the device unchanged.
	Config map[string]string `yaml:"config"`

	// Builtin registers the memory and hostname attributes. Defaults to true.
	Builtin *bool `yaml:"builtin"`

	Attributes []AttributeConfig `yaml:"attributes"`
}

// AttributeConfig declares a stored attribute.
type AttributeConfig struct {
	Path  string   `yaml:"path"`
	Flags []string `yaml:"flags"`

	// Schema is an Avro schema, either a primitive name or a mapping.
	Schema any `yaml:"schema"`

	// Value is the initial value, shaped like its JSON form.
	Value any `yaml:"value"`
}

// NodeConfig locates the node.
type NodeConfig struct {
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	Discovery     bool   `yaml:"discovery"`
	DialAttempts  int    `yaml:"dial_attempts"`
	DialTimeout   string `yaml:"dial_timeout"`
	BrowseTimeout string `yaml:"browse_timeout"`
}

// LimitsConfig bounds the request stream.
type LimitsConfig struct {
	MaxRequestRate float64 `yaml:"max_request_rate"`
	RequestBurst   int     `yaml:"request_burst"`
	MaxMessageSize uint32  `yaml:"max_message_size"`
}

// LoggingConfig selects log output.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	ProtocolLog string `yaml:"protocol_log"`
	Trace       bool   `yaml:"trace"`
}

// ConfigError describes a configuration problem.
type ConfigError struct {
	File    string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// DefaultConfig returns the configuration used without a file.
func DefaultConfig() *Config {
	return &Config{
		Node: NodeConfig{
			Host:         service.DefaultNodeHost,
			DialAttempts: service.DefaultDialAttempts,
		},
		Limits: LimitsConfig{
			RequestBurst: service.DefaultRequestBurst,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ParseConfig parses YAML on top of the defaults. Unknown keys are
// rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Message: "failed to parse YAML", Cause: err}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{File: path, Message: "failed to read file", Cause: err}
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.File = path
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Node.Port < 0 || c.Node.Port > 65535 {
		return &ConfigError{Message: fmt.Sprintf("node port %d out of range", c.Node.Port)}
	}
	if c.Node.DialAttempts < 0 {
		return &ConfigError{Message: "dial_attempts must not be negative"}
	}
	if c.Limits.MaxRequestRate < 0 {
		return &ConfigError{Message: "max_request_rate must not be negative"}
	}
	seen := make(map[string]bool, len(c.Device.Attributes))
	for i, a := range c.Device.Attributes {
		if a.Path == "" {
			return &ConfigError{Message: fmt.Sprintf("attribute %d: path is required", i)}
		}
		if seen[a.Path] {
			return &ConfigError{Message: fmt.Sprintf("attribute %q declared twice", a.Path)}
		}
		seen[a.Path] = true
		if a.Schema == nil {
			return &ConfigError{Message: fmt.Sprintf("attribute %q: schema is required", a.Path)}
		}
	}
	return nil
}

// BuiltinEnabled reports whether the built-in attributes are registered.
func (c *Config) BuiltinEnabled() bool {
	return c.Device.Builtin == nil || *c.Device.Builtin
}

// HostConfig converts the file settings into a service configuration.
func (c *Config) HostConfig() (service.HostConfig, error) {
	hc := service.DefaultHostConfig()
	if c.Node.Host != "" {
		hc.NodeHost = c.Node.Host
	}
	hc.NodePort = c.Node.Port
	hc.Discovery = c.Node.Discovery
	if c.Node.DialAttempts > 0 {
		hc.DialAttempts = c.Node.DialAttempts
	}

	var err error
	if hc.DialTimeout, err = parseDuration("dial_timeout", c.Node.DialTimeout, hc.DialTimeout); err != nil {
		return hc, err
	}
	if hc.BrowseTimeout, err = parseDuration("browse_timeout", c.Node.BrowseTimeout, hc.BrowseTimeout); err != nil {
		return hc, err
	}

	hc.MaxRequestRate = c.Limits.MaxRequestRate
	if c.Limits.RequestBurst > 0 {
		hc.RequestBurst = c.Limits.RequestBurst
	}
	hc.MaxMessageSize = c.Limits.MaxMessageSize
	return hc, nil
}

func parseDuration(key, value string, def time.Duration) (time.Duration, error) {
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, &ConfigError{Message: "invalid " + key, Cause: err}
	}
	if d <= 0 {
		return 0, &ConfigError{Message: key + " must be positive"}
	}
	return d, nil
}

// BuildDevice creates the device described by the configuration.
func (c *Config) BuildDevice() (*model.Device, error) {
	return c.buildDevice(sysinfo.Config{})
}

func (c *Config) buildDevice(sys sysinfo.Config) (*model.Device, error) {
	name := c.Device.Name
	if name == "" {
		name = sysinfo.DeviceName()
	}
	device := model.NewDevice(name, c.Device.Config)

	if c.BuiltinEnabled() {
		if err := sysinfo.RegisterWithConfig(device, sys); err != nil {
			return nil, err
		}
	}

	for _, ac := range c.Device.Attributes {
		attr, err := ac.build()
		if err != nil {
			return nil, err
		}
		if err := device.AddAttribute(attr); err != nil {
			return nil, err
		}
	}
	return device, nil
}

func (a AttributeConfig) build() (*model.StoredAttribute, error) {
	flags, err := model.ParseFlags(a.Flags)
	if err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("attribute %q", a.Path), Cause: err}
	}

	schemaText, err := schemaJSON(a.Schema)
	if err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("attribute %q: schema", a.Path), Cause: err}
	}
	schema, err := codec.ParseSchema(schemaText)
	if err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("attribute %q", a.Path), Cause: err}
	}

	valueJSON, err := json.Marshal(a.Value)
	if err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("attribute %q: value", a.Path), Cause: err}
	}
	value, err := codec.FromJSON(schema, valueJSON)
	if err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("attribute %q: value", a.Path), Cause: err}
	}

	return model.NewStoredAttribute(a.Path, schema, flags, value), nil
}

// schemaJSON renders a YAML schema as JSON text. A bare string is a type
// name unless it already holds JSON.
func schemaJSON(schema any) (string, error) {
	if s, ok := schema.(string); ok {
		trimmed := strings.TrimSpace(s)
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, `"`) {
			return trimmed, nil
		}
		schema = trimmed
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
