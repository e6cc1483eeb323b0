package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Device errors.
var (
	// ErrDuplicatePath is returned when a path is already taken by an
	// attribute or an action.
	ErrDuplicatePath = errors.New("duplicate path")

	// ErrPathNotFound is returned when removing a path that is not
	// registered in the respective collection.
	ErrPathNotFound = errors.New("path not found")

	// ErrEmptyPath is returned when registering a member without a path.
	ErrEmptyPath = errors.New("empty path")
)

// PathError records a registration failure and the path that caused it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// MemberKind identifies what a path resolves to.
type MemberKind uint8

const (
	// MemberNone means the path is not registered.
	MemberNone MemberKind = iota

	// MemberAttribute means the path names an attribute.
	MemberAttribute

	// MemberAction means the path names an action.
	MemberAction
)

// String returns the member kind name.
func (k MemberKind) String() string {
	switch k {
	case MemberAttribute:
		return "attribute"
	case MemberAction:
		return "action"
	default:
		return "none"
	}
}

// Member is the result of resolving a path. Exactly one of Attribute and
// Action is set unless Kind is MemberNone.
type Member struct {
	Kind      MemberKind
	Attribute Attribute
	Action    Action
}

// Device is the top-level container of attributes and actions.
type Device struct {
	mu sync.RWMutex

	name   string
	config map[string]string

	attributes map[string]Attribute
	actions    map[string]Action
}

// NewDevice creates an empty device.
// An empty name is replaced by a random UUID. config is opaque to the
// device and may be nil.
func NewDevice(name string, config map[string]string) *Device {
	if name == "" {
		name = uuid.NewString()
	}
	if config == nil {
		config = make(map[string]string)
	}
	return &Device{
		name:       name,
		config:     config,
		attributes: make(map[string]Attribute),
		actions:    make(map[string]Action),
	}
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// Config returns a copy of the device configuration.
func (d *Device) Config() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return maps.Clone(d.config)
}

// AddAttribute registers attr under its path.
func (d *Device) AddAttribute(attr Attribute) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if attr.Path() == "" {
		return &PathError{Op: "add attribute", Err: ErrEmptyPath}
	}
	if d.taken(attr.Path()) {
		return &PathError{Op: "add attribute", Path: attr.Path(), Err: ErrDuplicatePath}
	}
	d.attributes[attr.Path()] = attr
	return nil
}

// AddAction registers act under its path.
func (d *Device) AddAction(act Action) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if act.Path() == "" {
		return &PathError{Op: "add action", Err: ErrEmptyPath}
	}
	if d.taken(act.Path()) {
		return &PathError{Op: "add action", Path: act.Path(), Err: ErrDuplicatePath}
	}
	d.actions[act.Path()] = act
	return nil
}

// RemoveAttribute unregisters the attribute at path.
func (d *Device) RemoveAttribute(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.attributes[path]; !ok {
		return &PathError{Op: "remove attribute", Path: path, Err: ErrPathNotFound}
	}
	delete(d.attributes, path)
	return nil
}

// RemoveAction unregisters the action at path.
func (d *Device) RemoveAction(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.actions[path]; !ok {
		return &PathError{Op: "remove action", Path: path, Err: ErrPathNotFound}
	}
	delete(d.actions, path)
	return nil
}

// taken reports whether path is used by any member. Caller holds d.mu.
func (d *Device) taken(path string) bool {
	_, attr := d.attributes[path]
	_, act := d.actions[path]
	return attr || act
}

// Resolve looks path up in the shared namespace.
func (d *Device) Resolve(path string) Member {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if attr, ok := d.attributes[path]; ok {
		return Member{Kind: MemberAttribute, Attribute: attr}
	}
	if act, ok := d.actions[path]; ok {
		return Member{Kind: MemberAction, Action: act}
	}
	return Member{Kind: MemberNone}
}

// Attribute returns the attribute at path, or nil.
func (d *Device) Attribute(path string) Attribute {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.attributes[path]
}

// Action returns the action at path, or nil.
func (d *Device) Action(path string) Action {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.actions[path]
}

// Attributes returns every registered attribute sorted by path.
func (d *Device) Attributes() []Attribute {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Attribute, 0, len(d.attributes))
	for _, path := range slices.Sorted(maps.Keys(d.attributes)) {
		out = append(out, d.attributes[path])
	}
	return out
}

// Actions returns every registered action sorted by path.
func (d *Device) Actions() []Action {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Action, 0, len(d.actions))
	for _, path := range slices.Sorted(maps.Keys(d.actions)) {
		out = append(out, d.actions[path])
	}
	return out
}

// AttributeCount returns the number of registered attributes.
func (d *Device) AttributeCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.attributes)
}

// ActionCount returns the number of registered actions.
func (d *Device) ActionCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.actions)
}
