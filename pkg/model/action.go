package model

import (
	"context"

	"github.com/hamba/avro/v2"
)

// Action is an invocable state transition of a device.
type Action interface {
	// Path is the action's unique address within its device.
	Path() string

	// InputSchema describes the value passed to Run.
	InputSchema() avro.Schema

	// OutputSchema describes the value returned by Run.
	OutputSchema() avro.Schema

	// Run executes the action with a decoded input value.
	// The output is not validated here; the caller encodes it against
	// OutputSchema.
	Run(ctx context.Context, input any) (any, error)
}

// ActionFunc handles an action invocation.
// Handlers that take no input may ignore the argument.
type ActionFunc func(ctx context.Context, input any) (any, error)

// DelegatedAction forwards Run to an ActionFunc.
type DelegatedAction struct {
	path   string
	input  avro.Schema
	output avro.Schema
	run    ActionFunc
}

var _ Action = (*DelegatedAction)(nil)

// NewDelegatedAction creates an action backed by run.
func NewDelegatedAction(path string, input, output avro.Schema, run ActionFunc) *DelegatedAction {
	return &DelegatedAction{
		path:   path,
		input:  input,
		output: output,
		run:    run,
	}
}

func (a *DelegatedAction) Path() string              { return a.path }
func (a *DelegatedAction) InputSchema() avro.Schema  { return a.input }
func (a *DelegatedAction) OutputSchema() avro.Schema { return a.output }

// Run calls the handler. A missing handler returns ErrNotImplemented.
func (a *DelegatedAction) Run(ctx context.Context, input any) (any, error) {
	if a.run == nil {
		return nil, ErrNotImplemented
	}
	return a.run(ctx, input)
}
