package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mdcs-protocol/mdcs-go/pkg/codec"
	"github.com/mdcs-protocol/mdcs-go/pkg/model"
	"github.com/mdcs-protocol/mdcs-go/pkg/wire"
)

// HandlerOption configures a ProtocolHandler.
type HandlerOption func(*ProtocolHandler)

// WithClock sets the clock used for value timestamps.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *ProtocolHandler) {
		if now != nil {
			h.now = now
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *ProtocolHandler) {
		h.logger = logger
	}
}

// ProtocolHandler answers MDCS requests for one device.
type ProtocolHandler struct {
	device *model.Device
	now    func() time.Time
	logger *slog.Logger
}

// NewProtocolHandler creates a new protocol handler for a device.
func NewProtocolHandler(device *model.Device, opts ...HandlerOption) *ProtocolHandler {
	h := &ProtocolHandler{
		device: device,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Device returns the underlying device model.
func (h *ProtocolHandler) Device() *model.Device {
	return h.device
}

// HandleRequest processes a request and returns its response.
//
// A nil response comes with ErrUnknownMessage, ErrInvalidRequest or
// ErrRequestFailed.
func (h *ProtocolHandler) HandleRequest(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	if err := wire.Validate(req); err != nil {
		if errors.Is(err, wire.ErrUnknownMessage) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	switch req.Kind() {
	case wire.KindDescribe:
		return h.handleDescribe(req), nil
	case wire.KindRead:
		return h.handleRead(ctx, req)
	case wire.KindWrite:
		return h.handleWrite(ctx, req)
	case wire.KindRun:
		return h.handleRun(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, req.Message)
	}
}

// handleDescribe lists every attribute and action, sorted by path.
func (h *ProtocolHandler) handleDescribe(req *wire.Request) *wire.Response {
	desc := &wire.DeviceDescription{
		Name:       h.device.Name(),
		Attributes: make([]wire.AttributeInfo, 0, h.device.AttributeCount()),
		Actions:    make([]wire.ActionInfo, 0, h.device.ActionCount()),
	}

	for _, attr := range h.device.Attributes() {
		desc.Attributes = append(desc.Attributes, wire.AttributeInfo{
			Path:   attr.Path(),
			Flags:  attr.Flags().Names(),
			Schema: codec.SchemaText(attr.Schema()),
		})
	}
	for _, act := range h.device.Actions() {
		desc.Actions = append(desc.Actions, wire.ActionInfo{
			Path:         act.Path(),
			InputSchema:  codec.SchemaText(act.InputSchema()),
			OutputSchema: codec.SchemaText(act.OutputSchema()),
		})
	}

	h.debugLog("describe",
		"attributes", len(desc.Attributes),
		"actions", len(desc.Actions))

	return &wire.Response{
		MessageID: req.MessageID,
		Message:   req.Message,
		Device:    desc,
	}
}

func (h *ProtocolHandler) handleRead(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	attr := h.device.Attribute(req.Path)
	if attr == nil {
		return failure(req, wire.FailureAttributeNotFound, ""), nil
	}
	if !attr.Readable() {
		return failure(req, wire.FailureAttributeNotReadable, req.Path), nil
	}

	value, err := attr.Read(ctx)
	if err != nil {
		return nil, requestFailed(req, err)
	}
	readAt := codec.TimestampAt(h.now())

	data, err := codec.Encode(attr.Schema(), value)
	if err != nil {
		return nil, requestFailed(req, err)
	}

	h.debugLog("read", "path", req.Path, "size", len(data))

	return &wire.Response{
		MessageID: req.MessageID,
		Message:   req.Message,
		Value: &wire.Value{
			Bytes: data,
			Time:  readAt,
		},
	}, nil
}

// handleWrite stores the decoded value and echoes the client's bytes.
func (h *ProtocolHandler) handleWrite(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	attr := h.device.Attribute(req.Path)
	if attr == nil {
		return failure(req, wire.FailureAttributeNotFound, ""), nil
	}
	if !attr.Writable() {
		return failure(req, wire.FailureAttributeNotWritable, req.Path), nil
	}

	value, err := codec.Decode(attr.Schema(), req.Data.Value)
	if err != nil {
		return nil, requestFailed(req, err)
	}
	if err := attr.Write(ctx, value); err != nil {
		return nil, requestFailed(req, err)
	}

	h.debugLog("write", "path", req.Path, "size", len(req.Data.Value))

	return &wire.Response{
		MessageID: req.MessageID,
		Message:   req.Message,
		Value: &wire.Value{
			Bytes: req.Data.Value,
			Time:  codec.TimestampAt(h.now()),
		},
	}, nil
}

func (h *ProtocolHandler) handleRun(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	act := h.device.Action(req.Path)
	if act == nil {
		return failure(req, wire.FailureActionNotFound, ""), nil
	}

	input, err := codec.Decode(act.InputSchema(), req.Data.Value)
	if err != nil {
		return nil, requestFailed(req, err)
	}

	start := codec.TimestampAt(h.now())
	output, err := act.Run(ctx, input)
	end := codec.TimestampAt(h.now())
	if err != nil {
		return nil, requestFailed(req, err)
	}

	data, err := codec.Encode(act.OutputSchema(), output)
	if err != nil {
		return nil, requestFailed(req, err)
	}

	h.debugLog("run", "path", req.Path, "duration_ms", end-start)

	return &wire.Response{
		MessageID: req.MessageID,
		Message:   req.Message,
		Value: &wire.Value{
			Bytes: data,
			Start: start,
			End:   end,
		},
	}, nil
}

func failure(req *wire.Request, message, attribute string) *wire.Response {
	return &wire.Response{
		MessageID: req.MessageID,
		Message:   req.Message,
		Failure: &wire.Failure{
			Message:   message,
			Attribute: attribute,
		},
	}
}

func requestFailed(req *wire.Request, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, req.Message, req.Path, err)
}

func (h *ProtocolHandler) debugLog(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, args...)
	}
}
