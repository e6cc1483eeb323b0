package interaction_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdcs-protocol/mdcs-go/pkg/codec"
	"github.com/mdcs-protocol/mdcs-go/pkg/interaction"
	"github.com/mdcs-protocol/mdcs-go/pkg/model"
	"github.com/mdcs-protocol/mdcs-go/pkg/service"
	"github.com/mdcs-protocol/mdcs-go/pkg/transport"
	"github.com/mdcs-protocol/mdcs-go/pkg/wire"
)

var (
	intSchema    = codec.MustParseSchema(`"int"`)
	nullSchema   = codec.MustParseSchema(`"null"`)
	stringSchema = codec.MustParseSchema(`"string"`)
)

func newHostDevice(t *testing.T) *model.Device {
	t.Helper()
	device := model.NewDevice("host-test", nil)
	require.NoError(t, device.AddAttribute(
		model.NewStoredAttribute("counter", intSchema, model.FlagReadWrite, 0)))
	require.NoError(t, device.AddAttribute(
		model.NewStoredAttribute("version", stringSchema, model.FlagRead, "1.0")))
	require.NoError(t, device.AddAction(
		model.NewDelegatedAction("ping", nullSchema, stringSchema,
			func(context.Context, any) (any, error) { return "pong", nil })))
	require.NoError(t, device.AddAction(
		model.NewDelegatedAction("fail", nullSchema, nullSchema,
			func(context.Context, any) (any, error) { return nil, errors.New("overheated") })))
	return device
}

// connectHost serves device on one end of a pipe and returns a client on
// the other end.
func connectHost(t *testing.T, device *model.Device) *interaction.Client {
	t.Helper()

	hostSide, nodeSide := net.Pipe()
	svc := service.NewHostService(device, service.DefaultHostConfig())

	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(t.Context(), transport.NewConn(hostSide, transport.ConnConfig{}))
	}()

	client := interaction.NewClient(transport.NewConn(nodeSide, transport.ConnConfig{}))
	t.Cleanup(func() {
		_ = client.Close()
		<-done
	})
	return client
}

func TestClientOperations(t *testing.T) {
	client := connectHost(t, newHostDevice(t))
	ctx := t.Context()

	desc, err := client.Describe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "host-test", desc.Name)
	assert.Len(t, desc.Attributes, 2)
	assert.Len(t, desc.Actions, 2)

	res, err := client.Write(ctx, "counter", intSchema, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Value)
	assert.False(t, res.Time.IsZero())

	res, err = client.Read(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, 12, res.Value)
	assert.Equal(t, codec.SchemaText(intSchema), codec.SchemaText(res.Schema))

	res, err = client.Run(ctx, "ping", nullSchema, nil)
	require.NoError(t, err)
	assert.Equal(t, "pong", res.Value)
	assert.False(t, res.Start.IsZero())
	assert.GreaterOrEqual(t, res.Duration(), time.Duration(0))
}

func TestClientFailures(t *testing.T) {
	client := connectHost(t, newHostDevice(t))
	ctx := t.Context()

	_, err := client.Read(ctx, "missing")
	var failure *interaction.FailureError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, wire.FailureAttributeNotFound, failure.Message)

	_, err = client.Write(ctx, "version", stringSchema, "2.0")
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, wire.FailureAttributeNotWritable, failure.Message)
	assert.Equal(t, "version", failure.Attribute)

	_, err = client.Run(ctx, "fail", nullSchema, nil)
	var remote *interaction.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Contains(t, remote.Message, "overheated")

	// The connection survives all of the above.
	_, err = client.Describe(ctx)
	assert.NoError(t, err)
}

func TestClientEncodeError(t *testing.T) {
	client := connectHost(t, newHostDevice(t))

	_, err := client.Write(t.Context(), "counter", intSchema, "twelve")
	assert.ErrorIs(t, err, codec.ErrEncoding)
}

// fakeHost answers every request with respond.
func fakeHost(t *testing.T, respond func(*wire.Request) *wire.Response) *interaction.Client {
	t.Helper()

	hostSide, nodeSide := net.Pipe()
	host := transport.NewConn(hostSide, transport.ConnConfig{})
	go func() {
		defer host.Close()
		for {
			req, _, err := host.ReadRequest()
			if err != nil {
				return
			}
			resp := respond(req)
			if resp == nil {
				continue
			}
			if err := host.WriteResponse(resp); err != nil {
				return
			}
		}
	}()

	client := interaction.NewClient(transport.NewConn(nodeSide, transport.ConnConfig{}))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClientUnexpectedReply(t *testing.T) {
	client := fakeHost(t, func(req *wire.Request) *wire.Response {
		return &wire.Response{MessageID: req.MessageID + 100, Message: req.Message}
	})

	_, err := client.Describe(t.Context())
	assert.ErrorIs(t, err, interaction.ErrUnexpectedReply)

	_, err = client.Describe(t.Context())
	assert.ErrorIs(t, err, interaction.ErrClientClosed)
}

func TestClientTimeout(t *testing.T) {
	client := fakeHost(t, func(*wire.Request) *wire.Response { return nil })
	client.SetTimeout(20 * time.Millisecond)

	_, err := client.Read(t.Context(), "counter")
	assert.ErrorIs(t, err, interaction.ErrRequestTimeout)

	_, err = client.Read(t.Context(), "counter")
	assert.ErrorIs(t, err, interaction.ErrClientClosed)
}

func TestClientContextCancel(t *testing.T) {
	client := fakeHost(t, func(*wire.Request) *wire.Response { return nil })

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Read(ctx, "counter")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientMissingValue(t *testing.T) {
	client := fakeHost(t, func(req *wire.Request) *wire.Response {
		return &wire.Response{MessageID: req.MessageID, Message: req.Message}
	})

	_, err := client.Read(t.Context(), "counter")
	assert.ErrorIs(t, err, interaction.ErrUnexpectedReply)
}
