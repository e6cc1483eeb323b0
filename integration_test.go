package mdcs_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdcs-protocol/mdcs-go/pkg/codec"
	"github.com/mdcs-protocol/mdcs-go/pkg/discovery"
	"github.com/mdcs-protocol/mdcs-go/pkg/interaction"
	"github.com/mdcs-protocol/mdcs-go/pkg/log"
	"github.com/mdcs-protocol/mdcs-go/pkg/model"
	"github.com/mdcs-protocol/mdcs-go/pkg/service"
	"github.com/mdcs-protocol/mdcs-go/pkg/sysinfo"
	"github.com/mdcs-protocol/mdcs-go/pkg/transport"
)

var (
	intSchema    = codec.MustParseSchema(`"int"`)
	nullSchema   = codec.MustParseSchema(`"null"`)
	stringSchema = codec.MustParseSchema(`"string"`)
)

func createTestDevice(t *testing.T) *model.Device {
	t.Helper()

	meminfo := filepath.Join(t.TempDir(), "meminfo")
	err := os.WriteFile(meminfo, []byte(
		"MemTotal:       2048 kB\nMemFree:         512 kB\nMemAvailable:   1024 kB\n"), 0o600)
	if err != nil {
		t.Fatalf("write meminfo: %v", err)
	}

	device := model.NewDevice("host-e2e", map[string]string{"site": "lab"})
	err = sysinfo.RegisterWithConfig(device, sysinfo.Config{
		MeminfoPath: meminfo,
		Hostname:    func() (string, error) { return "e2e", nil },
	})
	if err != nil {
		t.Fatalf("register sysinfo: %v", err)
	}

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("build device: %v", err)
		}
	}
	must(device.AddAttribute(model.NewStoredAttribute("counter", intSchema, model.FlagReadWrite, 0)))
	must(device.AddAction(model.NewDelegatedAction("ping", nullSchema, stringSchema,
		func(context.Context, any) (any, error) { return "pong", nil })))
	must(device.AddAction(model.NewDelegatedAction("explode", nullSchema, nullSchema,
		func(context.Context, any) (any, error) { return nil, errors.New("boom") })))
	return device
}

// startSession starts a node listener, runs a host against it and returns
// the node's client together with the host's exit channel.
func startSession(t *testing.T, ctx context.Context, device *model.Device, hostLog log.Logger) (*interaction.Client, <-chan error) {
	t.Helper()

	ln, err := transport.Listen("127.0.0.1:0", transport.ConnConfig{})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	cfg := service.DefaultHostConfig()
	cfg.NodePort = ln.Port()
	cfg.ProtocolLogger = hostLog
	svc := service.NewHostService(device, cfg)

	hostDone := make(chan error, 1)
	go func() { hostDone <- svc.Run(ctx) }()

	conn, err := ln.Accept(ctx)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	client := interaction.NewClient(conn)
	client.SetTimeout(5 * time.Second)
	return client, hostDone
}

func waitHost(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("host did not stop")
		return nil
	}
}

// TestE2E_HostSession drives a host over TCP through every message kind.
func TestE2E_HostSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, hostDone := startSession(t, ctx, createTestDevice(t), nil)

	desc, err := client.Describe(ctx)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if desc.Name != "host-e2e" {
		t.Errorf("device name = %q, want host-e2e", desc.Name)
	}
	if len(desc.Attributes) != 6 {
		t.Errorf("attributes = %d, want 6", len(desc.Attributes))
	}
	if len(desc.Actions) != 2 {
		t.Errorf("actions = %d, want 2", len(desc.Actions))
	}

	res, err := client.Read(ctx, sysinfo.PathMemoryUsed)
	if err != nil {
		t.Fatalf("read memory.used: %v", err)
	}
	if res.Value != int64(1024*1024) {
		t.Errorf("memory.used = %v, want %d", res.Value, 1024*1024)
	}

	if _, err := client.Write(ctx, "counter", intSchema, 99); err != nil {
		t.Fatalf("write counter: %v", err)
	}
	res, err = client.Read(ctx, "counter")
	if err != nil {
		t.Fatalf("read counter: %v", err)
	}
	if res.Value != 99 {
		t.Errorf("counter = %v, want 99", res.Value)
	}

	res, err = client.Run(ctx, "ping", nullSchema, nil)
	if err != nil {
		t.Fatalf("run ping: %v", err)
	}
	if res.Value != "pong" {
		t.Errorf("ping = %v, want pong", res.Value)
	}
	if res.End.Before(res.Start) {
		t.Errorf("end %v before start %v", res.End, res.Start)
	}

	_, err = client.Write(ctx, sysinfo.PathMemoryTotal, codec.MustParseSchema(`"long"`), int64(1))
	var failure *interaction.FailureError
	if !errors.As(err, &failure) {
		t.Fatalf("write read-only attribute: got %v, want FailureError", err)
	}
	if failure.Attribute != sysinfo.PathMemoryTotal {
		t.Errorf("failure attribute = %q", failure.Attribute)
	}

	if err := client.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := waitHost(t, hostDone); err != nil {
		t.Errorf("host run: %v", err)
	}
}

// TestE2E_RequestFailure checks that a failing action is reported and the
// connection stays usable.
func TestE2E_RequestFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, hostDone := startSession(t, ctx, createTestDevice(t), nil)

	_, err := client.Run(ctx, "explode", nullSchema, nil)
	var remote *interaction.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("run explode: got %v, want RemoteError", err)
	}

	if _, err := client.Read(ctx, "counter"); err != nil {
		t.Fatalf("read after failure: %v", err)
	}

	_ = client.Close()
	if err := waitHost(t, hostDone); err != nil {
		t.Errorf("host run: %v", err)
	}
}

// TestE2E_Cancel stops a connected host through its context.
func TestE2E_Cancel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, hostDone := startSession(t, ctx, createTestDevice(t), nil)
	defer client.Close()

	if _, err := client.Describe(ctx); err != nil {
		t.Fatalf("describe: %v", err)
	}

	cancel()
	if err := waitHost(t, hostDone); !errors.Is(err, context.Canceled) {
		t.Errorf("host run = %v, want context.Canceled", err)
	}
}

// TestE2E_ProtocolLog records a session and reads it back.
func TestE2E_ProtocolLog(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "host.mlog")
	fileLog, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("file logger: %v", err)
	}

	client, hostDone := startSession(t, ctx, createTestDevice(t), fileLog)
	if _, err := client.Read(ctx, "counter"); err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := client.Run(ctx, "ping", nullSchema, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	_ = client.Close()
	if err := waitHost(t, hostDone); err != nil {
		t.Fatalf("host run: %v", err)
	}
	if err := fileLog.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}

	category := log.CategoryMessage
	reader, err := log.NewFilteredReader(path, log.Filter{Category: &category})
	if err != nil {
		t.Fatalf("reader: %v", err)
	}
	defer reader.Close()

	var messages []string
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if event.Message == nil {
			continue
		}
		if event.LocalRole != log.RoleHost {
			t.Errorf("role = %v, want host", event.LocalRole)
		}
		messages = append(messages, event.Message.Type.String()+" "+event.Message.Message)
	}

	want := []string{"REQUEST read", "RESPONSE read", "REQUEST run", "RESPONSE run"}
	if len(messages) != len(want) {
		t.Fatalf("messages = %v, want %v", messages, want)
	}
	for i := range want {
		if messages[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, messages[i], want[i])
		}
	}
}

// TestE2E_Discovery locates an advertised node via mDNS.
func TestE2E_Discovery(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	advertiser := discovery.NewMDNSAdvertiser(discovery.AdvertiserConfig{})
	defer advertiser.Stop()

	info := &discovery.NodeInfo{Name: "e2e-node", Port: 7431, Version: discovery.ProtocolVersion}
	if err := advertiser.Advertise(ctx, info); err != nil {
		t.Skipf("mDNS not available: %v", err)
	}

	browser := discovery.NewMDNSBrowser(discovery.BrowserConfig{BrowseTimeout: 5 * time.Second})
	defer browser.Stop()

	node, err := browser.FindNode(ctx)
	if errors.Is(err, discovery.ErrNotFound) {
		t.Skip("mDNS multicast not delivered on this host")
	}
	if err != nil {
		t.Fatalf("find node: %v", err)
	}
	if node.Port != info.Port {
		t.Errorf("port = %d, want %d", node.Port, info.Port)
	}
	if node.Name != info.Name {
		t.Errorf("name = %q, want %q", node.Name, info.Name)
	}
}
