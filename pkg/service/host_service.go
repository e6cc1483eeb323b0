package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mdcs-protocol/mdcs-go/pkg/connection"
	"github.com/mdcs-protocol/mdcs-go/pkg/discovery"
	"github.com/mdcs-protocol/mdcs-go/pkg/log"
	"github.com/mdcs-protocol/mdcs-go/pkg/model"
	"github.com/mdcs-protocol/mdcs-go/pkg/transport"
	"github.com/mdcs-protocol/mdcs-go/pkg/wire"
)

// HostService connects a device to its node and serves requests.
type HostService struct {
	device  *model.Device
	config  HostConfig
	handler *ProtocolHandler
	limiter *rate.Limiter

	logger         *slog.Logger
	protocolLogger log.Logger

	mu      sync.Mutex
	state   connection.State
	running bool
}

// NewHostService creates a host service for device.
func NewHostService(device *model.Device, config HostConfig) *HostService {
	if config.NodeHost == "" {
		config.NodeHost = DefaultNodeHost
	}
	if config.RequestBurst < 1 {
		config.RequestBurst = DefaultRequestBurst
	}

	s := &HostService{
		device:         device,
		config:         config,
		logger:         config.Logger,
		protocolLogger: log.OrNoop(config.ProtocolLogger),
		handler: NewProtocolHandler(device,
			WithClock(config.Clock),
			WithLogger(config.Logger)),
	}
	if config.MaxRequestRate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(config.MaxRequestRate), config.RequestBurst)
	}
	return s
}

// Handler returns the protocol handler serving the device.
func (s *HostService) Handler() *ProtocolHandler {
	return s.handler
}

// State returns the current connection state.
func (s *HostService) State() connection.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Run locates and dials the node, then serves requests until the node
// disconnects, a fatal error occurs or ctx is cancelled. A clean
// disconnect returns nil.
func (s *HostService) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.setState("", connection.StateClosed, "")
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	address, err := s.resolveNode(ctx)
	if err != nil {
		s.logError("", "resolve node", err)
		return err
	}

	conn, err := s.dial(ctx, address)
	if err != nil {
		s.setState("", connection.StateDisconnected, err.Error())
		s.logError("", "dial "+address, err)
		return err
	}

	return s.Serve(ctx, conn)
}

// resolveNode returns the node's host:port, browsing mDNS when no port
// is configured.
func (s *HostService) resolveNode(ctx context.Context) (string, error) {
	if s.config.NodePort > 0 {
		return net.JoinHostPort(s.config.NodeHost, strconv.Itoa(s.config.NodePort)), nil
	}
	if !s.config.Discovery {
		return "", ErrNoNodeAddress
	}

	s.setState("", connection.StateDiscovering, discovery.ServiceTypeNode)

	browser := s.config.Browser
	if browser == nil {
		mdns := discovery.NewMDNSBrowser(discovery.BrowserConfig{
			BrowseTimeout: s.config.BrowseTimeout,
		})
		defer mdns.Stop()
		browser = mdns
	}

	node, err := browser.FindNode(ctx)
	if err != nil {
		return "", fmt.Errorf("discover node: %w", err)
	}

	s.debugLog("node discovered",
		"instance", node.InstanceName,
		"name", node.Name,
		"address", node.Address())
	return node.Address(), nil
}

func (s *HostService) dial(ctx context.Context, address string) (*transport.Conn, error) {
	s.setState("", connection.StateConnecting, address)

	b := connection.NewBackoffWithConfig(s.config.Backoff)
	return connection.Retry(ctx, s.config.DialAttempts, b, func(ctx context.Context) (*transport.Conn, error) {
		conn, err := transport.Dial(ctx, address, transport.ConnConfig{
			MaxMessageSize: s.config.MaxMessageSize,
			ProtocolLogger: s.config.ProtocolLogger,
			DialTimeout:    s.config.DialTimeout,
		})
		if err != nil {
			s.debugLog("dial failed", "address", address, "attempt", b.Attempts()+1, "error", err)
		}
		return conn, err
	})
}

// Serve handles requests on an established connection, strictly one
// after another. The connection is closed on return.
func (s *HostService) Serve(ctx context.Context, conn transport.RequestConn) error {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	defer conn.Close()

	s.setState(conn.ID(), connection.StateConnected, conn.RemoteAddr())
	s.debugLog("connected to node", "address", conn.RemoteAddr(), "conn", conn.ID())

	for {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
		}

		req, raw, err := conn.ReadRequest()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				s.setState(conn.ID(), connection.StateDisconnected, "node closed connection")
				return nil
			}
			if raw != nil {
				err = fmt.Errorf("decode request (%d bytes): %w", len(raw), err)
			} else {
				err = fmt.Errorf("read request: %w", err)
			}
			s.logError(conn.ID(), "read", err)
			return err
		}

		s.logRequest(conn, req)
		s.debugLog("request", "id", req.MessageID, "message", req.Message, "path", req.Path)

		started := time.Now()
		resp, err := s.handler.HandleRequest(ctx, req)
		if err != nil {
			if !errors.Is(err, ErrRequestFailed) {
				s.logError(conn.ID(), req.Message, err)
				return err
			}
			s.debugLog("request failed", "id", req.MessageID, "error", err)
			resp = &wire.Response{
				MessageID: req.MessageID,
				Message:   req.Message,
				Error:     err.Error(),
			}
		}

		s.logResponse(conn, req, resp, time.Since(started))
		s.debugLog("response", "id", resp.MessageID, "success", resp.IsSuccess())

		if err := conn.WriteResponse(resp); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			err = fmt.Errorf("write response: %w", err)
			s.logError(conn.ID(), "write", err)
			return err
		}
	}
}

func (s *HostService) setState(connID string, state connection.State, reason string) {
	s.mu.Lock()
	old := s.state
	s.state = state
	s.mu.Unlock()

	if old == state {
		return
	}

	s.protocolLogger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Layer:        log.LayerService,
		Category:     log.CategoryState,
		LocalRole:    log.RoleHost,
		DeviceName:   s.device.Name(),
		StateChange: &log.StateChangeEvent{
			Entity:   stateEntity(state),
			OldState: old.String(),
			NewState: state.String(),
			Reason:   reason,
		},
	})
}

func stateEntity(state connection.State) log.StateEntity {
	if state == connection.StateDiscovering {
		return log.StateEntityDiscovery
	}
	return log.StateEntityConnection
}

func (s *HostService) logRequest(conn transport.RequestConn, req *wire.Request) {
	msg := &log.MessageEvent{
		Type:      log.MessageTypeRequest,
		MessageID: req.MessageID,
		Message:   req.Message,
		Path:      req.Path,
	}
	if req.Data != nil {
		msg.ValueSize = len(req.Data.Value)
	}

	s.protocolLogger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: conn.ID(),
		Direction:    log.DirectionIn,
		Layer:        log.LayerWire,
		Category:     log.CategoryMessage,
		LocalRole:    log.RoleHost,
		RemoteAddr:   conn.RemoteAddr(),
		DeviceName:   s.device.Name(),
		Message:      msg,
	})
}

func (s *HostService) logResponse(conn transport.RequestConn, req *wire.Request, resp *wire.Response, elapsed time.Duration) {
	outcome := log.OutcomeSuccess
	var detail string
	switch {
	case resp.Error != "":
		outcome = log.OutcomeError
		detail = resp.Error
	case resp.Failure != nil:
		outcome = log.OutcomeFailure
		detail = resp.Failure.Message
	}

	msg := &log.MessageEvent{
		Type:           log.MessageTypeResponse,
		MessageID:      resp.MessageID,
		Message:        resp.Message,
		Path:           req.Path,
		Outcome:        &outcome,
		Detail:         detail,
		ProcessingTime: &elapsed,
	}
	if resp.Value != nil {
		msg.ValueSize = len(resp.Value.Bytes)
	}

	s.protocolLogger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: conn.ID(),
		Direction:    log.DirectionOut,
		Layer:        log.LayerWire,
		Category:     log.CategoryMessage,
		LocalRole:    log.RoleHost,
		RemoteAddr:   conn.RemoteAddr(),
		DeviceName:   s.device.Name(),
		Message:      msg,
	})
}

func (s *HostService) logError(connID, where string, err error) {
	s.protocolLogger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Layer:        log.LayerService,
		Category:     log.CategoryError,
		LocalRole:    log.RoleHost,
		DeviceName:   s.device.Name(),
		Error: &log.ErrorEventData{
			Layer:   log.LayerService,
			Message: err.Error(),
			Fatal:   true,
			Context: where,
		},
	})
}

func (s *HostService) debugLog(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
