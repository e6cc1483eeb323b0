// Command mdcs-node is a minimal MDCS node for driving a host by hand.
//
// It listens for one host connection, optionally advertising itself via
// mDNS, and then either runs a single command given as arguments or opens
// an interactive console.
//
// Usage:
//
//	mdcs-node [flags] [command args...]
//
// Flags:
//
//	-listen string        Listen address (default "127.0.0.1:0")
//	-name string          Node name advertised via mDNS (default "mdcs-node")
//	-advertise            Advertise _mdcs-node._tcp via mDNS
//	-timeout duration     Per-request timeout (default 30s)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-log-format string    Log format: text, json (default "text")
//	-protocol-log string  Write protocol events to this file
//
// Examples:
//
//	# Wait for a host and open the console
//	mdcs-node -listen 127.0.0.1:7001
//
//	# Read one attribute and exit
//	mdcs-node -listen 127.0.0.1:7001 read memory.total
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mdcs-protocol/mdcs-go/cmd/mdcs-node/interactive"
	"github.com/mdcs-protocol/mdcs-go/internal/cli"
	"github.com/mdcs-protocol/mdcs-go/pkg/discovery"
	"github.com/mdcs-protocol/mdcs-go/pkg/interaction"
	"github.com/mdcs-protocol/mdcs-go/pkg/log"
	"github.com/mdcs-protocol/mdcs-go/pkg/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mdcs-node: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		listenAddr  = flag.String("listen", "127.0.0.1:0", "Listen address")
		name        = flag.String("name", "mdcs-node", "Node name advertised via mDNS")
		advertise   = flag.Bool("advertise", false, "Advertise _mdcs-node._tcp via mDNS")
		timeout     = flag.Duration("timeout", interaction.DefaultTimeout, "Per-request timeout")
		logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn, error")
		logFormat   = flag.String("log-format", "text", "Log format: text, json")
		protocolLog = flag.String("protocol-log", "", "Write protocol events to this file")
	)
	flag.Parse()

	logger, err := cli.NewLogger(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		return err
	}

	protoLog, err := cli.NewProtocolLogger(*protocolLog, nil, false)
	if err != nil {
		return err
	}
	defer protoLog.Close()

	connConfig := transport.ConnConfig{}
	if sink := protoLog.Sink(); sink != nil {
		connConfig.ProtocolLogger = nodeLogger{sink}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := transport.Listen(*listenAddr, connConfig)
	if err != nil {
		return err
	}
	defer ln.Close()

	// Hosts and scripts parse this line.
	fmt.Printf("LISTENING %s\n", ln.Addr())

	if *advertise {
		adv := discovery.NewMDNSAdvertiser(discovery.AdvertiserConfig{})
		if err := adv.Advertise(ctx, &discovery.NodeInfo{
			Name:    *name,
			Port:    uint16(ln.Port()),
			Version: discovery.ProtocolVersion,
		}); err != nil {
			return err
		}
		defer adv.Stop()
		logger.Info("advertising", "service", discovery.ServiceTypeNode, "name", *name)
	}

	conn, err := ln.Accept(ctx)
	if err != nil {
		return err
	}
	logger.Info("host connected", "remote", conn.RemoteAddr(), "conn_id", conn.ID())

	client := interaction.NewClient(conn)
	client.SetTimeout(*timeout)
	defer client.Close()

	console := interactive.NewConsole(client, os.Stdout)
	if args := flag.Args(); len(args) > 0 {
		console.Execute(ctx, strings.Join(args, " "))
		return nil
	}
	return console.Run(ctx)
}

// nodeLogger tags events with the node role.
type nodeLogger struct {
	next log.Logger
}

func (l nodeLogger) Log(event log.Event) {
	event.LocalRole = log.RoleNode
	l.next.Log(event)
}
