// Command mdcs-host serves this machine as an MDCS device.
//
// The host connects out to an MDCS node and answers its describe, read,
// write and run requests until the node closes the connection.
//
// Usage:
//
//	mdcs-host [flags]
//
// Flags:
//
//	-config string        Configuration file path
//	-host string          Node host (default "127.0.0.1")
//	-port int             Node plugin port (0 browses via mDNS with -discovery)
//	-discovery            Locate the node via mDNS when no port is given
//	-name string          Device name (default "host-<hostname>")
//	-dial-attempts int    Connection attempts (default 1)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-log-format string    Log format: text, json (default "text")
//	-protocol-log string  Write protocol events to this file
//	-trace                Also write protocol events to the log
//
// Examples:
//
//	# Connect to a node on this machine
//	mdcs-host -port 7001
//
//	# Find the node on the local network
//	mdcs-host -discovery -log-level debug
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mdcs-protocol/mdcs-go/internal/cli"
	"github.com/mdcs-protocol/mdcs-go/pkg/service"
)

type options struct {
	configFile   string
	host         string
	port         int
	discovery    bool
	name         string
	dialAttempts int
	logLevel     string
	logFormat    string
	protocolLog  string
	trace        bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mdcs-host: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opts options
	flag.StringVar(&opts.configFile, "config", "", "Configuration file path")
	flag.StringVar(&opts.host, "host", service.DefaultNodeHost, "Node host")
	flag.IntVar(&opts.port, "port", 0, "Node plugin port (0 browses via mDNS with -discovery)")
	flag.BoolVar(&opts.discovery, "discovery", false, "Locate the node via mDNS when no port is given")
	flag.StringVar(&opts.name, "name", "", "Device name (default \"host-<hostname>\")")
	flag.IntVar(&opts.dialAttempts, "dial-attempts", service.DefaultDialAttempts, "Connection attempts")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.logFormat, "log-format", "text", "Log format: text, json")
	flag.StringVar(&opts.protocolLog, "protocol-log", "", "Write protocol events to this file")
	flag.BoolVar(&opts.trace, "trace", false, "Also write protocol events to the log")
	flag.Parse()

	cfg := DefaultConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = LoadConfig(opts.configFile); err != nil {
			return err
		}
	}
	applyFlags(cfg, &opts)

	logger, err := cli.NewLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	protoLog, err := cli.NewProtocolLogger(cfg.Logging.ProtocolLog, logger, cfg.Logging.Trace)
	if err != nil {
		return err
	}
	defer protoLog.Close()

	device, err := cfg.BuildDevice()
	if err != nil {
		return err
	}

	hostConfig, err := cfg.HostConfig()
	if err != nil {
		return err
	}
	hostConfig.Logger = logger
	hostConfig.ProtocolLogger = protoLog.Sink()

	logger.Info("starting host",
		"device", device.Name(),
		"attributes", device.AttributeCount(),
		"actions", device.ActionCount())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := service.NewHostService(device, hostConfig)
	err = svc.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("node closed the connection")
	return nil
}

// applyFlags lets explicitly set flags override the file.
func applyFlags(cfg *Config, opts *options) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Node.Host = opts.host
		case "port":
			cfg.Node.Port = opts.port
		case "discovery":
			cfg.Node.Discovery = opts.discovery
		case "name":
			cfg.Device.Name = opts.name
		case "dial-attempts":
			cfg.Node.DialAttempts = opts.dialAttempts
		case "log-level":
			cfg.Logging.Level = opts.logLevel
		case "log-format":
			cfg.Logging.Format = opts.logFormat
		case "protocol-log":
			cfg.Logging.ProtocolLog = opts.protocolLog
		case "trace":
			cfg.Logging.Trace = opts.trace
		}
	})
}
