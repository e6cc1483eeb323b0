// Package log captures protocol events exchanged between a host and a node.
//
// Protocol capture is separate from operational logging (slog): it records
// every frame and envelope in a machine-readable trace that can be replayed
// with the mdcs-log tool.
//
// # Sinks
//
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())      // console
//	cfg.ProtocolLogger, _ = log.NewFileLogger("host.mlog")       // file
//	cfg.ProtocolLogger = log.NewMultiLogger(console, file)       // both
//
// # Layers
//
//   - Transport: raw frames (FrameEvent)
//   - Wire: decoded requests and responses (MessageEvent)
//   - Service: connection and discovery state (StateChangeEvent)
//
// Errors at any layer are recorded as ErrorEventData.
//
// # File Format
//
// A .mlog file is a plain sequence of CBOR-encoded events with integer
// keys. Files are append-only; a host restarted with the same path keeps
// extending its trace.
package log
