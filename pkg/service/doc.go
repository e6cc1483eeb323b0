// Package service ties the device model, the wire codec and the framed
// transport together into a running MDCS host.
//
// # ProtocolHandler
//
// ProtocolHandler answers one request at a time against a model.Device:
//
//	describe  -> device description
//	read      -> encoded value and read time
//	write     -> echoed value and write time
//	run       -> encoded output with start and end time
//
// Lookup and permission problems become structured failures in the
// response. Codec and callback errors are returned wrapped in
// ErrRequestFailed. Unknown messages and malformed requests are returned
// as ErrUnknownMessage and ErrInvalidRequest; the caller treats those as
// fatal for the connection.
//
// # HostService
//
// HostService dials the node (directly or after an mDNS browse) and
// serves requests over one connection until the node disconnects:
//
//	device := model.NewDevice("", nil)
//	sysinfo.Register(device)
//
//	config := service.DefaultHostConfig()
//	config.NodePort = 5000
//
//	svc := service.NewHostService(device, config)
//	err := svc.Run(ctx)
package service
