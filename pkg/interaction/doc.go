// Package interaction implements the node side of the MDCS protocol.
//
// The node drives every exchange: it sends one request and waits for the
// matching response before sending the next. Four operations exist:
//
//   - Describe: list the device's attributes and actions
//   - Read: get an attribute value
//   - Write: set an attribute value
//   - Run: execute an action
//
// # Client Usage
//
//	conn, _ := listener.Accept(ctx)
//	client := interaction.NewClient(conn)
//
//	desc, err := client.Describe(ctx)
//	res, err := client.Read(ctx, "memory.total")
//	res, err = client.Write(ctx, "counter", schema, 5)
//	res, err = client.Run(ctx, "ping", nullSchema, nil)
//
// Structured failures (unknown path, missing permission) are returned as
// *FailureError; errors raised on the host are returned as *RemoteError.
//
// A request that times out or is cancelled closes the client, since a
// late response would be taken for the answer to the next request.
package interaction
