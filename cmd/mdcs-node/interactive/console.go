// Package interactive provides the node console used to drive a
// connected host.
package interactive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/hamba/avro/v2"

	"github.com/mdcs-protocol/mdcs-go/pkg/codec"
	"github.com/mdcs-protocol/mdcs-go/pkg/interaction"
	"github.com/mdcs-protocol/mdcs-go/pkg/wire"
)

// Session is the request surface of a connected host.
// *interaction.Client implements it.
type Session interface {
	Describe(ctx context.Context) (*wire.DeviceDescription, error)
	Read(ctx context.Context, path string) (*interaction.Result, error)
	Write(ctx context.Context, path string, schema avro.Schema, value any) (*interaction.Result, error)
	Run(ctx context.Context, path string, schema avro.Schema, input any) (*interaction.Result, error)
}

// Console executes node commands against a session.
type Console struct {
	session Session
	out     io.Writer

	// Schemas learned from the last describe.
	attributes map[string]avro.Schema
	actions    map[string]avro.Schema
}

// NewConsole creates a console writing its output to out.
func NewConsole(session Session, out io.Writer) *Console {
	return &Console{
		session: session,
		out:     out,
	}
}

// Run reads commands with readline until quit, EOF or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "node> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	stop := context.AfterFunc(ctx, func() { _ = rl.Close() })
	defer stop()

	c.out = rl.Stdout()
	c.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		}
		if quit := c.Execute(ctx, line); quit {
			return nil
		}
	}
}

// Execute runs one command line. It reports whether the console should
// exit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	cmd, rest, _ := strings.Cut(input, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)

	var err error
	switch cmd {
	case "help", "?":
		c.printHelp()

	case "describe", "d":
		err = c.cmdDescribe(ctx)

	case "read", "r":
		err = c.cmdRead(ctx, rest)

	case "write", "w":
		err = c.cmdWrite(ctx, rest)

	case "run":
		err = c.cmdRun(ctx, rest)

	case "quit", "exit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
MDCS Node Commands:
  describe             - List the host's attributes and actions
  read <path>          - Read an attribute
  write <path> <json>  - Write an attribute (value as JSON)
  run <path> [json]    - Run an action (input as JSON, default null)
  help                 - Show this help
  quit                 - Exit`)
}

func (c *Console) cmdDescribe(ctx context.Context) error {
	desc, err := c.describe(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Device: %s\n", desc.Name)
	fmt.Fprintf(c.out, "Attributes (%d):\n", len(desc.Attributes))
	for _, a := range desc.Attributes {
		fmt.Fprintf(c.out, "  %-24s %-12s %s\n", a.Path, strings.Join(a.Flags, ","), a.Schema)
	}
	fmt.Fprintf(c.out, "Actions (%d):\n", len(desc.Actions))
	for _, a := range desc.Actions {
		fmt.Fprintf(c.out, "  %-24s %s -> %s\n", a.Path, a.InputSchema, a.OutputSchema)
	}
	return nil
}

func (c *Console) cmdRead(ctx context.Context, args string) error {
	path := strings.TrimSpace(args)
	if path == "" {
		return errors.New("usage: read <path>")
	}

	res, err := c.session.Read(ctx, path)
	if err != nil {
		return err
	}
	return c.printValue(path, res, res.Time)
}

func (c *Console) cmdWrite(ctx context.Context, args string) error {
	path, raw, _ := strings.Cut(args, " ")
	raw = strings.TrimSpace(raw)
	if path == "" || raw == "" {
		return errors.New("usage: write <path> <json>")
	}

	schema, err := c.schemaFor(ctx, c.attributeSchemas, path, "attribute")
	if err != nil {
		return err
	}
	value, err := codec.FromJSON(schema, []byte(raw))
	if err != nil {
		return err
	}

	res, err := c.session.Write(ctx, path, schema, value)
	if err != nil {
		return err
	}
	return c.printValue(path, res, res.Time)
}

func (c *Console) cmdRun(ctx context.Context, args string) error {
	path, raw, _ := strings.Cut(args, " ")
	raw = strings.TrimSpace(raw)
	if path == "" {
		return errors.New("usage: run <path> [json]")
	}
	if raw == "" {
		raw = "null"
	}

	schema, err := c.schemaFor(ctx, c.actionSchemas, path, "action")
	if err != nil {
		return err
	}
	input, err := codec.FromJSON(schema, []byte(raw))
	if err != nil {
		return err
	}

	res, err := c.session.Run(ctx, path, schema, input)
	if err != nil {
		return err
	}
	if err := c.printValue(path, res, res.End); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "  took %s\n", res.Duration())
	return nil
}

func (c *Console) describe(ctx context.Context) (*wire.DeviceDescription, error) {
	desc, err := c.session.Describe(ctx)
	if err != nil {
		return nil, err
	}

	c.attributes = make(map[string]avro.Schema, len(desc.Attributes))
	for _, a := range desc.Attributes {
		if s, err := codec.ParseSchema(a.Schema); err == nil {
			c.attributes[a.Path] = s
		}
	}
	c.actions = make(map[string]avro.Schema, len(desc.Actions))
	for _, a := range desc.Actions {
		if s, err := codec.ParseSchema(a.InputSchema); err == nil {
			c.actions[a.Path] = s
		}
	}
	return desc, nil
}

func (c *Console) attributeSchemas() map[string]avro.Schema { return c.attributes }
func (c *Console) actionSchemas() map[string]avro.Schema    { return c.actions }

// schemaFor looks path up in the learned schemas, describing the host
// first when path is unknown.
func (c *Console) schemaFor(ctx context.Context, schemas func() map[string]avro.Schema, path, kind string) (avro.Schema, error) {
	if s, ok := schemas()[path]; ok {
		return s, nil
	}
	if _, err := c.describe(ctx); err != nil {
		return nil, err
	}
	if s, ok := schemas()[path]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown %s %q", kind, path)
}

func (c *Console) printValue(path string, res *interaction.Result, at time.Time) error {
	text, err := json.Marshal(res.Value)
	if err != nil {
		return fmt.Errorf("format value: %w", err)
	}
	stamp := ""
	if !at.IsZero() {
		stamp = "  (" + at.Format(time.RFC3339Nano) + ")"
	}
	fmt.Fprintf(c.out, "%s = %s%s\n", path, text, stamp)
	return nil
}
