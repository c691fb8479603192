package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "voxc"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> <input> [<output>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> <input> [<output>]
       %[1]s -h|--help
       %[1]s -v|--version

Compiler for the dataflow scripting language, turning scripts into
compiled game files for the block-based voxel sandbox engine.

The <command> can be one of:
       build                     Compile a script into a game file.
       load                      Read an existing game file and
                                 re-emit it, optionally converting
                                 between encodings.
       generate                  Compile a script and render it as a
                                 human-readable (debug) dump.

If <output> is omitted, the result is written to standard output.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Valid flag options for the <build>, <load> and <generate> commands are:
       --encoding <enc>          Output encoding: zlib, raw, or debug
                                 (default raw for build and load,
                                 debug for generate).

Valid flag options for the <load> command are:
       --decoding <enc>          Input encoding: zlib or raw
                                 (default raw).
`, binName)
)

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	Encoding string `flag:"encoding"`
	Decoding string `flag:"decoding"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", c.args[0])
	}

	if len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: an input path must be provided", cmdName)
	}
	if len(c.args[1:]) > 2 {
		return fmt.Errorf("%s: too many arguments", cmdName)
	}

	if cmdName != "load" && c.flags["decoding"] {
		return fmt.Errorf("%s: invalid flag 'decoding'", cmdName)
	}

	switch c.Encoding {
	case "", "zlib", "raw", "debug":
	default:
		return fmt.Errorf("invalid --encoding: %s", c.Encoding)
	}
	switch c.Decoding {
	case "", "zlib", "raw":
	default:
		return fmt.Errorf("invalid --decoding: %s", c.Decoding)
	}

	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// each command takes care of printing its own diagnostic
		return mainer.Failure
	}
	return mainer.Success
}

// valid commands are those that take a context, a Stdio, and a slice of
// strings as input, and return an error as output.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
