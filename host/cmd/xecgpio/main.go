// xecgpio pokes the XEC parallel I/O controller from a host: over the
// EC debug monitor serial link, through /dev/mem on a bridged setup, or
// against a simulated register bank.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"xecgpio/board"
	"xecgpio/core"
	"xecgpio/host/monitor"
	"xecgpio/host/serial"
	"xecgpio/sim"
	"xecgpio/targets/mec1701"
)

var CLI struct {
	Device string `optional:"" help:"Serial device of the EC debug monitor." default:"/dev/ttyACM0"`
	Baud   int    `optional:"" help:"Baud rate of the monitor link." default:"115200"`
	Sim    bool   `optional:"" help:"Run against a simulated register bank."`
	DevMem bool   `optional:"" name:"devmem" help:"Access registers through /dev/mem."`
	Chip   string `optional:"" help:"Chip description file (.dtb or YAML); default is the built-in MEC1701 table." type:"path"`
	Trace  bool   `optional:"" help:"Trace every register access to stderr."`

	Ports  PortsCmd  `cmd:"" help:"List the controller's ports."`
	Get    GetCmd    `cmd:"" help:"Read the pad levels of a port."`
	Set    SetCmd    `cmd:"" help:"Drive the masked pins high."`
	Clear  ClearCmd  `cmd:"" help:"Drive the masked pins low."`
	Toggle ToggleCmd `cmd:"" help:"Invert the masked pins."`
	Write  WriteCmd  `cmd:"" help:"Masked write to the output register."`
	Config ConfigCmd `cmd:"" help:"Configure one pin's electrical characteristics."`
	Irq    IrqCmd    `cmd:"" help:"Configure one pin's interrupt detection."`
	Watch  WatchCmd  `cmd:"" help:"Live view of a port's pad levels."`
}

// Context carries the controller built for the selected backend into
// the command Run methods.
type Context struct {
	ctrl *core.Controller

	// bank is non-nil when running against the simulator.
	bank *sim.Bank

	closer io.Closer
}

// port resolves a bank by name, listing the valid names on a miss.
func (c *Context) port(name string) (*core.Port, error) {
	if p := c.ctrl.Port(name); p != nil {
		return p, nil
	}
	var names []string
	for _, p := range c.ctrl.Ports() {
		names = append(names, p.Name())
	}
	return nil, fmt.Errorf("unknown port %q (have %s)", name, strings.Join(names, ", "))
}

func (c *Context) Close() {
	if c.closer != nil {
		c.closer.Close()
	}
}

func loadChip() ([]core.PortConfig, error) {
	if CLI.Chip == "" {
		return mec1701.Chip(), nil
	}
	data, err := os.ReadFile(CLI.Chip)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(CLI.Chip, ".dtb") {
		return board.FromDTB(data)
	}
	return board.FromYAML(data)
}

func newContext() (*Context, error) {
	chip, err := loadChip()
	if err != nil {
		return nil, fmt.Errorf("load chip description: %w", err)
	}

	c := &Context{}
	var regio core.RegisterIO

	switch {
	case CLI.Sim:
		c.bank = sim.New(chip)
		c.bank.MirrorInput = true
		regio = c.bank
	case CLI.DevMem:
		devmem, err := openDevMem()
		if err != nil {
			return nil, err
		}
		c.closer = devmem
		regio = devmem
	default:
		cfg := serial.DefaultConfig(CLI.Device)
		cfg.Baud = CLI.Baud
		port, err := serial.Open(cfg)
		if err != nil {
			return nil, err
		}
		client := monitor.NewClient(port)
		c.closer = client
		regio = client
	}

	if CLI.Trace {
		regio = core.NewTraceIO(regio, func(s string) {
			fmt.Fprintln(os.Stderr, s)
		})
	}

	c.ctrl, err = core.NewController(regio, chip)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func main() {
	k, err := kong.New(&CLI)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	c, err := newContext()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer c.Close()

	if err := ctx.Run(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
