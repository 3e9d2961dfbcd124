package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"xecgpio/core"
	"xecgpio/regs"
)

// parseWord accepts decimal, 0x-hex and 0-octal register values.
func parseWord(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad 32-bit value %q", s)
	}
	return uint32(v), nil
}

type PortsCmd struct{}

func (cmd *PortsCmd) Run(c *Context) error {
	name := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%-12s %-10s %s\n", "Port", "Girq", "Valid pins")
	for _, p := range c.ctrl.Ports() {
		cfg := p.Config()
		girq := "-"
		if cfg.IntrCapable {
			girq = fmt.Sprintf("GIRQ%d", cfg.GirqID)
		}
		fmt.Printf("%-12s %-10s %08x\n", name(cfg.Name), girq, cfg.ValidPins)
	}
	return nil
}

type GetCmd struct {
	Port string `arg:"" name:"port" help:"Port to read."`
}

func (cmd *GetCmd) Run(c *Context) error {
	p, err := c.port(cmd.Port)
	if err != nil {
		return err
	}
	printPort(p, p.Get())
	return nil
}

type SetCmd struct {
	Port string `arg:"" name:"port" help:"Port to write."`
	Mask string `arg:"" name:"mask" help:"Pin mask, e.g. 0x30."`
}

func (cmd *SetCmd) Run(c *Context) error {
	p, err := c.port(cmd.Port)
	if err != nil {
		return err
	}
	mask, err := parseWord(cmd.Mask)
	if err != nil {
		return err
	}
	p.SetBits(mask)
	return nil
}

type ClearCmd struct {
	Port string `arg:"" name:"port" help:"Port to write."`
	Mask string `arg:"" name:"mask" help:"Pin mask, e.g. 0x30."`
}

func (cmd *ClearCmd) Run(c *Context) error {
	p, err := c.port(cmd.Port)
	if err != nil {
		return err
	}
	mask, err := parseWord(cmd.Mask)
	if err != nil {
		return err
	}
	p.ClearBits(mask)
	return nil
}

type ToggleCmd struct {
	Port string `arg:"" name:"port" help:"Port to write."`
	Mask string `arg:"" name:"mask" help:"Pin mask, e.g. 0x30."`
}

func (cmd *ToggleCmd) Run(c *Context) error {
	p, err := c.port(cmd.Port)
	if err != nil {
		return err
	}
	mask, err := parseWord(cmd.Mask)
	if err != nil {
		return err
	}
	p.ToggleBits(mask)
	return nil
}

type WriteCmd struct {
	Port  string `arg:"" name:"port" help:"Port to write."`
	Mask  string `arg:"" name:"mask" help:"Pin mask to touch."`
	Value string `arg:"" name:"value" help:"Levels for the masked pins."`
}

func (cmd *WriteCmd) Run(c *Context) error {
	p, err := c.port(cmd.Port)
	if err != nil {
		return err
	}
	mask, err := parseWord(cmd.Mask)
	if err != nil {
		return err
	}
	value, err := parseWord(cmd.Value)
	if err != nil {
		return err
	}
	p.SetMasked(mask, value)
	return nil
}

// pinFlagNames maps config keywords to pin flags. "disconnect" stands
// alone: combining it with anything else is rejected in Run.
var pinFlagNames = map[string]core.PinFlags{
	"input":      core.Input,
	"output":     core.Output,
	"low":        core.OutputInitLow,
	"high":       core.OutputInitHigh,
	"pullup":     core.PullUp,
	"pulldown":   core.PullDown,
	"opendrain":  core.OpenDrain,
	"pushpull":   core.PushPull,
	"disconnect": core.Disconnected,
}

type ConfigCmd struct {
	Port  string   `arg:"" name:"port" help:"Port the pin belongs to."`
	Pin   uint8    `arg:"" name:"pin" help:"Pin number within the port (0-31)."`
	Flags []string `arg:"" name:"flags" help:"input|output|low|high|pullup|pulldown|opendrain|pushpull|disconnect"`
}

func (cmd *ConfigCmd) Run(c *Context) error {
	p, err := c.port(cmd.Port)
	if err != nil {
		return err
	}

	var flags core.PinFlags
	for _, f := range cmd.Flags {
		key := strings.ToLower(f)
		v, ok := pinFlagNames[key]
		if !ok {
			return fmt.Errorf("unknown pin flag %q", f)
		}
		if key == "disconnect" && len(cmd.Flags) > 1 {
			return fmt.Errorf("disconnect cannot be combined with other flags")
		}
		flags |= v
	}

	return p.Configure(cmd.Pin, flags)
}

type IrqCmd struct {
	Port    string `arg:"" name:"port" help:"Port the pin belongs to."`
	Pin     uint8  `arg:"" name:"pin" help:"Pin number within the port (0-31)."`
	Mode    string `arg:"" name:"mode" help:"disabled|level|edge"`
	Trigger string `arg:"" name:"trigger" optional:"" default:"low" help:"low|high|both (falling|rising|both for edge)"`
}

func (cmd *IrqCmd) Run(c *Context) error {
	p, err := c.port(cmd.Port)
	if err != nil {
		return err
	}

	var mode core.IntMode
	switch strings.ToLower(cmd.Mode) {
	case "disabled", "off":
		mode = core.IntModeDisabled
	case "level":
		mode = core.IntModeLevel
	case "edge":
		mode = core.IntModeEdge
	default:
		return fmt.Errorf("unknown interrupt mode %q", cmd.Mode)
	}

	var trig core.IntTrigger
	switch strings.ToLower(cmd.Trigger) {
	case "low", "falling":
		trig = core.IntTriggerLow
	case "high", "rising":
		trig = core.IntTriggerHigh
	case "both":
		trig = core.IntTriggerBoth
	default:
		return fmt.Errorf("unknown interrupt trigger %q", cmd.Trigger)
	}

	return p.ConfigureInterrupt(cmd.Pin, mode, trig)
}

// printPort renders a port's 32 pad levels, high pins green, low pins
// plain, pins missing from the valid mask dimmed out.
func printPort(p *core.Port, levels uint32) {
	cfg := p.Config()
	high := color.New(color.FgGreen, color.Bold).SprintFunc()
	hole := color.New(color.Faint).SprintFunc()

	var row, num strings.Builder
	for pin := int(regs.PinsPerPort) - 1; pin >= 0; pin-- {
		if pin%8 == 7 && pin != int(regs.PinsPerPort)-1 {
			row.WriteByte(' ')
			num.WriteByte(' ')
		}
		num.WriteByte('0' + byte(pin%10))
		switch {
		case cfg.ValidPins&(1<<pin) == 0:
			row.WriteString(hole("."))
		case levels&(1<<pin) != 0:
			row.WriteString(high("1"))
		default:
			row.WriteString("0")
		}
	}

	fmt.Printf("%s: %08x\n", cfg.Name, levels&cfg.ValidPins)
	fmt.Printf("  pin   %s\n", num.String())
	fmt.Printf("  level %s\n", row.String())
}
