package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/inancgumus/screen"

	"xecgpio/core"
)

type WatchCmd struct {
	Port     string        `arg:"" name:"port" optional:"" help:"Port to watch; omit to watch all ports."`
	Interval time.Duration `optional:"" help:"Poll interval." default:"500ms"`
	Count    int           `optional:"" help:"Number of polls, 0 to run until interrupted." default:"0"`
}

func (cmd *WatchCmd) Run(c *Context) error {
	ports := c.ctrl.Ports()
	if cmd.Port != "" {
		p, err := c.port(cmd.Port)
		if err != nil {
			return err
		}
		ports = []*core.Port{p}
	}

	changed := color.New(color.FgYellow, color.Bold).SprintFunc()
	prev := make(map[string]uint32, len(ports))
	first := true

	for n := 0; cmd.Count == 0 || n < cmd.Count; n++ {
		if !first {
			time.Sleep(cmd.Interval)
		}

		screen.Clear()
		screen.MoveTopLeft()
		fmt.Printf("%s  (interval %s)\n\n", time.Now().Format("15:04:05.000"), cmd.Interval)

		for _, p := range ports {
			levels := p.Get() & p.Config().ValidPins
			printPort(p, levels)
			if old, ok := prev[p.Name()]; ok && old != levels {
				fmt.Printf("  %s %08x -> %08x\n", changed("changed"), old, levels)
			}
			fmt.Println()
			prev[p.Name()] = levels
		}
		first = false
	}
	return nil
}
