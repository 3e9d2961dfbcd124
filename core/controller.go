package core

import (
	"fmt"

	"xecgpio/regs"
)

// Controller is the port instance registry: one Port per physical bank
// of a chip, all sharing one register backend. Building the controller
// also turns on the aggregator block enable for every interrupt-capable
// bank, which is the hardware's master switch for forwarding that GIRQ
// to the CPU.
type Controller struct {
	io     RegisterIO
	ports  []*Port
	byName map[string]*Port
	byGirq map[uint8]*Port
}

// NewController instantiates ports for every descriptor in the chip
// table. Descriptors with duplicate names or duplicate GIRQ ids are
// rejected; the per-port aggregator wiring is one-to-one on this family.
func NewController(io RegisterIO, chip []PortConfig) (*Controller, error) {
	c := &Controller{
		io:     io,
		byName: make(map[string]*Port, len(chip)),
		byGirq: make(map[uint8]*Port, len(chip)),
	}

	for _, cfg := range chip {
		if _, dup := c.byName[cfg.Name]; dup {
			return nil, fmt.Errorf("duplicate port name %q", cfg.Name)
		}
		if cfg.IntrCapable {
			if cfg.GirqID < regs.GirqFirst || cfg.GirqID > regs.GirqLast {
				return nil, fmt.Errorf("port %q: girq %d out of range", cfg.Name, cfg.GirqID)
			}
			if _, dup := c.byGirq[cfg.GirqID]; dup {
				return nil, fmt.Errorf("port %q: girq %d already claimed", cfg.Name, cfg.GirqID)
			}
		}

		p := NewPort(cfg, io)
		c.ports = append(c.ports, p)
		c.byName[cfg.Name] = p
		if cfg.IntrCapable {
			c.byGirq[cfg.GirqID] = p

			// Turn on the block enable in the aggregator.
			io.Write32(regs.GirqBase+regs.GirqBlkEnSet, 1<<cfg.GirqID)
		}
	}

	return c, nil
}

// Ports returns the controller's ports in chip-table order.
func (c *Controller) Ports() []*Port { return c.ports }

// Port resolves a bank by name, nil when absent.
func (c *Controller) Port(name string) *Port { return c.byName[name] }

// PortByGirq resolves the bank wired to a GIRQ id, nil when absent.
// Interrupt vector code uses it to route an asserted aggregator line to
// the owning port.
func (c *Controller) PortByGirq(id uint8) *Port { return c.byGirq[id] }

// ServiceGirq dispatches the aggregated interrupt of one GIRQ line.
// Unknown ids are ignored; a spurious vector has nothing to service.
func (c *Controller) ServiceGirq(id uint8) {
	if p := c.byGirq[id]; p != nil {
		p.ServiceInterrupt()
	}
}
