// Package board builds port descriptor tables from board descriptions.
// Firmware hands us a flattened device tree blob; development and
// simulation setups use a YAML chip description instead. Both produce
// the same core.PortConfig slice, ordered by port index.
package board

import (
	"fmt"
	"sort"
	"strings"

	"github.com/platinasystems/fdt"
	"gopkg.in/yaml.v3"

	"xecgpio/core"
	"xecgpio/regs"
)

// FromDTB parses a flattened device tree and collects every node that
// carries a gpio-controller property. Each such node needs:
//
//	reg        = <ctrl-base size>  address of the bank's control words
//	port-id    = <n>               bank index, selects the parallel regs
//	valid-pins = <bitmap>          implemented pins
//	girq       = <id>              aggregator block; omit when the bank
//	                               has no interrupt wiring
//	label      = "name"            optional, defaults to the node name
func FromDTB(data []byte) ([]core.PortConfig, error) {
	t := &fdt.Tree{}
	if err := t.Parse(data); err != nil {
		return nil, fmt.Errorf("parse dtb: %w", err)
	}
	if t.RootNode == nil {
		return nil, fmt.Errorf("parse dtb: no root node")
	}

	var (
		ports []core.PortConfig
		perr  error
	)
	t.EachProperty("gpio-controller", "", func(n *fdt.Node, _ string, _ string) {
		if perr != nil {
			return
		}
		cfg, err := portFromNode(t, n)
		if err != nil {
			perr = fmt.Errorf("node %s: %w", n.Name, err)
			return
		}
		ports = append(ports, cfg)
	})
	if perr != nil {
		return nil, perr
	}

	return finish(ports)
}

func portFromNode(t *fdt.Tree, n *fdt.Node) (core.PortConfig, error) {
	var cfg core.PortConfig

	reg, ok := n.Properties["reg"]
	if !ok || len(reg) < 4 {
		return cfg, fmt.Errorf("missing reg property")
	}
	cfg.CtrlBase = uintptr(t.PropUint32(reg))

	id, ok := n.Properties["port-id"]
	if !ok || len(id) < 4 {
		return cfg, fmt.Errorf("missing port-id property")
	}
	port := int(t.PropUint32(id))
	if port < 0 || port >= regs.NumPorts {
		return cfg, fmt.Errorf("port-id %d out of range", port)
	}
	cfg.InAddr = regs.PortInAddr(port)
	cfg.OutAddr = regs.PortOutAddr(port)

	valid, ok := n.Properties["valid-pins"]
	if !ok || len(valid) < 4 {
		return cfg, fmt.Errorf("missing valid-pins property")
	}
	cfg.ValidPins = t.PropUint32(valid)

	if girq, ok := n.Properties["girq"]; ok && len(girq) >= 4 {
		cfg.GirqID = uint8(t.PropUint32(girq))
		cfg.IntrCapable = true
	}

	if label, ok := n.Properties["label"]; ok {
		cfg.Name = t.PropString(label)
	} else {
		// Strip the unit address from the node name.
		cfg.Name, _, _ = strings.Cut(n.Name, "@")
	}

	return cfg, nil
}

// yamlChip mirrors the YAML chip description layout.
type yamlChip struct {
	Ports []yamlPort `yaml:"ports"`
}

type yamlPort struct {
	Name      string `yaml:"name"`
	Port      int    `yaml:"port"`
	ValidPins uint32 `yaml:"valid-pins"`
	Girq      *uint8 `yaml:"girq"`
}

// FromYAML builds a port table from a YAML chip description:
//
//	ports:
//	  - name: gpio000_036
//	    port: 0
//	    valid-pins: 0x7fffff9d
//	    girq: 11
//
// Control word and parallel register addresses derive from the port
// index; a port without a girq entry has no interrupt capability.
func FromYAML(data []byte) ([]core.PortConfig, error) {
	var chip yamlChip
	if err := yaml.Unmarshal(data, &chip); err != nil {
		return nil, fmt.Errorf("parse chip description: %w", err)
	}
	if len(chip.Ports) == 0 {
		return nil, fmt.Errorf("chip description has no ports")
	}

	ports := make([]core.PortConfig, 0, len(chip.Ports))
	for _, yp := range chip.Ports {
		if yp.Name == "" {
			return nil, fmt.Errorf("port %d: missing name", yp.Port)
		}
		if yp.Port < 0 || yp.Port >= regs.NumPorts {
			return nil, fmt.Errorf("port %q: index %d out of range", yp.Name, yp.Port)
		}
		cfg := core.PortConfig{
			Name:      yp.Name,
			ValidPins: yp.ValidPins,
			CtrlBase:  regs.PortCtrlBase(yp.Port),
			InAddr:    regs.PortInAddr(yp.Port),
			OutAddr:   regs.PortOutAddr(yp.Port),
		}
		if yp.Girq != nil {
			cfg.GirqID = *yp.Girq
			cfg.IntrCapable = true
		}
		ports = append(ports, cfg)
	}

	return finish(ports)
}

// finish orders ports by control base and rejects empty or duplicated
// banks. Aggregator conflicts are left to core.NewController, which
// owns that invariant.
func finish(ports []core.PortConfig) ([]core.PortConfig, error) {
	if len(ports) == 0 {
		return nil, fmt.Errorf("no gpio controllers described")
	}

	sort.Slice(ports, func(i, j int) bool { return ports[i].CtrlBase < ports[j].CtrlBase })

	seen := make(map[uintptr]string, len(ports))
	for _, p := range ports {
		if p.ValidPins == 0 {
			return nil, fmt.Errorf("port %q: empty valid-pin bitmap", p.Name)
		}
		if other, dup := seen[p.CtrlBase]; dup {
			return nil, fmt.Errorf("port %q: control base %#x already used by %q", p.Name, p.CtrlBase, other)
		}
		seen[p.CtrlBase] = p.Name
	}
	return ports, nil
}
