package core_test

import (
	"testing"

	"xecgpio/core"
	"xecgpio/sim"
	"xecgpio/targets/mec1701"
)

func TestControllerEnablesAggregatorBlocks(t *testing.T) {
	chip := mec1701.Chip()
	bank := sim.New(chip)

	c, err := core.NewController(bank, chip)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	if len(c.Ports()) != len(chip) {
		t.Fatalf("got %d ports, want %d", len(c.Ports()), len(chip))
	}
	for _, cfg := range chip {
		if !bank.BlockEnabled(cfg.GirqID) {
			t.Errorf("girq %d block not enabled", cfg.GirqID)
		}
	}
}

func TestControllerLookup(t *testing.T) {
	chip := mec1701.Chip()
	bank := sim.New(chip)
	c, err := core.NewController(bank, chip)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	p := c.Port("gpio000_036")
	if p == nil {
		t.Fatal("port gpio000_036 not found")
	}
	if byGirq := c.PortByGirq(11); byGirq != p {
		t.Errorf("PortByGirq(11) = %v, want the same port", byGirq)
	}
	if c.Port("gpio300_336") != nil {
		t.Error("lookup of unknown port succeeded")
	}
	if c.PortByGirq(13) != nil {
		t.Error("lookup of unclaimed girq succeeded")
	}
}

func TestControllerServiceGirqRoutes(t *testing.T) {
	chip := mec1701.Chip()
	bank := sim.New(chip)
	c, err := core.NewController(bank, chip)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	p := c.PortByGirq(10) // gpio040_076
	if err := p.ConfigureInterrupt(3, core.IntModeEdge, core.IntTriggerHigh); err != nil {
		t.Fatalf("arm: %v", err)
	}
	bank.Latch(10, 1<<3)

	fired := false
	p.AddCallback(&core.Callback{Mask: 1 << 3, Handler: func(_ *core.Port, _ uint32) { fired = true }})

	c.ServiceGirq(10)
	if !fired {
		t.Error("vector routing did not reach the port's callbacks")
	}

	// Unclaimed lines are ignored.
	c.ServiceGirq(25)
}

func TestControllerRejectsBadTables(t *testing.T) {
	chip := mec1701.Chip()

	dupName := []core.PortConfig{chip[0], chip[0]}
	if _, err := core.NewController(sim.New(dupName), dupName); err == nil {
		t.Error("duplicate name accepted")
	}

	dupGirq := []core.PortConfig{chip[0], chip[1]}
	dupGirq[1].GirqID = dupGirq[0].GirqID
	if _, err := core.NewController(sim.New(dupGirq), dupGirq); err == nil {
		t.Error("duplicate girq accepted")
	}

	badGirq := []core.PortConfig{chip[0]}
	badGirq[0].GirqID = 40
	if _, err := core.NewController(sim.New(badGirq), badGirq); err == nil {
		t.Error("out-of-range girq accepted")
	}
}
