package hal_test

import (
	"testing"

	"picogpio/errcode"
	"picogpio/gpio"
	"picogpio/hal"
	"picogpio/hal/devices/button"
	"picogpio/hal/devices/led"
	"picogpio/rp2040"
	"picogpio/rp2040/rp2040sim"
)

func newPins(t *testing.T) (hal.Pins, *rp2040sim.Sim) {
	t.Helper()
	sim := rp2040sim.New()
	d := gpio.New(rp2040.New(sim), gpio.Config{})
	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	return hal.NewPins(d), sim
}

func TestPinFactoryRange(t *testing.T) {
	pins, _ := newPins(t)
	if _, ok := pins.ByNumber(0); !ok {
		t.Fatal("pin 0 missing")
	}
	if _, ok := pins.ByNumber(29); !ok {
		t.Fatal("pin 29 missing")
	}
	for _, n := range []int{-1, 30, 64} {
		if _, ok := pins.ByNumber(n); ok {
			t.Fatalf("pin %d should not exist", n)
		}
	}
}

func TestPinOutput(t *testing.T) {
	pins, sim := newPins(t)
	sim.Loopback = 1 << 25

	p, _ := pins.ByNumber(25)
	if err := p.ConfigureOutput(gpio.High); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if l, err := p.Get(); err != nil || l != gpio.High {
		t.Fatalf("initial level: %v %v", l, err)
	}
	if err := p.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if l, _ := p.Get(); l != gpio.Low {
		t.Fatalf("after toggle: %v", l)
	}
	if p.Number() != 25 {
		t.Fatalf("number = %d", p.Number())
	}
}

func TestPinInputPull(t *testing.T) {
	pins, sim := newPins(t)
	p, _ := pins.ByNumber(14)
	if err := p.ConfigureInput(gpio.PullUp); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if sim.Peek(rp2040.PadAddr(14))&rp2040.PadPUE == 0 {
		t.Fatal("pull-up bit not set")
	}
	if err := p.Set(gpio.High); errcode.Of(err) != errcode.WrongDirection {
		t.Fatalf("set on input: %v", err)
	}
}

func TestBuildFromConfig(t *testing.T) {
	pins, sim := newPins(t)
	sim.Loopback = 1 << 25

	cfg := hal.Config{Devices: []hal.DeviceSpec{
		{ID: "status", Type: "led", Params: map[string]any{"pin": float64(25), "initial": true}},
		{ID: "user", Type: "button", Params: map[string]any{"pin": float64(12), "pull": "up", "invert": true}},
	}}
	devs, err := hal.Build(cfg, pins)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(devs) != 2 {
		t.Fatalf("built %d devices", len(devs))
	}

	l := devs[0].(*led.Device)
	if lit, err := l.Lit(); err != nil || !lit {
		t.Fatalf("initial lit: %v %v", lit, err)
	}
	if err := l.Off(); err != nil {
		t.Fatalf("off: %v", err)
	}
	if lit, _ := l.Lit(); lit {
		t.Fatal("still lit after Off")
	}

	b := devs[1].(*button.Device)
	// Inverted input reading low means pressed.
	if pressed, err := b.Pressed(); err != nil || !pressed {
		t.Fatalf("pressed: %v %v", pressed, err)
	}
	sim.SetInput(12, true)
	if pressed, _ := b.Pressed(); pressed {
		t.Fatal("released button reads pressed")
	}
}

func TestBuildUnknownType(t *testing.T) {
	pins, _ := newPins(t)
	_, err := hal.Build(hal.Config{Devices: []hal.DeviceSpec{
		{ID: "x", Type: "servo", Params: map[string]any{}},
	}}, pins)
	if errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("want unsupported, got %v", err)
	}
}

func TestBuildUnknownPin(t *testing.T) {
	pins, _ := newPins(t)
	_, err := hal.Build(hal.Config{Devices: []hal.DeviceSpec{
		{ID: "x", Type: "led", Params: map[string]any{"pin": float64(40)}},
	}}, pins)
	if errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("want unknown_pin, got %v", err)
	}
}
