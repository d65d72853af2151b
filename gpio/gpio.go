// Package gpio is a digital I/O driver for the RP2040 pins. It owns the
// direction of every pin it has configured and refuses direction-mismatched
// operations instead of letting them die silently against the hardware.
package gpio

import (
	"picogpio/errcode"
	"picogpio/rp2040"
)

// Level is a logical pin level.
type Level uint8

const (
	Low Level = iota
	High
)

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// Pull selects the pad's pull resistor.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// State is a pin's configuration state.
type State uint8

const (
	Unclaimed State = iota
	Output
	Input
)

// Config centralises driver limits.
type Config struct {
	// ResetPolls bounds how many RESET_DONE reads EnableBlock performs
	// before reporting a dead block. <=0 selects DefaultResetPolls.
	ResetPolls int
}

const DefaultResetPolls = 1000

// Driver is the per-chip GPIO state machine. Not safe for concurrent use:
// the execution model is single-threaded with interrupts out of scope, and
// pin ownership is the whole safety argument.
type Driver struct {
	plat    *rp2040.Platform
	cfg     Config
	enabled rp2040.ResetBlock
	state   [rp2040.NumPins]State
}

// New builds a driver over the given register map.
func New(plat *rp2040.Platform, cfg Config) *Driver {
	if cfg.ResetPolls <= 0 {
		cfg.ResetPolls = DefaultResetPolls
	}
	return &Driver{plat: plat, cfg: cfg}
}

// EnableBlock takes one block out of reset and waits for its ready flag.
// Idempotent: a block already brought up is left alone.
func (d *Driver) EnableBlock(b rp2040.ResetBlock) error {
	if d.enabled&b == b {
		return nil
	}
	d.plat.Reset().ClearBits(uint32(b))
	if err := d.plat.ResetDone().WaitBits(uint32(b), d.cfg.ResetPolls); err != nil {
		return &errcode.E{C: errcode.Timeout, Op: "gpio.EnableBlock",
			Msg: "block did not leave reset", Err: err}
	}
	d.enabled |= b
	return nil
}

// Init brings up the pin multiplexer and pad controls. Must run before the
// first pin configuration.
func (d *Driver) Init() error {
	if err := d.EnableBlock(rp2040.ResetIOBank0); err != nil {
		return err
	}
	return d.EnableBlock(rp2040.ResetPadsBank0)
}

func (d *Driver) checkPin(pin uint8) error {
	if pin >= rp2040.NumPins {
		return errcode.InvalidPin
	}
	return nil
}

func (d *Driver) checkReady() error {
	need := rp2040.ResetIOBank0 | rp2040.ResetPadsBank0
	if d.enabled&need != need {
		return errcode.NotReady
	}
	return nil
}

// claim routes a pin to the SIO function. Write order matters: the pad is
// opened and the mux switched before the SIO direction changes, otherwise
// the pin floats or glitches through a stale function.
func (d *Driver) claim(pin uint8) {
	// Input enable on, output disable off. Pulls live in the same
	// register and are preserved.
	d.plat.Pad(pin).ReplaceBits(rp2040.PadIE, rp2040.PadIE|rp2040.PadOD)
	// Zero every CTRL field apart from funcsel; the pin does what SIO
	// tells it.
	d.plat.PinCtrl(pin).Store(rp2040.FuncSIO)
}

// ConfigureOutput claims a pin as a driven output, initially low.
// Reconfiguring an already-configured pin re-applies the same writes.
func (d *Driver) ConfigureOutput(pin uint8) error {
	if err := d.checkPin(pin); err != nil {
		return err
	}
	if err := d.checkReady(); err != nil {
		return err
	}
	d.claim(pin)
	// Drop any stale OUT bit before enabling the driver stage so the
	// pad never glitches high.
	d.plat.Out().ClearBits(1 << pin)
	d.plat.OutEnable().SetBits(1 << pin)
	d.state[pin] = Output
	return nil
}

// ConfigureInput claims a pin as a high-impedance input.
func (d *Driver) ConfigureInput(pin uint8) error {
	if err := d.checkPin(pin); err != nil {
		return err
	}
	if err := d.checkReady(); err != nil {
		return err
	}
	d.claim(pin)
	d.plat.OutEnable().ClearBits(1 << pin)
	d.state[pin] = Input
	return nil
}

// SetPull selects the pad pull resistor for a configured pin.
func (d *Driver) SetPull(pin uint8, pull Pull) error {
	if err := d.checkPin(pin); err != nil {
		return err
	}
	if d.state[pin] == Unclaimed {
		return errcode.NotReady
	}
	pad := d.plat.Pad(pin)
	switch pull {
	case PullUp:
		pad.ReplaceBits(rp2040.PadPUE, rp2040.PadPUE|rp2040.PadPDE)
	case PullDown:
		pad.ReplaceBits(rp2040.PadPDE, rp2040.PadPUE|rp2040.PadPDE)
	default:
		pad.ClearBits(rp2040.PadPUE | rp2040.PadPDE)
	}
	return nil
}

func (d *Driver) checkOutput(pin uint8) error {
	if err := d.checkPin(pin); err != nil {
		return err
	}
	if d.state[pin] != Output {
		return errcode.WrongDirection
	}
	return nil
}

// SetHigh drives an output pin high.
func (d *Driver) SetHigh(pin uint8) error {
	if err := d.checkOutput(pin); err != nil {
		return err
	}
	d.plat.Out().SetBits(1 << pin)
	return nil
}

// SetLow drives an output pin low.
func (d *Driver) SetLow(pin uint8) error {
	if err := d.checkOutput(pin); err != nil {
		return err
	}
	d.plat.Out().ClearBits(1 << pin)
	return nil
}

// Set drives an output pin to the given level.
func (d *Driver) Set(pin uint8, level Level) error {
	if level == High {
		return d.SetHigh(pin)
	}
	return d.SetLow(pin)
}

// Toggle flips an output pin.
func (d *Driver) Toggle(pin uint8) error {
	if err := d.checkOutput(pin); err != nil {
		return err
	}
	d.plat.Out().XorBits(1 << pin)
	return nil
}

// Read senses a pin. Valid for inputs and for outputs (read-back).
func (d *Driver) Read(pin uint8) (Level, error) {
	if err := d.checkPin(pin); err != nil {
		return Low, err
	}
	if d.state[pin] == Unclaimed {
		return Low, errcode.WrongDirection
	}
	if d.plat.In().HasBits(1 << pin) {
		return High, nil
	}
	return Low, nil
}

// PinState reports a pin's configuration state.
func (d *Driver) PinState(pin uint8) State {
	if pin >= rp2040.NumPins {
		return Unclaimed
	}
	return d.state[pin]
}
