// Package hal is the ergonomic layer over the gpio driver: per-pin handles
// behind a small interface, plus a builder registry composing named devices
// out of configuration.
package hal

import (
	"picogpio/gpio"
	"picogpio/rp2040"
)

// Pin is one claimed GPIO.
type Pin interface {
	ConfigureInput(pull gpio.Pull) error
	ConfigureOutput(initial gpio.Level) error
	Set(level gpio.Level) error
	Get() (gpio.Level, error)
	Toggle() error
	Number() int
}

// Pins supplies pins by number.
type Pins interface {
	ByNumber(n int) (Pin, bool)
}

// NewPins wraps a driver as a pin factory.
func NewPins(d *gpio.Driver) Pins { return driverPins{d: d} }

type driverPins struct {
	d *gpio.Driver
}

func (p driverPins) ByNumber(n int) (Pin, bool) {
	if n < 0 || n >= rp2040.NumPins {
		return nil, false
	}
	return &driverPin{d: p.d, n: uint8(n)}, true
}

type driverPin struct {
	d *gpio.Driver
	n uint8
}

func (p *driverPin) ConfigureInput(pull gpio.Pull) error {
	if err := p.d.ConfigureInput(p.n); err != nil {
		return err
	}
	return p.d.SetPull(p.n, pull)
}

func (p *driverPin) ConfigureOutput(initial gpio.Level) error {
	if err := p.d.ConfigureOutput(p.n); err != nil {
		return err
	}
	return p.d.Set(p.n, initial)
}

func (p *driverPin) Set(level gpio.Level) error { return p.d.Set(p.n, level) }
func (p *driverPin) Get() (gpio.Level, error)   { return p.d.Read(p.n) }
func (p *driverPin) Toggle() error              { return p.d.Toggle(p.n) }
func (p *driverPin) Number() int                { return int(p.n) }
