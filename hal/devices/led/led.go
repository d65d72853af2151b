// Package led drives an LED on one GPIO output.
package led

import (
	"picogpio/errcode"
	"picogpio/gpio"
	"picogpio/hal"
	"picogpio/hal/internal/util"
)

func init() { hal.RegisterBuilder("led", builder{}) }

type Params struct {
	Pin     int  `json:"pin"`
	Initial bool `json:"initial,omitempty"` // lit at init
}

type builder struct{}

func (builder) Build(in hal.BuildInput) (hal.Device, error) {
	var p Params
	if err := util.DecodeJSON(in.Params, &p); err != nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "led.Build", Err: err}
	}
	pin, ok := in.Pins.ByNumber(p.Pin)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "led.Build",
			Msg: "no such pin"}
	}
	return &Device{id: in.ID, pin: pin, initial: p.Initial}, nil
}

// Device is a single LED.
type Device struct {
	id      string
	pin     hal.Pin
	initial bool
}

func (d *Device) ID() string { return d.id }

func (d *Device) Init() error {
	level := gpio.Low
	if d.initial {
		level = gpio.High
	}
	return d.pin.ConfigureOutput(level)
}

func (d *Device) On() error     { return d.pin.Set(gpio.High) }
func (d *Device) Off() error    { return d.pin.Set(gpio.Low) }
func (d *Device) Toggle() error { return d.pin.Toggle() }

// Lit reads the driven level back.
func (d *Device) Lit() (bool, error) {
	l, err := d.pin.Get()
	return l == gpio.High, err
}
