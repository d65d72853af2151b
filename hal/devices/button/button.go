// Package button senses a pushbutton on one GPIO input.
package button

import (
	"picogpio/errcode"
	"picogpio/gpio"
	"picogpio/hal"
	"picogpio/hal/internal/util"
)

func init() { hal.RegisterBuilder("button", builder{}) }

type Params struct {
	Pin    int    `json:"pin"`
	Pull   string `json:"pull,omitempty"`   // "up" | "down" | "none"
	Invert bool   `json:"invert,omitempty"` // true for active-low wiring
}

type builder struct{}

func (builder) Build(in hal.BuildInput) (hal.Device, error) {
	var p Params
	if err := util.DecodeJSON(in.Params, &p); err != nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "button.Build", Err: err}
	}
	pin, ok := in.Pins.ByNumber(p.Pin)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "button.Build",
			Msg: "no such pin"}
	}
	return &Device{id: in.ID, pin: pin, pull: parsePull(p.Pull), invert: p.Invert}, nil
}

func parsePull(s string) gpio.Pull {
	switch s {
	case "up":
		return gpio.PullUp
	case "down":
		return gpio.PullDown
	default:
		return gpio.PullNone
	}
}

// Device is a single button.
type Device struct {
	id     string
	pin    hal.Pin
	pull   gpio.Pull
	invert bool
}

func (d *Device) ID() string { return d.id }

func (d *Device) Init() error { return d.pin.ConfigureInput(d.pull) }

// Pressed reports the debounce-free, instantaneous state.
func (d *Device) Pressed() (bool, error) {
	l, err := d.pin.Get()
	if err != nil {
		return false, err
	}
	pressed := l == gpio.High
	if d.invert {
		pressed = !pressed
	}
	return pressed, nil
}
