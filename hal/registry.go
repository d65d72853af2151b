package hal

import (
	"fmt"
	"sync"

	"picogpio/errcode"
)

// Device is a constructed, named piece of hardware behavior.
type Device interface {
	ID() string
	// Init claims and configures the device's pins. Runs once, before
	// any other method.
	Init() error
}

// BuildInput is passed to a device builder.
type BuildInput struct {
	ID     string
	Pins   Pins
	Params interface{} // JSON-shaped: map, []byte, or string
}

// Builder creates a device from config and the pin factory.
type Builder interface {
	Build(in BuildInput) (Device, error)
}

var (
	mu       sync.RWMutex
	builders = map[string]Builder{}
)

// RegisterBuilder installs a builder for a device type. Called from device
// package init functions.
func RegisterBuilder(deviceType string, b Builder) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := builders[deviceType]; exists {
		panic(fmt.Sprintf("device builder already registered for type %q", deviceType))
	}
	builders[deviceType] = b
}

// Lookup returns the builder for a device type.
func Lookup(deviceType string) (Builder, bool) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := builders[deviceType]
	return b, ok
}

// DeviceSpec names one device in configuration.
type DeviceSpec struct {
	ID     string      `json:"id"`
	Type   string      `json:"type"`
	Params interface{} `json:"params"`
}

// Config is the device list for one board.
type Config struct {
	Devices []DeviceSpec `json:"devices"`
}

// Build constructs and initialises every configured device, in order.
func Build(cfg Config, pins Pins) ([]Device, error) {
	out := make([]Device, 0, len(cfg.Devices))
	for _, spec := range cfg.Devices {
		b, ok := Lookup(spec.Type)
		if !ok {
			return out, &errcode.E{C: errcode.Unsupported, Op: "hal.Build",
				Msg: "no builder for type " + spec.Type}
		}
		dev, err := b.Build(BuildInput{ID: spec.ID, Pins: pins, Params: spec.Params})
		if err != nil {
			return out, err
		}
		if err := dev.Init(); err != nil {
			return out, err
		}
		out = append(out, dev)
	}
	return out, nil
}
