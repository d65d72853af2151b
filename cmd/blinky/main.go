// Blinky against simulated hardware: brings up the pin blocks, claims the
// Pico's LED pin through the hal layer, and toggles it with the busy-wait
// delay, printing the level read back through the simulated loopback.
package main

import (
	"time"

	"picogpio/delay"
	"picogpio/gpio"
	"picogpio/hal"
	"picogpio/hal/devices/led"
	"picogpio/rp2040"
	"picogpio/rp2040/rp2040sim"
)

const ledPin = 25 // Pico on-board LED

func main() {
	sim := rp2040sim.New()
	sim.Loopback = 1 << ledPin

	drv := gpio.New(rp2040.New(sim), gpio.Config{})
	if err := drv.Init(); err != nil {
		println("init failed:", err.Error())
		return
	}

	devs, err := hal.Build(hal.Config{Devices: []hal.DeviceSpec{
		{ID: "status", Type: "led", Params: map[string]any{"pin": float64(ledPin)}},
	}}, hal.NewPins(drv))
	if err != nil {
		println("build failed:", err.Error())
		return
	}
	status := devs[0].(*led.Device)

	half := delay.Iterations(time.Second, delay.BootClockHz)
	for i := 0; i < 10; i++ {
		if err := status.Toggle(); err != nil {
			println("toggle failed:", err.Error())
			return
		}
		lit, _ := status.Lit()
		println("led lit:", lit)
		delay.Spin(half)
	}
}
