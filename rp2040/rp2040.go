// Package rp2040 holds the RP2040 register map needed for plain digital
// I/O: the reset controller, the IO_BANK0 pin multiplexer, the PADS_BANK0
// electrical pad controls, and the single-cycle I/O (SIO) block. Addresses
// and field layouts follow the RP2040 datasheet.
package rp2040

import "picogpio/mmio"

// NumPins is the count of user GPIOs (GPIO0..GPIO29).
const NumPins = 30

// Peripheral base addresses.
const (
	ResetsBase    uint32 = 0x4000C000
	IOBank0Base   uint32 = 0x40014000
	PadsBank0Base uint32 = 0x4001C000
	SIOBase       uint32 = 0xD0000000
)

// RESETS register offsets.
const (
	ResetsResetOff     uint32 = 0x000
	ResetsResetDoneOff uint32 = 0x008
)

// ResetBlock is one bit in the RESETS registers.
type ResetBlock uint32

const (
	ResetIOBank0   ResetBlock = 1 << 5
	ResetPadsBank0 ResetBlock = 1 << 8
)

// IO_BANK0: per-pin STATUS/CTRL register pairs, 8 bytes per pin.
const (
	ioStatusStride uint32 = 8
	ioCtrlOff      uint32 = 0x004
)

// CTRL.FUNCSEL field (bits 4:0) values.
const (
	FuncSelMask uint32 = 0x1F
	FuncSPI     uint32 = 1
	FuncUART    uint32 = 2
	FuncI2C     uint32 = 3
	FuncPWM     uint32 = 4
	FuncSIO     uint32 = 5
	FuncPIO0    uint32 = 6
	FuncPIO1    uint32 = 7
	FuncNull    uint32 = 0x1F
)

// PADS_BANK0: VOLTAGE_SELECT at +0x00, then one register per pin.
const padOff uint32 = 0x004

// Pad control bits.
const (
	PadSlewFast uint32 = 1 << 0
	PadSchmitt  uint32 = 1 << 1
	PadPDE      uint32 = 1 << 2 // pull-down enable
	PadPUE      uint32 = 1 << 3 // pull-up enable
	PadIE       uint32 = 1 << 6 // input enable
	PadOD       uint32 = 1 << 7 // output disable
)

// SIO register offsets. SIO sits on the processor's single-cycle port, not
// the APB bridge, so its atomic set/clear/xor companions are the adjacent
// registers rather than the +0x2000 style aliases.
const (
	sioInOff  uint32 = 0x004
	sioOutOff uint32 = 0x010
	sioOEOff  uint32 = 0x020
)

// SIOAlias is the set/clear/xor layout of the SIO OUT and OE registers.
var SIOAlias = mmio.Alias{Set: 0x4, Clr: 0x8, Xor: 0xC}

// Absolute addresses of the fixed registers.
const (
	ResetsResetAddr     = ResetsBase + ResetsResetOff
	ResetsResetDoneAddr = ResetsBase + ResetsResetDoneOff
	InAddr              = SIOBase + sioInOff
	OutAddr             = SIOBase + sioOutOff
	OutSetAddr          = OutAddr + 0x4
	OutClrAddr          = OutAddr + 0x8
	OutEnableAddr       = SIOBase + sioOEOff
	OutEnableSetAddr    = OutEnableAddr + 0x4
	OutEnableClrAddr    = OutEnableAddr + 0x8
)

// CtrlAddr returns the IO_BANK0 CTRL register address for a pin.
// Pure arithmetic: GPIO25 lands on 0x400140CC.
func CtrlAddr(pin uint8) uint32 {
	return IOBank0Base + ioCtrlOff + ioStatusStride*uint32(pin)
}

// StatusAddr returns the IO_BANK0 STATUS register address for a pin.
func StatusAddr(pin uint8) uint32 {
	return IOBank0Base + ioStatusStride*uint32(pin)
}

// PadAddr returns the PADS_BANK0 control register address for a pin.
func PadAddr(pin uint8) uint32 {
	return PadsBank0Base + padOff + 4*uint32(pin)
}

// Platform exposes the register map as typed handles over one bus. It is
// the single "owns the register map" value injected into drivers, so a
// simulated bus substitutes for hardware without touching driver logic.
type Platform struct {
	bus mmio.Bus
}

func New(bus mmio.Bus) *Platform { return &Platform{bus: bus} }

// Bus returns the underlying bus.
func (p *Platform) Bus() mmio.Bus { return p.bus }

// Reset is the RESETS.RESET register; bits hold blocks in reset.
func (p *Platform) Reset() mmio.Reg {
	return mmio.NewAliasedReg(p.bus, ResetsResetAddr, mmio.APBAlias)
}

// ResetDone is the RESETS.RESET_DONE register; read-only ready flags.
func (p *Platform) ResetDone() mmio.Reg {
	return mmio.NewReg(p.bus, ResetsResetDoneAddr)
}

// PinCtrl is the IO_BANK0 CTRL register for one pin.
func (p *Platform) PinCtrl(pin uint8) mmio.Reg {
	return mmio.NewAliasedReg(p.bus, CtrlAddr(pin), mmio.APBAlias)
}

// Pad is the PADS_BANK0 control register for one pin.
func (p *Platform) Pad(pin uint8) mmio.Reg {
	return mmio.NewAliasedReg(p.bus, PadAddr(pin), mmio.APBAlias)
}

// In is the SIO GPIO_IN register.
func (p *Platform) In() mmio.Reg { return mmio.NewReg(p.bus, InAddr) }

// Out is the SIO GPIO_OUT register with its SET/CLR/XOR companions.
func (p *Platform) Out() mmio.Reg {
	return mmio.NewAliasedReg(p.bus, OutAddr, SIOAlias)
}

// OutEnable is the SIO GPIO_OE register with its SET/CLR/XOR companions.
func (p *Platform) OutEnable() mmio.Reg {
	return mmio.NewAliasedReg(p.bus, OutEnableAddr, SIOAlias)
}
