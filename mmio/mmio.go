// Package mmio provides 32-bit memory-mapped register access over a
// pluggable bus, so the same driver code runs against real hardware or a
// simulated register file.
package mmio

import "picogpio/errcode"

// Bus is word access to a physical address space. Implementations must
// treat every access as an ordered side effect: no caching, no merging,
// no elision.
type Bus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, v uint32)
}

// Alias holds the offsets, relative to a register's own address, of its
// hardware atomic set/clear/xor companions. On RP2040 APB peripherals
// these are the +0x2000/+0x3000/+0x1000 mirrors; on SIO they are the
// adjacent SET/CLR/XOR registers. A zero Alias means the register has no
// atomic companions and bit operations fall back to read-modify-write.
type Alias struct {
	Set uint32
	Clr uint32
	Xor uint32
}

// APBAlias is the alias layout shared by all RP2040 APB peripherals.
var APBAlias = Alias{Set: 0x2000, Clr: 0x3000, Xor: 0x1000}

// Reg is a handle to one 32-bit register.
type Reg struct {
	bus   Bus
	addr  uint32
	alias Alias
}

// NewReg returns a handle with no atomic aliases.
func NewReg(bus Bus, addr uint32) Reg {
	return Reg{bus: bus, addr: addr}
}

// NewAliasedReg returns a handle whose bit operations use the hardware
// set/clear/xor companions at the given relative offsets.
func NewAliasedReg(bus Bus, addr uint32, a Alias) Reg {
	return Reg{bus: bus, addr: addr, alias: a}
}

// Addr returns the register's absolute address.
func (r Reg) Addr() uint32 { return r.addr }

// Load reads the register.
func (r Reg) Load() uint32 { return r.bus.Read32(r.addr) }

// Store writes the register.
func (r Reg) Store(v uint32) { r.bus.Write32(r.addr, v) }

func (r Reg) aliased() bool { return r.alias != (Alias{}) }

// SetBits asserts the bits in mask, leaving all others untouched. With an
// aliased register this is a single write and safe against any concurrent
// access; without one it is a read-modify-write and is NOT atomic.
func (r Reg) SetBits(mask uint32) {
	if r.aliased() {
		r.bus.Write32(r.addr+r.alias.Set, mask)
		return
	}
	r.bus.Write32(r.addr, r.bus.Read32(r.addr)|mask)
}

// ClearBits deasserts the bits in mask. Same atomicity caveat as SetBits.
func (r Reg) ClearBits(mask uint32) {
	if r.aliased() {
		r.bus.Write32(r.addr+r.alias.Clr, mask)
		return
	}
	r.bus.Write32(r.addr, r.bus.Read32(r.addr)&^mask)
}

// XorBits toggles the bits in mask. Same atomicity caveat as SetBits.
func (r Reg) XorBits(mask uint32) {
	if r.aliased() {
		r.bus.Write32(r.addr+r.alias.Xor, mask)
		return
	}
	r.bus.Write32(r.addr, r.bus.Read32(r.addr)^mask)
}

// ReplaceBits writes val into the field selected by mask, preserving the
// rest of the register. val must already be shifted into position.
func (r Reg) ReplaceBits(val, mask uint32) {
	r.bus.Write32(r.addr, (r.bus.Read32(r.addr)&^mask)|(val&mask))
}

// HasBits reports whether any bit in mask is set.
func (r Reg) HasBits(mask uint32) bool { return r.bus.Read32(r.addr)&mask != 0 }

// WaitBits polls until any bit in mask reads set. It reads at most polls
// times and returns errcode.Timeout once the bound is exhausted. The bound
// is an iteration count, not wall time: there is no cheaper clock than
// spin-counting on the bare-metal targets this models.
func (r Reg) WaitBits(mask uint32, polls int) error {
	for i := 0; i < polls; i++ {
		if r.bus.Read32(r.addr)&mask != 0 {
			return nil
		}
	}
	return errcode.Timeout
}
