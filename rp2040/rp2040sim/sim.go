// Package rp2040sim is a software model of the slice of RP2040 hardware
// the GPIO driver touches. It stands in for the real register file in
// tests: APB alias decode, SIO set/clear/xor semantics, reset-done
// latching, and an optional loopback wiring OUT bits back into GPIO_IN.
package rp2040sim

import (
	"picogpio/mmio"
	"picogpio/rp2040"
)

// Never makes a reset block never report done, for timeout tests.
const Never = -1

var _ mmio.Bus = (*Sim)(nil)

// Sim implements mmio.Bus.
type Sim struct {
	mem map[uint32]uint32

	// Loopback selects pins whose driven OUT bit is mirrored into
	// GPIO_IN, as if the pad were wired straight back.
	Loopback uint32

	// ResetLatency is how many RESET_DONE reads a block stays pending
	// after its reset bit clears. 0 means done immediately, Never means
	// done never asserts.
	ResetLatency int

	// Writes counts every bus write, alias or not.
	Writes int

	pending map[uint32]int // reset block bit -> remaining polls
}

// New returns a simulator with every reset-managed block held in reset,
// matching cold boot.
func New() *Sim {
	s := &Sim{
		mem:     map[uint32]uint32{},
		pending: map[uint32]int{},
	}
	s.mem[rp2040.ResetsResetAddr] = uint32(rp2040.ResetIOBank0 | rp2040.ResetPadsBank0)
	return s
}

func (s *Sim) Read32(addr uint32) uint32 {
	switch addr {
	case rp2040.ResetsResetDoneAddr:
		s.tickResetDone()
	case rp2040.InAddr:
		out := s.mem[rp2040.OutAddr]
		s.mem[rp2040.InAddr] = (out & s.Loopback) | (s.mem[rp2040.InAddr] &^ s.Loopback)
	}
	return s.mem[addr]
}

func (s *Sim) Write32(addr uint32, v uint32) {
	s.Writes++

	// APB peripherals decode bits 13:12 of the address as a bit
	// operation on the base register.
	if addr >= 0x4000_0000 && addr < 0x6000_0000 {
		real := addr &^ 0x3000
		old := s.mem[real]
		switch addr & 0x3000 {
		case 0x1000:
			s.mem[real] = old ^ v
		case 0x2000:
			s.mem[real] = old | v
		case 0x3000:
			s.mem[real] = old &^ v
		default:
			s.mem[real] = v
		}
		if real == rp2040.ResetsResetAddr {
			s.watchResetClears(old, s.mem[real])
		}
		return
	}

	// SIO OUT/OE and their true set/clear/xor companions.
	switch addr {
	case rp2040.OutSetAddr:
		s.mem[rp2040.OutAddr] |= v
	case rp2040.OutClrAddr:
		s.mem[rp2040.OutAddr] &^= v
	case rp2040.OutAddr + 0xC:
		s.mem[rp2040.OutAddr] ^= v
	case rp2040.OutEnableSetAddr:
		s.mem[rp2040.OutEnableAddr] |= v
	case rp2040.OutEnableClrAddr:
		s.mem[rp2040.OutEnableAddr] &^= v
	case rp2040.OutEnableAddr + 0xC:
		s.mem[rp2040.OutEnableAddr] ^= v
	default:
		s.mem[addr] = v
	}
}

// watchResetClears schedules RESET_DONE for every block whose reset bit
// just transitioned high to low.
func (s *Sim) watchResetClears(old, now uint32) {
	cleared := old &^ now
	for bit := uint32(1); bit != 0; bit <<= 1 {
		if cleared&bit == 0 {
			continue
		}
		if s.ResetLatency == 0 {
			s.mem[rp2040.ResetsResetDoneAddr] |= bit
		} else {
			s.pending[bit] = s.ResetLatency
		}
	}
}

func (s *Sim) tickResetDone() {
	for bit, left := range s.pending {
		if left == Never {
			continue
		}
		left--
		if left <= 0 {
			s.mem[rp2040.ResetsResetDoneAddr] |= bit
			delete(s.pending, bit)
		} else {
			s.pending[bit] = left
		}
	}
}

// Peek reads backing memory without bus side effects.
func (s *Sim) Peek(addr uint32) uint32 { return s.mem[addr] }

// Poke writes backing memory without alias decode or write counting.
func (s *Sim) Poke(addr uint32, v uint32) { s.mem[addr] = v }

// SetInput forces one pin's GPIO_IN bit, for pins outside the loopback
// mask.
func (s *Sim) SetInput(pin uint8, high bool) {
	if high {
		s.mem[rp2040.InAddr] |= 1 << pin
	} else {
		s.mem[rp2040.InAddr] &^= 1 << pin
	}
}

// Snapshot copies the backing memory, for before/after comparisons.
func (s *Sim) Snapshot() map[uint32]uint32 {
	out := make(map[uint32]uint32, len(s.mem))
	for k, v := range s.mem {
		out[k] = v
	}
	return out
}
