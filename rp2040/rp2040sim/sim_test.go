package rp2040sim

import (
	"testing"

	"picogpio/rp2040"
)

func TestAPBAliasDecode(t *testing.T) {
	s := New()
	base := rp2040.CtrlAddr(7)

	s.Write32(base, 0x05)
	s.Write32(base+0x2000, 0x30) // set
	if got := s.Peek(base); got != 0x35 {
		t.Fatalf("after set: %#x", got)
	}
	s.Write32(base+0x3000, 0x05) // clear
	if got := s.Peek(base); got != 0x30 {
		t.Fatalf("after clear: %#x", got)
	}
	s.Write32(base+0x1000, 0xFF) // xor
	if got := s.Peek(base); got != 0xCF {
		t.Fatalf("after xor: %#x", got)
	}
}

func TestSIOSetClear(t *testing.T) {
	s := New()
	s.Write32(rp2040.OutSetAddr, 1<<3)
	s.Write32(rp2040.OutSetAddr, 1<<5)
	if got := s.Peek(rp2040.OutAddr); got != (1<<3)|(1<<5) {
		t.Fatalf("out = %#x", got)
	}
	s.Write32(rp2040.OutClrAddr, 1<<3)
	if got := s.Peek(rp2040.OutAddr); got != 1<<5 {
		t.Fatalf("out = %#x", got)
	}
}

func TestLoopback(t *testing.T) {
	s := New()
	s.Loopback = 1 << 2
	s.Write32(rp2040.OutSetAddr, 1<<2)
	if s.Read32(rp2040.InAddr)&(1<<2) == 0 {
		t.Fatal("loopback pin not reflected into GPIO_IN")
	}
	// Non-loopback pins stay under SetInput control.
	s.SetInput(9, true)
	if s.Read32(rp2040.InAddr)&(1<<9) == 0 {
		t.Fatal("forced input bit lost")
	}
}

func TestResetDoneLatching(t *testing.T) {
	s := New()
	s.ResetLatency = 3

	done := uint32(rp2040.ResetIOBank0)
	s.Write32(rp2040.ResetsResetAddr+0x3000, done) // leave reset

	for i := 0; i < 2; i++ {
		if s.Read32(rp2040.ResetsResetDoneAddr)&done != 0 {
			t.Fatalf("done asserted after %d polls", i+1)
		}
	}
	if s.Read32(rp2040.ResetsResetDoneAddr)&done == 0 {
		t.Fatal("done not asserted at configured latency")
	}
}

func TestResetDoneNever(t *testing.T) {
	s := New()
	s.ResetLatency = Never
	s.Write32(rp2040.ResetsResetAddr+0x3000, uint32(rp2040.ResetIOBank0))
	for i := 0; i < 50; i++ {
		if s.Read32(rp2040.ResetsResetDoneAddr) != 0 {
			t.Fatal("done asserted for a dead block")
		}
	}
}
