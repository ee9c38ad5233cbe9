// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package arm

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

// fakeBus is a minimal, sparsely-backed Bus for tests: a byte-addressed
// map rather than a flat array, so tests can place code at the GBA's
// cartridge entry point and data at IWRAM addresses without allocating
// the address space in between.
type fakeBus struct {
	mem   map[uint32]uint8
	irq   Interrupts
	count uint32
}

func newFakeBus() *fakeBus {
	return &fakeBus{mem: make(map[uint32]uint8)}
}

func (b *fakeBus) Read8(addr uint32, cycle CycleType) uint8 {
	return b.mem[addr]
}

func (b *fakeBus) Read16(addr uint32, cycle CycleType) uint16 {
	return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8
}

func (b *fakeBus) Read32(addr uint32, cycle CycleType) uint32 {
	return uint32(b.mem[addr]) | uint32(b.mem[addr+1])<<8 | uint32(b.mem[addr+2])<<16 | uint32(b.mem[addr+3])<<24
}

func (b *fakeBus) Write8(addr uint32, v uint8) {
	b.mem[addr] = v
}

func (b *fakeBus) Write16(addr uint32, v uint16) {
	b.mem[addr] = uint8(v)
	b.mem[addr+1] = uint8(v >> 8)
}

func (b *fakeBus) Write32(addr uint32, v uint32) {
	b.mem[addr] = uint8(v)
	b.mem[addr+1] = uint8(v >> 8)
	b.mem[addr+2] = uint8(v >> 16)
	b.mem[addr+3] = uint8(v >> 24)
}

func (b *fakeBus) ResetCycleCountTimeline() { b.count = 0 }

func (b *fakeBus) AddCycleToExecutionTimeline(cycle CycleType, addr uint32, width int) {
	b.count++
}

func (b *fakeBus) GetMemoryAccessCycles() uint32 { return b.count }

func (b *fakeBus) Interrupts() *Interrupts { return &b.irq }

func testConfig() Config {
	cfg := NewConfig()
	cfg.Logger = logrus.New()
	cfg.Logger.SetOutput(io.Discard)
	return cfg
}

// newTestARM builds a bus, lets setup populate it, then constructs the ARM
// so that Reset's initial prefetch sees whatever setup wrote rather than a
// stale read of empty memory.
func newTestARM(setup func(bus *fakeBus)) (*ARM, *fakeBus) {
	bus := newFakeBus()
	if setup != nil {
		setup(bus)
	}
	arm := NewARM(testConfig(), bus)
	return arm, bus
}

func TestResetInitialState(t *testing.T) {
	arm, _ := newTestARM(nil)

	if arm.regs.cpsr.mode != System {
		t.Errorf("mode = %s, want SYS", arm.regs.cpsr.mode)
	}
	if arm.regs.cpsr.thumb {
		t.Error("T bit set after reset, want ARM state")
	}
	if !arm.regs.cpsr.zero {
		t.Error("Z not set after reset")
	}
	if !arm.regs.cpsr.carry {
		t.Error("C not set after reset")
	}
	if got := arm.regs.get(rPC); got != arm.cfg.EntryPoint {
		t.Errorf("PC = %#x, want %#x", got, arm.cfg.EntryPoint)
	}
	if got := arm.regs.get(0); got != arm.cfg.EntryPoint {
		t.Errorf("r0 = %#x, want %#x", got, arm.cfg.EntryPoint)
	}
	if got := arm.regs.get(1); got != 0x000000ea {
		t.Errorf("r1 = %#x, want 0xea", got)
	}
	if got := arm.regs.get(rSP); got != 0x03007f00 {
		t.Errorf("sp = %#x, want 0x03007f00", got)
	}
	if arm.regs.svcRegs[0] != 0x03007fe0 {
		t.Errorf("sp_svc = %#x, want 0x03007fe0", arm.regs.svcRegs[0])
	}
	if arm.regs.irqRegs[0] != 0x03007fa0 {
		t.Errorf("sp_irq = %#x, want 0x03007fa0", arm.regs.irqRegs[0])
	}
}

func TestStepAdvancesPCByInstructionWidth(t *testing.T) {
	entry := uint32(EntryPoint)
	arm, _ := newTestARM(func(bus *fakeBus) {
		bus.Write32(entry, 0xE1A00000) // MOV r0, r0 (NOP)
	})

	arm.Step()

	if got := arm.regs.get(rPC); got != entry+4 {
		t.Errorf("PC after one ARM step = %#x, want %#x", got, entry+4)
	}
}

// TestConditionFalseSkipsExecution: a false condition code advances PC
// but changes nothing else.
func TestConditionFalseSkipsExecution(t *testing.T) {
	entry := uint32(EntryPoint)
	// EQ ADD r0, r0, #1: cond=0000(EQ), I=1, opcode=0100(ADD), Rn=r0, Rd=r0, imm=1.
	instr := uint32(0x02800001)
	arm, _ := newTestARM(func(bus *fakeBus) {
		bus.Write32(entry, instr)
	})

	arm.regs.cpsr.zero = false // EQ will be false
	before := arm.regs.get(0)

	arm.Step()

	if got := arm.regs.get(0); got != before {
		t.Errorf("r0 changed on a false condition: got %#x, want %#x", got, before)
	}
	if got := arm.regs.get(rPC); got != entry+4 {
		t.Errorf("PC = %#x, want %#x", got, entry+4)
	}
}

func TestIRQEntry(t *testing.T) {
	entry := uint32(EntryPoint)
	arm, bus := newTestARM(func(bus *fakeBus) {
		bus.Write32(entry, 0xE1A00000) // MOV r0, r0
	})

	irq := bus.Interrupts()
	irq.IME = true
	irq.IE = 1
	irq.IF = 1

	result := arm.Step()

	if !result.IRQTaken {
		t.Fatal("IRQTaken = false, want true")
	}
	if arm.regs.cpsr.mode != IRQMode {
		t.Errorf("mode after IRQ = %s, want IRQ", arm.regs.cpsr.mode)
	}
	if !arm.regs.cpsr.irqDisable {
		t.Error("I bit not set after IRQ entry")
	}
	if arm.regs.cpsr.thumb {
		t.Error("T bit set after IRQ entry, want ARM state")
	}
	if got := arm.regs.get(rPC); got != IRQVector {
		t.Errorf("PC after IRQ = %#x, want %#x", got, uint32(IRQVector))
	}
	if got := arm.regs.irqRegs[1]; got != entry+4 {
		t.Errorf("lr_irq = %#x, want %#x", got, entry+4)
	}
}

func TestSWIEntry(t *testing.T) {
	entry := uint32(EntryPoint)
	arm, _ := newTestARM(func(bus *fakeBus) {
		bus.Write32(entry, 0xEF000000) // SWI 0
	})

	arm.Step()

	if arm.regs.cpsr.mode != Supervisor {
		t.Errorf("mode after SWI = %s, want SVC", arm.regs.cpsr.mode)
	}
	if got := arm.regs.get(rPC); got != SWIVector {
		t.Errorf("PC after SWI = %#x, want %#x", got, uint32(SWIVector))
	}
	if got := arm.regs.svcRegs[1]; got != entry+4 {
		t.Errorf("lr_svc = %#x, want %#x", got, entry+4)
	}
}
