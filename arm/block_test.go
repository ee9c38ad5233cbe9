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

import "testing"

// TestSTMAddressingModes: whatever the P and U bits say, registers are
// stored in ascending index order to ascending addresses; the bits only
// pick the address block and the writeback value.
func TestSTMAddressingModes(t *testing.T) {
	const base = 0x03000010

	cases := []struct {
		name     string
		instr    uint32 // STM?? r0!, {r1, r2}
		addrR1   uint32
		addrR2   uint32
		wantBase uint32
	}{
		{"IA", 0xe8a00006, 0x03000010, 0x03000014, 0x03000018},
		{"IB", 0xe9a00006, 0x03000014, 0x03000018, 0x03000018},
		{"DA", 0xe8200006, 0x0300000c, 0x03000010, 0x03000008},
		{"DB", 0xe9200006, 0x03000008, 0x0300000c, 0x03000008},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			arm, bus := newTestARM(func(bus *fakeBus) {
				bus.Write32(EntryPoint, c.instr)
			})
			arm.regs.set(0, base)
			arm.regs.set(1, 0x11111111)
			arm.regs.set(2, 0x22222222)

			arm.Step()

			if got := bus.Read32(c.addrR1, Sequential); got != 0x11111111 {
				t.Errorf("r1 stored at %#x = %#x, want 0x11111111", c.addrR1, got)
			}
			if got := bus.Read32(c.addrR2, Sequential); got != 0x22222222 {
				t.Errorf("r2 stored at %#x = %#x, want 0x22222222", c.addrR2, got)
			}
			if got := arm.regs.get(0); got != c.wantBase {
				t.Errorf("base after writeback = %#x, want %#x", got, c.wantBase)
			}
		})
	}
}

func TestLDMIA(t *testing.T) {
	arm, _ := newTestARM(func(bus *fakeBus) {
		bus.Write32(EntryPoint, 0xe8b00006) // LDMIA r0!, {r1, r2}
		bus.Write32(0x03000010, 0x11111111)
		bus.Write32(0x03000014, 0x22222222)
	})
	arm.regs.set(0, 0x03000010)

	arm.Step()

	if got := arm.regs.get(1); got != 0x11111111 {
		t.Errorf("r1 = %#x, want 0x11111111", got)
	}
	if got := arm.regs.get(2); got != 0x22222222 {
		t.Errorf("r2 = %#x, want 0x22222222", got)
	}
	if got := arm.regs.get(0); got != 0x03000018 {
		t.Errorf("base = %#x, want 0x03000018", got)
	}
}

// TestSTMBaseInList pins down the stored value of a base register that
// appears in its own register list: the original base when it is the
// first (lowest-numbered) register, the written-back value otherwise.
func TestSTMBaseInList(t *testing.T) {
	t.Run("base first in list stores the original base", func(t *testing.T) {
		arm, bus := newTestARM(func(bus *fakeBus) {
			bus.Write32(EntryPoint, 0xe8a00003) // STMIA r0!, {r0, r1}
		})
		arm.regs.set(0, 0x03000010)
		arm.regs.set(1, 0x11111111)

		arm.Step()

		if got := bus.Read32(0x03000010, Sequential); got != 0x03000010 {
			t.Errorf("stored base = %#x, want the original 0x03000010", got)
		}
	})

	t.Run("base second in list stores the written-back value", func(t *testing.T) {
		arm, bus := newTestARM(func(bus *fakeBus) {
			bus.Write32(EntryPoint, 0xe8a20006) // STMIA r2!, {r1, r2}
		})
		arm.regs.set(1, 0x11111111)
		arm.regs.set(2, 0x03000010)

		arm.Step()

		if got := bus.Read32(0x03000014, Sequential); got != 0x03000018 {
			t.Errorf("stored base = %#x, want the written-back 0x03000018", got)
		}
	})
}

func TestLDMBaseInListLoadWins(t *testing.T) {
	arm, _ := newTestARM(func(bus *fakeBus) {
		bus.Write32(EntryPoint, 0xe8b00005) // LDMIA r0!, {r0, r2}
		bus.Write32(0x03000010, 0xcafef00d)
		bus.Write32(0x03000014, 0x22222222)
	})
	arm.regs.set(0, 0x03000010)

	arm.Step()

	if got := arm.regs.get(0); got != 0xcafef00d {
		t.Errorf("r0 = %#x, want the loaded 0xcafef00d over writeback", got)
	}
}

// TestSTMUserBank checks the S bit on a store multiple: the user-mode
// registers are transferred even from a privileged mode.
func TestSTMUserBank(t *testing.T) {
	arm, bus := newTestARM(func(bus *fakeBus) {
		bus.Write32(EntryPoint, 0xe9c02000) // STMIB r0, {sp}^
	})

	arm.regs.set(rSP, 0x11112222) // user/system sp
	arm.regs.switchMode(IRQMode)
	arm.regs.set(rSP, 0x33334444) // sp_irq
	arm.regs.set(0, 0x03000000)

	arm.Step()

	if got := bus.Read32(0x03000004, Sequential); got != 0x11112222 {
		t.Errorf("stored sp = %#x, want the user bank's 0x11112222", got)
	}
}

// TestLDMWithPCAndSRestoresCPSR checks the exception-return idiom: an LDM
// with the S bit and r15 in the list reloads CPSR from the current SPSR.
func TestLDMWithPCAndSRestoresCPSR(t *testing.T) {
	arm, _ := newTestARM(func(bus *fakeBus) {
		bus.Write32(EntryPoint, 0xe8f08000) // LDMIA r0!, {pc}^
		bus.Write32(0x03000000, 0x08000100)
	})

	arm.regs.switchMode(IRQMode)
	arm.regs.spsrIRQ = status{carry: true, mode: System}
	arm.regs.set(0, 0x03000000)

	result := arm.Step()

	if !result.Branched {
		t.Error("loading pc did not classify the next fetch as a branch")
	}
	if arm.regs.cpsr.mode != System {
		t.Errorf("mode = %s, want SYS restored from SPSR", arm.regs.cpsr.mode)
	}
	if !arm.regs.cpsr.carry {
		t.Error("carry not restored from SPSR")
	}
	if got := arm.regs.get(rPC); got != 0x08000100 {
		t.Errorf("pc = %#x, want 0x08000100", got)
	}
}
