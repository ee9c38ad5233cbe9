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

// TestModeSwitchBanking: the set of banked registers visible after a
// mode switch matches the architecture's bank table, and switching back
// restores the prior set exactly.
func TestModeSwitchBanking(t *testing.T) {
	rf := newRegisterFile()

	for i := 0; i < rPC; i++ {
		rf.set(i, uint32(0x1000+i))
	}

	rf.switchMode(IRQMode)

	for i := 0; i <= rIP; i++ {
		if got := rf.get(i); got != uint32(0x1000+i) {
			t.Errorf("IRQ mode: r%d = %#x, want %#x (r0-r12 are shared)", i, got, 0x1000+i)
		}
	}

	rf.set(rSP, 0xaaaa)
	rf.set(rLR, 0xbbbb)
	if got := rf.getUser(rSP); got == 0xaaaa {
		t.Error("write to r13_irq leaked into the user bank")
	}

	rf.switchMode(System)
	for i := 0; i < rPC; i++ {
		if got := rf.get(i); got != uint32(0x1000+i) {
			t.Errorf("after switching back: r%d = %#x, want %#x", i, got, 0x1000+i)
		}
	}
}

// TestFIQBanksR8ToR14 pins down the one mode whose bank extends below
// r13: FIQ shadows all of r8-r14.
func TestFIQBanksR8ToR14(t *testing.T) {
	rf := newRegisterFile()

	for i := 0; i < rPC; i++ {
		rf.set(i, uint32(0x2000+i))
	}

	rf.switchMode(FIQ)
	for i := rBanked; i <= rLR; i++ {
		rf.set(i, uint32(0xf000+i))
	}

	for i := 0; i < rBanked; i++ {
		if got := rf.get(i); got != uint32(0x2000+i) {
			t.Errorf("FIQ: r%d = %#x, want %#x (r0-r7 are shared)", i, got, 0x2000+i)
		}
	}
	for i := rBanked; i <= rLR; i++ {
		if got := rf.getUser(i); got != uint32(0x2000+i) {
			t.Errorf("FIQ write to r%d reached the user bank: %#x", i, got)
		}
	}

	rf.switchMode(User)
	for i := rBanked; i <= rLR; i++ {
		if got := rf.get(i); got != uint32(0x2000+i) {
			t.Errorf("USER after FIQ: r%d = %#x, want %#x", i, got, 0x2000+i)
		}
	}
}

// TestUserViewIgnoresMode checks the separate user-bank view used by the
// S-bit block transfer: it resolves to the USER/SYSTEM set whatever the
// active mode.
func TestUserViewIgnoresMode(t *testing.T) {
	rf := newRegisterFile()
	rf.set(rSP, 0x03007f00)

	rf.switchMode(Supervisor)
	rf.set(rSP, 0x03007fe0)

	if got := rf.getUser(rSP); got != 0x03007f00 {
		t.Errorf("user view of r13 from SVC = %#x, want 0x03007f00", got)
	}
	if got := rf.get(rSP); got != 0x03007fe0 {
		t.Errorf("banked r13 in SVC = %#x, want 0x03007fe0", got)
	}

	rf.setUser(rSP, 0x03007e00)
	rf.switchMode(System)
	if got := rf.get(rSP); got != 0x03007e00 {
		t.Errorf("r13 after user-view write = %#x, want 0x03007e00", got)
	}
}

func TestCurrentSPSR(t *testing.T) {
	rf := newRegisterFile()

	if _, ok := rf.currentSPSR(); ok {
		t.Error("SYSTEM mode reported an SPSR; it has none")
	}
	rf.switchMode(User)
	if _, ok := rf.currentSPSR(); ok {
		t.Error("USER mode reported an SPSR; it has none")
	}

	rf.switchMode(Supervisor)
	spsr, ok := rf.currentSPSR()
	if !ok {
		t.Fatal("SVC mode reported no SPSR")
	}
	if spsr != &rf.spsrSVC {
		t.Error("SVC mode's SPSR does not resolve to spsrSVC")
	}
}

func TestSetPCAlignment(t *testing.T) {
	rf := newRegisterFile()

	rf.setPC(0x08000003)
	if got := rf.get(rPC); got != 0x08000000 {
		t.Errorf("ARM-state PC = %#x, want word-aligned 0x08000000", got)
	}

	rf.cpsr.thumb = true
	rf.setPC(0x08000003)
	if got := rf.get(rPC); got != 0x08000002 {
		t.Errorf("Thumb-state PC = %#x, want halfword-aligned 0x08000002", got)
	}
}

// TestStatusPackUnpackRoundTrip checks the CPSR wire format survives a
// pack/unpack cycle for every mode and flag combination that matters.
func TestStatusPackUnpackRoundTrip(t *testing.T) {
	modes := []Mode{User, FIQ, IRQMode, Supervisor, Abort, Undefined, System}
	for _, m := range modes {
		sr := status{
			negative:   true,
			carry:      true,
			irqDisable: true,
			thumb:      true,
			mode:       m,
		}
		var back status
		if !back.unpack(sr.pack()) {
			t.Errorf("%s: unpack rejected a packed status", m)
		}
		if back != sr {
			t.Errorf("%s: round trip changed the status: %+v != %+v", m, back, sr)
		}
	}
}

func TestStatusUnpackRejectsBadMode(t *testing.T) {
	sr := status{mode: Supervisor}
	if sr.unpack(0b00000) {
		t.Error("unpack accepted an unrecognised mode encoding")
	}
	if sr.mode != Supervisor {
		t.Errorf("mode changed on a rejected unpack: %s", sr.mode)
	}
}
