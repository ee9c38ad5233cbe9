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

// Register name constants for the 16 architectural indices.
const (
	rBanked = 8 // first register index with a banked copy in any mode
	rSB     = 9 // static base, no special handling, named for readability
	rSL     = 10
	rFP     = 11
	rIP     = 12
	rSP     = 13
	rLR     = 14
	rPC     = 15
	numRegs = 16
)

// registerFile holds the 16 general-purpose physical storage cells for
// every mode plus CPSR and the five SPSRs, and resolves the visible
// 16-slot view for the current mode via an array of indirect slots (the
// "index-addressed indirection" banking scheme): switchMode repoints the
// slots for r8..r14 rather than copying values around.
//
// userRegs backs the USER/SYSTEM bank and is always the target of the
// user-bank view (used by block-transfer's S-bit user-register access).
type registerFile struct {
	userRegs [numRegs]uint32 // r0..r15, USER/SYSTEM bank

	fiqRegs [7]uint32 // r8_fiq..r14_fiq
	svcRegs [2]uint32 // r13_svc, r14_svc
	abtRegs [2]uint32 // r13_abt, r14_abt
	irqRegs [2]uint32 // r13_irq, r14_irq
	undRegs [2]uint32 // r13_und, r14_und

	// view holds, for every architectural index, a pointer to the
	// physical cell currently visible in the active mode. r0..r7 and r15
	// always point into userRegs; r8..r14 are repointed by switchMode.
	view [numRegs]*uint32

	// userView always resolves to the USER/SYSTEM bank regardless of
	// the active mode, independent of view.
	userView [numRegs]*uint32

	cpsr status

	spsrFIQ status
	spsrSVC status
	spsrABT status
	spsrIRQ status
	spsrUND status
}

func newRegisterFile() *registerFile {
	rf := &registerFile{}
	for i := 0; i < numRegs; i++ {
		rf.userView[i] = &rf.userRegs[i]
	}
	rf.switchMode(System)
	return rf
}

// get reads the architectural register r as visible in the current mode.
func (rf *registerFile) get(r int) uint32 {
	return *rf.view[r]
}

// set writes the architectural register r as visible in the current mode.
// Writes to r15 are not aligned here; handlers route PC writes through
// setPC instead, which enforces the alignment invariant.
func (rf *registerFile) set(r int, v uint32) {
	*rf.view[r] = v
}

// getUser reads register r from the USER/SYSTEM bank regardless of mode.
func (rf *registerFile) getUser(r int) uint32 {
	return *rf.userView[r]
}

// setUser writes register r into the USER/SYSTEM bank regardless of mode.
func (rf *registerFile) setUser(r int, v uint32) {
	*rf.userView[r] = v
}

// setPC writes the program counter, aligning it per the current T state:
// word-aligned in ARM, halfword-aligned in Thumb.
func (rf *registerFile) setPC(v uint32) {
	if rf.cpsr.thumb {
		v &^= 1
	} else {
		v &^= 3
	}
	rf.userRegs[rPC] = v
}

// switchMode repoints the banked slots (r8..r14) and the current SPSR
// binding to match the target mode. It never touches register values:
// the slots are rewritten rather than copying banks in and out.
func (rf *registerFile) switchMode(m Mode) {
	for i := 0; i < 8; i++ {
		rf.view[i] = &rf.userRegs[i]
	}
	rf.view[rPC] = &rf.userRegs[rPC]

	switch m {
	case User, System:
		for i := rBanked; i <= rLR; i++ {
			rf.view[i] = &rf.userRegs[i]
		}
	case FIQ:
		for i := rBanked; i <= rLR; i++ {
			rf.view[i] = &rf.fiqRegs[i-rBanked]
		}
	case Supervisor:
		for i := rBanked; i <= rIP; i++ {
			rf.view[i] = &rf.userRegs[i]
		}
		rf.view[rSP] = &rf.svcRegs[0]
		rf.view[rLR] = &rf.svcRegs[1]
	case Abort:
		for i := rBanked; i <= rIP; i++ {
			rf.view[i] = &rf.userRegs[i]
		}
		rf.view[rSP] = &rf.abtRegs[0]
		rf.view[rLR] = &rf.abtRegs[1]
	case IRQMode:
		for i := rBanked; i <= rIP; i++ {
			rf.view[i] = &rf.userRegs[i]
		}
		rf.view[rSP] = &rf.irqRegs[0]
		rf.view[rLR] = &rf.irqRegs[1]
	case Undefined:
		for i := rBanked; i <= rIP; i++ {
			rf.view[i] = &rf.userRegs[i]
		}
		rf.view[rSP] = &rf.undRegs[0]
		rf.view[rLR] = &rf.undRegs[1]
	}

	rf.cpsr.mode = m
}

// currentSPSR returns a pointer to the SPSR of the current mode, and
// false if the current mode has no SPSR (USER/SYSTEM): accessing the
// SPSR there is architecturally unpredictable and is instead routed back
// to a read of CPSR by the caller.
func (rf *registerFile) currentSPSR() (*status, bool) {
	switch rf.cpsr.mode {
	case FIQ:
		return &rf.spsrFIQ, true
	case Supervisor:
		return &rf.spsrSVC, true
	case Abort:
		return &rf.spsrABT, true
	case IRQMode:
		return &rf.spsrIRQ, true
	case Undefined:
		return &rf.spsrUND, true
	default:
		return nil, false
	}
}
