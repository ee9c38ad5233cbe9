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

// takeException saves the outgoing CPSR to the SPSR of mode, banks the
// return address into that mode's r14, switches the visible register bank,
// and forces ARM state with IRQs disabled - the part of exception entry
// common to every vector this core services.
func (arm *ARM) takeException(mode Mode, lr uint32) {
	outgoing := arm.regs.cpsr
	arm.regs.switchMode(mode)

	switch mode {
	case Supervisor:
		arm.regs.spsrSVC = outgoing
		arm.regs.svcRegs[1] = lr
	case IRQMode:
		arm.regs.spsrIRQ = outgoing
		arm.regs.irqRegs[1] = lr
	case Undefined:
		arm.regs.spsrUND = outgoing
		arm.regs.undRegs[1] = lr
	}

	arm.regs.cpsr.thumb = false
	arm.regs.cpsr.irqDisable = true
}

// takeIRQ services a pending interrupt in place of dispatching the
// prefetched instruction: the return address is the prefetched
// instruction's address plus 4, matching the "PC+4" convention the
// ARM7TDMI uses for IRQ return addresses regardless of the interrupted
// state's instruction width.
func (arm *ARM) takeIRQ() {
	ret := arm.currInstructionAddr + 4
	arm.takeException(IRQMode, ret)
	arm.regs.setPC(IRQVector)
}

// takeSWI services a software interrupt. The return address handlers pass
// in is simply the current value of r15, which by the time a handler runs
// already holds the address of the instruction following the SWI, for
// both ARM (PC+4) and Thumb (PC+2) callers - the loop's pre-dispatch PC
// advance does the width-dependent arithmetic once, centrally.
func (arm *ARM) takeSWI() {
	ret := arm.regs.get(rPC)
	arm.takeException(Supervisor, ret)
	arm.regs.setPC(SWIVector)
}
