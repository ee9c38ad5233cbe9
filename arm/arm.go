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

import "fmt"

// ARM is a cycle-stepped interpreter of the ARMv4T instruction set, as
// found in the ARM7TDMI core. It owns no memory of its own beyond its
// register file; every access is routed through the Bus supplied at
// construction.
type ARM struct {
	cfg Config
	bus Bus

	regs *registerFile

	// currInstruction and currInstructionAddr are the prefetch slot: the
	// instruction Step is about to dispatch, and the address it was
	// fetched from. currentExecAddr mirrors currInstructionAddr for the
	// duration of a single Step call, for handlers (Thumb's long
	// branch-with-link) that need the unbiased fetch address rather than
	// the PC-as-operand reading that readOperandARM/readOperandThumb give.
	currInstruction     uint32
	currInstructionAddr uint32
	currentExecAddr     uint32
}

// NewARM constructs an ARM bound to bus, with the given configuration, and
// resets it to the architectural initial state.
func NewARM(cfg Config, bus Bus) *ARM {
	arm := &ARM{
		cfg:  cfg,
		bus:  bus,
		regs: newRegisterFile(),
	}
	arm.Reset()
	return arm
}

// Reset restores the architectural initial state: SYSTEM mode, ARM state,
// Z and C set, PC and r0 primed with the entry point, r1 with the GBA's
// BIOS-handoff sentinel, and the banked stack pointers primed the way the
// GBA BIOS leaves them.
func (arm *ARM) Reset() {
	arm.regs = newRegisterFile()
	arm.regs.switchMode(System)

	arm.regs.cpsr.thumb = false
	arm.regs.cpsr.zero = true
	arm.regs.cpsr.carry = true
	arm.regs.cpsr.irqDisable = false
	arm.regs.cpsr.fiqDisable = false

	arm.regs.set(0, arm.cfg.EntryPoint)
	arm.regs.set(1, 0x000000ea)
	arm.regs.set(rSP, 0x03007f00)

	arm.regs.svcRegs[0] = 0x03007fe0
	arm.regs.irqRegs[0] = 0x03007fa0

	arm.regs.setPC(arm.cfg.EntryPoint)

	arm.bus.ResetCycleCountTimeline()
	arm.currInstructionAddr = arm.regs.get(rPC)
	arm.currInstruction = arm.fetch(arm.currInstructionAddr, NonSequential)
}

// fetch loads the instruction word at addr, at the width the current T
// state calls for, and records it against the bus's execution timeline.
func (arm *ARM) fetch(addr uint32, cycle CycleType) uint32 {
	if arm.regs.cpsr.thumb {
		arm.bus.AddCycleToExecutionTimeline(cycle, addr, 2)
		return uint32(arm.bus.Read16(addr, cycle))
	}
	arm.bus.AddCycleToExecutionTimeline(cycle, addr, 4)
	return arm.bus.Read32(addr, cycle)
}

// Step executes the prefetched instruction (or services a pending IRQ in
// its place) and refills the prefetch slot. It never fails: an unknown
// opcode or a reserved condition field is logged and treated as a no-op
// rather than a fault, and an architecturally restricted operand
// combination is logged while the handler's best-effort path still runs,
// per the core's infallibility contract.
func (arm *ARM) Step() StepResult {
	arm.bus.ResetCycleCountTimeline()

	irq := arm.bus.Interrupts()
	if irq.pending(arm.regs.cpsr.irqDisable) {
		arm.takeIRQ()
		arm.currInstructionAddr = arm.regs.get(rPC)
		arm.currInstruction = arm.fetch(arm.currInstructionAddr, Branch)
		return StepResult{
			Cycles:   1 + arm.bus.GetMemoryAccessCycles(),
			Branched: true,
			IRQTaken: true,
		}
	}

	arm.currentExecAddr = arm.currInstructionAddr

	width := uint32(4)
	if arm.regs.cpsr.thumb {
		width = 2
	}
	arm.regs.set(rPC, arm.currInstructionAddr+width)

	var branched bool
	if arm.regs.cpsr.thumb {
		branched = arm.dispatchThumb(uint16(arm.currInstruction))
	} else {
		branched = arm.dispatchARM(arm.currInstruction)
	}

	cycle := Sequential
	if branched {
		cycle = Branch
	}
	nextAddr := arm.regs.get(rPC)

	arm.currInstructionAddr = nextAddr
	arm.currInstruction = arm.fetch(nextAddr, cycle)

	return StepResult{
		Cycles:   1 + arm.bus.GetMemoryAccessCycles(),
		Branched: branched,
	}
}

// dispatchARM evaluates the condition field and, if it holds, dispatches
// instr through the ARM decode table. It returns true if the next fetch
// should be classified as a branch access.
func (arm *ARM) dispatchARM(instr uint32) bool {
	cond := uint8(instr >> 28)
	ok, valid := arm.regs.cpsr.condition(cond)
	if !valid {
		arm.cfg.Logger.WithField("instr", fmt.Sprintf("%08x", instr)).Warn("reserved condition field (NV)")
		return false
	}
	if !ok {
		return false
	}

	idx := ((instr >> 16) & 0xff0) | ((instr >> 4) & 0xf)
	handler := armLUT[idx]
	if handler == nil {
		return armUndefined(arm, instr)
	}
	return handler(arm, instr)
}

// dispatchThumb dispatches opcode through the Thumb decode table. Thumb
// has no per-instruction condition field outside the conditional-branch
// form, which evaluates its own condition internally.
func (arm *ARM) dispatchThumb(opcode uint16) bool {
	idx := opcode >> 6
	handler := thumbLUT[idx]
	if handler == nil {
		return thumbUndefinedThumb(arm, opcode)
	}
	return handler(arm, opcode)
}

// Run steps the core until at least cycles cycles have been consumed and
// returns the number actually consumed, which can overshoot by up to one
// instruction's worth: a step is atomic and is never abandoned partway.
// Hosts interleaving the CPU with other subsystems call this with their
// scheduling quantum.
func (arm *ARM) Run(cycles uint32) uint32 {
	var consumed uint32
	for consumed < cycles {
		consumed += arm.Step().Cycles
	}
	return consumed
}

// assertRestricted logs msg at Warn level if cfg.StrictAsserts is set and
// cond holds. It never changes control flow; the architecture leaves these
// situations undefined, and this core's best-effort path runs regardless.
func (arm *ARM) assertRestricted(cond bool, msg string) {
	if cond && arm.cfg.StrictAsserts {
		arm.cfg.Logger.Warn(msg)
	}
}

func (arm *ARM) String() string {
	s := fmt.Sprintf("%s\n", arm.regs.cpsr)
	for i := 0; i < numRegs; i++ {
		s += fmt.Sprintf("r%-2d = %08x\n", i, arm.regs.get(i))
	}
	return s
}
