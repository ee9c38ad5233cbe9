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

// armBlockDataTransfer implements LDM/STM. Registers in the list are
// always visited in ascending number order and assigned to ascending
// memory addresses; the P/U bits only choose where the block of addresses
// starts and which direction it was built in, never the visiting order.
func armBlockDataTransfer(arm *ARM, instr uint32) bool {
	p := instr&(1<<24) != 0
	u := instr&(1<<23) != 0
	s := instr&(1<<22) != 0
	w := instr&(1<<21) != 0
	l := instr&(1<<20) != 0
	rn := int((instr >> 16) & 0xf)
	regList := uint16(instr & 0xffff)

	arm.assertRestricted(rn == rPC, "LDM/STM: r15 used as the base register")

	count := 0
	for i := 0; i < numRegs; i++ {
		if regList&(1<<i) != 0 {
			count++
		}
	}
	if count == 0 {
		arm.cfg.Logger.Warn("LDM/STM: empty register list is architecturally unpredictable")
		return false
	}

	base := arm.regs.get(rn)
	var start, writebackVal uint32
	switch {
	case u && !p: // IA
		start = base
		writebackVal = base + uint32(count)*4
	case u && p: // IB
		start = base + 4
		writebackVal = base + uint32(count)*4
	case !u && !p: // DA
		start = base - uint32(count)*4 + 4
		writebackVal = base - uint32(count)*4
	default: // DB
		start = base - uint32(count)*4
		writebackVal = base - uint32(count)*4
	}

	// STM with S always uses the user bank; LDM with S uses the user bank
	// only when r15 is not itself in the list (when it is, this is a
	// mode-return sequence and every register loads into the current bank).
	userBank := s && (!l || regList&(1<<rPC) == 0)

	branched := false
	addr := start
	firstReg := -1
	for i := 0; i < numRegs; i++ {
		if regList&(1<<i) == 0 {
			continue
		}
		if firstReg < 0 {
			firstReg = i
		}

		cycle := Sequential
		if i == firstReg {
			cycle = NonSequential
		}

		if l {
			value := arm.readWord(addr, cycle)
			switch {
			case userBank:
				arm.regs.setUser(i, value)
			case i == rPC:
				arm.regs.setPC(value)
				branched = true
				if s {
					if spsr, ok := arm.regs.currentSPSR(); ok {
						arm.regs.cpsr = *spsr
						arm.regs.switchMode(arm.regs.cpsr.mode)
					}
				}
			default:
				arm.regs.set(i, value)
			}
		} else {
			var value uint32
			if userBank {
				value = arm.regs.getUser(i)
			} else {
				value = arm.regs.get(i)
			}
			if i == rPC {
				value += 8
			}
			if i == rn && i != firstReg {
				// the base register, if not first in the list, stores the
				// value it will have after writeback rather than its
				// pre-transfer value.
				value = writebackVal
			}
			arm.writeWord(addr, value)
		}

		addr += 4
	}

	if w && !(l && regList&(1<<rn) != 0) {
		// LDM with the base in the register list: the loaded value wins
		// over writeback.
		arm.regs.set(rn, writebackVal)
	}

	return branched
}
