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

// armSingleDataTransfer implements LDR/STR and their byte-access (B)
// variants. The offset's register/immediate polarity (bit25) is the
// opposite of data processing's: here bit25 set means the offset is a
// shifted register, clear means a 12-bit immediate.
func armSingleDataTransfer(arm *ARM, instr uint32) bool {
	registerOffset := instr&(1<<25) != 0
	p := instr&(1<<24) != 0
	u := instr&(1<<23) != 0
	b := instr&(1<<22) != 0
	w := instr&(1<<21) != 0
	l := instr&(1<<20) != 0
	rn := int((instr >> 16) & 0xf)
	rd := int((instr >> 12) & 0xf)

	var offset uint32
	if registerOffset {
		rm := int(instr & 0xf)
		arm.assertRestricted(rm == rPC, "LDR/STR: r15 used as the offset register")
		st := shiftType((instr >> 5) & 0x3)
		amount := uint8((instr >> 7) & 0x1f)
		offset, _ = shift(arm.regs.get(rm), st, amount, true, arm.regs.cpsr.carry)
	} else {
		offset = instr & 0xfff
	}

	base := arm.readOperandARM(rn, false)
	address := base
	if p {
		if u {
			address += offset
		} else {
			address -= offset
		}
		if w && !(l && rd == rn) {
			// on a load, rd takes priority over base writeback when the
			// two name the same register.
			arm.regs.set(rn, address)
		}
	}

	cycle := NonSequential
	branched := false

	if l {
		var value uint32
		if b {
			value = uint32(arm.bus.Read8(address, cycle))
		} else {
			value = arm.readWord(address, cycle)
		}
		if rd == rPC {
			arm.regs.setPC(value)
			branched = true
		} else {
			arm.regs.set(rd, value)
		}
	} else {
		value := arm.regs.get(rd)
		if rd == rPC {
			// a stored PC reads as the instruction's address plus 12, one
			// word further ahead than the usual operand bias.
			value = arm.regs.get(rPC) + 8
		}
		if b {
			arm.bus.Write8(address, uint8(value))
		} else {
			arm.writeWord(address, value)
		}
	}

	if !p && !(l && rd == rn) {
		if u {
			address = base + offset
		} else {
			address = base - offset
		}
		arm.regs.set(rn, address)
	}

	return branched
}
