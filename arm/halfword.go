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

// armHalfwordTransfer implements STRH, LDRH, LDRSB and LDRSH. Unlike the
// reference this core is modelled on, the three load forms are mutually
// exclusive Go cases rather than a fall-through chain; SH==00 is reserved
// (that encoding belongs to SWP/SWPB, already routed away by the decoder).
func armHalfwordTransfer(arm *ARM, instr uint32) bool {
	p := instr&(1<<24) != 0
	u := instr&(1<<23) != 0
	immForm := instr&(1<<22) != 0
	w := instr&(1<<21) != 0
	l := instr&(1<<20) != 0
	rn := int((instr >> 16) & 0xf)
	rd := int((instr >> 12) & 0xf)
	sh := uint8((instr >> 5) & 0x3)

	var offset uint32
	if immForm {
		offset = ((instr >> 4) & 0xf0) | (instr & 0xf)
	} else {
		rm := int(instr & 0xf)
		arm.assertRestricted(rm == rPC, "LDRH/STRH: r15 used as the offset register")
		offset = arm.regs.get(rm)
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
			arm.regs.set(rn, address)
		}
	}

	cycle := NonSequential
	branched := false

	if l {
		var value uint32
		switch sh {
		case 0b01:
			value = arm.readHalfwordZeroExtend(address, cycle)
		case 0b10:
			value = arm.readByteSignExtend(address, cycle)
		case 0b11:
			value = arm.readHalfwordSignExtend(address, cycle)
		default:
			arm.cfg.Logger.Warn("LDRH: SH=00 is reserved (SWP/SWPB encoding)")
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
			value = arm.regs.get(rPC) + 8
		}
		arm.writeHalfword(address, value)
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
