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

// armSwap implements SWP and SWPB: an atomic read of the memory at [rn]
// followed by a write of rm to the same address. The loaded value is
// subject to the ordinary LDR rotation rule on a misaligned word address;
// the value written is not rotated.
func armSwap(arm *ARM, instr uint32) bool {
	b := instr&(1<<22) != 0
	rn := int((instr >> 16) & 0xf)
	rd := int((instr >> 12) & 0xf)
	rm := int(instr & 0xf)

	arm.assertRestricted(rn == rPC || rd == rPC || rm == rPC, "SWP/SWPB: r15 used as an operand")
	arm.assertRestricted(rn == rd || rn == rm, "SWP/SWPB: rn shared with rd or rm is architecturally restricted")

	addr := arm.regs.get(rn)
	cycle := NonSequential

	if b {
		old := arm.bus.Read8(addr, cycle)
		arm.bus.Write8(addr, uint8(arm.regs.get(rm)))
		arm.regs.set(rd, uint32(old))
	} else {
		old := arm.readWord(addr, cycle)
		arm.writeWord(addr, arm.regs.get(rm))
		arm.regs.set(rd, old)
	}
	return false
}
