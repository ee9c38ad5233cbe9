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

// This file holds the CPU-side memory helpers that sit between the
// instruction handlers and the abstract Bus: address alignment and the
// architecturally defined rotate/degrade rules for misaligned loads.
// None of this is a bus concern; the bus is only ever asked for an
// aligned access.

// readWord loads the word at the word-aligned version of addr and, if
// addr was itself misaligned, rotates the result right by (addr&3)*8 -
// the "LDR rotation" rule.
func (arm *ARM) readWord(addr uint32, cycle CycleType) uint32 {
	aligned := addr &^ 3
	v := arm.bus.Read32(aligned, cycle)
	rot := (addr & 3) * 8
	if rot == 0 {
		return v
	}
	res, _ := shiftRORBy(v, uint8(rot), false, false)
	return res
}

// writeWord stores a word, ignoring the low two bits of addr per the
// architectural rule that word stores always write to an aligned address.
func (arm *ARM) writeWord(addr uint32, v uint32) {
	arm.bus.Write32(addr&^3, v)
}

// readHalfwordZeroExtend loads a zero-extended halfword, rotating the
// aligned halfword right by (addr&1)*8 if addr is odd (LDRH rule).
func (arm *ARM) readHalfwordZeroExtend(addr uint32, cycle CycleType) uint32 {
	aligned := addr &^ 1
	v := uint32(arm.bus.Read16(aligned, cycle))
	if addr&1 != 0 {
		res, _ := shiftRORBy(v, 8, false, false)
		return res
	}
	return v
}

// readByteSignExtend loads a byte and sign-extends it to 32 bits (LDRSB).
func (arm *ARM) readByteSignExtend(addr uint32, cycle CycleType) uint32 {
	v := arm.bus.Read8(addr, cycle)
	return uint32(int32(int8(v)))
}

// readHalfwordSignExtend loads a sign-extended halfword (LDRSH). On a
// misaligned address the architecture degrades this to a sign-extended
// byte read of the addressed byte.
func (arm *ARM) readHalfwordSignExtend(addr uint32, cycle CycleType) uint32 {
	if addr&1 != 0 {
		v := arm.bus.Read8(addr, cycle)
		return uint32(int32(int8(v)))
	}
	v := arm.bus.Read16(addr, cycle)
	return uint32(int32(int16(v)))
}

// writeHalfword stores the low 16 bits of v to addr&^1 (STRH).
func (arm *ARM) writeHalfword(addr uint32, v uint32) {
	arm.bus.Write16(addr&^1, uint16(v))
}
