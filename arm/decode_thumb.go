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

// thumbHandlerFunc implements one of the nineteen Thumb instruction forms.
// It returns true if the access for the next instruction fetch should be
// classified as a branch access.
type thumbHandlerFunc func(arm *ARM, opcode uint16) bool

// thumbLUT is indexed by the top 10 bits of the opcode (bits 15:6), which
// is enough to distinguish every Thumb form without looking at the
// register fields.
var thumbLUT [1024]thumbHandlerFunc

func init() {
	for i := range thumbLUT {
		thumbLUT[i] = classifyThumb(uint16(i))
	}
}

// classifyThumb decodes idx, the top 10 bits (opcode bits 15:6), into one
// of the nineteen Thumb instruction forms. Bit helpers are named for the
// opcode bit position they correspond to, not their position within idx.
func classifyThumb(idx uint16) thumbHandlerFunc {
	top3 := idx >> 7 // opcode bits 15:13
	top4 := idx >> 6 // opcode bits 15:12
	top5 := idx >> 5 // opcode bits 15:11
	top6 := idx >> 4 // opcode bits 15:10

	switch {
	case top3 == 0b000:
		if (idx>>5)&0x3 == 0b11 { // opcode bits 12:11
			return thumbAddSub
		}
		return thumbShiftedRegister

	case top3 == 0b001:
		return thumbImmediate

	case top6 == 0b010000:
		return thumbALU

	case top6 == 0b010001:
		return thumbHiRegisterBX

	case top5 == 0b01001:
		return thumbPCRelativeLoad

	case top4 == 0b0101:
		if idx&(1<<3) != 0 { // opcode bit 9
			return thumbLoadStoreSignExtended
		}
		return thumbLoadStoreRegisterOffset

	case top3 == 0b011:
		return thumbLoadStoreImmediateOffset

	case top4 == 0b1000:
		return thumbLoadStoreHalfword

	case top4 == 0b1001:
		return thumbSPRelativeLoadStore

	case top4 == 0b1010:
		return thumbLoadAddress

	case top4 == 0b1011:
		switch (idx >> 2) & 0xf { // opcode bits 11:8
		case 0b0000:
			return thumbAddOffsetToSP
		case 0b0100, 0b0101, 0b1100, 0b1101:
			return thumbPushPop
		default:
			return thumbUndefinedThumb
		}

	case top4 == 0b1100:
		return thumbMultipleLoadStore

	case top4 == 0b1101:
		if (idx>>2)&0xf == 0b1111 { // opcode bits 11:8 == cond NV slot
			return thumbSoftwareInterrupt
		}
		if (idx>>2)&0xf == 0b1110 { // cond AL slot, reserved in Thumb
			return thumbUndefinedThumb
		}
		return thumbConditionalBranch

	case top4 == 0b1110:
		if idx&(1<<5) == 0 { // opcode bit 11
			return thumbUnconditionalBranch
		}
		return thumbUndefinedThumb // BLX suffix form, not present in ARMv4T

	case top4 == 0b1111:
		return thumbLongBranchLink

	default:
		return thumbUndefinedThumb
	}
}
