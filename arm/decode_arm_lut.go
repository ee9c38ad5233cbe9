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

// armHandlerFunc implements one ARM instruction family. It returns true
// if the access for the next instruction fetch should be classified as
// a branch access - i.e. r15 was written, or a branch/exception taken.
type armHandlerFunc func(arm *ARM, instr uint32) bool

// armLUT is indexed by a 12-bit discriminant built from bits 27:20 and
// 7:4 of the instruction word, which together distinguish every ARM
// instruction family. It is built once, at package initialisation,
// rather than re-decoded on every fetch.
var armLUT [4096]armHandlerFunc

func init() {
	for i := range armLUT {
		b2720 := uint8(i >> 4)
		b74 := uint8(i & 0xf)
		armLUT[i] = classifyARM(b2720, b74)
	}
}

func classifyARM(b2720, b74 uint8) armHandlerFunc {
	bit := func(v uint8, n uint) bool { return v&(1<<n) != 0 }

	bit27 := bit(b2720, 7)
	bit26 := bit(b2720, 6)
	bit25 := bit(b2720, 5)
	bit24 := bit(b2720, 4)
	bit23 := bit(b2720, 3)
	bit22 := bit(b2720, 2)
	bit21 := bit(b2720, 1)
	bit20 := bit(b2720, 0)
	bit7 := bit(b74, 3)
	bit6 := bit(b74, 2)
	bit4 := bit(b74, 0)

	zeroGroup := !bit27 && !bit26 && !bit25 // bits 27:25 == 000

	// 2. BX/BLX: 00010010 ................ 00x1
	if b2720 == 0b00010010 && !bit7 && !bit6 && bit4 {
		return armBranchExchange
	}

	if zeroGroup {
		// 3. SWP/SWPB: 00010x00 ........ 00001001
		if bit24 && !bit23 && !bit21 && !bit20 && b74 == 0b1001 {
			return armSwap
		}
		// 4. PSR transfer, register form: 00010xx0 ........ 00000000
		if bit24 && !bit23 && !bit20 && b74 == 0b0000 {
			return armPSRTransferRegister
		}
		// 6. MUL/MLA: 000000xx ........ 1001
		if !bit24 && !bit23 && !bit22 && b74 == 0b1001 {
			return armMultiply
		}
		// 7. UMULL/UMLAL/SMULL/SMLAL: 00001xxx ........ 1001
		if !bit24 && bit23 && b74 == 0b1001 {
			return armMultiplyLong
		}
		// 5/8. Halfword / signed-byte transfer, register (bit22=0) or
		// immediate (bit22=1) offset form: ........ 1SH1, SH != 00
		if bit7 && bit4 && b74 != 0b1001 {
			return armHalfwordTransfer
		}
	}

	// 4b. PSR transfer, immediate form (MSR only - MRS has no immediate
	// encoding): the same opcode/S-bit space as the register form above,
	// but with bit25 set and the shift-amount field free to vary with the
	// immediate payload, so it cannot be matched via b74 the way the
	// register form is.
	if !bit27 && !bit26 && bit25 && bit24 && !bit23 && !bit20 {
		return armPSRTransferRegister
	}

	// 9. Data processing: bits 27:26 == 00, anything not already matched
	// above.
	if !bit27 && !bit26 {
		return armDataProcessing
	}

	if !bit27 && bit26 {
		// undefined instruction space: 011.......1....
		if bit25 && bit4 {
			return armUndefined
		}
		// 10. Single data transfer (LDR/STR, B/T variants)
		return armSingleDataTransfer
	}

	if bit27 && !bit26 {
		if !bit25 {
			// 11. Block data transfer (LDM/STM)
			return armBlockDataTransfer
		}
		// 12. B/BL
		return armBranch
	}

	// bit27 && bit26: coprocessor space (110) or SWI (111, bit24==1)
	if bit25 && bit24 {
		// 13. SWI
		return armSoftwareInterrupt
	}

	// coprocessor data transfer/operation/register transfer: no
	// coprocessor exists on the GBA's ARM7TDMI, so this is undefined.
	return armUndefined
}
