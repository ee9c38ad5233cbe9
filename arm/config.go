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

import "github.com/sirupsen/logrus"

// EntryPoint is the cartridge entry address the GBA BIOS hands off to.
const EntryPoint = 0x08000000

// IRQVector and SWIVector are the fixed exception vectors for ARM7TDMI
// running in the GBA's memory map.
const (
	IRQVector = 0x00000018
	SWIVector = 0x00000008
)

// Config gathers the knobs a host can set before constructing an ARM. The
// zero value of Config is not valid; use NewConfig.
type Config struct {
	// EntryPoint is the address the program counter and r0 are primed with
	// on Reset.
	EntryPoint uint32

	// StrictAsserts turns on architectural-restriction checks (r15 used
	// where forbidden, rd==rm in MUL/MLA, rdHi==rdLo in the long
	// multiplies, rn shared with rd or rm in SWP) that are logged at Warn
	// level when violated. Hardware
	// has no defined behaviour for these situations; leaving this off lets
	// the core take its best-effort path silently instead.
	StrictAsserts bool

	// Logger receives every diagnostic the core produces: unknown opcode
	// bit-patterns, restricted-operand violations, and unpredictable
	// condition-field encodings. Defaults to logrus' standard logger.
	Logger *logrus.Logger
}

// NewConfig returns a Config with GBA-faithful defaults.
func NewConfig() Config {
	return Config{
		EntryPoint:    EntryPoint,
		StrictAsserts: true,
		Logger:        logrus.StandardLogger(),
	}
}
