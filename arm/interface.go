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

// StepResult reports what a single Step call did. Step never fails - the
// architecture defines an outcome for every situation the core can reach
// - so a host observes behaviour through this value rather than an error
// return.
type StepResult struct {
	// Cycles is 1 + the bus's reported memory-access cycle cost for the
	// step, per the execution loop's return-value rule.
	Cycles uint32

	// Branched reports whether the instruction executed during this step
	// caused a branch access for the next fetch (a taken B/BL/BX/BLX, a
	// write to r15, an IRQ entry, or a false condition code producing a
	// branch is never true; only the access classification matters here).
	Branched bool

	// IRQTaken reports whether this step serviced a pending interrupt
	// instead of dispatching the prefetched instruction.
	IRQTaken bool
}
