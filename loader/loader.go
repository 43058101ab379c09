// Package loader wires an assembled parser.Program into a vm.Machine,
// the step between assembling MIXAL source and running it.
package loader

import (
	"github.com/knuth-mix/mixvm/parser"
	"github.com/knuth-mix/mixvm/vm"
)

// Load resets machine to a clean state, writes every word of program's
// sparse memory image into it, and sets PC to the program's END-declared
// start address. Unlike the old segmented-memory loader this supersedes,
// MIX's flat 4000-cell memory needs no segment setup and the parser has
// already resolved every directive into program.Words, so there is no
// second encoding pass here.
func Load(machine *vm.Machine, program *parser.Program) error {
	machine.Reset(program.StartAddress)
	for addr, w := range program.Words {
		if err := machine.Memory.Store(addr, w); err != nil {
			return err
		}
	}
	return nil
}
