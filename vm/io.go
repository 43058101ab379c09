package vm

import (
	"fmt"

	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
)

// linePrinterDevice is the field value OUT's only supported destination,
// the 24-word-per-line printer.
const linePrinterDevice = 18

// linePrinterWidth is the number of words OUT copies to the printer per
// invocation.
const linePrinterWidth = 24

// execIO implements NOP, IOC, JBUS, JRED, IN and OUT. Every peripheral is
// modeled as "always ready": JBUS (jump if busy) never jumps, and JRED
// (jump if ready) always does -- an unconditional jump with rJ updated like
// any other taken jump. IOC is a no-op since the only modeled device needs
// no control operation. IN is unimplemented for any device: the card
// reader/tape/disk peripherals it would read from are out of scope.
func (m *Machine) execIO(in Instruction, addr, nextPC int) error {
	switch in.Code {
	case opcode.NOP:
		return nil
	case opcode.IOC:
		return nil
	case opcode.JBUS:
		return nil
	case opcode.JRED:
		m.takeJump(addr, nextPC, true)
		return nil
	case opcode.IN:
		return nil
	case opcode.OUT:
		return m.execOut(in.Field, addr)
	}
	return nil
}

func (m *Machine) execOut(field byte, addr int) error {
	if field != linePrinterDevice {
		return fmt.Errorf("mix: OUT device %d not supported", field)
	}
	var line []rune
	for i := 0; i < linePrinterWidth; i++ {
		w, err := m.Memory.Load(addr + i)
		if err != nil {
			return err
		}
		for _, b := range w.B {
			line = append(line, mix.ByteToChar(b))
		}
	}
	_, err := fmt.Fprintf(m.OutputWriter, "%s\n", string(line))
	return err
}
