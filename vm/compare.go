package vm

import (
	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
)

// execCompare implements CMPA..CMPX: compare a register's field (L:R)
// against the effective-address word's same field, treating -0 == +0. A
// (0:0) field forces EQUAL, since it compares nothing.
func (m *Machine) execCompare(in Instruction, addr int) error {
	l, r := fieldOf(in)
	if l == 0 && r == 0 {
		m.Comparison = CompareEqual
		return nil
	}

	offset := int(in.Code - opcode.CMPA)
	reg := m.registerFamily(offset)

	regSign, regData := reg.AsWord().LoadFields(l, r)
	regVal := mix.BytesToInt(regData, regSign)

	w, err := m.Memory.Load(addr)
	if err != nil {
		return err
	}
	memSign, memData := w.LoadFields(l, r)
	memVal := mix.BytesToInt(memData, memSign)

	switch {
	case regVal < memVal:
		m.Comparison = CompareLess
	case regVal > memVal:
		m.Comparison = CompareGreater
	default:
		m.Comparison = CompareEqual
	}
	return nil
}
