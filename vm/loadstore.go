package vm

import (
	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
)

func reverseBytes(bs []mix.Byte) []mix.Byte {
	out := make([]mix.Byte, len(bs))
	for i, b := range bs {
		out[len(bs)-1-i] = b
	}
	return out
}

// isIndexFamilyOffset reports whether offset (0..7) names one of I1..I6
// rather than A or X -- the only registers narrow enough for the LDi
// field-width restriction to apply.
func isIndexFamilyOffset(offset int) bool {
	return offset >= 1 && offset <= 6
}

func (m *Machine) execLoad(in Instruction, addr int) error {
	var offset int
	var negate bool
	switch {
	case in.Code >= opcode.LDA && in.Code <= opcode.LDX:
		offset = int(in.Code - opcode.LDA)
	case in.Code >= opcode.LDAN && in.Code <= opcode.LDXN:
		offset = int(in.Code - opcode.LDAN)
		negate = true
	}

	w, err := m.Memory.Load(addr)
	if err != nil {
		return err
	}
	l, r := fieldOf(in)
	sign, data := w.LoadFields(l, r)

	if isIndexFamilyOffset(offset) && len(data) > 2 {
		return &IndexLoadWidthError{L: l, R: r}
	}
	if negate {
		sign = !sign
	}

	reg := m.registerFamily(offset)
	reg.Update(sign, reverseBytes(data)...)
	return nil
}

func (m *Machine) execStore(in Instruction, addr int) error {
	l, r := fieldOf(in)
	var sign *bool
	var data []mix.Byte

	switch {
	case in.Code >= opcode.STA && in.Code <= opcode.STX:
		offset := int(in.Code - opcode.STA)
		reg := m.registerFamily(offset)
		sign, data = reg.StoreFields(l, r)
	case in.Code == opcode.STJ:
		sign, data = m.J.StoreFields(l, r)
	case in.Code == opcode.STZ:
		sign, data = ZeroRegister.StoreFields(l, r)
	}

	return m.Memory.StoreFields(addr, l, r, sign, data)
}
