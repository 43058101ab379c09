package vm

import "github.com/knuth-mix/mixvm/opcode"

// execJump implements JMP's ten field variants and the register-jump
// families JA..JX. addr is the jump target M; nextPC is the PC value after
// the driver's post-fetch increment, the address rJ captures on a taken
// jump.
func (m *Machine) execJump(in Instruction, addr, nextPC int) error {
	if in.Code == opcode.JMP {
		return m.execJMP(in, addr, nextPC)
	}
	return m.execRegisterJump(in, addr, nextPC)
}

func (m *Machine) execJMP(in Instruction, addr, nextPC int) error {
	taken := false
	saveJ := true
	switch in.Field {
	case 0: // JMP
		taken = true
	case 1: // JSJ
		taken = true
		saveJ = false
	case 2: // JOV
		if m.Overflow {
			m.Overflow = false
			taken = true
		}
	case 3: // JNOV
		if !m.Overflow {
			taken = true
		} else {
			m.Overflow = false
		}
	case 4:
		taken = m.Comparison == CompareLess
	case 5:
		taken = m.Comparison == CompareEqual
	case 6:
		taken = m.Comparison == CompareGreater
	case 7:
		taken = m.Comparison != CompareLess
	case 8:
		taken = m.Comparison != CompareEqual
	case 9:
		taken = m.Comparison != CompareGreater
	default:
		return &UndefinedInstructionError{Code: byte(in.Code), Field: in.Field}
	}
	if taken {
		m.takeJump(addr, nextPC, saveJ)
	}
	return nil
}

func (m *Machine) execRegisterJump(in Instruction, addr, nextPC int) error {
	offset := int(in.Code - opcode.JA)
	reg := m.registerFamily(offset)
	v := reg.Int()

	var taken bool
	switch in.Field {
	case 0:
		taken = v < 0
	case 1:
		taken = v == 0
	case 2:
		taken = v > 0
	case 3:
		taken = v >= 0
	case 4:
		taken = v != 0
	case 5:
		taken = v <= 0
	default:
		return &UndefinedInstructionError{Code: byte(in.Code), Field: in.Field}
	}
	if taken {
		m.takeJump(addr, nextPC, true)
	}
	return nil
}

func (m *Machine) takeJump(addr, nextPC int, saveJ bool) {
	if saveJ {
		m.J.Update(bytesOf(int64(nextPC))...)
	}
	m.PC = addr
}
