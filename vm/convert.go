package vm

import "github.com/knuth-mix/mixvm/mix"

// execConvert implements CONV's NUM/CHAR/HLT variants.
func (m *Machine) execConvert(field byte) error {
	switch field {
	case 0: // NUM
		m.convertNum()
	case 1: // CHAR
		m.convertChar()
	case 2: // HLT
		m.Halted = true
		return &HaltError{}
	default:
		return &UndefinedInstructionError{Code: 5, Field: field}
	}
	return nil
}

func (m *Machine) convertNum() {
	var digits [10]int
	for i, b := range m.A.B {
		digits[i] = int(b) % 10
	}
	for i, b := range m.X.B {
		digits[5+i] = int(b) % 10
	}
	var n int64
	for _, d := range digits {
		n = n*10 + int64(d)
	}
	m.A.Update(m.A.Sign, bytesOf(n)...)
}

func (m *Machine) convertChar() {
	n := abs64(m.A.Int())
	var digits [10]int
	for i := 9; i >= 0; i-- {
		digits[i] = int(n % 10)
		n /= 10
	}
	var aBytes, xBytes [5]mix.Byte
	for i := 0; i < 5; i++ {
		aBytes[i] = mix.DigitByte(digits[i])
		xBytes[i] = mix.DigitByte(digits[5+i])
	}
	m.A.B = aBytes
	m.X.B = xBytes
}
