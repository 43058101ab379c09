package vm

import (
	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
)

// operandValue reads the effective-address word's selected field as a signed
// integer, the V every arithmetic/compare/shift-distance computation starts
// from.
func (m *Machine) operandValue(addr, l, r int) (int64, error) {
	w, err := m.Memory.Load(addr)
	if err != nil {
		return 0, err
	}
	sign, data := w.LoadFields(l, r)
	return mix.BytesToInt(data, sign), nil
}

// storeWord5 writes n into rA (ADD/SUB) truncated to 5 bytes on overflow,
// setting the overflow toggle and reporting the low 5 bytes per spec.
func (m *Machine) storeWord5(reg *WordRegister, n int64) {
	sign, bytes := mix.IntToBytes(n, 5)
	if len(bytes) > mix.BytesInWord {
		m.Overflow = true
		bytes = bytes[:mix.BytesInWord]
	}
	reg.Update(sign, bytes...)
}

func (m *Machine) execArithmetic(in Instruction, addr int) error {
	l, r := fieldOf(in)
	v, err := m.operandValue(addr, l, r)
	if err != nil {
		return err
	}
	switch in.Code {
	case opcode.ADD:
		m.storeWord5(&m.A, m.A.Int()+v)
	case opcode.SUB:
		m.storeWord5(&m.A, m.A.Int()-v)
	case opcode.MUL:
		product := m.A.Int() * v
		neg := product < 0
		mag := product
		if neg {
			mag = -mag
		}
		xMag := mag % (mix.MaxWordMagnitude + 1)
		aMag := mag / (mix.MaxWordMagnitude + 1)
		m.A.Update(neg, bytesOf(aMag)...)
		m.X.Update(neg, bytesOf(xMag)...)
	case opcode.DIV:
		if v == 0 {
			m.Overflow = true
			return nil
		}
		aMag, xMag := abs64(m.A.Int()), abs64(m.X.Int())
		numerator := aMag*(mix.MaxWordMagnitude+1) + xMag
		divisor := abs64(v)
		if aMag >= divisor {
			m.Overflow = true
			return nil
		}
		quotient := numerator / divisor
		remainder := numerator % divisor
		quotientSign := m.A.Sign != (v < 0)
		remainderSign := m.A.Sign
		m.A.Update(quotientSign, bytesOf(quotient)...)
		m.X.Update(remainderSign, bytesOf(remainder)...)
	}
	return nil
}

// bytesOf converts a non-negative magnitude to little-endian bytes,
// discarding the sign IntToBytes would otherwise compute (the caller already
// knows the sign from the operation's rule, not from n's arithmetic sign).
func bytesOf(n int64) []mix.Byte {
	_, bytes := mix.IntToBytes(n, 5)
	return bytes
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
