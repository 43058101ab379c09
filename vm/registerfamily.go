package vm

import "github.com/knuth-mix/mixvm/mix"

// registerRef is the common surface WordRegister and IndexRegister share,
// letting the load/store/compare/address-transfer families dispatch across
// the 8-register group (A, I1..I6, X) with one code path instead of eight.
type registerRef interface {
	Int() int64
	Update(sign bool, little ...mix.Byte)
	StoreFields(l, r int) (sign *bool, data []mix.Byte)
	AsWord() mix.Word
}

// registerFamily resolves offset 0..7 (the position of an opcode within an
// 8-wide LD/ST/CMP/address-transfer family) to A, I1..I6, or X.
func (m *Machine) registerFamily(offset int) registerRef {
	switch offset {
	case 0:
		return &m.A
	case 7:
		return &m.X
	default:
		return &m.I[offset-1]
	}
}
