package vm

import (
	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
)

// execAddressTransfer implements INCi/DECi/ENTi/ENNi (i in A,1..6,X),
// dispatched by field variant 0..3; M is the raw (unindexed-resolved) signed
// effective address computed by the caller.
func (m *Machine) execAddressTransfer(in Instruction, addr int, addrSign bool) error {
	offset := int(in.Code - opcode.ATA)
	reg := m.registerFamily(offset)

	switch in.Field {
	case 0: // INC
		m.storeRegisterChecked(reg, offset, reg.Int()+int64(addr))
	case 1: // DEC
		m.storeRegisterChecked(reg, offset, reg.Int()-int64(addr))
	case 2: // ENT
		sign := addr < 0
		if addr == 0 {
			sign = addrSign
		}
		reg.Update(sign, bytesOf(abs64(int64(addr)))...)
	case 3: // ENN
		sign := addr >= 0
		if addr == 0 {
			sign = !addrSign
		}
		reg.Update(sign, bytesOf(abs64(int64(addr)))...)
	default:
		return &UndefinedInstructionError{Code: byte(in.Code), Field: in.Field}
	}
	return nil
}

// storeRegisterChecked writes n into reg, setting overflow when n exceeds
// the register's width (5 bytes for A/X, 2 bytes -- [-4095,4095] -- for an
// index register).
func (m *Machine) storeRegisterChecked(reg registerRef, offset int, n int64) {
	sign := n < 0
	mag := abs64(n)
	limit := int64(mix.MaxWordMagnitude)
	if isIndexFamilyOffset(offset) {
		limit = 4095
	}
	if mag > limit {
		m.Overflow = true
		mag = mag % (limit + 1)
	}
	reg.Update(sign, bytesOf(mag)...)
}
