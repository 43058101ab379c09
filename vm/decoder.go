package vm

import (
	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
)

// Instruction is a decoded MIX instruction word: address (bytes 1-2, signed),
// index (byte 3), field (byte 4), and operation code (byte 5).
type Instruction struct {
	Address     int
	AddressSign bool // the word's raw sign bit; address alone can't express -0
	Index       int
	Field       byte
	Code        opcode.Code
}

// Mnemonic returns the instruction's disassembled mnemonic.
func (in Instruction) Mnemonic() string {
	return opcode.Mnemonic(in.Code, in.Field)
}

// Decode splits a memory word into its instruction fields, grounded on
// original_source/mix_simulator/instruction.py's bytes-1-2/3/4/5 breakdown.
func Decode(w mix.Word) Instruction {
	addr := mix.BytesToInt(w.B[0:2], w.Sign)
	return Instruction{
		Address:     int(addr),
		AddressSign: w.Sign,
		Index:       int(w.B[2]),
		Field:       byte(w.B[3]),
		Code:        opcode.Code(w.B[4]),
	}
}
