// Package encoder packs decoded field values (address, index, field,
// opcode) into the 5-byte words MIX memory stores, the inverse of
// vm.Decode. The assembler calls it once per CON/ALF/instruction line;
// vm's own executor never needs it, since it only ever decodes.
package encoder

import (
	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
)

// Instruction packs an address, index and field/opcode pair into a word,
// matching the byte layout vm.Decode reads back: bytes 1-2 the signed
// address, byte 3 the index, byte 4 the field, byte 5 the opcode.
func Instruction(addr, index int, field byte, code opcode.Code) mix.Word {
	sign, addrBytes := mix.IntToBytes(int64(addr), 2)
	var b1, b2 mix.Byte
	switch len(addrBytes) {
	case 0:
	case 1:
		b2 = addrBytes[0]
	default:
		b2, b1 = addrBytes[0], addrBytes[1]
	}
	return mix.NewWord(sign, b1, b2, mix.Byte(index), mix.Byte(field), mix.Byte(code))
}

// Constant packs a signed integer into a word for a CON directive,
// truncating to the low 5 bytes if it overflows.
func Constant(n int) mix.Word {
	sign, bytes := mix.IntToBytes(int64(n), mix.BytesInWord)
	var w mix.Word
	w.Sign = sign
	for i, b := range bytes {
		if i >= mix.BytesInWord {
			break
		}
		w.B[mix.BytesInWord-1-i] = b
	}
	return w
}

// Alf packs five MIX character bytes for an ALF directive.
func Alf(bytes [5]mix.Byte) mix.Word {
	return mix.Word{B: bytes}
}
