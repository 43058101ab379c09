package opcode

import (
	"fmt"

	"github.com/knuth-mix/mixvm/mix"
)

// Mnemonic resolves a (code, field) pair to its mnemonic, falling back to a
// numeric placeholder for codes the table doesn't recognize -- used by the
// debugger's disassemble command and by the Instruction.String formatter.
func Mnemonic(code Code, field byte) string {
	if name, ok := FromCodeAndField(code, field); ok {
		return name
	}
	return fmt.Sprintf("???(%d,%d)", code, field)
}

// Disassemble renders a memory word as MIXAL-style text: mnemonic, address,
// and (if present) index/field qualifiers -- the reverse of assembling a
// single instruction line. It works directly off the word's bytes rather
// than vm.Instruction, since vm already depends on this package.
func Disassemble(w mix.Word) string {
	addr := mix.BytesToInt(w.B[0:2], w.Sign)
	index := int(w.B[2])
	field := byte(w.B[3])
	code := Code(w.B[4])

	cf, known := Lookup(Mnemonic(code, field))
	mnemonic := Mnemonic(code, field)

	operand := fmt.Sprintf("%d", addr)
	if index != 0 {
		operand += fmt.Sprintf(",%d", index)
	}
	if known && field != cf.Field {
		operand += fmt.Sprintf("(%d:%d)", field/8, field%8)
	} else if !known {
		operand += fmt.Sprintf("(%d:%d)", field/8, field%8)
	}
	return fmt.Sprintf("%-4s %s", mnemonic, operand)
}
