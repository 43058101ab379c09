// Package opcode holds the single static, bidirectional mapping between a
// MIX mnemonic (e.g. "ENTA", "J3NZ") and its (code, default field) pair,
// grounded on the MIX operator table (original_source/mix_simulator/operator.py).
package opcode

import "fmt"

// Code is the 6-bit operation code carried in byte 5 of an instruction word.
type Code byte

// Numeric operation codes, grouped the way Knuth groups them.
const (
	NOP Code = 0

	ADD Code = 1
	SUB Code = 2
	MUL Code = 3
	DIV Code = 4

	CONV Code = 5 // field variant selects NUM(0) / CHAR(1) / HLT(2)
	SH   Code = 6 // field variant selects SLA/SRA/SLAX/SRAX/SLC/SRC
	MOVE Code = 7

	LDA  Code = 8
	LD1  Code = 9
	LD2  Code = 10
	LD3  Code = 11
	LD4  Code = 12
	LD5  Code = 13
	LD6  Code = 14
	LDX  Code = 15
	LDAN Code = 16
	LD1N Code = 17
	LD2N Code = 18
	LD3N Code = 19
	LD4N Code = 20
	LD5N Code = 21
	LD6N Code = 22
	LDXN Code = 23

	STA Code = 24
	ST1 Code = 25
	ST2 Code = 26
	ST3 Code = 27
	ST4 Code = 28
	ST5 Code = 29
	ST6 Code = 30
	STX Code = 31
	STJ Code = 32
	STZ Code = 33

	JBUS Code = 34
	IOC  Code = 35
	IN   Code = 36
	OUT  Code = 37
	JRED Code = 38

	JMP Code = 39 // field variant selects JMP/JSJ/JOV/JNOV/JL/JE/JG/JGE/JNE/JLE

	JA Code = 40 // register jumps, field variant selects N/Z/P/NN/NZ/NP
	J1 Code = 41
	J2 Code = 42
	J3 Code = 43
	J4 Code = 44
	J5 Code = 45
	J6 Code = 46
	JX Code = 47

	ATA Code = 48 // address transfer, field variant selects INC/DEC/ENT/ENN
	AT1 Code = 49
	AT2 Code = 50
	AT3 Code = 51
	AT4 Code = 52
	AT5 Code = 53
	AT6 Code = 54
	ATX Code = 55

	CMPA Code = 56
	CMP1 Code = 57
	CMP2 Code = 58
	CMP3 Code = 59
	CMP4 Code = 60
	CMP5 Code = 61
	CMP6 Code = 62
	CMPX Code = 63
)

// CodeField is the (numeric opcode, default field) pair a mnemonic encodes to.
type CodeField struct {
	Code  Code
	Field byte
}

// mnemonics is the canonical mnemonic -> (code, field) table: 144
// distinct MIX mnemonics. Names outside these families, such as the
// floating-point variants, are not in the table. Register-family mnemonics (INCA/DECA/ENTA/ENNA,
// the J*N/Z/P/NN/NZ/NP family, the six shifts, the ten JMP variants, and
// NUM/CHAR/HLT) share a numeric code and differ only in field.
var mnemonics = map[string]CodeField{
	"NOP": {NOP, 0},

	"ADD": {ADD, 5},
	"SUB": {SUB, 5},
	"MUL": {MUL, 5},
	"DIV": {DIV, 5},

	"NUM":  {CONV, 0},
	"CHAR": {CONV, 1},
	"HLT":  {CONV, 2},

	"SLA":  {SH, 0},
	"SRA":  {SH, 1},
	"SLAX": {SH, 2},
	"SRAX": {SH, 3},
	"SLC":  {SH, 4},
	"SRC":  {SH, 5},

	"MOVE": {MOVE, 0},

	"LDA": {LDA, 5}, "LD1": {LD1, 5}, "LD2": {LD2, 5}, "LD3": {LD3, 5},
	"LD4": {LD4, 5}, "LD5": {LD5, 5}, "LD6": {LD6, 5}, "LDX": {LDX, 5},
	"LDAN": {LDAN, 5}, "LD1N": {LD1N, 5}, "LD2N": {LD2N, 5}, "LD3N": {LD3N, 5},
	"LD4N": {LD4N, 5}, "LD5N": {LD5N, 5}, "LD6N": {LD6N, 5}, "LDXN": {LDXN, 5},

	"STA": {STA, 5}, "ST1": {ST1, 5}, "ST2": {ST2, 5}, "ST3": {ST3, 5},
	"ST4": {ST4, 5}, "ST5": {ST5, 5}, "ST6": {ST6, 5}, "STX": {STX, 5},
	"STJ": {STJ, 2}, "STZ": {STZ, 5},

	"JBUS": {JBUS, 0}, "IOC": {IOC, 0}, "IN": {IN, 0}, "OUT": {OUT, 0}, "JRED": {JRED, 0},

	"JMP": {JMP, 0}, "JSJ": {JMP, 1}, "JOV": {JMP, 2}, "JNOV": {JMP, 3},
	"JL": {JMP, 4}, "JE": {JMP, 5}, "JG": {JMP, 6}, "JGE": {JMP, 7},
	"JNE": {JMP, 8}, "JLE": {JMP, 9},

	"JAN": {JA, 0}, "JAZ": {JA, 1}, "JAP": {JA, 2}, "JANN": {JA, 3}, "JANZ": {JA, 4}, "JANP": {JA, 5},
	"J1N": {J1, 0}, "J1Z": {J1, 1}, "J1P": {J1, 2}, "J1NN": {J1, 3}, "J1NZ": {J1, 4}, "J1NP": {J1, 5},
	"J2N": {J2, 0}, "J2Z": {J2, 1}, "J2P": {J2, 2}, "J2NN": {J2, 3}, "J2NZ": {J2, 4}, "J2NP": {J2, 5},
	"J3N": {J3, 0}, "J3Z": {J3, 1}, "J3P": {J3, 2}, "J3NN": {J3, 3}, "J3NZ": {J3, 4}, "J3NP": {J3, 5},
	"J4N": {J4, 0}, "J4Z": {J4, 1}, "J4P": {J4, 2}, "J4NN": {J4, 3}, "J4NZ": {J4, 4}, "J4NP": {J4, 5},
	"J5N": {J5, 0}, "J5Z": {J5, 1}, "J5P": {J5, 2}, "J5NN": {J5, 3}, "J5NZ": {J5, 4}, "J5NP": {J5, 5},
	"J6N": {J6, 0}, "J6Z": {J6, 1}, "J6P": {J6, 2}, "J6NN": {J6, 3}, "J6NZ": {J6, 4}, "J6NP": {J6, 5},
	"JXN": {JX, 0}, "JXZ": {JX, 1}, "JXP": {JX, 2}, "JXNN": {JX, 3}, "JXNZ": {JX, 4}, "JXNP": {JX, 5},

	"INCA": {ATA, 0}, "DECA": {ATA, 1}, "ENTA": {ATA, 2}, "ENNA": {ATA, 3},
	"INC1": {AT1, 0}, "DEC1": {AT1, 1}, "ENT1": {AT1, 2}, "ENN1": {AT1, 3},
	"INC2": {AT2, 0}, "DEC2": {AT2, 1}, "ENT2": {AT2, 2}, "ENN2": {AT2, 3},
	"INC3": {AT3, 0}, "DEC3": {AT3, 1}, "ENT3": {AT3, 2}, "ENN3": {AT3, 3},
	"INC4": {AT4, 0}, "DEC4": {AT4, 1}, "ENT4": {AT4, 2}, "ENN4": {AT4, 3},
	"INC5": {AT5, 0}, "DEC5": {AT5, 1}, "ENT5": {AT5, 2}, "ENN5": {AT5, 3},
	"INC6": {AT6, 0}, "DEC6": {AT6, 1}, "ENT6": {AT6, 2}, "ENN6": {AT6, 3},
	"INCX": {ATX, 0}, "DECX": {ATX, 1}, "ENTX": {ATX, 2}, "ENNX": {ATX, 3},

	"CMPA": {CMPA, 5}, "CMP1": {CMP1, 5}, "CMP2": {CMP2, 5}, "CMP3": {CMP3, 5},
	"CMP4": {CMP4, 5}, "CMP5": {CMP5, 5}, "CMP6": {CMP6, 5}, "CMPX": {CMPX, 5},
}

// byCodeField is the reverse index built once at init time for disassembly.
var byCodeField = make(map[CodeField]string, len(mnemonics))

func init() {
	for name, cf := range mnemonics {
		if existing, ok := byCodeField[cf]; ok {
			panic(fmt.Sprintf("opcode: %s and %s both map to %+v", existing, name, cf))
		}
		byCodeField[cf] = name
	}
}

// Lookup returns the (code, default field) pair for a mnemonic, and whether
// the mnemonic is known.
func Lookup(mnemonic string) (CodeField, bool) {
	cf, ok := mnemonics[mnemonic]
	return cf, ok
}

// FromCodeAndField resolves a mnemonic from its numeric opcode and field,
// the inverse of Lookup -- the basis for disassembly.
func FromCodeAndField(code Code, field byte) (string, bool) {
	name, ok := byCodeField[CodeField{code, field}]
	return name, ok
}

// IsKnown reports whether a mnemonic exists in the table. Assembler
// directives are not part of this table and are not matched.
func IsKnown(mnemonic string) bool {
	_, ok := mnemonics[mnemonic]
	return ok
}
