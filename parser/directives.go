package parser

import (
	"strings"

	"github.com/knuth-mix/mixvm/mix"
)

// alfBytes converts an ALF directive's raw 5-character operand to five MIX
// bytes, treating '_' as a space per the underscore-denotes-space
// convention (MIXAL's literal column layout can't otherwise represent a
// leading or trailing space in a whitespace-delimited operand field).
func alfBytes(operand string) ([5]mix.Byte, error) {
	var out [5]mix.Byte
	padded := operand
	for len(padded) < 5 {
		padded += "_"
	}
	for i := 0; i < 5; i++ {
		c := rune(padded[i])
		if c == '_' {
			c = ' '
		}
		b, ok := mix.CharToByte(c)
		if !ok {
			return out, &Error{Kind: ErrorInvalidOperand, Message: "character " + string(c) + " is not a MIX character"}
		}
		out[i] = b
	}
	return out, nil
}

// isDirective reports whether op names one of the five assembler
// directives (as opposed to a machine-instruction mnemonic).
func isDirective(op string) bool {
	return directives[strings.ToUpper(op)]
}
