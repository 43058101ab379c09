package mix

import "fmt"

// alphabet is MIX's 56-character code, grounded on
// original_source/mix_simulator/character_code.py: byte value is the index
// into this string.
const alphabet = " ABCDEFGHI" + "ΔJKLMNOPQR" + "ΣΠSTUVWXYZ" + "0123456789" + ".,()+-*/=$" + "<>@;:'"

// ByteToChar returns the character a byte represents.
func ByteToChar(b Byte) rune {
	return []rune(alphabet)[b]
}

// CharToByte returns the byte a character encodes to, and whether the
// character exists in the MIX alphabet.
func CharToByte(c rune) (Byte, bool) {
	for i, r := range []rune(alphabet) {
		if r == c {
			return Byte(i), true
		}
	}
	return 0, false
}

// MustCharToByte panics if c isn't in the MIX alphabet; for ALF literals and
// other call sites that have already validated their input.
func MustCharToByte(c rune) Byte {
	b, ok := CharToByte(c)
	if !ok {
		panic(fmt.Sprintf("mix: %q is not a MIX character", c))
	}
	return b
}

// DigitByte returns the byte encoding decimal digit d (0..9).
func DigitByte(d int) Byte {
	return Byte(30 + d)
}

// ByteDigit reports the decimal digit a byte encodes, for bytes 30..39.
func ByteDigit(b Byte) (int, bool) {
	if b < 30 || b > 39 {
		return 0, false
	}
	return int(b - 30), true
}
