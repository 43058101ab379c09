// Package mix implements the MIX computer's sign-magnitude data model:
// 6-bit bytes and the 5-byte words built from them.
package mix

import "fmt"

// ByteBits is the number of bits in a MIX byte, and ByteUpperLimit (64) is
// the base the sign-magnitude digit system is expressed in.
const (
	ByteBits       = 6
	ByteUpperLimit = 1 << ByteBits // 64
)

// Byte is a 6-bit unsigned value in [0, 63].
type Byte uint8

// NewByte validates that v fits in 6 bits before constructing a Byte.
func NewByte(v int) (Byte, error) {
	if v < 0 || v >= ByteUpperLimit {
		return 0, fmt.Errorf("mix: byte value %d out of range [0, %d)", v, ByteUpperLimit)
	}
	return Byte(v), nil
}

// MustByte is NewByte for callers that already know v is in range, such as
// literal table initializers.
func MustByte(v int) Byte {
	b, err := NewByte(v)
	if err != nil {
		panic(err)
	}
	return b
}

// Int returns the byte's numeric value.
func (b Byte) Int() int {
	return int(b)
}

// IntToBytes converts a signed integer into a sign and a little-endian list
// of base-64 digits: bytes[0] is the least significant. The result has at
// least `padding` bytes; padding with more precision than needed is used to
// detect overflow (a result with more digits than the target register holds).
func IntToBytes(n int64, padding int) (sign bool, bytes []Byte) {
	sign = n < 0
	mag := n
	if sign {
		mag = -mag
	}

	var out []Byte
	for mag != 0 {
		out = append(out, Byte(mag&(ByteUpperLimit-1)))
		mag >>= ByteBits
	}
	for len(out) < padding {
		out = append(out, 0)
	}
	return sign, out
}

// BytesToInt interprets bs as big-endian base-64 digits (bs[0] is most
// significant) and applies sign, producing a signed integer.
func BytesToInt(bs []Byte, sign bool) int64 {
	var mag int64
	for _, b := range bs {
		mag = (mag << ByteBits) | int64(b)
	}
	if sign {
		return -mag
	}
	return mag
}
