package vm

import "github.com/knuth-mix/mixvm/mix"

// execShift implements SLA/SRA/SLAX/SRAX/SLC/SRC. The effective address is
// the shift distance in bytes; signs are always preserved.
func (m *Machine) execShift(in Instruction, distance int) error {
	if distance < 0 {
		return &FieldRangeError{L: 0, R: distance}
	}
	switch in.Field {
	case 0: // SLA
		shiftLinear(m.A.B[:], distance, true)
	case 1: // SRA
		shiftLinear(m.A.B[:], distance, false)
	case 2: // SLAX
		shiftAX(m, distance, true, false)
	case 3: // SRAX
		shiftAX(m, distance, false, false)
	case 4: // SLC
		shiftAX(m, distance, true, true)
	case 5: // SRC
		shiftAX(m, distance, false, true)
	default:
		return &UndefinedInstructionError{Code: byte(in.Code), Field: in.Field}
	}
	return nil
}

// shiftLinear shifts a single 5-byte register field in place, zero-filling
// vacated positions.
func shiftLinear(b []mix.Byte, distance int, left bool) {
	n := len(b)
	if distance >= n {
		distance = n
	}
	out := make([]mix.Byte, n)
	for i := 0; i < n; i++ {
		var src int
		if left {
			src = i + distance
		} else {
			src = i - distance
		}
		if src >= 0 && src < n {
			out[i] = b[src]
		}
	}
	copy(b, out)
}

// shiftAX shifts or rotates the concatenated 10-byte (rA, rX) image.
func shiftAX(m *Machine, distance int, left, circular bool) {
	var combined [10]mix.Byte
	copy(combined[0:5], m.A.B[:])
	copy(combined[5:10], m.X.B[:])

	var out [10]mix.Byte
	n := 10
	if circular {
		d := ((distance % n) + n) % n
		for i := 0; i < n; i++ {
			var src int
			if left {
				src = (i + d) % n
			} else {
				src = (i - d + n) % n
			}
			out[i] = combined[src]
		}
	} else {
		dist := distance
		if dist > n {
			dist = n
		}
		for i := 0; i < n; i++ {
			var src int
			if left {
				src = i + dist
			} else {
				src = i - dist
			}
			if src >= 0 && src < n {
				out[i] = combined[src]
			}
		}
	}

	copy(m.A.B[:], out[0:5])
	copy(m.X.B[:], out[5:10])
}
