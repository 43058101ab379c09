package vm

import "github.com/knuth-mix/mixvm/mix"

// fieldsToStore returns the rightmost count = R - max(L,1) + 1 bytes of a
// 5-byte word image, the bytes STA/STi/STX/STJ/STZ actually write into a
// destination word's positions max(L,1)..R.
func fieldsToStore(l, r int, image [mix.BytesInWord]mix.Byte) []mix.Byte {
	lo := l
	if lo < 1 {
		lo = 1
	}
	count := r - lo + 1
	if count <= 0 {
		return nil
	}
	return append([]mix.Byte(nil), image[mix.BytesInWord-count:]...)
}

// littleEndianInto fills a fixed-size big-endian-ordered byte array from
// little-endian arguments, defaulting missing (more significant) bytes to
// zero -- the convention every register Update method shares with
// mix.IntToBytes's output.
func littleEndianInto(dst []mix.Byte, little []mix.Byte) {
	for i := range dst {
		dst[i] = 0
	}
	n := len(dst)
	for i, b := range little {
		if i >= n {
			break
		}
		dst[n-1-i] = b
	}
}

// WordRegister is a full 5-byte register: rA or rX.
type WordRegister struct {
	Sign bool
	B    [mix.BytesInWord]mix.Byte // B[0] is the most significant byte
}

// Int returns the register's signed numeric value.
func (r *WordRegister) Int() int64 {
	return mix.BytesToInt(r.B[:], r.Sign)
}

// Update sets the register from a sign and little-endian bytes (the
// rightmost/least-significant byte first); omitted bytes default to zero.
func (r *WordRegister) Update(sign bool, little ...mix.Byte) {
	r.Sign = sign
	littleEndianInto(r.B[:], little)
}

// StoreFields returns the sign (only when L==0) and the bytes a store
// instruction writes into positions max(L,1)..R of the destination word.
func (r *WordRegister) StoreFields(l, r2 int) (sign *bool, data []mix.Byte) {
	data = fieldsToStore(l, r2, r.B)
	if l == 0 {
		s := r.Sign
		sign = &s
	}
	return sign, data
}

// AsWord returns the register's 5-byte word image, the form CMP and the
// shift/compare field logic read fields from.
func (r *WordRegister) AsWord() mix.Word {
	return mix.Word{Sign: r.Sign, B: r.B}
}

// IndexRegister is a 2-byte register: I1..I6. Its numeric range is
// [-4095, 4095]; loading/storing behaves as if the high 3 bytes were zero.
type IndexRegister struct {
	Sign bool
	I4   mix.Byte
	I5   mix.Byte
}

func (r *IndexRegister) image() [mix.BytesInWord]mix.Byte {
	return [mix.BytesInWord]mix.Byte{0, 0, 0, r.I4, r.I5}
}

// Int returns the register's signed numeric value.
func (r *IndexRegister) Int() int64 {
	return mix.BytesToInt([]mix.Byte{r.I4, r.I5}, r.Sign)
}

// Update sets the register from a sign and little-endian bytes (i5 first,
// then i4); omitted bytes default to zero.
func (r *IndexRegister) Update(sign bool, little ...mix.Byte) {
	r.Sign = sign
	var data [2]mix.Byte
	littleEndianInto(data[:], little)
	r.I4, r.I5 = data[0], data[1]
}

// StoreFields mirrors WordRegister.StoreFields against the register's
// (0,0,0,i4,i5) word image.
func (r *IndexRegister) StoreFields(l, r2 int) (sign *bool, data []mix.Byte) {
	img := r.image()
	data = fieldsToStore(l, r2, img)
	if l == 0 {
		s := r.Sign
		sign = &s
	}
	return sign, data
}

// AsWord returns the register's (0,0,0,i4,i5) word image.
func (r *IndexRegister) AsWord() mix.Word {
	return mix.Word{Sign: r.Sign, B: r.image()}
}

// JumpRegister is rJ: 2 bytes, implicitly always positive. User instructions
// other than jumps cannot write it.
type JumpRegister struct {
	J4 mix.Byte
	J5 mix.Byte
}

func (r *JumpRegister) image() [mix.BytesInWord]mix.Byte {
	return [mix.BytesInWord]mix.Byte{0, 0, 0, r.J4, r.J5}
}

// Int returns rJ's numeric value (always non-negative).
func (r *JumpRegister) Int() int64 {
	return mix.BytesToInt([]mix.Byte{r.J4, r.J5}, false)
}

// Update sets J4/J5 from little-endian bytes (j5 first, then j4).
func (r *JumpRegister) Update(little ...mix.Byte) {
	var data [2]mix.Byte
	littleEndianInto(data[:], little)
	r.J4, r.J5 = data[0], data[1]
}

// StoreFields mirrors IndexRegister.StoreFields, reporting a forced-positive
// sign whenever L==0.
func (r *JumpRegister) StoreFields(l, r2 int) (sign *bool, data []mix.Byte) {
	img := r.image()
	data = fieldsToStore(l, r2, img)
	if l == 0 {
		s := false
		sign = &s
	}
	return sign, data
}

// ZeroRegister is a constant +0 word used by STZ; it is never mutated.
var ZeroRegister = WordRegister{}
