package mix

import "fmt"

// BytesInWord is the number of data bytes in a MIX word (the sign is
// carried separately).
const BytesInWord = 5

// MaxWordMagnitude is the largest magnitude a word can represent: 64^5 - 1.
const MaxWordMagnitude = 1<<(ByteBits*BytesInWord) - 1

// FieldSpec is a field selector (L:R), 0 <= L <= R <= 5, encoded in one byte
// as 8*L + R.
type FieldSpec struct {
	L, R int
}

// Encode packs the field spec into the single byte MIX instructions carry it
// as.
func (f FieldSpec) Encode() Byte {
	return Byte(8*f.L + f.R)
}

// DecodeField splits a raw field byte into its (L, R) components. This is
// the divmod(F, 8) relationship spec.md's field-encoding property exercises.
func DecodeField(f Byte) FieldSpec {
	return FieldSpec{L: int(f) / 8, R: int(f) % 8}
}

// Word is a MIX machine word: a sign and five 6-bit bytes, most significant
// first (B[0] is byte 1, B[4] is byte 5).
type Word struct {
	Sign bool
	B    [BytesInWord]Byte
}

// NewWord builds a word from a sign and five bytes in byte-1..byte-5 order.
func NewWord(sign bool, b1, b2, b3, b4, b5 Byte) Word {
	return Word{Sign: sign, B: [5]Byte{b1, b2, b3, b4, b5}}
}

// Int returns the word's signed numeric value under field (0:5).
func (w Word) Int() int64 {
	return BytesToInt(w.B[:], w.Sign)
}

// Update replaces byte i (1..5) of the word in place.
func (w *Word) Update(i int, b Byte) error {
	if i < 1 || i > BytesInWord {
		return fmt.Errorf("mix: word byte index %d not in 1..%d", i, BytesInWord)
	}
	w.B[i-1] = b
	return nil
}

// LoadFields returns the sign and data bytes selected by field (L:R). The
// sign is the word's own sign only when L == 0; otherwise it reports
// positive, per spec.md 4.1.
func (w Word) LoadFields(l, r int) (sign bool, data []Byte) {
	sign = l == 0 && w.Sign
	lo := l
	if lo < 1 {
		lo = 1
	}
	if lo > r {
		return sign, nil
	}
	return sign, append([]Byte(nil), w.B[lo-1:r]...)
}

// CompareFields is defined separately from LoadFields so comparison-specific
// tuning never has to touch load semantics, even though today it delegates.
func (w Word) CompareFields(l, r int) (sign bool, data []Byte) {
	return w.LoadFields(l, r)
}
