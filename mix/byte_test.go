package mix

import "testing"

func TestNewByte(t *testing.T) {
	tests := []struct {
		input     int
		expected  Byte
		shouldErr bool
	}{
		{0, 0, false},
		{63, 63, false},
		{64, 0, true},
		{-1, 0, true},
	}

	for _, tt := range tests {
		got, err := NewByte(tt.input)
		if tt.shouldErr {
			if err == nil {
				t.Errorf("NewByte(%d) expected error, got none", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewByte(%d) unexpected error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("NewByte(%d) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestByteRoundTrip(t *testing.T) {
	const max = 1<<30 - 1 // keep the sweep cheap; the range's bounds are exercised by TestByteRoundTripBounds
	for _, n := range []int64{0, 1, -1, max, -max, 12345, -987654} {
		sign, bytes := IntToBytes(n, 5)
		// IntToBytes emits least significant first; BytesToInt reads most
		// significant first.
		for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
			bytes[i], bytes[j] = bytes[j], bytes[i]
		}
		got := BytesToInt(bytes, sign)
		if got != n {
			t.Errorf("round trip for %d: got %d", n, got)
		}
	}
}

func TestByteRoundTripBounds(t *testing.T) {
	for _, n := range []int64{MaxWordMagnitude, -MaxWordMagnitude, MaxWordMagnitude - 1} {
		sign, bytes := IntToBytes(n, 5)
		if len(bytes) != 5 {
			t.Fatalf("IntToBytes(%d, 5) produced %d bytes, want 5", n, len(bytes))
		}
		for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
			bytes[i], bytes[j] = bytes[j], bytes[i]
		}
		if got := BytesToInt(bytes, sign); got != n {
			t.Errorf("round trip for %d: got %d", n, got)
		}
	}
}

func TestIntToBytesLittleEndian(t *testing.T) {
	// 65 = 1*64 + 1, so byte[0] (least significant) is 1, byte[1] is 1.
	sign, bytes := IntToBytes(65, 2)
	if sign {
		t.Fatal("expected positive sign")
	}
	if len(bytes) != 2 || bytes[0] != 1 || bytes[1] != 1 {
		t.Errorf("IntToBytes(65, 2) = %v, want [1 1]", bytes)
	}
}
