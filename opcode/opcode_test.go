package opcode

import "testing"

func TestRoundTrip(t *testing.T) {
	for name, cf := range mnemonics {
		got, ok := FromCodeAndField(cf.Code, cf.Field)
		if !ok {
			t.Fatalf("FromCodeAndField(%d, %d) not found for %s", cf.Code, cf.Field, name)
		}
		if got != name {
			t.Errorf("mnemonic %s round-tripped to %s", name, got)
		}
	}
}

func TestTableCoversFullMnemonicSet(t *testing.T) {
	if len(mnemonics) != 144 {
		t.Errorf("expected 144 MIX mnemonics, got %d", len(mnemonics))
	}
}

func TestUnknownMnemonic(t *testing.T) {
	if IsKnown("NOTAREALOP") {
		t.Error("NOTAREALOP should not be a known mnemonic")
	}
	if _, ok := FromCodeAndField(200, 0); ok {
		t.Error("opcode 200 should not resolve to any mnemonic")
	}
}

func TestSharedCodesDifferOnlyByField(t *testing.T) {
	for _, pair := range [][2]string{{"ENTA", "ENNA"}, {"JL", "JGE"}, {"SLA", "SRC"}, {"NUM", "HLT"}} {
		a, _ := Lookup(pair[0])
		b, _ := Lookup(pair[1])
		if a.Code != b.Code {
			t.Errorf("%s and %s expected to share a numeric code, got %d and %d", pair[0], pair[1], a.Code, b.Code)
		}
		if a.Field == b.Field {
			t.Errorf("%s and %s expected different fields, both got %d", pair[0], pair[1], a.Field)
		}
	}
}
