package debugger

import "testing"

func TestExprLexer_Numbers(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"Decimal", "42", "42"},
		{"Hex", "0x100", "0x100"},
		{"Hex uppercase", "0X1A", "0X1A"},
		{"Binary", "0b1010", "0b1010"},
		{"Negative", "-5", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := NewExprLexer(tt.expr).TokenizeAll()
			if len(toks) != 2 {
				t.Fatalf("expected 2 tokens (number, EOF), got %d", len(toks))
			}
			if toks[0].Type != ExprTokenNumber {
				t.Errorf("Type = %s, want NUMBER", toks[0].Type)
			}
			if toks[0].Value != tt.want {
				t.Errorf("Value = %q, want %q", toks[0].Value, tt.want)
			}
		})
	}
}

func TestExprLexer_Registers(t *testing.T) {
	tests := []string{"rA", "rX", "rJ", "ri1", "RI6", "PC", "ov"}

	for _, reg := range tests {
		t.Run(reg, func(t *testing.T) {
			toks := NewExprLexer(reg).TokenizeAll()
			if len(toks) != 2 {
				t.Fatalf("expected 2 tokens, got %d", len(toks))
			}
			if toks[0].Type != ExprTokenRegister {
				t.Errorf("Type = %s, want REGISTER", toks[0].Type)
			}
			if toks[0].Value != lowerASCII(reg) {
				t.Errorf("Value = %q, want %q", toks[0].Value, lowerASCII(reg))
			}
		})
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func TestExprLexer_Symbol(t *testing.T) {
	toks := NewExprLexer("LOOP").TokenizeAll()
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(toks))
	}
	if toks[0].Type != ExprTokenSymbol {
		t.Errorf("Type = %s, want SYMBOL", toks[0].Type)
	}
	if toks[0].Value != "LOOP" {
		t.Errorf("Value = %q, want LOOP", toks[0].Value)
	}
}

func TestExprLexer_Operators(t *testing.T) {
	toks := NewExprLexer("+ - * /").TokenizeAll()
	want := []string{"+", "-", "*", "/"}
	if len(toks) != len(want)+1 {
		t.Fatalf("expected %d tokens, got %d", len(want)+1, len(toks))
	}
	for i, w := range want {
		if toks[i].Type != ExprTokenOperator {
			t.Errorf("token %d Type = %s, want OPERATOR", i, toks[i].Type)
		}
		if toks[i].Value != w {
			t.Errorf("token %d Value = %q, want %q", i, toks[i].Value, w)
		}
	}
}

func TestExprLexer_ParensAndBrackets(t *testing.T) {
	toks := NewExprLexer("([])").TokenizeAll()
	want := []ExprTokenType{ExprTokenLParen, ExprTokenLBracket, ExprTokenRBracket, ExprTokenRParen, ExprTokenEOF}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d Type = %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestExprLexer_CompoundExpression(t *testing.T) {
	toks := NewExprLexer("rA + [1000] * 2").TokenizeAll()
	want := []ExprTokenType{
		ExprTokenRegister, ExprTokenOperator, ExprTokenLBracket, ExprTokenNumber,
		ExprTokenRBracket, ExprTokenOperator, ExprTokenNumber, ExprTokenEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d Type = %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestExprLexer_EmptyInput(t *testing.T) {
	toks := NewExprLexer("").TokenizeAll()
	if len(toks) != 1 || toks[0].Type != ExprTokenEOF {
		t.Errorf("expected single EOF token, got %v", toks)
	}
}
