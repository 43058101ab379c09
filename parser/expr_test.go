package parser

import "testing"

func newEvaluator() (*Evaluator, *SymbolTable, *LocalLabelTable, *LiteralPool) {
	symbols := NewSymbolTable()
	locals := NewLocalLabelTable()
	literals := NewLiteralPool()
	ev := &Evaluator{Symbols: symbols, Locals: locals, Here: 1000, Literals: literals}
	return ev, symbols, locals, literals
}

func TestEvaluator_Number(t *testing.T) {
	ev, _, _, _ := newEvaluator()
	val, err := ev.Evaluate("42", false)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if val != 42 {
		t.Errorf("Evaluate(42) = %d, want 42", val)
	}
}

func TestEvaluator_NegativeNumber(t *testing.T) {
	ev, _, _, _ := newEvaluator()
	val, err := ev.Evaluate("-7", false)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if val != -7 {
		t.Errorf("Evaluate(-7) = %d, want -7", val)
	}
}

func TestEvaluator_Star(t *testing.T) {
	ev, _, _, _ := newEvaluator()
	val, err := ev.Evaluate("*", false)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if val != 1000 {
		t.Errorf("Evaluate(*) = %d, want 1000 (Here)", val)
	}
}

func TestEvaluator_StarRelative(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{"*+3", 1003},
		{"*-1", 999},
	}
	for _, tt := range tests {
		ev, _, _, _ := newEvaluator()
		val, err := ev.Evaluate(tt.expr, false)
		if err != nil {
			t.Errorf("Evaluate(%q) failed: %v", tt.expr, err)
			continue
		}
		if val != tt.want {
			t.Errorf("Evaluate(%q) = %d, want %d", tt.expr, val, tt.want)
		}
	}
}

func TestEvaluator_MultiplicationStillWorks(t *testing.T) {
	// a '*' that follows a completed atom is multiplication, not the
	// location counter -- only leading '*' is special-cased.
	ev, _, _, _ := newEvaluator()
	val, err := ev.Evaluate("3*4", false)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if val != 12 {
		t.Errorf("Evaluate(3*4) = %d, want 12", val)
	}
}

func TestEvaluator_Symbol(t *testing.T) {
	ev, symbols, _, _ := newEvaluator()
	symbols.Define("N", SymbolConstant, 5, Position{Line: 1})

	val, err := ev.Evaluate("N", false)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if val != 5 {
		t.Errorf("Evaluate(N) = %d, want 5", val)
	}
}

func TestEvaluator_UndefinedSymbolStrict(t *testing.T) {
	ev, _, _, _ := newEvaluator()
	if _, err := ev.Evaluate("MISSING", false); err == nil {
		t.Error("expected an error for an undefined symbol in strict mode")
	}
}

func TestEvaluator_UndefinedSymbolTolerant(t *testing.T) {
	ev, _, _, _ := newEvaluator()
	val, err := ev.Evaluate("MISSING", true)
	if err != nil {
		t.Fatalf("Evaluate failed under tolerant mode: %v", err)
	}
	if val != 0 {
		t.Errorf("Evaluate(MISSING, tolerant) = %d, want 0", val)
	}
}

func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{"2+3", 5},
		{"10-4", 6},
		{"3*4", 12},
		{"10/3", 3},
		{"2:3", 19}, // 8*2+3
		{"1+2+3", 6},
		{"2*3+1", 7}, // left-to-right, no precedence
		{"10//3", 3}, // "//" folds to one '/'
	}
	for _, tt := range tests {
		ev, _, _, _ := newEvaluator()
		val, err := ev.Evaluate(tt.expr, false)
		if err != nil {
			t.Errorf("Evaluate(%q) failed: %v", tt.expr, err)
			continue
		}
		if val != tt.want {
			t.Errorf("Evaluate(%q) = %d, want %d", tt.expr, val, tt.want)
		}
	}
}

func TestEvaluator_DivideByZero(t *testing.T) {
	ev, _, _, _ := newEvaluator()
	if _, err := ev.Evaluate("5/0", false); err == nil {
		t.Error("expected division-by-zero error")
	}
}

func TestEvaluator_LocalLabelBackward(t *testing.T) {
	ev, _, locals, _ := newEvaluator()
	locals.Define(2, 900)
	val, err := ev.Evaluate("2B", false)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if val != 900 {
		t.Errorf("Evaluate(2B) = %d, want 900", val)
	}
}

func TestEvaluator_LocalLabelForward(t *testing.T) {
	ev, _, locals, _ := newEvaluator()
	locals.Define(2, 1100)
	val, err := ev.Evaluate("2F", false)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if val != 1100 {
		t.Errorf("Evaluate(2F) = %d, want 1100", val)
	}
}

func TestEvaluator_UnresolvedLocalLabel(t *testing.T) {
	ev, _, _, _ := newEvaluator()
	if _, err := ev.Evaluate("2B", false); err == nil {
		t.Error("expected an error for an unresolved local label reference")
	}
}

func TestEvaluator_EmptyExpression(t *testing.T) {
	ev, _, _, _ := newEvaluator()
	val, err := ev.Evaluate("", false)
	if err != nil {
		t.Fatalf("Evaluate(\"\") failed: %v", err)
	}
	if val != 0 {
		t.Errorf("Evaluate(\"\") = %d, want 0", val)
	}
}

func TestEvaluator_LiteralConstant(t *testing.T) {
	ev, _, _, literals := newEvaluator()
	val, err := ev.Evaluate("=5=", false)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	literals.Allocate(TopMemoryCell)
	cell, ok := literals.Cell("=5=")
	if !ok {
		t.Fatal("expected =5= to be noted in the literal pool")
	}
	if val != 0 {
		t.Errorf("Evaluate(=5=) before allocation = %d, want 0 (unallocated)", val)
	}
	if cell != TopMemoryCell {
		t.Errorf("literal cell = %d, want %d", cell, TopMemoryCell)
	}
}

func TestLiteralPool_AllocateDescending(t *testing.T) {
	lp := NewLiteralPool()
	lp.Note("=1=")
	lp.Note("=2=")
	lp.Note("=3=")
	lp.Allocate(3999)

	c1, _ := lp.Cell("=1=")
	c2, _ := lp.Cell("=2=")
	c3, _ := lp.Cell("=3=")
	if c1 != 3999 || c2 != 3998 || c3 != 3997 {
		t.Errorf("cells = %d,%d,%d, want 3999,3998,3997", c1, c2, c3)
	}
}

func TestLiteralPool_NoteIdempotent(t *testing.T) {
	lp := NewLiteralPool()
	lp.Note("=1=")
	lp.Note("=1=")
	if len(lp.Texts()) != 1 {
		t.Errorf("Texts() len = %d, want 1 (duplicate Note should be a no-op)", len(lp.Texts()))
	}
}
