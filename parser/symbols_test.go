package parser

import "testing"

func TestSymbolTable_DefineAndLookup(t *testing.T) {
	st := NewSymbolTable()
	if err := st.Define("START", SymbolLabel, 100, Position{Line: 1}); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	sym, ok := st.Lookup("START")
	if !ok {
		t.Fatal("expected START to be found")
	}
	if sym.Value != 100 {
		t.Errorf("Value = %d, want 100", sym.Value)
	}
	if !sym.Defined {
		t.Error("expected Defined to be true")
	}
}

func TestSymbolTable_DuplicateDefine(t *testing.T) {
	st := NewSymbolTable()
	if err := st.Define("START", SymbolLabel, 100, Position{Line: 1}); err != nil {
		t.Fatalf("first Define failed: %v", err)
	}
	err := st.Define("START", SymbolLabel, 200, Position{Line: 2})
	if err == nil {
		t.Fatal("expected an error for a duplicate definition")
	}
}

func TestSymbolTable_ReferenceBeforeDefine(t *testing.T) {
	st := NewSymbolTable()
	st.Reference("FORWARD", Position{Line: 1})
	sym, ok := st.Lookup("FORWARD")
	if !ok {
		t.Fatal("expected a placeholder entry for the referenced symbol")
	}
	if sym.Defined {
		t.Error("expected Defined to be false before a Define call")
	}
	if len(sym.References) != 1 {
		t.Errorf("References = %d, want 1", len(sym.References))
	}
}

func TestSymbolTable_Get(t *testing.T) {
	st := NewSymbolTable()
	st.Define("N", SymbolConstant, 5, Position{Line: 1})

	val, err := st.Get("N")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != 5 {
		t.Errorf("Get = %d, want 5", val)
	}

	if _, err := st.Get("MISSING"); err == nil {
		t.Error("expected error for undefined symbol")
	}
}

func TestSymbolTable_UndefinedSymbols(t *testing.T) {
	st := NewSymbolTable()
	st.Reference("MISSING", Position{Line: 1})
	st.Define("FOUND", SymbolLabel, 10, Position{Line: 2})

	undef := st.UndefinedSymbols()
	if len(undef) != 1 {
		t.Fatalf("len(UndefinedSymbols()) = %d, want 1", len(undef))
	}
	if undef[0].Name != "MISSING" {
		t.Errorf("undefined symbol = %q, want MISSING", undef[0].Name)
	}
}

func TestSymbolTable_All(t *testing.T) {
	st := NewSymbolTable()
	st.Define("A", SymbolLabel, 1, Position{Line: 1})
	st.Define("B", SymbolLabel, 2, Position{Line: 2})

	all := st.All()
	if len(all) != 2 {
		t.Errorf("len(All()) = %d, want 2", len(all))
	}
}

func TestLocalLabelTable_LookupBackward(t *testing.T) {
	lt := NewLocalLabelTable()
	lt.Define(2, 100)
	lt.Define(2, 200)

	addr, ok := lt.LookupBackward(2, 250)
	if !ok || addr != 200 {
		t.Errorf("LookupBackward(2, 250) = (%d, %v), want (200, true)", addr, ok)
	}

	addr, ok = lt.LookupBackward(2, 150)
	if !ok || addr != 100 {
		t.Errorf("LookupBackward(2, 150) = (%d, %v), want (100, true)", addr, ok)
	}

	_, ok = lt.LookupBackward(2, 50)
	if ok {
		t.Error("expected no backward match before any 2H definition")
	}
}

func TestLocalLabelTable_LookupForward(t *testing.T) {
	lt := NewLocalLabelTable()
	lt.Define(3, 100)
	lt.Define(3, 300)

	addr, ok := lt.LookupForward(3, 50)
	if !ok || addr != 100 {
		t.Errorf("LookupForward(3, 50) = (%d, %v), want (100, true)", addr, ok)
	}

	addr, ok = lt.LookupForward(3, 150)
	if !ok || addr != 300 {
		t.Errorf("LookupForward(3, 150) = (%d, %v), want (300, true)", addr, ok)
	}

	_, ok = lt.LookupForward(3, 350)
	if ok {
		t.Error("expected no forward match after the last 3H definition")
	}
}

func TestLocalLabelTable_UnknownDigit(t *testing.T) {
	lt := NewLocalLabelTable()
	if _, ok := lt.LookupBackward(5, 100); ok {
		t.Error("expected no match for a digit with no definitions")
	}
}
