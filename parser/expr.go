package parser

import (
	"strconv"
	"strings"
)

// LiteralPool maps each distinct =EXPR= literal text encountered in a
// source file to the memory cell the assembler allocated it, working down
// from 3999. Pass one notes every literal as it evaluates operands, and
// Parse allocates the cells before pass two runs, so in pass two an
// expression's literal terms always resolve to a fixed address no matter
// how many times that expression is (re-)evaluated.
type LiteralPool struct {
	cellByText map[string]int
	order      []string
}

// NewLiteralPool returns an empty pool.
func NewLiteralPool() *LiteralPool {
	return &LiteralPool{cellByText: make(map[string]int)}
}

// Note records that literal text (including its "=...=" delimiters) was
// seen; Allocate assigns it a cell afterward.
func (lp *LiteralPool) Note(text string) {
	if _, ok := lp.cellByText[text]; ok {
		return
	}
	lp.cellByText[text] = -1
	lp.order = append(lp.order, text)
}

// Allocate assigns each noted literal the next free cell counting down from
// top, returning the lowest cell used (the new top of available memory).
func (lp *LiteralPool) Allocate(top int) int {
	for _, text := range lp.order {
		lp.cellByText[text] = top
		top--
	}
	return top
}

// Cell returns the address literal text was allocated to.
func (lp *LiteralPool) Cell(text string) (int, bool) {
	cell, ok := lp.cellByText[text]
	return cell, ok && cell >= 0
}

// Texts returns every distinct literal text, in first-seen order.
func (lp *LiteralPool) Texts() []string { return lp.order }

// Evaluator evaluates MIXAL expressions against a symbol table, local-label
// table, location counter and literal pool. Expressions combine atomic
// terms left-to-right with no operator precedence -- the grammar admits
// only one level of nesting, so Evaluate never recurses into sub-expressions
// beyond the field-spec's own A-part/F-part split.
type Evaluator struct {
	Symbols *SymbolTable
	Locals  *LocalLabelTable
	Here     int // current location counter, for '*'
	Pos      Position
	Literals *LiteralPool
}

// Evaluate parses and computes expr's value. Undefined symbols are reported
// via err so the caller can decide whether a forward reference is fatal
// (pass 2 requires every symbol resolved; pass 1 tolerates forward refs by
// returning 0).
func (e *Evaluator) Evaluate(expr string, tolerateUndefined bool) (int, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, nil
	}

	neg := false
	if expr[0] == '+' || expr[0] == '-' {
		neg = expr[0] == '-'
		expr = expr[1:]
	}

	terms, ops := splitExpression(expr)
	if len(terms) == 0 {
		return 0, &Error{Pos: e.Pos, Kind: ErrorSyntax, Message: "empty expression"}
	}

	value, err := e.atom(terms[0], tolerateUndefined)
	if err != nil {
		return 0, err
	}
	for i, op := range ops {
		rhs, err := e.atom(terms[i+1], tolerateUndefined)
		if err != nil {
			return 0, err
		}
		value, err = applyOp(op, value, rhs)
		if err != nil {
			return 0, &Error{Pos: e.Pos, Kind: ErrorSyntax, Message: err.Error()}
		}
	}
	if neg {
		value = -value
	}
	return value, nil
}

func applyOp(op byte, a, b int) (int, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, errDivideByZero
		}
		return a / b, nil
	case ':':
		return 8*a + b, nil
	}
	return 0, errDivideByZero
}

var errDivideByZero = divideByZeroErr{}

type divideByZeroErr struct{}

func (divideByZeroErr) Error() string { return "division by zero in constant expression" }

// splitExpression tokenizes an operator-separated chain of atoms. "//" is
// folded to a single '/' operator, matching spec's resolution that the two
// divides behave identically. A '*' in atom position -- the start of the
// expression, or immediately after an operator -- is the location counter,
// not multiplication, and is consumed into the atom rather than split off
// as an operator; only a '*' following a completed atom is multiplication.
func splitExpression(expr string) (terms []string, ops []byte) {
	var cur strings.Builder
	atomStart := true
	i := 0
	for i < len(expr) {
		c := expr[i]
		if c == '*' && atomStart {
			cur.WriteByte(c)
			atomStart = false
			i++
			continue
		}
		if isOperatorByte(c) {
			terms = append(terms, cur.String())
			cur.Reset()
			if c == '/' && i+1 < len(expr) && expr[i+1] == '/' {
				i++
			}
			ops = append(ops, c)
			atomStart = true
			i++
			continue
		}
		cur.WriteByte(c)
		atomStart = false
		i++
	}
	terms = append(terms, cur.String())
	return terms, ops
}

func isOperatorByte(c byte) bool {
	switch c {
	case '+', '-', '*', '/', ':':
		return true
	}
	return false
}

// atom evaluates a single non-negative-integer-literal, symbol, '*', or
// =EXPR= literal constant.
func (e *Evaluator) atom(term string, tolerateUndefined bool) (int, error) {
	term = strings.TrimSpace(term)
	switch {
	case term == "*":
		return e.Here, nil
	case len(term) >= 2 && term[0] == '=' && strings.Count(term, "=") >= 2 && term[len(term)-1] == '=':
		if e.Literals == nil {
			return 0, &Error{Pos: e.Pos, Kind: ErrorSyntax, Message: "literal constant used outside a literal pool context"}
		}
		e.Literals.Note(term)
		cell, ok := e.Literals.Cell(term)
		if !ok {
			return 0, nil // pass 1: cell not assigned yet, tolerate
		}
		return cell, nil
	case isDigits(term):
		n, _ := strconv.Atoi(term)
		return n, nil
	case isLocalLabelRef(term):
		return e.localLabel(term, tolerateUndefined)
	case IsSymbol(term):
		// Both passes evaluate most operands; a use is recorded once per
		// source position.
		seen := false
		if sym, ok := e.Symbols.Lookup(term); ok {
			for _, pos := range sym.References {
				seen = seen || pos == e.Pos
			}
		}
		if !seen {
			e.Symbols.Reference(term, e.Pos)
		}
		if v, err := e.Symbols.Get(term); err == nil {
			return v, nil
		}
		if tolerateUndefined {
			return 0, nil
		}
		return 0, &Error{Pos: e.Pos, Kind: ErrorUndefinedLabel, Message: "undefined symbol: " + term}
	default:
		return 0, &Error{Pos: e.Pos, Kind: ErrorInvalidOperand, Message: "not a valid expression term: " + term}
	}
}

// isLocalLabelRef reports whether term is a local-label reference, dF or
// dB (dH is a definition, never a reference).
func isLocalLabelRef(term string) bool {
	digit, kind, ok := IsLocalLabel(term)
	_ = digit
	return ok && (kind == 'F' || kind == 'B')
}

func (e *Evaluator) localLabel(term string, tolerateUndefined bool) (int, error) {
	digit, kind, _ := IsLocalLabel(term)
	var addr int
	var found bool
	if kind == 'B' {
		addr, found = e.Locals.LookupBackward(digit, e.Here)
	} else {
		addr, found = e.Locals.LookupForward(digit, e.Here)
	}
	if !found {
		if tolerateUndefined {
			return 0, nil
		}
		return 0, &Error{Pos: e.Pos, Kind: ErrorUndefinedLabel, Message: "unresolved local label: " + term}
	}
	return addr, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
