package parser

import (
	"strconv"
	"strings"

	"github.com/knuth-mix/mixvm/encoder"
	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
)

// Program is a fully assembled MIXAL source file: a sparse memory image
// plus the symbol information a loader or debugger needs to relate
// addresses back to source.
type Program struct {
	Words        map[int]mix.Word
	StartAddress int
	Symbols      *SymbolTable
	Locals       *LocalLabelTable
	Filename     string
}

// OperandParts is an instruction operand split into its three MIXAL
// sub-fields: A-part[,index](F-part).
type OperandParts struct {
	APart   string
	IndexOp string // digit 1..6, or "" if unindexed
	FPart   string // text inside parentheses, or "" if absent
}

// splitOperand parses "A,I(F)" into its parts; each of I and F is optional
// and independent of the other.
func splitOperand(raw string) OperandParts {
	var parts OperandParts
	rest := raw

	if i := strings.IndexByte(rest, '('); i >= 0 {
		if j := strings.IndexByte(rest, ')'); j > i {
			parts.FPart = rest[i+1 : j]
			rest = rest[:i] + rest[j+1:]
		}
	}
	if i := strings.IndexByte(rest, ','); i >= 0 {
		parts.IndexOp = rest[i+1:]
		rest = rest[:i]
	}
	parts.APart = rest
	return parts
}

// Parser runs the two-pass MIXAL assembler: pass one establishes the
// location of every label (tolerating forward references), pass two
// evaluates every expression strictly and emits words.
type Parser struct {
	lines    []*Line
	errors   *ErrorList
	symbols  *SymbolTable
	locals   *LocalLabelTable
	literals *LiteralPool
	filename string
}

// NewParser tokenizes source into lines ready for assembly.
func NewParser(source, filename string) *Parser {
	p := &Parser{
		errors:   &ErrorList{},
		symbols:  NewSymbolTable(),
		locals:   NewLocalLabelTable(),
		literals: NewLiteralPool(),
		filename: filename,
	}
	for i, raw := range strings.Split(source, "\n") {
		pos := Position{Filename: filename, Line: i + 1, Column: 1}
		p.lines = append(p.lines, TokenizeLine(raw, pos))
	}
	return p
}

// Errors returns every error and warning accumulated during assembly.
func (p *Parser) Errors() *ErrorList { return p.errors }

// Parse runs both assembly passes and returns the resulting program.
func (p *Parser) Parse() (*Program, error) {
	if err := p.passOne(); err != nil {
		return nil, err
	}
	p.literals.Allocate(TopMemoryCell)

	prog := &Program{
		Words:    make(map[int]mix.Word),
		Symbols:  p.symbols,
		Locals:   p.locals,
		Filename: p.filename,
	}
	if err := p.passTwo(prog); err != nil {
		return nil, err
	}
	if undef := p.symbols.UndefinedSymbols(); len(undef) > 0 {
		sym := undef[0]
		pos := sym.Pos
		if len(sym.References) > 0 {
			pos = sym.References[0]
		}
		return nil, &Error{Pos: pos, Kind: ErrorUndefinedLabel, Message: "undefined symbol: " + sym.Name}
	}
	return prog, nil
}

// passOne walks every line, binding labels (and local labels) to the
// location counter they precede, tolerating any forward reference an
// EQU/ORIG/CON/instruction operand makes.
func (p *Parser) passOne() error {
	loc := 0
	for _, l := range p.lines {
		if l.Blank || l.Comment {
			continue
		}
		if l.Op == "" {
			return &Error{Pos: l.Pos, Kind: ErrorSyntax, Message: "line has no operation field"}
		}

		switch l.Op {
		case "EQU":
			val, err := p.eval(l, loc, true)
			if err != nil {
				return err
			}
			if l.Label != "" {
				if err := p.bindLabel(l, val); err != nil {
					return err
				}
				if sym, ok := p.symbols.Lookup(l.Label); ok {
					sym.Type = SymbolConstant
				}
			}
			continue
		case "ORIG":
			if l.Label != "" {
				if err := p.bindLabel(l, loc); err != nil {
					return err
				}
			}
			val, err := p.eval(l, loc, true)
			if err != nil {
				return err
			}
			loc = val
			continue
		case "END":
			if l.Label != "" {
				if err := p.bindLabel(l, loc); err != nil {
					return err
				}
			}
			continue
		}

		if l.Label != "" {
			if err := p.bindLabel(l, loc); err != nil {
				return err
			}
		}
		// CON/ALF/instructions each occupy exactly one cell. ALF's operand
		// is character text, not an expression, so it is not evaluated.
		if l.Op != "ALF" {
			if _, err := p.eval(l, loc, true); err != nil {
				return err
			}
		}
		loc++
	}
	return nil
}

// bindLabel defines l.Label (ordinary or local) at value.
func (p *Parser) bindLabel(l *Line, value int) error {
	if digit, kind, ok := IsLocalLabel(l.Label); ok && kind == 'H' {
		p.locals.Define(digit, value)
		return nil
	}
	if !IsSymbol(l.Label) {
		return &Error{Pos: l.Pos, Kind: ErrorSyntax, Message: "invalid symbol: " + l.Label}
	}
	return p.symbols.Define(l.Label, SymbolLabel, value, l.Pos)
}

// eval evaluates a line's operand A-part (the only sub-expression every
// directive shares), registering any literal constants it contains.
func (p *Parser) eval(l *Line, here int, tolerate bool) (int, error) {
	parts := splitOperand(l.Operand)
	ev := &Evaluator{Symbols: p.symbols, Locals: p.locals, Here: here, Pos: l.Pos, Literals: p.literals}
	return ev.Evaluate(parts.APart, tolerate)
}

// passTwo re-walks the source with every symbol now resolved, emitting a
// word for every CON/ALF/instruction line and recording literal constants'
// values at their allocated cells.
func (p *Parser) passTwo(prog *Program) error {
	loc := 0
	literalValues := make(map[string]int)

	for _, l := range p.lines {
		if l.Blank || l.Comment {
			continue
		}
		switch l.Op {
		case "EQU":
			continue
		case "ORIG":
			val, err := p.eval(l, loc, false)
			if err != nil {
				return err
			}
			loc = val
			continue
		case "END":
			val, err := p.eval(l, loc, false)
			if err != nil {
				return err
			}
			prog.StartAddress = val
			continue
		case "CON":
			val, err := p.eval(l, loc, false)
			if err != nil {
				return err
			}
			prog.Words[loc] = encoder.Constant(val)
			loc++
			continue
		case "ALF":
			bytes, err := alfBytes(strings.TrimSpace(l.Operand))
			if err != nil {
				return err
			}
			prog.Words[loc] = encoder.Alf(bytes)
			loc++
			continue
		}

		w, err := p.assembleInstruction(l, loc)
		if err != nil {
			return err
		}
		prog.Words[loc] = w
		loc++
	}

	for _, text := range p.literals.Texts() {
		cell, _ := p.literals.Cell(text)
		inner := text[1 : len(text)-1]
		if _, done := literalValues[text]; done {
			continue
		}
		ev := &Evaluator{Symbols: p.symbols, Locals: p.locals, Here: cell, Pos: Position{Filename: p.filename}, Literals: p.literals}
		val, err := ev.Evaluate(inner, false)
		if err != nil {
			return err
		}
		literalValues[text] = val
		prog.Words[cell] = encoder.Constant(val)
	}
	return nil
}

// assembleInstruction resolves a machine instruction's mnemonic, operand
// fields, and packs them into a word.
func (p *Parser) assembleInstruction(l *Line, loc int) (mix.Word, error) {
	cf, ok := opcode.Lookup(l.Op)
	if !ok {
		return mix.Word{}, &Error{Pos: l.Pos, Kind: ErrorInvalidInstruction, Message: "unknown mnemonic: " + l.Op}
	}
	parts := splitOperand(l.Operand)

	ev := &Evaluator{Symbols: p.symbols, Locals: p.locals, Here: loc, Pos: l.Pos, Literals: p.literals}
	addr, err := ev.Evaluate(parts.APart, false)
	if err != nil {
		return mix.Word{}, err
	}

	index := 0
	if parts.IndexOp != "" {
		index, err = strconv.Atoi(strings.TrimSpace(parts.IndexOp))
		if err != nil || index < 1 || index > 6 {
			return mix.Word{}, &Error{Pos: l.Pos, Kind: ErrorInvalidOperand, Message: "invalid index: " + parts.IndexOp}
		}
	}

	field := int(cf.Field)
	if parts.FPart != "" {
		field, err = ev.Evaluate(parts.FPart, false)
		if err != nil {
			return mix.Word{}, err
		}
	}

	return encoder.Instruction(addr, index, byte(field), cf.Code), nil
}
