package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knuth-mix/mixvm/parser"
)

// Reference records one use of a symbol at a source position.
type Reference struct {
	Line   int
	Column int
}

// Symbol is a cross-reference entry: where a name was defined and every
// line that referenced it.
type Symbol struct {
	Name       string
	Defined    bool
	Value      int
	IsConstant bool // bound by EQU rather than a LOC label
	Definition Reference
	References []Reference
}

// XRefTable is a cross-reference report over one assembled program's
// symbol table.
type XRefTable struct {
	symbols map[string]*Symbol
}

// CrossReference builds an XRefTable from prog's resolved symbol table,
// grounded directly on parser.SymbolTable -- unlike the ARM teacher's
// xref generator, MIXAL's single flat symbol table (no separate data/
// function/branch-target taxonomy) means every symbol is reported the
// same way regardless of whether an instruction or a CON/ALF referenced it.
func CrossReference(prog *parser.Program) *XRefTable {
	xt := &XRefTable{symbols: make(map[string]*Symbol)}
	if prog == nil || prog.Symbols == nil {
		return xt
	}
	for name, sym := range prog.Symbols.All() {
		entry := &Symbol{
			Name:       name,
			Defined:    sym.Defined,
			Value:      sym.Value,
			IsConstant: sym.Type == parser.SymbolConstant,
		}
		if sym.Defined {
			entry.Definition = Reference{Line: sym.Pos.Line, Column: sym.Pos.Column}
		}
		for _, pos := range sym.References {
			entry.References = append(entry.References, Reference{Line: pos.Line, Column: pos.Column})
		}
		sort.Slice(entry.References, func(i, j int) bool {
			return entry.References[i].Line < entry.References[j].Line
		})
		xt.symbols[name] = entry
	}
	return xt
}

// Symbols returns every cross-referenced symbol, sorted by name.
func (xt *XRefTable) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(xt.symbols))
	for _, s := range xt.symbols {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the entry for name, if any.
func (xt *XRefTable) Lookup(name string) (*Symbol, bool) {
	s, ok := xt.symbols[name]
	return s, ok
}

// Undefined returns every referenced-but-never-defined symbol.
func (xt *XRefTable) Undefined() []*Symbol {
	var out []*Symbol
	for _, s := range xt.symbols {
		if !s.Defined && len(s.References) > 0 {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Unused returns every defined-but-never-referenced symbol.
func (xt *XRefTable) Unused() []*Symbol {
	var out []*Symbol
	for _, s := range xt.symbols {
		if s.Defined && len(s.References) == 0 {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// String renders a text cross-reference report, one block per symbol plus
// a summary -- the format a -xref flag on cmd/mix writes to stdout.
func (xt *XRefTable) String() string {
	var sb strings.Builder
	sb.WriteString("Symbol Cross-Reference\n")
	sb.WriteString("=======================\n\n")

	for _, sym := range xt.Symbols() {
		sb.WriteString(fmt.Sprintf("%-12s", sym.Name))
		if sym.IsConstant {
			sb.WriteString(fmt.Sprintf(" [constant=%d]", sym.Value))
		} else if sym.Defined {
			sb.WriteString(fmt.Sprintf(" [label=%04d]", sym.Value))
		} else {
			sb.WriteString(" [undefined]")
		}
		sb.WriteString("\n")

		if len(sym.References) == 0 {
			sb.WriteString("  referenced:  (never)\n")
		} else {
			lines := make([]string, len(sym.References))
			for i, ref := range sym.References {
				lines[i] = fmt.Sprintf("%d", ref.Line)
			}
			sb.WriteString(fmt.Sprintf("  referenced:  line(s) %s\n", strings.Join(lines, ", ")))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Summary\n")
	sb.WriteString("=======\n")
	sb.WriteString(fmt.Sprintf("Total symbols: %d\n", len(xt.symbols)))
	sb.WriteString(fmt.Sprintf("Undefined:     %d\n", len(xt.Undefined())))
	sb.WriteString(fmt.Sprintf("Unused:        %d\n", len(xt.Unused())))

	return sb.String()
}

// GenerateXRef assembles input and renders its cross-reference report.
func GenerateXRef(input, filename string) (string, error) {
	p := parser.NewParser(input, filename)
	prog, err := p.Parse()
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	return CrossReference(prog).String(), nil
}
