package parser

import (
	"regexp"
	"strings"

	"github.com/knuth-mix/mixvm/opcode"
)

// fieldsRE splits a line into up to three whitespace-separated fields,
// matching spec's "[symbol?] op [operand]" single-line grammar.
var fieldsRE = regexp.MustCompile(`^(\S+)(?:\s+(\S+))?(?:\s+(\S+))?`)

// symbolRE matches a legal MIXAL symbol: up to 10 letters/digits containing
// at least one letter.
var symbolRE = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)

// directives is the set of non-opcode tokens the operation field may hold.
var directives = map[string]bool{"EQU": true, "ORIG": true, "CON": true, "ALF": true, "END": true}

// Line is one tokenized line of MIXAL source.
type Line struct {
	Pos     Position
	Label   string // empty if the line has no LOC symbol
	Op      string // mnemonic or directive, uppercased
	Operand string // raw operand text (A-part[,index][(F-part)]), unparsed
	Blank   bool   // a blank or fully-commented line
	Comment bool   // a full-line comment (leading '*')
}

// IsOperation reports whether tok is a mnemonic or directive, the test
// TokenizeLine uses to tell a label-less line from a labeled one without
// relying on fixed source columns.
func IsOperation(tok string) bool {
	return opcode.IsKnown(tok) || directives[tok]
}

// TokenizeLine splits one source line into its LOC/OP/ADDRESS fields. A line
// whose first non-space character is '*' is a full-line comment. Blank
// lines are returned with Blank set. The first field is the operation
// (rather than a label) whenever it names a known mnemonic or directive.
func TokenizeLine(raw string, pos Position) *Line {
	text := strings.TrimRight(raw, "\r\n")
	if strings.TrimSpace(text) == "" {
		return &Line{Pos: pos, Blank: true}
	}
	trimmed := strings.TrimLeft(text, " \t")
	if strings.HasPrefix(trimmed, "*") {
		return &Line{Pos: pos, Comment: true}
	}

	match := fieldsRE.FindStringSubmatch(trimmed)
	if match == nil {
		return &Line{Pos: pos}
	}

	first, second, third := strings.ToUpper(match[1]), strings.ToUpper(match[2]), match[3]
	l := &Line{Pos: pos}
	if IsOperation(first) {
		l.Op = first
		l.Operand = strings.ToUpper(second)
		// third, if present, is a stray token treated as part of a
		// whitespace-containing comment; MIXAL operands never contain
		// spaces, so anything beyond the operand field is a comment.
	} else {
		l.Label = first
		l.Op = second
		l.Operand = strings.ToUpper(third)
	}
	return l
}

// IsSymbol reports whether s is a legal MIXAL symbol.
func IsSymbol(s string) bool {
	if !symbolRE.MatchString(s) {
		return false
	}
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// IsLocalLabel reports whether label is a local label reference/definition
// of the form dH, dF or dB (d a single digit).
func IsLocalLabel(label string) (digit int, kind byte, ok bool) {
	if len(label) != 2 {
		return 0, 0, false
	}
	if label[0] < '0' || label[0] > '9' {
		return 0, 0, false
	}
	switch label[1] {
	case 'H', 'F', 'B':
		return int(label[0] - '0'), label[1], true
	}
	return 0, 0, false
}
