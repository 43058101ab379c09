package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knuth-mix/mixvm/parser"
)

// LintLevel is the severity of a lint finding.
type LintLevel int

const (
	LintError   LintLevel = iota // assembly would fail
	LintWarning                  // legal but suspicious
	LintInfo                     // style suggestion
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue is a single finding at a source position.
type LintIssue struct {
	Level   LintLevel
	Line    int
	Column  int
	Message string
	Code    string // e.g. "UNDEF_LABEL", "UNUSED_LABEL"
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d:%d: %s: %s [%s]", i.Line, i.Column, i.Level, i.Message, i.Code)
}

// LintOptions controls which non-fatal checks Lint runs.
type LintOptions struct {
	CheckUnused      bool // labels defined but never referenced
	CheckLowercase   bool // mnemonics/labels written in lowercase in source
	CheckLocalLabels bool // not read by Lint: it runs no local-label check; an unresolved dF/dB surfaces as the assembler's UNDEF_LABEL error
}

// DefaultLintOptions enables every check.
func DefaultLintOptions() *LintOptions {
	return &LintOptions{CheckUnused: true, CheckLowercase: true, CheckLocalLabels: true}
}

// Linter analyzes MIXAL source for both assembly errors and style issues.
type Linter struct {
	options *LintOptions
	issues  []*LintIssue
}

// NewLinter creates a Linter. A nil options uses DefaultLintOptions.
func NewLinter(options *LintOptions) *Linter {
	if options == nil {
		options = DefaultLintOptions()
	}
	return &Linter{options: options, issues: make([]*LintIssue, 0)}
}

// Lint assembles input and reports both the assembler's own errors and a
// set of additional style/usage checks the assembler doesn't bother with
// (since it only needs to know a program assembles, not whether it reads
// well).
func (l *Linter) Lint(input, filename string) []*LintIssue {
	l.issues = l.issues[:0]

	p := parser.NewParser(input, filename)
	prog, err := p.Parse()

	for _, perr := range p.Errors().Errors {
		l.issues = append(l.issues, &LintIssue{
			Level:   LintError,
			Line:    perr.Pos.Line,
			Column:  perr.Pos.Column,
			Message: perr.Message,
			Code:    lintCodeFor(perr.Kind),
		})
	}
	if err != nil {
		if perr, ok := err.(*parser.Error); ok {
			l.issues = append(l.issues, &LintIssue{
				Level:   LintError,
				Line:    perr.Pos.Line,
				Column:  perr.Pos.Column,
				Message: perr.Message,
				Code:    lintCodeFor(perr.Kind),
			})
		} else {
			l.issues = append(l.issues, &LintIssue{Level: LintError, Line: 1, Column: 1, Message: err.Error(), Code: classifyError(err.Error())})
		}
	}

	if l.options.CheckLowercase {
		l.checkLowercase(input, filename)
	}
	if prog != nil {
		if l.options.CheckUnused {
			l.checkUnusedLabels(prog)
		}
	}

	sort.Slice(l.issues, func(i, j int) bool {
		if l.issues[i].Line == l.issues[j].Line {
			return l.issues[i].Column < l.issues[j].Column
		}
		return l.issues[i].Line < l.issues[j].Line
	})
	return l.issues
}

// classifyError gives a lint code to an error the parser raised outside
// its own *parser.Error/ErrorKind path -- SymbolTable.Define returns a
// plain fmt.Errorf for a duplicate label rather than a typed error.
func classifyError(msg string) string {
	switch {
	case strings.Contains(msg, "already defined"):
		return "DUPLICATE_LABEL"
	case strings.Contains(msg, "undefined symbol"):
		return "UNDEF_LABEL"
	default:
		return "PARSE_ERROR"
	}
}

func lintCodeFor(kind parser.ErrorKind) string {
	switch kind {
	case parser.ErrorUndefinedLabel:
		return "UNDEF_LABEL"
	case parser.ErrorDuplicateLabel:
		return "DUPLICATE_LABEL"
	case parser.ErrorInvalidDirective:
		return "INVALID_DIRECTIVE"
	case parser.ErrorInvalidInstruction:
		return "INVALID_INSTRUCTION"
	case parser.ErrorInvalidOperand:
		return "INVALID_OPERAND"
	case parser.ErrorFileIO:
		return "FILE_ERROR"
	default:
		return "SYNTAX_ERROR"
	}
}

// checkLowercase flags label/op fields not already in the assembler's
// expected uppercase form -- MIXAL has no case-insensitivity rule of its
// own, but Knuth's listings are uppercase throughout and mixed case reads
// as inconsistent.
func (l *Linter) checkLowercase(input, filename string) {
	for i, raw := range strings.Split(input, "\n") {
		pos := parser.Position{Filename: filename, Line: i + 1, Column: 1}
		line := parser.TokenizeLine(raw, pos)
		if line.Blank || line.Comment {
			continue
		}
		trimmed := strings.TrimLeft(raw, " \t")
		fields := strings.Fields(trimmed)
		for _, field := range fields {
			if field != strings.ToUpper(field) {
				l.issues = append(l.issues, &LintIssue{
					Level:   LintInfo,
					Line:    i + 1,
					Column:  1,
					Message: fmt.Sprintf("%q is not uppercase", field),
					Code:    "LOWERCASE_TOKEN",
				})
				break
			}
		}
	}
}

// checkUnusedLabels warns about ordinary symbols defined but never
// referenced by any operand.
func (l *Linter) checkUnusedLabels(prog *parser.Program) {
	if prog.Symbols == nil {
		return
	}
	for name, sym := range prog.Symbols.All() {
		if !sym.Defined {
			continue
		}
		if len(sym.References) == 0 {
			l.issues = append(l.issues, &LintIssue{
				Level:   LintWarning,
				Line:    sym.Pos.Line,
				Column:  sym.Pos.Column,
				Message: fmt.Sprintf("symbol %q defined but never referenced", name),
				Code:    "UNUSED_LABEL",
			})
		}
	}
}
