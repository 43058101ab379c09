package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knuth-mix/mixvm/vm"
)

// ExprParser parses debugger expressions using precedence climbing: MIX
// register names, bracketed memory reads, and +, -, *, / over signed
// 64-bit integers. This is deliberately a different, smaller grammar than
// the assembler's MIXAL expression evaluator (parser.Evaluator) -- a
// runtime tool for inspecting a live machine, not a compile-time one for
// resolving forward label references.
type ExprParser struct {
	tokens  []ExprToken
	pos     int
	machine *vm.Machine
	symbols map[string]int
}

// NewExprParser creates a parser over tokens, evaluating register and
// memory references against machine and symbol references against symbols.
func NewExprParser(tokens []ExprToken, machine *vm.Machine, symbols map[string]int) *ExprParser {
	return &ExprParser{tokens: tokens, machine: machine, symbols: symbols}
}

func (p *ExprParser) currentToken() ExprToken {
	if p.pos >= len(p.tokens) {
		return ExprToken{Type: ExprTokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *ExprParser) advance() { p.pos++ }

func operatorPrecedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}

// Parse parses the full expression and returns its value.
func (p *ExprParser) Parse() (int64, error) {
	result, err := p.parseExpression(0)
	if err != nil {
		return 0, err
	}
	if p.currentToken().Type != ExprTokenEOF {
		return 0, fmt.Errorf("unexpected token: %s", p.currentToken().Value)
	}
	return result, nil
}

func (p *ExprParser) parseExpression(minPrecedence int) (int64, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}

	for {
		tok := p.currentToken()
		if tok.Type != ExprTokenOperator {
			break
		}
		precedence := operatorPrecedence(tok.Value)
		if precedence < minPrecedence || precedence == 0 {
			break
		}

		op := tok.Value
		p.advance()

		right, err := p.parseExpression(precedence + 1)
		if err != nil {
			return 0, err
		}
		left, err = applyOperator(left, right, op)
		if err != nil {
			return 0, err
		}
	}

	return left, nil
}

func (p *ExprParser) parsePrimary() (int64, error) {
	tok := p.currentToken()

	switch tok.Type {
	case ExprTokenNumber:
		p.advance()
		return strconv.ParseInt(tok.Value, 0, 64)

	case ExprTokenRegister:
		p.advance()
		v, ok := registerValue(p.machine, tok.Value)
		if !ok {
			return 0, fmt.Errorf("invalid register: %s", tok.Value)
		}
		return v, nil

	case ExprTokenSymbol:
		p.advance()
		if addr, exists := p.symbols[tok.Value]; exists {
			return int64(addr), nil
		}
		return 0, fmt.Errorf("unknown symbol: %s", tok.Value)

	case ExprTokenLParen:
		p.advance()
		result, err := p.parseExpression(0)
		if err != nil {
			return 0, err
		}
		if p.currentToken().Type != ExprTokenRParen {
			return 0, fmt.Errorf("expected ')', got %s", p.currentToken().Value)
		}
		p.advance()
		return result, nil

	case ExprTokenLBracket:
		p.advance()
		addr, err := p.parseExpression(0)
		if err != nil {
			return 0, err
		}
		if p.currentToken().Type != ExprTokenRBracket {
			return 0, fmt.Errorf("expected ']', got %s", p.currentToken().Value)
		}
		p.advance()

		w, err := p.machine.Memory.Load(int(addr))
		if err != nil {
			return 0, fmt.Errorf("failed to read memory at %04d: %w", addr, err)
		}
		return w.Int(), nil

	default:
		return 0, fmt.Errorf("unexpected token: %s (%s)", tok.Value, tok.Type)
	}
}

// registerValue resolves a register token (already lower-cased by the
// lexer) to its current signed value.
func registerValue(m *vm.Machine, reg string) (int64, bool) {
	switch strings.ToLower(reg) {
	case "ra":
		return m.A.Int(), true
	case "rx":
		return m.X.Int(), true
	case "rj":
		return m.J.Int(), true
	case "ri1":
		return m.I[0].Int(), true
	case "ri2":
		return m.I[1].Int(), true
	case "ri3":
		return m.I[2].Int(), true
	case "ri4":
		return m.I[3].Int(), true
	case "ri5":
		return m.I[4].Int(), true
	case "ri6":
		return m.I[5].Int(), true
	case "pc":
		return int64(m.PC), true
	case "ov":
		if m.Overflow {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func applyOperator(left, right int64, op string) (int64, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("unknown operator: %s", op)
	}
}
