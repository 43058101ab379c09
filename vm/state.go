package vm

// RegisterSnapshot captures every MIX register at one instant, used by the
// debugger and register trace to detect which registers an instruction
// changed without re-reading the whole register file a field at a time.
type RegisterSnapshot struct {
	A, X             int64
	I                [6]int64
	J                int64
	Overflow         bool
	Comparison       Comparison
}

// Capture records m's current register values.
func (s *RegisterSnapshot) Capture(m *Machine) {
	s.A = m.A.Int()
	s.X = m.X.Int()
	for i := range m.I {
		s.I[i] = m.I[i].Int()
	}
	s.J = m.J.Int()
	s.Overflow = m.Overflow
	s.Comparison = m.Comparison
}

// Changed returns the register names whose value differs from other.
func (s *RegisterSnapshot) Changed(other *RegisterSnapshot) []string {
	var names []string
	if s.A != other.A {
		names = append(names, "rA")
	}
	if s.X != other.X {
		names = append(names, "rX")
	}
	for i := range s.I {
		if s.I[i] != other.I[i] {
			names = append(names, indexRegisterName(i))
		}
	}
	if s.J != other.J {
		names = append(names, "rJ")
	}
	if s.Overflow != other.Overflow {
		names = append(names, "overflow")
	}
	if s.Comparison != other.Comparison {
		names = append(names, "comparison")
	}
	return names
}

func indexRegisterName(i int) string {
	return "rI" + string(rune('1'+i))
}
