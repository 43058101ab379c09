package vm

import "github.com/knuth-mix/mixvm/opcode"

// Step fetches, decodes and executes one instruction, advancing PC and
// returning a *HaltError when the instruction was HLT. It is the unit the
// driver loop and the debugger's single-step command both build on.
func (m *Machine) Step() error {
	if m.Halted {
		return &HaltError{}
	}

	w, err := m.Memory.Load(m.PC)
	if err != nil {
		return m.fault(err)
	}
	in := Decode(w)
	m.PC++

	var before RegisterSnapshot
	if m.RegisterTrace != nil {
		before.Capture(m)
	}

	err = m.dispatch(in)
	m.Cycles++

	if m.ExecutionTrace != nil {
		m.ExecutionTrace.Record(m, in)
	}
	if m.RegisterTrace != nil {
		m.RegisterTrace.Record(m, in, &before)
	}
	if m.Statistics != nil {
		m.Statistics.Record(in)
	}
	if m.CodeCoverage != nil {
		m.CodeCoverage.RecordAt(m.PC - 1)
	}

	if _, halted := err.(*HaltError); halted {
		return err
	}
	if err != nil {
		return m.fault(err)
	}
	return nil
}

func (m *Machine) fault(err error) error {
	return &ExecutionError{PC: m.PC, Err: err}
}

// dispatch resolves an instruction's opcode group and executes its
// semantics, mirroring the grouping in the opcode table.
func (m *Machine) dispatch(in Instruction) error {
	addr, err := m.EffectiveAddress(in)
	if err != nil {
		return err
	}
	nextPC := m.PC

	switch {
	case in.Code == opcode.NOP:
		return nil
	case in.Code >= opcode.ADD && in.Code <= opcode.DIV:
		return m.execArithmetic(in, addr)
	case in.Code == opcode.CONV:
		return m.execConvert(in.Field)
	case in.Code == opcode.SH:
		return m.execShift(in, addr)
	case in.Code == opcode.MOVE:
		return m.execMove(in, addr)
	case in.Code >= opcode.LDA && in.Code <= opcode.LDXN:
		return m.execLoad(in, addr)
	case in.Code >= opcode.STA && in.Code <= opcode.STZ:
		return m.execStore(in, addr)
	case in.Code >= opcode.JBUS && in.Code <= opcode.JRED:
		return m.execIO(in, addr, nextPC)
	case in.Code == opcode.JMP:
		return m.execJump(in, addr, nextPC)
	case in.Code >= opcode.JA && in.Code <= opcode.JX:
		return m.execJump(in, addr, nextPC)
	case in.Code >= opcode.ATA && in.Code <= opcode.ATX:
		return m.execAddressTransfer(in, addr, in.AddressSign)
	case in.Code >= opcode.CMPA && in.Code <= opcode.CMPX:
		return m.execCompare(in, addr)
	}
	return &UndefinedInstructionError{Code: byte(in.Code), Field: in.Field}
}
