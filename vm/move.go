package vm

// execMove implements MOVE: copy F words starting at src to F words
// starting at rI1's value, then leave rI1 unchanged. Overlapping src < dst
// ranges are copied back-to-front so the overlap isn't clobbered mid-copy.
func (m *Machine) execMove(in Instruction, src int) error {
	count := int(in.Field)
	dst := int(m.I[0].Int())

	indices := make([]int, count)
	for i := range indices {
		indices[i] = i
	}
	if src < dst {
		for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}

	for _, i := range indices {
		w, err := m.Memory.Load(src + i)
		if err != nil {
			return err
		}
		if err := m.Memory.Store(dst+i, w); err != nil {
			return err
		}
	}
	return nil
}
