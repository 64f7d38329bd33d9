package store

// history holds the two stacks of the undo/redo manager. The undo stack holds
// inverses: record computes the inverse of each incoming action before it is
// applied, so undoing is just applying the top of the stack.
type history struct {
	undo []action
	redo []action
}

// record pushes the inverse of a onto the undo stack and unconditionally
// clears the redo stack. Actions without an inverse (chat variants) are
// ignored.
func (h *history) record(a action) {
	inv, ok := invert(a)
	if !ok {
		return
	}
	h.undo = append(h.undo, inv)
	h.redo = nil
}

// popUndo removes and returns the action to apply for an undo, plus the
// action to push onto the redo stack (the popped action's own inverse).
func (h *history) popUndo() (next, redo action, ok bool) {
	if len(h.undo) == 0 {
		return nil, nil, false
	}
	a := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	inv, _ := invert(a)
	return a, inv, true
}

func (h *history) popRedo() (next, undo action, ok bool) {
	if len(h.redo) == 0 {
		return nil, nil, false
	}
	a := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	inv, _ := invert(a)
	return a, inv, true
}

func (h *history) pushRedo(a action) { h.redo = append(h.redo, a) }
func (h *history) pushUndo(a action) { h.undo = append(h.undo, a) }

func (h *history) canUndo() bool { return len(h.undo) > 0 }
func (h *history) canRedo() bool { return len(h.redo) > 0 }
