package motion

// EdgeDetector turns a sampled button level into press edges. Holding the
// button yields exactly one edge.
type EdgeDetector struct {
	held bool
}

// Rising reports whether level went from released to pressed since the
// previous call.
func (e *EdgeDetector) Rising(level bool) bool {
	pressed := level && !e.held
	e.held = level
	return pressed
}

func (e *EdgeDetector) Reset() {
	e.held = false
}
