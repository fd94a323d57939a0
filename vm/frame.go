package vm

import (
	"nilan/code"
	"nilan/object"
)

// Frame is one call's execution context: the closure being run, its own
// instruction pointer, and the base pointer marking where its locals
// begin on the shared value stack.
type Frame struct {
	cl          *object.Closure
	ip          int
	basePointer int
}

// NewFrame creates a Frame for invoking cl, with its locals starting at
// basePointer on the value stack.
func NewFrame(cl *object.Closure, basePointer int) *Frame {
	return &Frame{cl: cl, ip: -1, basePointer: basePointer}
}

// Instructions returns the frame's closure's instruction stream.
func (f *Frame) Instructions() code.Instructions {
	return f.cl.Fn.Instructions
}
