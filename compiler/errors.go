package compiler

import "fmt"

// CompileError is returned for any failure the compiler detects in a
// syntactically valid AST: an unresolved identifier, a node type with no
// compilation rule, or similar.
type CompileError struct {
	Message string
}

func (e CompileError) Error() string {
	return fmt.Sprintf("💥 CompileError: %s", e.Message)
}

func newCompileError(format string, args ...interface{}) CompileError {
	return CompileError{Message: fmt.Sprintf(format, args...)}
}
