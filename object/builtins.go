package object

import "fmt"

// Builtins is the fixed, ordered list of built-in functions. Order is
// load-bearing: OpGetBuiltin encodes an index into this slice directly
// into bytecode, so entries must never be reordered or removed, only
// appended.
var Builtins = []struct {
	Name    string
	Builtin *Builtin
}{
	{"len", &Builtin{Name: "len", Fn: builtinLen}},
	{"puts", &Builtin{Name: "puts", Fn: builtinPuts}},
	{"first", &Builtin{Name: "first", Fn: builtinFirst}},
	{"last", &Builtin{Name: "last", Fn: builtinLast}},
	{"push", &Builtin{Name: "push", Fn: builtinPush}},
	{"rest", &Builtin{Name: "rest", Fn: builtinRest}},
}

// GetBuiltinByName returns the Builtin registered under name, or nil.
func GetBuiltinByName(name string) *Builtin {
	for _, def := range Builtins {
		if def.Name == name {
			return def.Builtin
		}
	}
	return nil
}

func argError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return argError("wrong number of args: need 1")
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return argError("arg is wrong type, must be array or string")
	}
}

func builtinPuts(args ...Object) Object {
	for _, arg := range args {
		fmt.Println(arg.Inspect())
	}
	return &Null{}
}

func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return argError("wrong number of args: need 1")
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return argError("arg is wrong type, must be array")
	}
	// NOTE: guards with > 1, not > 0. A single-element array returns
	// Null here, as do last and rest below.
	if len(arr.Elements) > 1 {
		return arr.Elements[0]
	}
	return &Null{}
}

func builtinLast(args ...Object) Object {
	if len(args) != 1 {
		return argError("wrong number of args: need 1")
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return argError("arg is wrong type, must be array")
	}
	if len(arr.Elements) > 1 {
		return arr.Elements[len(arr.Elements)-1]
	}
	return &Null{}
}

func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return argError("wrong number of args: need 1")
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return argError("arg is wrong type, must be array")
	}
	if len(arr.Elements) > 1 {
		newElements := make([]Object, len(arr.Elements)-1)
		copy(newElements, arr.Elements[1:])
		return &Array{Elements: newElements}
	}
	return &Null{}
}

func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return argError("wrong number of args: need 2")
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return argError("arg is wrong type, must be array")
	}
	newElements := make([]Object, len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements[len(arr.Elements)] = args[1]
	return &Array{Elements: newElements}
}
