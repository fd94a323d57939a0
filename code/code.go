// Package code defines the bytecode instruction format the compiler
// emits and the VM executes: the Opcode enum, the Make/ReadOperands
// encoders, and the disassembler. Every instruction is one opcode byte
// followed by fixed-width, big-endian operands.
package code

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Instructions is a flat, concatenated byte sequence: one instruction
// after another, opcode followed by its fixed-width operands.
type Instructions []byte

// Opcode is a single byte identifying an instruction.
type Opcode byte

const (
	OpConstant Opcode = iota
	OpTrue
	OpFalse
	OpNull

	OpAdd
	OpSub
	OpMul
	OpDiv

	OpEqual
	OpNotEqual
	OpGreaterThan

	OpMinus
	OpBang

	OpPop

	OpJump
	OpJumpNotTruthy

	OpSetGlobal
	OpGetGlobal

	OpSetLocal
	OpGetLocal

	OpGetBuiltin
	OpGetFree
	OpCurrentClosure

	OpArray
	OpHash
	OpIndex

	OpCall
	OpReturnValue
	OpReturn

	OpClosure
)

// Definition describes how to encode and disassemble one opcode.
type Definition struct {
	Name          string
	OperandWidths []int
}

var definitions = map[Opcode]*Definition{
	OpConstant: {"OpConstant", []int{2}},
	OpTrue:     {"OpTrue", []int{}},
	OpFalse:    {"OpFalse", []int{}},
	OpNull:     {"OpNull", []int{}},

	OpAdd: {"OpAdd", []int{}},
	OpSub: {"OpSub", []int{}},
	OpMul: {"OpMul", []int{}},
	OpDiv: {"OpDiv", []int{}},

	OpEqual:       {"OpEqual", []int{}},
	OpNotEqual:    {"OpNotEqual", []int{}},
	OpGreaterThan: {"OpGreaterThan", []int{}},

	OpMinus: {"OpMinus", []int{}},
	OpBang:  {"OpBang", []int{}},

	OpPop: {"OpPop", []int{}},

	OpJump:          {"OpJump", []int{2}},
	OpJumpNotTruthy: {"OpJumpNotTruthy", []int{2}},

	OpSetGlobal: {"OpSetGlobal", []int{2}},
	OpGetGlobal: {"OpGetGlobal", []int{2}},

	OpSetLocal: {"OpSetLocal", []int{1}},
	OpGetLocal: {"OpGetLocal", []int{1}},

	OpGetBuiltin:     {"OpGetBuiltin", []int{1}},
	OpGetFree:        {"OpGetFree", []int{1}},
	OpCurrentClosure: {"OpCurrentClosure", []int{}},

	OpArray: {"OpArray", []int{2}},
	OpHash:  {"OpHash", []int{2}},
	OpIndex: {"OpIndex", []int{}},

	OpCall:        {"OpCall", []int{1}},
	OpReturnValue: {"OpReturnValue", []int{}},
	OpReturn:      {"OpReturn", []int{}},

	OpClosure: {"OpClosure", []int{2, 1}},
}

// Lookup returns the Definition for op, or an error if op is unknown.
func Lookup(op Opcode) (*Definition, error) {
	def, ok := definitions[op]
	if !ok {
		return nil, fmt.Errorf("opcode %d undefined", op)
	}
	return def, nil
}

// Make encodes a single instruction: opcode followed by its operands,
// each written big-endian in the width the opcode's Definition declares.
// Unrecognized opcodes produce an empty instruction.
func Make(op Opcode, operands ...int) []byte {
	def, err := Lookup(op)
	if err != nil {
		return []byte{}
	}

	length := 1
	for _, w := range def.OperandWidths {
		length += w
	}

	instruction := make([]byte, length)
	instruction[0] = byte(op)

	offset := 1
	for i, operand := range operands {
		width := def.OperandWidths[i]
		switch width {
		case 2:
			binary.BigEndian.PutUint16(instruction[offset:], uint16(operand))
		case 1:
			instruction[offset] = byte(operand)
		}
		offset += width
	}
	return instruction
}

// ReadOperands decodes the operands of ins according to def, returning
// the decoded values and the number of bytes consumed (not including the
// opcode byte itself).
func ReadOperands(def *Definition, ins Instructions) ([]int, int) {
	operands := make([]int, len(def.OperandWidths))
	offset := 0

	for i, width := range def.OperandWidths {
		switch width {
		case 2:
			operands[i] = int(ReadUint16(ins[offset:]))
		case 1:
			operands[i] = int(ReadUint8(ins[offset:]))
		}
		offset += width
	}
	return operands, offset
}

// ReadUint16 reads a big-endian uint16 from the start of ins.
func ReadUint16(ins Instructions) uint16 { return binary.BigEndian.Uint16(ins) }

// ReadUint8 reads a single byte from the start of ins.
func ReadUint8(ins Instructions) uint8 { return ins[0] }

// String disassembles the whole instruction stream, one line per
// instruction, formatted "%04X OPNAME op1 op2...". Addresses are
// relative to the start of ins.
func (ins Instructions) String() string {
	var out bytes.Buffer

	i := 0
	for i < len(ins) {
		def, err := Lookup(Opcode(ins[i]))
		if err != nil {
			fmt.Fprintf(&out, "%04X ERROR: %s\n", i, err)
			i++
			continue
		}

		operands, read := ReadOperands(def, ins[i+1:])
		fmt.Fprintf(&out, "%04X %s\n", i, formatInstruction(def, operands))
		i += 1 + read
	}
	return out.String()
}

func formatInstruction(def *Definition, operands []int) string {
	operandCount := len(def.OperandWidths)
	if len(operands) != operandCount {
		return fmt.Sprintf("ERROR: operand len %d does not match defined %d\n", len(operands), operandCount)
	}

	switch operandCount {
	case 0:
		return def.Name
	case 1:
		return fmt.Sprintf("%s %d", def.Name, operands[0])
	case 2:
		return fmt.Sprintf("%s %d %d", def.Name, operands[0], operands[1])
	}
	return fmt.Sprintf("ERROR: unhandled operandCount for %s\n", def.Name)
}
