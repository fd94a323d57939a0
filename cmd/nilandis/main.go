// Command nilandis compiles a .nil source file and disassembles its
// bytecode to stdout. It is a thin driver over the
// lexer/parser/compiler pipeline and the code.Instructions
// disassembler.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"nilan/compiler"
	"nilan/lexer"
	"nilan/parser"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&disassembleCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

type disassembleCmd struct {
	constants bool
}

func (*disassembleCmd) Name() string     { return "disasm" }
func (*disassembleCmd) Synopsis() string { return "compile a source file and print its bytecode" }
func (*disassembleCmd) Usage() string    { return "nilandis disasm <file.nil>\n" }

func (cmd *disassembleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.constants, "constants", false, "also print the constants pool")
}

func (cmd *disassembleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 file not provided")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	l := lexer.New(string(data))
	p := parser.New(l)
	program, err := p.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}

	comp := compiler.New()
	if err := comp.Compile(program); err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}

	bytecode := comp.Bytecode()
	fmt.Print(bytecode.Instructions.String())

	if cmd.constants {
		fmt.Println("\nconstants:")
		for i, c := range bytecode.Constants {
			fmt.Printf("%4d %s\n", i, c.Inspect())
		}
	}

	return subcommands.ExitSuccess
}
