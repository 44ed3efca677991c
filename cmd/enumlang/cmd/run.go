package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/interp"
	"github.com/cwbudde/enumlang/lexer"
	"github.com/cwbudde/enumlang/parser"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	runEvalExpr string
	runDumpAST  bool
	runEntry    string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program and print its entry function's result",
	Long: `Lex, parse, load, and run a program, printing the value returned by
its entry function (main by default).

Examples:
  # Run a script file
  enumlang run program.enl

  # Evaluate an inline expression
  enumlang run -e "fn main() -> i32 { return 1 + 2; }"

  # Run with an AST dump (for debugging)
  enumlang run --dump-ast program.enl

  # Run a different entry function
  enumlang run --entry compute program.enl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().StringVar(&runEntry, "entry", "main", "name of the zero-argument function to run")
}

func runProgram(cmd *cobra.Command, args []string) error {
	input, filename, err := resolveInput(runEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	runID := uuid.NewString()
	if verbose {
		fmt.Fprintf(os.Stderr, "[%s] running %s\n", runID, filename)
	}

	l := lexer.New(input)
	p := parser.New(l)
	mod, err := p.ParseModule()
	if err != nil {
		printCompileError(err, input, filename)
		return fmt.Errorf("parsing failed")
	}
	mod.ID = runID

	if runDumpAST {
		fmt.Println("AST:")
		fmt.Println(mod.String())
		fmt.Println()
	}

	it := interp.New()
	if err := it.Load(mod); err != nil {
		printCompileError(err, input, filename)
		return fmt.Errorf("loading failed")
	}

	result, err := it.Run(runEntry)
	if err != nil {
		printCompileError(err, input, filename)
		return fmt.Errorf("execution failed")
	}

	fmt.Println(result.String())
	return nil
}

func printCompileError(err error, source, filename string) {
	if ce, ok := err.(*errors.Error); ok {
		fmt.Fprint(os.Stderr, errors.Format(ce, source, filename))
		fmt.Fprintln(os.Stderr)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
