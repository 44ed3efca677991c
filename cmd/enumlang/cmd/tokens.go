package cmd

import (
	"fmt"

	"github.com/cwbudde/enumlang/lexer"
	"github.com/cwbudde/enumlang/token"
	"github.com/spf13/cobra"
)

var (
	tokensEvalExpr string
	tokensShowPos  bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a program and print the resulting tokens",
	Long: `Run the lexer over a program and print each token it produces.

Examples:
  enumlang tokens program.enl
  enumlang tokens --show-pos program.enl
  enumlang tokens -e "let x: i32 = 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&tokensEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	tokensCmd.Flags().BoolVar(&tokensShowPos, "show-pos", false, "show each token's line:column position")
}

func runTokens(_ *cobra.Command, args []string) error {
	input, _, err := resolveInput(tokensEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		if tokensShowPos {
			fmt.Printf("%-12s %-20q %s\n", tok.Kind, tok.Literal, tok.Pos)
		} else {
			fmt.Printf("%-12s %q\n", tok.Kind, tok.Literal)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}
