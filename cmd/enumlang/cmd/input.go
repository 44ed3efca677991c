package cmd

import (
	"fmt"
	"os"
)

// resolveInput returns the source text and a display filename, either
// from the -e/--eval flag or from the single positional file argument.
func resolveInput(evalExpr string, args []string) (input, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	default:
		return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
	}
}
