// Command enumlang lexes, parses, and runs programs written in the
// small statically-typed enum/struct expression language implemented
// by the sibling packages at the repository root.
package main

import (
	"os"

	"github.com/cwbudde/enumlang/cmd/enumlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
