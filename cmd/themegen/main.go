// Themegen compiles design-token YAML files into Go theme source.
//
// Usage:
//
//	themegen generate -tokens tokens.yaml -out theme_gen.go
//	themegen check -tokens tokens.yaml
package main

import (
	"fmt"
	"os"

	"github.com/jcholuj/DesignSystem/cmd/themegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
