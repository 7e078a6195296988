package cmd

import (
	"fmt"
	"os"

	"github.com/jcholuj/DesignSystem/pkg/errors"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate a token file without generating code",
		Long: `Parse a design-token YAML file and resolve every color reference,
reporting unknown references, circular definitions, and malformed hex
values. No code is generated.

Exits non-zero when the file has problems.

Flags:
  -tokens FILE   Token YAML file to validate (required)`,
		Usage: "themegen check -tokens tokens.yaml",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	tokensPath := ""
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-tokens", "--tokens":
			if i+1 < len(args) {
				tokensPath = args[i+1]
				i++
			}
		}
	}

	if tokensPath == "" {
		return fmt.Errorf("-tokens is required\n\nUsage: themegen check -tokens tokens.yaml")
	}

	tokens, err := theme.LoadTokens(tokensPath)
	if err != nil {
		return err
	}

	diags := tokens.Diagnostics()
	if len(diags) == 0 {
		fmt.Printf("%s: ok\n", tokensPath)
		return nil
	}

	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "  %s\n", d)
	}
	return &errors.Error{
		Op:   "themegen.check",
		Kind: errors.KindTokens,
		Path: tokensPath,
		Err:  fmt.Errorf("%d problem(s) found", len(diags)),
	}
}
