package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/devshims/security/internal/cli"
	"github.com/devshims/security/internal/output"
	"github.com/devshims/security/internal/secrets"
)

func main() {
	// Production wiring: token lookups hit the real process environment
	// and the password line goes to stderr, like the real security(1).
	shim := &cli.Shim{
		Tokens: secrets.Environ(),
		Stderr: os.Stderr,
	}

	// Parse CLI
	cliInstance := &cli.CLI{}
	ctx := kong.Parse(cliInstance,
		kong.Name("security"),
		kong.Description("Keychain shim for dev containers: emulates the security(1) subcommands keychain clients shell out to"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Bind(shim),
	)

	// Run command with bound dependencies
	err := ctx.Run()
	if err != nil {
		// Handle error with proper exit code
		if cliErr, ok := err.(*output.CLIError); ok {
			fmt.Fprintf(os.Stderr, "security: %s\n", cliErr.Message)
			if cliErr.Hint != "" {
				fmt.Fprintf(os.Stderr, "hint: %s\n", cliErr.Hint)
			}
			os.Exit(cliErr.ExitCode)
		}
		// Unknown error
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(output.ExitGeneral)
	}
}
