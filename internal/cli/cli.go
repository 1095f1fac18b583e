package cli

import (
	"io"

	"github.com/devshims/security/internal/secrets"
)

// Shim carries the runtime dependencies handlers receive through kong's
// binding mechanism: where tokens come from and where the password line
// goes. main.go binds the real environment and stderr; tests bind a
// fixture source and a buffer.
type Shim struct {
	Tokens secrets.Source
	Stderr io.Writer
}

// CLI is the root command structure. Only the two security(1)
// subcommands keychain clients actually invoke are defined; anything
// else is a parse error, including a bare invocation.
type CLI struct {
	FindGenericPassword FindGenericPasswordCmd `cmd:"" help:"Find a generic password item and display it"`
	AddGenericPassword  AddGenericPasswordCmd  `cmd:"" help:"Add a generic password item"`
}
