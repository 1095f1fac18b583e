package cli

import (
	"fmt"

	"github.com/devshims/security/internal/output"
	"github.com/devshims/security/internal/secrets"
)

// FindGenericPasswordCmd emulates `security find-generic-password`.
// The real tool searches the keychain by account and service; the shim
// always serves the container's token, so -a and -s are accepted only
// for call-site compatibility and -g (display the password) is
// effectively always on.
type FindGenericPasswordCmd struct {
	Account string `short:"a" help:"Account name to match (accepted, not used for lookup)"`
	Service string `short:"s" help:"Service name to match (accepted, not used for lookup)"`
	Display bool   `short:"g" name:"display" help:"Display the password (always on in the shim)"`
}

// Run looks up the token and writes the password line to stderr, the
// stream the real tool uses for -g output.
func (cmd *FindGenericPasswordCmd) Run(shim *Shim) error {
	token, err := shim.Tokens.Get(secrets.TokenKey)
	if err != nil {
		return output.NewCLIError(output.ExitNotFound,
			fmt.Sprintf("could not find password: %s is not set", secrets.TokenKey)).
			WithHint(fmt.Sprintf("export %s in the container environment", secrets.TokenKey))
	}

	// Quotes are literal characters of the output contract, not
	// escaping: the value is interpolated verbatim.
	fmt.Fprintf(shim.Stderr, "password: \"%s\"\n", token)
	return nil
}
