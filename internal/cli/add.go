package cli

// AddGenericPasswordCmd emulates `security add-generic-password`.
// Deliberately inert: callers inside the container only need the write
// to report success, since every later read is answered from the
// environment rather than from anything stored here.
type AddGenericPasswordCmd struct {
	Account  string `short:"a" help:"Account name (accepted, discarded)"`
	Service  string `short:"s" help:"Service name (accepted, discarded)"`
	Password string `short:"w" help:"Password value (accepted, discarded)"`
}

// Run succeeds without observable effect.
func (cmd *AddGenericPasswordCmd) Run(shim *Shim) error {
	return nil
}
