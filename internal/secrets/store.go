package secrets

import "errors"

// Source is the interface for credential token lookup.
// The shim has no real keychain behind it; production uses the process
// environment and tests substitute a fixture.
type Source interface {
	Get(key string) (string, error)
}

// ErrNotFound is returned when a key is not present in the source
var ErrNotFound = errors.New("key not found")

// TokenKey is the environment variable that supplies the credential
// token served by find-generic-password.
const TokenKey = "GIT_TOKEN"
