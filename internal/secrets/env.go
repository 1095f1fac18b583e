package secrets

import "os"

// EnvSource implements the Source interface over the process environment.
type EnvSource struct{}

// Environ creates a Source backed by the real process environment.
func Environ() *EnvSource {
	return &EnvSource{}
}

// Get retrieves an environment variable by name. A variable that is set
// but empty is a hit; only an unset variable yields ErrNotFound.
func (s *EnvSource) Get(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}
