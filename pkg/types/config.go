package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend    string `json:"backend" yaml:"backend"`
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultListenAddr is used by the serve command when no address is configured.
const DefaultListenAddr = "127.0.0.1:8580"

// Config validation errors (prd001-store-core R1.4).
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
