package settings

// Environment variable names for dworshak-config.
const (
	// EnvConfigPath overrides the backing file location when no explicit
	// path is supplied.
	EnvConfigPath = "DWORSHAK_CONFIG"
)
