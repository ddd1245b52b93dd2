package config

// Defaults returns the default configuration: dynamic security level (0
// means infer from the secret), diffusion enabled, memory locking attempted
// but not required, and error-level logging.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.xsss",
		Security: SecurityConfig{
			DefaultSecurityBits: 0,
			DefaultDiffusion:    true,
			MemoryLock:          true,
			RequireLock:         false,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.xsss/xsss.log",
		},
	}
}
