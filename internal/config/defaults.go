package config

import "path/filepath"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".folio.yml"

// MinSecretLen is the shortest accepted session secret.
const MinSecretLen = 32

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:          5000,
		DataDir:       ".folio",
		StaticDir:     "static",
		BlogsDir:      "Blogs",
		CompressLevel: 6,
		Assets: AssetsConfig{
			Include: []string{"**/*.css"},
			Exclude: []string{"**/*.min.css"},
		},
	}
}

// DBPath is where the SQLite database lives.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "folio.db")
}
