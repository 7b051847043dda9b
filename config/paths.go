package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "SUIBUBBLES_CONFIG"
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = "suibubbles.yaml"
	// ConfigDirName is the directory name under ~/.config.
	ConfigDirName = "suibubbles"
)

// FindConfigPath returns the first existing config file on the search path,
// or an empty string.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// EnsureConfigDir creates the parent directory of path.
func EnsureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// SizeScriptPath resolves bubbles.size_script against the directory of the
// config file it came from. An empty setting stays empty.
func (c *Config) SizeScriptPath(configPath string) string {
	p := c.Bubbles.SizeScript
	if p == "" || filepath.IsAbs(p) || configPath == "" {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}
