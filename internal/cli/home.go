package cli

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	envConfigHome = "XDG_CONFIG_HOME"

	configDir  = ".config"
	profileDir = "vault-cli"
)

// homeDir resolves the directory CLI profiles are saved in:
// $XDG_CONFIG_HOME/vault-cli when it is set to an absolute path, ~/.config/vault-cli otherwise
func homeDir() (string, error) {
	if configHome := os.Getenv(envConfigHome); filepath.IsAbs(configHome) {
		return filepath.Join(configHome, profileDir), nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, profileDir), nil
}
