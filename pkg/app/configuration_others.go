//go:build !windows

package app

import (
	"os"
	"path/filepath"
)

func defaultConfigurationFile() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "configuration.yml"
	}
	return filepath.Join(base, "Mute", "configuration.yml")
}
