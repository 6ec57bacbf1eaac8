package ftsettings

import (
	"os"
	"path/filepath"
)

const UserDir = "~/.filexp"

const configFileName = "config.yaml"

// ConfigPathEnv overrides the location of the config file.
const ConfigPathEnv = "FILEXP_CONFIG"

// LogFileEnv overrides log_file from the config file.
const LogFileEnv = "FILEXP_LOG"

var osUserHomeDir = os.UserHomeDir

func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}
