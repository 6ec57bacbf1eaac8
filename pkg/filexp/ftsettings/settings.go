package ftsettings

import (
	"os"
	"path/filepath"

	"github.com/filetug/filexp/pkg/fsutils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings is the optional user configuration. It is only ever read.
type Settings struct {
	ShowHidden bool     `yaml:"show_hidden"`
	DirsFirst  bool     `yaml:"dirs_first"`
	Exclude    []string `yaml:"exclude,omitempty"`
	Opener     string   `yaml:"opener,omitempty"`
	LogFile    string   `yaml:"log_file,omitempty"`
	LogLevel   string   `yaml:"log_level,omitempty"`
}

func Default() Settings {
	return Settings{
		ShowHidden: true,
		LogLevel:   "info",
	}
}

var osReadFile = os.ReadFile
var osGetenv = os.Getenv
var yamlUnmarshal = yaml.Unmarshal

// ConfigFilePath resolves the config file location, honouring FILEXP_CONFIG.
func ConfigFilePath() (string, error) {
	if p := osGetenv(ConfigPathEnv); p != "" {
		return fsutils.ExpandHome(p), nil
	}
	userDir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, configFileName), nil
}

// Load reads the config file on top of the defaults. A missing file is not
// an error; a malformed one is, and the defaults are returned with it.
func Load() (Settings, error) {
	settings := Default()
	filePath, err := ConfigFilePath()
	if err != nil {
		settings.applyEnv()
		return settings, errors.Wrap(err, "failed to locate config file")
	}
	data, err := osReadFile(filePath)
	switch {
	case os.IsNotExist(err):
		settings.applyEnv()
		return settings, nil
	case err != nil:
		settings.applyEnv()
		return settings, errors.Wrapf(err, "failed to read %s", filePath)
	}
	if err = yamlUnmarshal(data, &settings); err != nil {
		defaults := Default()
		defaults.applyEnv()
		return defaults, errors.Wrapf(err, "failed to parse %s", filePath)
	}
	settings.applyEnv()
	return settings, nil
}

func (s *Settings) applyEnv() {
	if logFile := osGetenv(LogFileEnv); logFile != "" {
		s.LogFile = logFile
	}
	s.LogFile = fsutils.ExpandHome(s.LogFile)
}
