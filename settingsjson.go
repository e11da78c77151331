package eijiro

import (
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// BaseConfig holds the two file paths and the lookup defaults. A
// relative corpus or cache entry in a settings file is resolved
// against Path.
type BaseConfig struct {
	Path        string `json:"path"`
	Corpus      string `json:"corpus" env-default:"EIJIRO.txt"`
	Cache       string `json:"cache" env-default:"eijiro.dic"`
	Encoding    string `json:"encoding" env-default:"utf8"`
	MaxDistance uint32 `json:"maxDistance"`
	Strict      bool   `json:"strict"`
}

// ParseSettings reads a JSON settings file, or returns the defaults
// when no file is given.
func ParseSettings(settingfile string) (*BaseConfig, error) {
	config := &BaseConfig{}
	if settingfile == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, err
		}
		return config, nil
	}
	if err := cleanenv.ReadConfig(settingfile, config); err != nil {
		return nil, err
	}
	config.Corpus = config.getPath(config.Corpus)
	config.Cache = config.getPath(config.Cache)
	return config, nil
}

func (config *BaseConfig) getPath(path string) string {
	if path == "" || filepath.IsAbs(path) || config.Path == "" {
		return path
	}
	return filepath.Join(config.Path, path)
}
