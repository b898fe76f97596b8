package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultFileName   = ".i18nspectre.yaml"
	alternateFileName = ".i18nspectre.yml"
)

// Config holds persistent defaults loaded from a config file.
type Config struct {
	MinLength      int      `yaml:"min"`
	Format         string   `yaml:"format"`
	SkipText       bool     `yaml:"skip_text"`
	SkipAttributes string   `yaml:"skip_attributes"`
	SkipPatterns   []string `yaml:"skip_patterns"`
	SkipFiles      []string `yaml:"skip_files"`
}

// Load searches for a config file in the given directory and the user's home
// directory. Returns a zero-value Config if no file is found.
func Load(dir string) (Config, error) {
	paths := searchPaths(dir)
	for _, p := range paths {
		cfg, found, err := loadPath(p)
		if err != nil {
			return Config{}, err
		}
		if found {
			return cfg, nil
		}
	}
	return Config{}, nil
}

func searchPaths(dir string) []string {
	var paths []string
	if dir != "" {
		paths = append(paths, filepath.Join(dir, defaultFileName))
		paths = append(paths, filepath.Join(dir, alternateFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, defaultFileName))
		paths = append(paths, filepath.Join(home, alternateFileName))
	}
	return paths
}

func loadPath(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}
