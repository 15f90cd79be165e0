/*
* Handles reading default options from a YAML file.
 */
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Looked for in the working directory when no file is given explicitly.
const DefaultFileName = ".git-log-summary.yaml"

// Environment variable naming a config file.
const EnvVar = "GIT_LOG_SUMMARY_CONFIG"

// Options that can be set in the config file. Empty values mean "not set".
type Config struct {
	Ordering     string   `yaml:"ordering"`
	OutputFormat string   `yaml:"output_format"`
	Exclude      []string `yaml:"exclude"`
	Color        string   `yaml:"color"`
}

// Returns a copy of c with every field set in o taking precedence.
//
// Excludes are combined rather than replaced.
func (c Config) Override(o Config) Config {
	merged := c

	if o.Ordering != "" {
		merged.Ordering = o.Ordering
	}

	if o.OutputFormat != "" {
		merged.OutputFormat = o.OutputFormat
	}

	if o.Color != "" {
		merged.Color = o.Color
	}

	merged.Exclude = append(append([]string{}, c.Exclude...), o.Exclude...)
	return merged
}

func Load(r io.Reader) (Config, error) {
	var c Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&c)
	if errors.Is(err, io.EOF) {
		return Config{}, nil // Empty file
	} else if err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}

	return c, nil
}

func LoadFile(path string) (_ Config, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	logger().Debug("loading config", "path", path)
	return Load(f)
}

// Picks the config file to use.
//
// An explicit path wins, then the environment variable, then the default file
// in dir if it exists. Returns an empty string if there is no config file.
func Detect(explicit string, dir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if fromEnv := os.Getenv(EnvVar); fromEnv != "" {
		return fromEnv, nil
	}

	path := filepath.Join(dir, DefaultFileName)
	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("could not check for config file: %w", err)
	}

	return "", nil
}
