package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Config mirrors the long flag names of the gbkit tools. Any field left at its
// zero value keeps the flag default.
type Config struct {
	Input           string   `json:"input"`
	Genes           []string `json:"genes"`
	GenesFile       string   `json:"genes_file"`
	Before          int      `json:"before"`
	After           int      `json:"after"`
	Output          string   `json:"output"`
	ID              string   `json:"id"`
	Feature         string   `json:"feature"`
	Cache           string   `json:"cache"`
	NoMatchExitCode int      `json:"no_match_exit_code"`
	LogLevel        string   `json:"log_level"`
	LogFormat       string   `json:"log_format"`
}

// Load reads a JSON config from path. An empty path yields an empty Config;
// a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config %s: not found", path)
		}
		return nil, err
	}
	defer f.Close()
	var c Config
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &c, nil
}
