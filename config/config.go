/*
Copyright © 2025 Flow CLI Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package config manages the persisted flow configuration file.
// The file is a single JSON object; missing files and missing keys fall back
// to documented defaults, so reads never fail on absence.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/flowcli/flow/errors"
	"github.com/spf13/viper"
)

// File permissions for generated directories and files.
const (
	DirPermReadWriteExec = os.FileMode(0755)
	FilePermReadWrite    = os.FileMode(0644)
)

// Default values supplied when the config file or a key is absent.
const (
	DefaultDevFolder = "~/Development"
	DefaultIDE       = "cursor"
	DefaultVersion   = "0.1.0"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "color"
)

// Config represents the global flow configuration.
// This is for user preferences, NOT for template definitions
// (which live in a fixed in-memory catalog).
type Config struct {
	// DevFolder is the directory new projects are created under.
	DevFolder string `mapstructure:"dev_folder" json:"dev_folder"`
	// IDE is the editor launched after generation (cursor, code, zed, ...).
	IDE string `mapstructure:"ide" json:"ide"`
	// DefaultVersion is the semantic version stamped into generated manifests.
	DefaultVersion string    `mapstructure:"default_version" json:"default_version"`
	Log            LogConfig `mapstructure:"log" json:"log"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// NewConfigViper returns a viper instance wired to the flow config search
// paths and environment. Shared by Load and the config subcommands.
func NewConfigViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")

	for _, dir := range ConfigDirs() {
		v.AddConfigPath(dir)
	}

	setDefaults(v)

	// FLOW_DEV_FOLDER, FLOW_IDE, FLOW_LOG_LEVEL, ...
	v.SetEnvPrefix("FLOW")
	v.AutomaticEnv()
	bindEnvVars(v)

	return v
}

// Load reads and parses the configuration file.
// Returns a Config with defaults if no config file exists.
func Load() (*Config, error) {
	v := NewConfigViper()

	// Missing file is not an error; defaults apply.
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap("parse config", v.ConfigFileUsed(), err)
	}

	return &cfg, nil
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	setDefaults(v)

	v.SetEnvPrefix("FLOW")
	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap("read config", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap("parse config", path, err)
	}

	return &cfg, nil
}

// ReadFile parses the config file at path without applying environment
// overrides. Commands that edit the file and save it back read through this
// so FLOW_* variables in the caller's environment never end up persisted.
func ReadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap("read config", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap("parse config", path, err)
	}

	return &cfg, nil
}

// Save writes the full config object to path as indented JSON, creating
// parent directories as needed. The write goes through a temp file so a
// failed save never leaves a truncated config behind.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermReadWriteExec); err != nil {
		return errors.Wrap("create config directory", filepath.Dir(path), err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap("encode config", "", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePermReadWrite); err != nil {
		return errors.Wrap("write config", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap("write config", path, err)
	}

	return nil
}

// setDefaults sets default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("dev_folder", DefaultDevFolder)
	v.SetDefault("ide", DefaultIDE)
	v.SetDefault("default_version", DefaultVersion)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// bindEnvVars explicitly binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("dev_folder", "FLOW_DEV_FOLDER")
	_ = v.BindEnv("ide", "FLOW_IDE")
	_ = v.BindEnv("default_version", "FLOW_DEFAULT_VERSION")
	_ = v.BindEnv("log.level", "FLOW_LOG_LEVEL")
	_ = v.BindEnv("log.format", "FLOW_LOG_FORMAT")
}
