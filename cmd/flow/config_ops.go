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

package main

import (
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/flowcli/flow/config"
	"github.com/flowcli/flow/logging"
)

const configFileName = "config.json"

// configFilePath resolves the active config file: the --config flag when
// given, otherwise the first file on the search path.
func configFilePath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.ConfigFile(configFileName)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path, err := configFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists at %s (use --force to overwrite)", path)
	}

	cfg := &config.Config{
		DevFolder:      config.DefaultDevFolder,
		IDE:            config.DefaultIDE,
		DefaultVersion: config.DefaultVersion,
	}
	cfg.Log.Level = config.DefaultLogLevel
	cfg.Log.Format = config.DefaultLogFormat

	if err := config.Save(cfg, path); err != nil {
		return err
	}

	logging.Info("Wrote default configuration to %s", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := configFromContext(cmd)
	if cfg == nil {
		return fmt.Errorf("no configuration in command context")
	}

	logging.OutputContext(cmd.Context(), cfg)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg := configFromContext(cmd)
	if cfg == nil {
		return fmt.Errorf("no configuration in command context")
	}

	value, err := configValue(cfg, args[0])
	if err != nil {
		return err
	}
	logging.OutputContext(cmd.Context(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	path, err := configFilePath()
	if err != nil {
		return err
	}

	// Start from the file on disk so a set only changes the named key. The
	// read skips environment overrides; FLOW_* variables must not be baked
	// into the saved file. A missing file starts from defaults.
	var cfg *config.Config
	if _, statErr := os.Stat(path); statErr == nil {
		if cfg, err = config.ReadFile(path); err != nil {
			return err
		}
	} else {
		cfg = &config.Config{
			DevFolder:      config.DefaultDevFolder,
			IDE:            config.DefaultIDE,
			DefaultVersion: config.DefaultVersion,
		}
		cfg.Log.Level = config.DefaultLogLevel
		cfg.Log.Format = config.DefaultLogFormat
	}

	if err := setConfigValue(cfg, key, value); err != nil {
		return err
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	logging.Info("Set %s = %s", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	logging.OutputContext(cmd.Context(), path)
	return nil
}

func runConfigSchema(cmd *cobra.Command, args []string) error {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}

	schema := reflector.Reflect(&config.Config{})
	schema.Title = "Flow Configuration"
	schema.Description = "Configuration file format for the flow CLI"

	logging.OutputContext(cmd.Context(), schema)
	return nil
}

// configValue reads one config key.
func configValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "dev_folder":
		return cfg.DevFolder, nil
	case "ide":
		return cfg.IDE, nil
	case "default_version":
		return cfg.DefaultVersion, nil
	case "log.level":
		return cfg.Log.Level, nil
	case "log.format":
		return cfg.Log.Format, nil
	default:
		return "", fmt.Errorf("unknown configuration key %q", key)
	}
}

// setConfigValue writes one config key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "dev_folder":
		cfg.DevFolder = value
	case "ide":
		cfg.IDE = value
	case "default_version":
		cfg.DefaultVersion = value
	case "log.level":
		cfg.Log.Level = value
	case "log.format":
		cfg.Log.Format = value
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return nil
}
