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
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcli/flow/config"
	"github.com/flowcli/flow/logging"
)

// outputCommand builds a command whose context carries cfg and a logger
// that writes command results into the returned buffer.
func outputCommand(cfg *config.Config) (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logging.NewLogger(slog.LevelInfo)
	logger.OutputWriter = buf

	cmd := &cobra.Command{}
	ctx := logging.WithLogger(context.Background(), logger)
	ctx = context.WithValue(ctx, configKey, cfg)
	cmd.SetContext(ctx)

	return cmd, buf
}

func TestConfigShowPrintsJSON(t *testing.T) {
	cfg := &config.Config{
		DevFolder:      "~/Development",
		IDE:            "cursor",
		DefaultVersion: "0.1.0",
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "color"

	cmd, buf := outputCommand(cfg)
	require.NoError(t, runConfigShow(cmd, nil))

	assert.Contains(t, buf.String(), `"dev_folder": "~/Development"`)
	assert.Contains(t, buf.String(), `"ide": "cursor"`)
	assert.Contains(t, buf.String(), `"default_version": "0.1.0"`)
}

func TestConfigGetPrintsValue(t *testing.T) {
	cfg := &config.Config{IDE: "zed"}

	cmd, buf := outputCommand(cfg)
	require.NoError(t, runConfigGet(cmd, []string{"ide"}))

	assert.Equal(t, "zed\n", buf.String())
}

func TestConfigSchemaOutput(t *testing.T) {
	cmd, buf := outputCommand(&config.Config{})
	require.NoError(t, runConfigSchema(cmd, nil))

	assert.Contains(t, buf.String(), `"title": "Flow Configuration"`)
	assert.Contains(t, buf.String(), `"dev_folder"`)
	assert.Contains(t, buf.String(), `"additionalProperties": false`)
}

// TestConfigSetKeepsFileValuesOverEnv checks that a set only changes the
// named key: FLOW_* variables in the environment must not be written into
// the file alongside it.
func TestConfigSetKeepsFileValuesOverEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	seed := &config.Config{
		DevFolder:      "~/Development",
		IDE:            "cursor",
		DefaultVersion: "0.1.0",
	}
	seed.Log.Level = "info"
	seed.Log.Format = "color"
	require.NoError(t, config.Save(seed, path))

	t.Setenv("FLOW_IDE", "zed")
	t.Cleanup(func() { cfgFile = "" })

	err := runCommand(t, "config", "set", "dev_folder", "/srv/projects", "--config", path)
	require.NoError(t, err)

	saved, err := config.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/projects", saved.DevFolder)
	assert.Equal(t, "cursor", saved.IDE)
}
