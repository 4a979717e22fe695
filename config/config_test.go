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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfigEnv points the config search path at an empty temp home.
// xdg caches its base directories at package init, so it must be reloaded
// after the environment changes and again once the test restores it.
func isolateConfigEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()

	return home
}

// TestLoadFromPath_Defaults tests that defaults apply for missing keys.
func TestLoadFromPath_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	// Only one key set; the rest must come from defaults.
	require.NoError(t, os.WriteFile(configPath, []byte(`{"ide": "code"}`), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "code", cfg.IDE)
	assert.Equal(t, "~/Development", cfg.DevFolder)
	assert.Equal(t, "0.1.0", cfg.DefaultVersion)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "color", cfg.Log.Format)
}

// TestLoadFromPath_FullFile tests loading every field from a file.
func TestLoadFromPath_FullFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	content := `{
  "dev_folder": "/srv/projects",
  "ide": "zed",
  "default_version": "2.0.0",
  "log": {
    "level": "debug",
    "format": "json"
  }
}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/projects", cfg.DevFolder)
	assert.Equal(t, "zed", cfg.IDE)
	assert.Equal(t, "2.0.0", cfg.DefaultVersion)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

// TestLoadFromPath_UnknownKeysIgnored tests that unrecognized keys are ignored.
func TestLoadFromPath_UnknownKeysIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	content := `{"ide": "vim", "theme": "gruvbox", "telemetry": false}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, "vim", cfg.IDE)
}

// TestLoadFromPath_MissingFile tests that a missing explicit path is an error.
func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// TestSaveRoundTrip tests that save(load()) is idempotent.
func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.json")

	cfg := &Config{
		DevFolder:      "~/code",
		IDE:            "cursor",
		DefaultVersion: "0.1.0",
		Log:            LogConfig{Level: "warn", Format: "text"},
	}

	require.NoError(t, Save(cfg, configPath))

	reloaded, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)

	// Saving the reloaded config again produces an identical file.
	first, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.NoError(t, Save(reloaded, configPath))
	second, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestSave_NoPartialWrite tests that a failed save leaves no temp file debris.
func TestSave_NoPartialWrite(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	require.NoError(t, Save(&Config{IDE: "cursor"}, configPath))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "config.json", entries[0].Name())
}

// TestLoad_MissingFileDefaults tests that Load returns the documented
// defaults when no config file exists anywhere on the search path.
func TestLoad_MissingFileDefaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "~/Development", cfg.DevFolder)
	assert.Equal(t, "cursor", cfg.IDE)
	assert.Equal(t, "0.1.0", cfg.DefaultVersion)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "color", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FLOW_IDE", "zed")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "zed", cfg.IDE)
	assert.Equal(t, "~/Development", cfg.DevFolder)
}

// TestLoad_FileOnSearchPath tests that Load picks up a file under the XDG
// config home.
func TestLoad_FileOnSearchPath(t *testing.T) {
	home := isolateConfigEnv(t)

	dir := filepath.Join(home, ".config", "flow")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := `{"ide": "helix", "dev_folder": "/srv/projects"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "helix", cfg.IDE)
	assert.Equal(t, "/srv/projects", cfg.DevFolder)
}

// TestReadFile_IgnoresEnv tests that environment overrides do not leak into
// a file read for editing.
func TestReadFile_IgnoresEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"ide": "cursor"}`), 0644))

	t.Setenv("FLOW_IDE", "zed")

	cfg, err := ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "cursor", cfg.IDE)
	assert.Equal(t, "~/Development", cfg.DevFolder)
}
