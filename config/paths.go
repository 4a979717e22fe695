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
	"strings"

	"github.com/adrg/xdg"
	"github.com/flowcli/flow/errors"
)

// appDirName is the per-user directory name used for flow configuration.
const appDirName = "flow"

// legacyDirName is the pre-XDG dotfolder still honored for existing installs.
const legacyDirName = ".flow"

// ConfigDirs returns the configuration search paths in priority order:
// $XDG_CONFIG_HOME/flow first, then the legacy ~/.flow directory.
func ConfigDirs() []string {
	dirs := []string{filepath.Join(xdg.ConfigHome, appDirName)}

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, legacyDirName))
	}

	return dirs
}

// ConfigFile returns the path a named config file should be written to,
// preferring an existing file in the search path and falling back to the
// XDG location for new installs.
func ConfigFile(name string) (string, error) {
	for _, dir := range ConfigDirs() {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	path, err := xdg.ConfigFile(filepath.Join(appDirName, name))
	if err != nil {
		return "", errors.Wrap("resolve config path", name, err)
	}
	return path, nil
}

// ExpandPath expands environment variables and home directory in a path.
// It handles both ${VAR} syntax and ~ (tilde) for the home directory.
//
// Examples:
//   - "~/Development" -> "/home/user/Development"
//   - "${HOME}/work" -> "/home/user/work"
//   - "~" -> "/home/user"
func ExpandPath(path string) (string, error) {
	path = os.ExpandEnv(path)

	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap("resolve home directory", "", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}
