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

// Package editor launches the configured IDE on a generated project.
// Launch failures are reported to the caller but are never fatal to
// project creation; the tree on disk is already complete.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"

	"github.com/flowcli/flow/errors"
)

// launcher describes how to start one editor.
type launcher struct {
	command string
	// terminal editors take over the current TTY instead of detaching.
	terminal bool
}

var launchers = map[string]launcher{
	"cursor":   {command: "cursor"},
	"code":     {command: "code"},
	"codium":   {command: "codium"},
	"zed":      {command: "zed"},
	"subl":     {command: "subl"},
	"idea":     {command: "idea"},
	"goland":   {command: "goland"},
	"webstorm": {command: "webstorm"},
	"vim":      {command: "vim", terminal: true},
	"nvim":     {command: "nvim", terminal: true},
	"emacs":    {command: "emacs", terminal: true},
	"helix":    {command: "hx", terminal: true},
}

// Known returns the supported editor ids in sorted order.
func Known() []string {
	ids := make([]string, 0, len(launchers))
	for id := range launchers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsKnown reports whether id names a supported editor.
func IsKnown(id string) bool {
	_, ok := launchers[id]
	return ok
}

// Open starts the editor id on dir. Unknown editors are launched as a bare
// command so user-supplied values still work when they are on PATH. GUI
// editors detach; terminal editors run in the foreground until closed.
func Open(ctx context.Context, id, dir string) error {
	l, ok := launchers[id]
	if !ok {
		l = launcher{command: id}
	}

	path, err := exec.LookPath(l.command)
	if err != nil {
		return fmt.Errorf("editor %q not found in PATH: %w", l.command, err)
	}

	cmd := exec.CommandContext(ctx, path, dir)
	if l.terminal {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return errors.Wrap("run editor", l.command, err)
		}
		return nil
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap("start editor", l.command, err)
	}
	// Detach so the editor outlives the CLI process.
	return cmd.Process.Release()
}
