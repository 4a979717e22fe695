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

package templates

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/flowcli/flow/config"
	"github.com/flowcli/flow/errors"
)

// Tree writes a project's files into a staging root. It checks the run
// context before every write so an interrupt stops generation between files,
// and it remembers the first failing path for error reporting.
type Tree struct {
	ctx        context.Context
	root       string
	failedPath string
}

// NewTree returns a Tree rooted at root.
func NewTree(ctx context.Context, root string) *Tree {
	return &Tree{ctx: ctx, root: root}
}

// Root returns the staging root directory.
func (t *Tree) Root() string {
	return t.root
}

// FailedPath returns the path of the first failed write, or "".
func (t *Tree) FailedPath() string {
	return t.failedPath
}

// Dir creates a directory (and parents) under the tree root.
func (t *Tree) Dir(elem ...string) error {
	path := filepath.Join(append([]string{t.root}, elem...)...)
	if err := t.ctx.Err(); err != nil {
		t.failedPath = path
		return err
	}
	if err := os.MkdirAll(path, config.DirPermReadWriteExec); err != nil {
		t.failedPath = path
		return errors.Wrap("create directory", path, err)
	}
	return nil
}

// File writes content to a file under the tree root, creating parent
// directories as needed.
func (t *Tree) File(content string, elem ...string) error {
	path := filepath.Join(append([]string{t.root}, elem...)...)
	if err := t.ctx.Err(); err != nil {
		t.failedPath = path
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), config.DirPermReadWriteExec); err != nil {
		t.failedPath = path
		return errors.Wrap("create directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), config.FilePermReadWrite); err != nil {
		t.failedPath = path
		return errors.Wrap("write file", path, err)
	}
	return nil
}

// JSON marshals v as indented JSON and writes it under the tree root.
// Map keys marshal in sorted order, keeping the output deterministic.
func (t *Tree) JSON(v interface{}, elem ...string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		path := filepath.Join(append([]string{t.root}, elem...)...)
		t.failedPath = path
		return errors.Wrap("encode json", path, err)
	}
	return t.File(string(data)+"\n", elem...)
}
