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

package templates_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcli/flow/errors"
	"github.com/flowcli/flow/templates"
)

func TestGenerateReactWithTailwind(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "my-app")

	req := templates.Request{
		Name:       "my-app",
		TemplateID: "react",
		Features:   templates.NewFeatureSet("typescript", "tailwind"),
	}

	err := templates.NewScaffolder().Generate(context.Background(), req, target, templates.Options{})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(target, "package.json"))
	assert.FileExists(t, filepath.Join(target, "tailwind.config.js"))
	assert.FileExists(t, filepath.Join(target, "postcss.config.js"))
	assert.FileExists(t, filepath.Join(target, "tsconfig.json"))
	assert.NoFileExists(t, filepath.Join(target, ".eslintrc.json"))
	assert.NoFileExists(t, filepath.Join(target, ".prettierrc"))

	css, err := os.ReadFile(filepath.Join(target, "src", "index.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), "@tailwind base;")

	assertNoStageDirs(t, dir)
}

func TestGenerateUnknownTemplate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "my-app")

	req := templates.Request{
		Name:       "my-app",
		TemplateID: "rails",
		Features:   templates.NewFeatureSet(),
	}

	err := templates.NewScaffolder().Generate(context.Background(), req, target, templates.Options{})
	require.ErrorIs(t, err, errors.ErrUnknownTemplate)
	assert.NoDirExists(t, target)
	assertNoStageDirs(t, dir)
}

func TestGenerateInvalidName(t *testing.T) {
	dir := t.TempDir()

	req := templates.Request{
		Name:       "-bad",
		TemplateID: "react",
		Features:   templates.NewFeatureSet(),
	}

	err := templates.NewScaffolder().Generate(context.Background(), req, filepath.Join(dir, "-bad"), templates.Options{})
	require.ErrorIs(t, err, errors.ErrInvalidProjectName)
}

func TestGenerateInvalidVersion(t *testing.T) {
	dir := t.TempDir()

	req := templates.Request{
		Name:       "my-app",
		TemplateID: "react",
		Features:   templates.NewFeatureSet(),
		Version:    "not-a-version",
	}

	err := templates.NewScaffolder().Generate(context.Background(), req, filepath.Join(dir, "my-app"), templates.Options{})
	require.Error(t, err)
}

func TestGenerateUndeclaredFeature(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "my-app")

	req := templates.Request{
		Name:       "my-app",
		TemplateID: "react",
		Features:   templates.NewFeatureSet("prisma"),
	}

	err := templates.NewScaffolder().Generate(context.Background(), req, target, templates.Options{})
	require.ErrorIs(t, err, errors.ErrUnknownFeature)
	assert.NoDirExists(t, target)
}

func TestGenerateExistingTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "my-app")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("keep"), 0644))

	req := templates.Request{
		Name:       "my-app",
		TemplateID: "python",
		Features:   templates.NewFeatureSet(),
	}

	err := templates.NewScaffolder().Generate(context.Background(), req, target, templates.Options{})
	require.ErrorIs(t, err, errors.ErrTargetExists)

	// Refusal must leave the existing directory untouched and no stage behind.
	assert.FileExists(t, filepath.Join(target, "keep.txt"))
	assertNoStageDirs(t, dir)
}

func TestGenerateForceReplacesTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "my-app")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "stale.txt"), []byte("stale"), 0644))

	req := templates.Request{
		Name:       "my-app",
		TemplateID: "python",
		Features:   templates.NewFeatureSet("pytest"),
	}

	err := templates.NewScaffolder().Generate(context.Background(), req, target, templates.Options{Force: true})
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(target, "stale.txt"))
	assert.FileExists(t, filepath.Join(target, "src", "main.py"))
	assert.FileExists(t, filepath.Join(target, "tests", "test_main.py"))
}

func TestGenerateCanceledContext(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "my-app")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := templates.Request{
		Name:       "my-app",
		TemplateID: "react",
		Features:   templates.NewFeatureSet(),
	}

	err := templates.NewScaffolder().Generate(ctx, req, target, templates.Options{})
	require.ErrorIs(t, err, errors.ErrCanceled)
	assert.NoDirExists(t, target)
	assertNoStageDirs(t, dir)
}

func TestGenerateDeterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "run1", "my-app")
	second := filepath.Join(dir, "run2", "my-app")

	req := templates.Request{
		Name:       "my-app",
		TemplateID: "t3",
		Features:   templates.NewFeatureSet("nextauth", "prisma", "jest", "trpc-sub", "pwa"),
	}

	s := templates.NewScaffolder()
	require.NoError(t, s.Generate(context.Background(), req, first, templates.Options{}))
	require.NoError(t, s.Generate(context.Background(), req, second, templates.Options{}))

	assert.Equal(t, snapshotTree(t, first), snapshotTree(t, second))
}

// snapshotTree maps relative file paths to contents for tree comparison.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()

	snapshot := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snapshot[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return snapshot
}

// assertNoStageDirs fails when a hidden staging directory is left behind.
func assertNoStageDirs(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".stage-", "stage directory left behind: %s", entry.Name())
	}
}
