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
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/flowcli/flow/config"
	"github.com/flowcli/flow/errors"
	"github.com/flowcli/flow/git"
	"github.com/flowcli/flow/logging"
)

// Scaffolder materializes a validated project request into a directory tree.
//
// Generation is staged: files are written into a hidden sibling directory of
// the target and renamed into place only once the whole tree succeeded, so a
// partial failure or interrupt never leaves a half-written project behind.
type Scaffolder struct{}

// NewScaffolder creates a new project scaffolder.
func NewScaffolder() *Scaffolder {
	return &Scaffolder{}
}

// Options adjusts scaffolder behavior for one run.
type Options struct {
	// Force replaces an existing target directory instead of refusing.
	Force bool
}

// stagePattern is the MkdirTemp pattern for staging directories. The leading
// dot keeps in-progress stages out of the way of shell globs.
const stagePattern = ".%s.stage-*"

// Generate validates req and writes the project tree at targetDir.
//
// Error taxonomy: ErrInvalidProjectName, ErrUnknownTemplate and
// ErrUnknownFeature mean nothing was touched on disk. ErrTargetExists means
// targetDir already existed and Force was off. A *GenerationError means a
// write failed partway; the staged output has been removed. ErrCanceled
// means the run context was canceled between writes; likewise cleaned up.
func (s *Scaffolder) Generate(ctx context.Context, req Request, targetDir string, opts Options) error {
	if err := s.validate(&req); err != nil {
		return err
	}

	def, err := Get(req.TemplateID)
	if err != nil {
		return err
	}
	if err := ValidateFeatures(def, req.Features); err != nil {
		return err
	}

	targetExists := false
	if _, err := os.Stat(targetDir); err == nil {
		if !opts.Force {
			return fmt.Errorf("%w: %s", errors.ErrTargetExists, targetDir)
		}
		targetExists = true
	}

	parent := filepath.Dir(targetDir)
	if err := os.MkdirAll(parent, config.DirPermReadWriteExec); err != nil {
		return errors.Wrap("create parent directory", parent, err)
	}

	stage, err := os.MkdirTemp(parent, fmt.Sprintf(stagePattern, req.Name))
	if err != nil {
		return errors.Wrap("create staging directory", parent, err)
	}

	tree := NewTree(ctx, stage)
	logging.DebugContext(ctx, "Generating template %q into stage %s", def.ID, tree.Root())

	if err := def.Generate(tree, req); err != nil {
		os.RemoveAll(tree.Root())
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: generation of %q interrupted", errors.ErrCanceled, req.Name)
		}
		return &errors.GenerationError{Template: def.ID, Path: tree.FailedPath(), Err: err}
	}

	if targetExists {
		logging.WarnContext(ctx, "Replacing existing directory %s", targetDir)
		if err := os.RemoveAll(targetDir); err != nil {
			os.RemoveAll(tree.Root())
			return errors.Wrap("remove existing directory", targetDir, err)
		}
	}

	if err := os.Rename(tree.Root(), targetDir); err != nil {
		os.RemoveAll(tree.Root())
		return &errors.GenerationError{Template: def.ID, Path: targetDir, Err: err}
	}

	logging.InfoContext(ctx, "Project tree created at %s", targetDir)

	if req.Features.Has(FeatureGit) {
		if err := git.InitRepo(ctx, targetDir); err != nil {
			// The tree is already in place; report but do not roll back.
			return errors.Wrap("initialize git repository", targetDir, err)
		}
	}

	return nil
}

// validate checks the request fields that do not need the registry and
// normalizes the version in place.
func (s *Scaffolder) validate(req *Request) error {
	if err := ValidateProjectName(req.Name); err != nil {
		return err
	}

	if req.Version == "" {
		req.Version = config.DefaultVersion
	}
	req.Version = strings.TrimPrefix(req.Version, "v")
	if _, err := semver.NewVersion(req.Version); err != nil {
		return errors.Wrap("parse project version", req.Version, err)
	}

	return nil
}
