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

// Package git initializes repositories in generated projects using go-git,
// so the feature works without a git binary on PATH.
package git

import (
	"context"
	"time"

	"github.com/flowcli/flow/errors"
	"github.com/flowcli/flow/logging"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Commit author recorded on the initial commit.
const (
	authorName  = "Flow CLI"
	authorEmail = "flow@localhost"
)

// initialCommitMessage is the message used for the first commit.
const initialCommitMessage = "Initial commit from flow"

// InitRepo creates a git repository at dir, stages every generated file and
// records an initial commit.
func InitRepo(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		return errors.Wrap("init repository", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return errors.Wrap("open worktree", dir, err)
	}

	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return errors.Wrap("stage files", dir, err)
	}

	commit, err := wt.Commit(initialCommitMessage, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return errors.Wrap("create initial commit", dir, err)
	}

	logging.DebugContext(ctx, "Created initial commit %s in %s", commit.String(), dir)
	return nil
}
