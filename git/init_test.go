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

package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

func TestInitRepo(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to seed project file: %v", err)
	}

	if err := InitRepo(context.Background(), dir); err != nil {
		t.Fatalf("InitRepo() error = %v", err)
	}

	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		t.Fatalf("generated directory is not a git repository: %v", err)
	}

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("repository has no HEAD: %v", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		t.Fatalf("failed to read HEAD commit: %v", err)
	}
	if commit.Message != initialCommitMessage {
		t.Errorf("commit message = %q, want %q", commit.Message, initialCommitMessage)
	}
	if commit.Author.Name != authorName {
		t.Errorf("commit author = %q, want %q", commit.Author.Name, authorName)
	}
}

func TestInitRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	if err := InitRepo(ctx, dir); err == nil {
		t.Error("InitRepo() succeeded with canceled context")
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); !os.IsNotExist(err) {
		t.Error("InitRepo() created .git despite canceled context")
	}
}
