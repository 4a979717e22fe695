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

// Package errors provides error wrapping utilities and the sentinel errors
// shared across the flow CLI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the template registry, the scaffolder, and the
// interactive prompt surface. Callers match on these with errors.Is.
var (
	// ErrUnknownTemplate indicates a template id that is not in the registry.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrUnknownFeature indicates a feature id not declared by the chosen template.
	ErrUnknownFeature = errors.New("unknown feature")

	// ErrInvalidProjectName indicates an empty or filesystem-unsafe project name.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrTargetExists indicates the target project directory already exists.
	ErrTargetExists = errors.New("target directory already exists")

	// ErrCanceled indicates the user aborted an interactive prompt.
	ErrCanceled = errors.New("canceled by user")
)

// GenerationError reports a file-system failure during project tree creation.
// Path names the file or directory whose write failed; the staged output has
// already been removed by the time this error is returned.
type GenerationError struct {
	Template string
	Path     string
	Err      error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("generation failed for template %q at %s: %v", e.Template, e.Path, e.Err)
	}
	return fmt.Sprintf("generation failed for template %q: %v", e.Template, e.Err)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with a descriptive action and optional detail.
// It returns a formatted error in the form "failed to <action> [(<detail>)]: <error>".
//
// Example usage:
//
//	if err := doSomething(); err != nil {
//	    return errors.Wrap("create scaffolder", "", err)
//	}
//
//	if err := parseFile(path); err != nil {
//	    return errors.Wrap("parse config", path, err)
//	}
func Wrap(action, detail string, err error) error {
	if err == nil {
		return nil
	}

	if detail != "" {
		return fmt.Errorf("failed to %s (%s): %w", action, detail, err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
