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

package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	baseErr := errors.New("something went wrong")

	tests := []struct {
		name          string
		action        string
		detail        string
		err           error
		shouldContain []string
	}{
		{
			name:          "wrap with action only",
			action:        "create scaffolder",
			detail:        "",
			err:           baseErr,
			shouldContain: []string{"failed to create scaffolder:", "something went wrong"},
		},
		{
			name:          "wrap with action and detail",
			action:        "parse config",
			detail:        "/home/user/.flow/config.json",
			err:           baseErr,
			shouldContain: []string{"failed to parse config", "/home/user/.flow/config.json", "something went wrong"},
		},
		{
			name:   "wrap nil error returns nil",
			action: "do something",
			detail: "",
			err:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.action, tt.detail, tt.err)

			if tt.err == nil {
				if got != nil {
					t.Errorf("Wrap() with nil error = %v, want nil", got)
				}
				return
			}

			if got == nil {
				t.Fatal("Wrap() returned nil for non-nil error")
			}
			for _, want := range tt.shouldContain {
				if !strings.Contains(got.Error(), want) {
					t.Errorf("Wrap() = %q, missing %q", got.Error(), want)
				}
			}
			if !errors.Is(got, tt.err) {
				t.Error("Wrap() lost the underlying error")
			}
		})
	}
}

func TestGenerationError(t *testing.T) {
	base := errors.New("disk full")
	err := &GenerationError{Template: "react", Path: "/tmp/my-app/package.json", Err: base}

	if !strings.Contains(err.Error(), "react") {
		t.Errorf("GenerationError.Error() = %q, missing template id", err.Error())
	}
	if !strings.Contains(err.Error(), "/tmp/my-app/package.json") {
		t.Errorf("GenerationError.Error() = %q, missing failing path", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("GenerationError did not unwrap to the underlying error")
	}
}

func TestGenerationError_NoPath(t *testing.T) {
	err := &GenerationError{Template: "python", Err: errors.New("boom")}
	if strings.Contains(err.Error(), "at ") {
		t.Errorf("GenerationError.Error() = %q, should omit path segment", err.Error())
	}
}

func TestSentinels_Distinct(t *testing.T) {
	sentinels := []error{
		ErrUnknownTemplate,
		ErrUnknownFeature,
		ErrInvalidProjectName,
		ErrTargetExists,
		ErrCanceled,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}
