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

package ui

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcli/flow/errors"
	"github.com/flowcli/flow/templates"
)

func TestPromptErr(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "nil passes through",
		},
		{
			name: "user abort maps to canceled",
			in:   huh.ErrUserAborted,
			want: errors.ErrCanceled,
		},
		{
			name: "other errors are wrapped",
			in:   stderrors.New("terminal gone"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := promptErr(tc.in)
			if tc.in == nil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			if tc.want != nil {
				assert.ErrorIs(t, got, tc.want)
			} else {
				assert.NotErrorIs(t, got, errors.ErrCanceled)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	req := templates.Request{
		Name:       "my-app",
		TemplateID: "react",
		Features:   templates.NewFeatureSet("typescript", "tailwind"),
	}

	var buf bytes.Buffer
	Summary(&buf, req, "/home/dev/my-app")

	out := buf.String()
	assert.Contains(t, out, "Created my-app")
	assert.Contains(t, out, "Template: react")
	assert.Contains(t, out, "Features: tailwind, typescript")
	assert.Contains(t, out, "Location: /home/dev/my-app")
	assert.Contains(t, out, "cd my-app")
	assert.Contains(t, out, "npm install")
}

func TestSummaryPythonNextSteps(t *testing.T) {
	req := templates.Request{
		Name:       "svc",
		TemplateID: "fastapi",
		Features:   templates.NewFeatureSet(),
	}

	var buf bytes.Buffer
	Summary(&buf, req, "/tmp/svc")

	assert.Contains(t, buf.String(), "uvicorn src.main:app --reload")
	assert.NotContains(t, buf.String(), "npm install")
}
