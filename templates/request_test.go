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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcli/flow/errors"
	"github.com/flowcli/flow/templates"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "simple name",
			input: "my-app",
		},
		{
			name:  "underscores and dots",
			input: "my_app.v2",
		},
		{
			name:  "digits",
			input: "app2024",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "current directory",
			input:   ".",
			wantErr: true,
		},
		{
			name:    "parent directory",
			input:   "..",
			wantErr: true,
		},
		{
			name:    "leading dash",
			input:   "-app",
			wantErr: true,
		},
		{
			name:    "leading dot",
			input:   ".app",
			wantErr: true,
		},
		{
			name:    "path separator",
			input:   "my/app",
			wantErr: true,
		},
		{
			name:    "embedded space",
			input:   "my app",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := templates.ValidateProjectName(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidProjectName)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFeatureSet(t *testing.T) {
	set := templates.NewFeatureSet("typescript", "tailwind")

	assert.True(t, set.Has("typescript"))
	assert.True(t, set.Has("tailwind"))
	assert.False(t, set.Has("eslint"))
	assert.Equal(t, []string{"tailwind", "typescript"}, set.IDs())
}

func TestValidateFeatures(t *testing.T) {
	def, err := templates.Get("react")
	require.NoError(t, err)

	tests := []struct {
		name     string
		features templates.FeatureSet
		wantErr  error
	}{
		{
			name:     "declared features",
			features: templates.NewFeatureSet("typescript", "tailwind", "git"),
		},
		{
			name:     "no features",
			features: templates.NewFeatureSet(),
		},
		{
			name:     "undeclared feature",
			features: templates.NewFeatureSet("typescript", "prisma"),
			wantErr:  errors.ErrUnknownFeature,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := templates.ValidateFeatures(def, tc.features)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
