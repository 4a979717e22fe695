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

	"github.com/flowcli/flow/templates"
)

func defIDs(defs []templates.Definition) []string {
	var ids []string
	for _, def := range defs {
		ids = append(ids, def.ID)
	}
	return ids
}

func TestFilterByName(t *testing.T) {
	all := templates.List()

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, templates.FilterByName(all, ""), len(all))
	})

	t.Run("matches id", func(t *testing.T) {
		got := defIDs(templates.FilterByName(all, "fastapi"))
		assert.Contains(t, got, "fastapi")
		assert.NotContains(t, got, "vue")
	})

	t.Run("matches display name case insensitively", func(t *testing.T) {
		got := defIDs(templates.FilterByName(all, "T3 STACK"))
		assert.Contains(t, got, "t3")
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, templates.FilterByName(all, "zzzzzz"))
	})
}

func TestFilterByTag(t *testing.T) {
	all := templates.List()

	tests := []struct {
		name string
		tag  string
		want []string
	}{
		{
			name: "frontend",
			tag:  "frontend",
			want: []string{"react", "react-supabase", "vue"},
		},
		{
			name: "python",
			tag:  "python",
			want: []string{"fastapi", "python"},
		},
		{
			name: "case insensitive",
			tag:  "BACKEND",
			want: []string{"fastapi", "express", "python"},
		},
		{
			name: "unknown tag",
			tag:  "mobile",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := defIDs(templates.FilterByTag(all, tc.tag))
			assert.Equal(t, tc.want, got)
		})
	}
}
