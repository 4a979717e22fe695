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
	"fmt"
	"sort"
	"strings"

	"github.com/flowcli/flow/errors"
)

// FeatureSet is the set of feature ids selected for a run.
type FeatureSet map[string]bool

// NewFeatureSet builds a FeatureSet from feature ids.
func NewFeatureSet(ids ...string) FeatureSet {
	set := make(FeatureSet, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Has reports whether the feature id is in the set.
func (s FeatureSet) Has(id string) bool {
	return s[id]
}

// IDs returns the feature ids in sorted order.
func (s FeatureSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Request captures one project generation run. It is built once from user
// input and never mutated afterwards.
type Request struct {
	// Name is the project name; also the target directory basename.
	Name string
	// TemplateID selects the catalog entry.
	TemplateID string
	// Features holds the confirmed feature toggles.
	Features FeatureSet
	// Version is the semantic version stamped into generated manifests.
	Version string
}

// nameCharset lists the characters allowed in a project name beyond
// letters and digits.
const nameCharset = "-_."

// ValidateProjectName checks that name is non-empty and safe to use as a
// directory basename on common filesystems.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", errors.ErrInvalidProjectName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", errors.ErrInvalidProjectName, name)
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q must not start with %q", errors.ErrInvalidProjectName, name, name[:1])
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(nameCharset, r):
		default:
			return fmt.Errorf("%w: %q contains %q", errors.ErrInvalidProjectName, name, r)
		}
	}
	return nil
}

// ValidateFeatures checks the invariant that every selected feature is
// declared by the template definition.
func ValidateFeatures(def Definition, features FeatureSet) error {
	for _, id := range features.IDs() {
		if !def.HasFeature(id) {
			return fmt.Errorf("%w: %q is not declared by template %q", errors.ErrUnknownFeature, id, def.ID)
		}
	}
	return nil
}
