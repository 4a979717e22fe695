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
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterByName filters definitions by a fuzzy, case-insensitive match
// against the template id, display name, and description.
func FilterByName(defs []Definition, query string) []Definition {
	if query == "" {
		return defs
	}

	var filtered []Definition
	for _, def := range defs {
		if fuzzy.MatchFold(query, def.ID) ||
			fuzzy.MatchFold(query, def.DisplayName) ||
			fuzzy.MatchFold(query, def.Description) {
			filtered = append(filtered, def)
		}
	}
	return filtered
}

// FilterByTag filters definitions by an exact, case-insensitive tag match.
func FilterByTag(defs []Definition, tag string) []Definition {
	if tag == "" {
		return defs
	}

	tag = strings.ToLower(tag)
	var filtered []Definition
	for _, def := range defs {
		for _, t := range def.Tags {
			if strings.ToLower(t) == tag {
				filtered = append(filtered, def)
				break
			}
		}
	}
	return filtered
}
