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

// packageManifest is the subset of package.json the generators emit.
// Dependency maps marshal with sorted keys, which keeps output deterministic.
type packageManifest struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private,omitempty"`
	Version         string            `json:"version"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Shared JS/TS asset payloads used by more than one template.

const gitignoreNode = `node_modules
dist
.env
.env.local
*.log
.DS_Store
`

const prettierConfig = `{
  "semi": true,
  "trailingComma": "es5",
  "singleQuote": true,
  "tabWidth": 2,
  "useTabs": false
}
`

const tailwindDirectives = `@tailwind base;
@tailwind components;
@tailwind utilities;
`

// tailwindConfig returns a tailwind.config.js scanning the given content globs.
func tailwindConfig(contentGlobs string) string {
	return `/** @type {import('tailwindcss').Config} */
export default {
  content: [
` + contentGlobs + `  ],
  theme: {
    extend: {},
  },
  plugins: [],
}
`
}

const postcssConfig = `export default {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
}
`

// addTailwindDevDeps adds the tailwind toolchain to a devDependencies map.
func addTailwindDevDeps(devDeps map[string]string) {
	devDeps["tailwindcss"] = "^3.4.1"
	devDeps["postcss"] = "^8.4.35"
	devDeps["autoprefixer"] = "^10.4.17"
}
