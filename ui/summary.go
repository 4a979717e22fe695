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
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/flowcli/flow/templates"
)

// Summary prints the post-generation summary with next steps for the
// chosen template.
func Summary(w io.Writer, req templates.Request, targetDir string) {
	green := color.New(color.FgHiGreen, color.Bold)
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	green.Fprintf(w, "Created %s\n", req.Name)
	fmt.Fprintf(w, "  Template: %s\n", req.TemplateID)
	if ids := req.Features.IDs(); len(ids) > 0 {
		fmt.Fprintf(w, "  Features: %s\n", strings.Join(ids, ", "))
	}
	fmt.Fprintf(w, "  Location: %s\n", targetDir)

	fmt.Fprintln(w)
	bold.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  cd %s\n", req.Name)
	for _, step := range nextSteps(req.TemplateID) {
		fmt.Fprintf(w, "  %s\n", step)
	}
}

func nextSteps(templateID string) []string {
	switch templateID {
	case "fastapi":
		return []string{
			"python -m venv .venv && source .venv/bin/activate",
			"pip install -r requirements.txt -r requirements-dev.txt",
			"uvicorn src.main:app --reload",
		}
	case "python":
		return []string{
			"python -m venv .venv && source .venv/bin/activate",
			"pip install -r requirements-dev.txt",
		}
	default:
		return []string{
			"npm install",
			"npm run dev",
		}
	}
}
