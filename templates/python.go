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
	"strings"
)

// generatePython writes a plain Python project skeleton.
func generatePython(tree *Tree, req Request) error {
	if err := tree.File("", "src", "__init__.py"); err != nil {
		return err
	}
	if err := tree.File(pythonMain(req), "src", "main.py"); err != nil {
		return err
	}
	if err := tree.File("", "tests", "__init__.py"); err != nil {
		return err
	}
	if err := tree.File(pythonMainTest, "tests", "test_main.py"); err != nil {
		return err
	}
	if err := tree.File(gitignorePython, ".gitignore"); err != nil {
		return err
	}
	if err := tree.File(pythonPyproject(req), "pyproject.toml"); err != nil {
		return err
	}
	if err := tree.File(pythonReadme(req), "README.md"); err != nil {
		return err
	}

	devReqs := pythonDevRequirements(req)
	if devReqs != "" {
		if err := tree.File(devReqs, "requirements-dev.txt"); err != nil {
			return err
		}
	}

	if req.Features.Has("flake8") {
		if err := tree.File(pythonFlake8Config, ".flake8"); err != nil {
			return err
		}
	}
	if req.Features.Has("pre-commit") {
		if err := tree.File(pythonPreCommitConfig(req), ".pre-commit-config.yaml"); err != nil {
			return err
		}
	}
	if req.Features.Has(FeatureDocker) {
		if err := tree.File(pythonDockerfile, "Dockerfile"); err != nil {
			return err
		}
		if err := tree.File(dockerignorePython, ".dockerignore"); err != nil {
			return err
		}
	}

	return nil
}

func pythonMain(req Request) string {
	return fmt.Sprintf(`def main() -> None:
    print("Hello from %s")


if __name__ == "__main__":
    main()
`, req.Name)
}

const pythonMainTest = `from src.main import main


def test_main_runs(capsys) -> None:
    main()
    captured = capsys.readouterr()
    assert "Hello" in captured.out
`

func pythonPyproject(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, `[project]
name = "%s"
version = "%s"
requires-python = ">=3.11"
`, req.Name, req.Version)

	if req.Features.Has("black") {
		b.WriteString(`
[tool.black]
line-length = 88
target-version = ["py311"]
`)
	}
	if req.Features.Has("pytest") {
		b.WriteString(`
[tool.pytest.ini_options]
testpaths = ["tests"]
`)
	}
	return b.String()
}

func pythonDevRequirements(req Request) string {
	var lines []string
	if req.Features.Has("black") {
		lines = append(lines, "black>=24.2.0")
	}
	if req.Features.Has("flake8") {
		lines = append(lines, "flake8>=7.0.0")
	}
	if req.Features.Has("pytest") {
		lines = append(lines, "pytest>=8.0.1")
	}
	if req.Features.Has("pre-commit") {
		lines = append(lines, "pre-commit>=3.6.2")
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

const pythonFlake8Config = `[flake8]
max-line-length = 88
extend-ignore = E203
exclude = .venv,__pycache__
`

func pythonPreCommitConfig(req Request) string {
	var b strings.Builder
	b.WriteString(`repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.5.0
    hooks:
      - id: trailing-whitespace
      - id: end-of-file-fixer
`)
	if req.Features.Has("black") {
		b.WriteString(`  - repo: https://github.com/psf/black
    rev: 24.2.0
    hooks:
      - id: black
`)
	}
	if req.Features.Has("flake8") {
		b.WriteString(`  - repo: https://github.com/pycqa/flake8
    rev: 7.0.0
    hooks:
      - id: flake8
`)
	}
	return b.String()
}

const pythonDockerfile = `FROM python:3.12-slim

WORKDIR /app

COPY src ./src

CMD ["python", "-m", "src.main"]
`

const gitignorePython = `__pycache__/
*.py[cod]
*.egg-info/
.venv/
.env
.pytest_cache/
dist/
build/
`

func pythonReadme(req Request) string {
	return fmt.Sprintf(`# %s

A Python project created with flow.

## Setup

`+"```bash"+`
python -m venv .venv
source .venv/bin/activate
pip install -r requirements-dev.txt
`+"```"+`
`, req.Name)
}
