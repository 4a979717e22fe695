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

// Package templates holds the fixed project template catalog and the
// generators that materialize a template plus selected features into a file
// tree. Generators are independent implementations of one behavioral
// contract, selected via registry lookup; they never shell out, so the same
// inputs always produce byte-identical output.
package templates

import (
	"fmt"

	"github.com/flowcli/flow/errors"
)

// Feature is an optional, independently toggleable unit of generated content
// within a template.
type Feature struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Default     bool   `yaml:"default"`
}

// GenerateFunc writes a template's file tree for req through the staging
// tree writer. Implementations must be deterministic and must not emit
// timestamps into generated files.
type GenerateFunc func(tree *Tree, req Request) error

// Definition describes one entry of the template catalog.
type Definition struct {
	ID          string    `yaml:"id"`
	DisplayName string    `yaml:"display_name"`
	Description string    `yaml:"description"`
	Tags        []string  `yaml:"tags,omitempty"`
	Features    []Feature `yaml:"features"`

	Generate GenerateFunc `yaml:"-"`
}

// HasFeature reports whether the definition declares the given feature id.
func (d Definition) HasFeature(id string) bool {
	for _, f := range d.Features {
		if f.ID == id {
			return true
		}
	}
	return false
}

// DefaultFeatures returns the ids of features enabled by default.
func (d Definition) DefaultFeatures() []string {
	var ids []string
	for _, f := range d.Features {
		if f.Default {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// gitFeature is declared by every template; repository initialization is
// handled by the scaffolder rather than the individual generators.
var gitFeature = Feature{ID: FeatureGit, Description: "Initialize a git repository with an initial commit"}

// Feature ids shared by several templates.
const (
	FeatureGit        = "git"
	FeatureTypeScript = "typescript"
	FeatureTailwind   = "tailwind"
	FeatureESLint     = "eslint"
	FeaturePrettier   = "prettier"
	FeatureDocker     = "docker"
	FeaturePWA        = "pwa"
)

// catalog is the fixed template table, populated once at process start.
// Display order here is the order shown to the user.
var catalog = []Definition{
	{
		ID:          "react",
		DisplayName: "React Frontend",
		Description: "Modern React application with Vite",
		Tags:        []string{"frontend", "javascript"},
		Features: []Feature{
			{ID: FeatureTypeScript, Description: "TypeScript", Default: true},
			{ID: FeatureTailwind, Description: "Tailwind CSS"},
			{ID: FeatureESLint, Description: "ESLint"},
			{ID: FeaturePrettier, Description: "Prettier"},
			gitFeature,
		},
		Generate: generateReact,
	},
	{
		ID:          "react-supabase",
		DisplayName: "React + Supabase",
		Description: "Full-stack React with Supabase backend",
		Tags:        []string{"frontend", "fullstack", "javascript"},
		Features: []Feature{
			{ID: FeatureTypeScript, Description: "TypeScript", Default: true},
			{ID: FeatureTailwind, Description: "Tailwind CSS"},
			{ID: FeatureESLint, Description: "ESLint"},
			{ID: FeaturePrettier, Description: "Prettier"},
			{ID: "auth", Description: "Authentication provider and hooks"},
			{ID: "db-helpers", Description: "Typed database helpers"},
			{ID: "storage-helpers", Description: "Storage upload/download helpers"},
			gitFeature,
		},
		Generate: generateReactSupabase,
	},
	{
		ID:          "nextjs",
		DisplayName: "Next.js App",
		Description: "Next.js application with the App Router",
		Tags:        []string{"fullstack", "javascript"},
		Features: []Feature{
			{ID: FeatureTypeScript, Description: "TypeScript", Default: true},
			{ID: FeatureTailwind, Description: "Tailwind CSS"},
			{ID: FeatureESLint, Description: "ESLint"},
			{ID: FeaturePrettier, Description: "Prettier"},
			{ID: FeaturePWA, Description: "Progressive Web App support"},
			{ID: "mongodb", Description: "MongoDB via Prisma"},
			gitFeature,
		},
		Generate: generateNextjs,
	},
	{
		ID:          "t3",
		DisplayName: "T3 Stack",
		Description: "Full-stack Next.js with tRPC and Tailwind",
		Tags:        []string{"fullstack", "javascript"},
		Features: []Feature{
			{ID: "nextauth", Description: "NextAuth.js authentication"},
			{ID: "prisma", Description: "Prisma ORM"},
			{ID: FeaturePWA, Description: "Progressive Web App support"},
			{ID: "jest", Description: "Jest and Testing Library"},
			{ID: "trpc-sub", Description: "tRPC websocket subscriptions"},
			gitFeature,
		},
		Generate: generateT3,
	},
	{
		ID:          "fastapi",
		DisplayName: "FastAPI Backend",
		Description: "Async FastAPI service with a layered layout",
		Tags:        []string{"backend", "python"},
		Features: []Feature{
			{ID: "sqlalchemy", Description: "SQLAlchemy async database layer"},
			{ID: "alembic", Description: "Alembic migrations (requires SQLAlchemy)"},
			{ID: "jwt", Description: "JWT authentication utilities"},
			{ID: FeatureDocker, Description: "Dockerfile and docker-compose"},
			{ID: "prometheus", Description: "Prometheus metrics endpoint"},
			{ID: "api-docs", Description: "Customized OpenAPI documentation"},
			gitFeature,
		},
		Generate: generateFastAPI,
	},
	{
		ID:          "express",
		DisplayName: "Express API",
		Description: "Minimal Express HTTP API",
		Tags:        []string{"backend", "javascript"},
		Features: []Feature{
			{ID: FeatureTypeScript, Description: "TypeScript", Default: true},
			{ID: FeatureESLint, Description: "ESLint"},
			{ID: FeaturePrettier, Description: "Prettier"},
			{ID: FeatureDocker, Description: "Dockerfile"},
			gitFeature,
		},
		Generate: generateExpress,
	},
	{
		ID:          "vue",
		DisplayName: "Vue Frontend",
		Description: "Vue 3 application with Vite",
		Tags:        []string{"frontend", "javascript"},
		Features: []Feature{
			{ID: FeatureTypeScript, Description: "TypeScript", Default: true},
			{ID: "router", Description: "Vue Router"},
			{ID: "pinia", Description: "Pinia state management"},
			{ID: FeatureTailwind, Description: "Tailwind CSS"},
			{ID: FeaturePWA, Description: "Progressive Web App support"},
			{ID: "i18n", Description: "Vue I18n internationalization"},
			gitFeature,
		},
		Generate: generateVue,
	},
	{
		ID:          "python",
		DisplayName: "Python Project",
		Description: "Production-ready Python project structure",
		Tags:        []string{"backend", "python"},
		Features: []Feature{
			{ID: "black", Description: "Black formatter", Default: true},
			{ID: "flake8", Description: "Flake8 linter", Default: true},
			{ID: "pytest", Description: "pytest test harness", Default: true},
			{ID: "pre-commit", Description: "pre-commit hooks"},
			{ID: FeatureDocker, Description: "Docker setup"},
			gitFeature,
		},
		Generate: generatePython,
	},
}

// List returns all template definitions in stable catalog order.
func List() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the definition registered under id.
func Get(id string) (Definition, error) {
	for _, def := range catalog {
		if def.ID == id {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", errors.ErrUnknownTemplate, id)
}
