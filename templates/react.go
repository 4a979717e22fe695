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

import "fmt"

// generateReact writes a Vite-based React application.
func generateReact(tree *Tree, req Request) error {
	return writeReactBase(tree, req, nil)
}

// writeReactBase writes the React tree shared by the react and
// react-supabase templates. extraDeps are merged into dependencies so
// derived templates can extend the manifest without rewriting it.
func writeReactBase(tree *Tree, req Request, extraDeps map[string]string) error {
	ts := req.Features.Has(FeatureTypeScript)

	if err := tree.JSON(reactManifest(req, extraDeps), "package.json"); err != nil {
		return err
	}

	ext := "jsx"
	if ts {
		ext = "tsx"
	}

	if err := tree.File(reactIndexHTML(req, ext), "index.html"); err != nil {
		return err
	}
	if err := tree.File(reactViteConfig, viteConfigName(ts)); err != nil {
		return err
	}
	if err := tree.File(reactMain(req, ext), "src", "main."+ext); err != nil {
		return err
	}
	if err := tree.File(reactApp(req), "src", "App."+ext); err != nil {
		return err
	}
	if err := tree.File(gitignoreNode, ".gitignore"); err != nil {
		return err
	}
	if err := tree.File(reactReadme(req), "README.md"); err != nil {
		return err
	}

	if ts {
		if err := tree.File(reactTsConfig, "tsconfig.json"); err != nil {
			return err
		}
	}

	indexCSS := reactBaseCSS
	if req.Features.Has(FeatureTailwind) {
		indexCSS = tailwindDirectives
		if err := tree.File(tailwindConfig(reactTailwindGlobs), "tailwind.config.js"); err != nil {
			return err
		}
		if err := tree.File(postcssConfig, "postcss.config.js"); err != nil {
			return err
		}
	}
	if err := tree.File(indexCSS, "src", "index.css"); err != nil {
		return err
	}

	if req.Features.Has(FeatureESLint) {
		if err := tree.File(reactESLintConfig, ".eslintrc.json"); err != nil {
			return err
		}
	}
	if req.Features.Has(FeaturePrettier) {
		if err := tree.File(prettierConfig, ".prettierrc"); err != nil {
			return err
		}
	}

	return nil
}

func reactManifest(req Request, extraDeps map[string]string) packageManifest {
	ts := req.Features.Has(FeatureTypeScript)

	deps := map[string]string{
		"react":     "^18.2.0",
		"react-dom": "^18.2.0",
	}
	for name, version := range extraDeps {
		deps[name] = version
	}

	devDeps := map[string]string{
		"@vitejs/plugin-react": "^4.2.1",
		"vite":                 "^5.1.4",
	}
	if ts {
		devDeps["typescript"] = "^5.3.3"
		devDeps["@types/react"] = "^18.2.56"
		devDeps["@types/react-dom"] = "^18.2.19"
	}
	if req.Features.Has(FeatureTailwind) {
		addTailwindDevDeps(devDeps)
	}

	scripts := map[string]string{
		"dev":     "vite",
		"build":   "vite build",
		"preview": "vite preview",
	}
	if ts {
		scripts["build"] = "tsc && vite build"
	}

	if req.Features.Has(FeatureESLint) {
		devDeps["eslint"] = "^8.56.0"
		devDeps["eslint-plugin-react"] = "^7.33.2"
		devDeps["eslint-plugin-react-hooks"] = "^4.6.0"
		if ts {
			devDeps["@typescript-eslint/parser"] = "^7.0.2"
			devDeps["@typescript-eslint/eslint-plugin"] = "^7.0.2"
		}
		scripts["lint"] = "eslint src --ext ts,tsx,js,jsx --report-unused-disable-directives --max-warnings 0"
	}
	if req.Features.Has(FeaturePrettier) {
		devDeps["prettier"] = "^3.2.5"
		devDeps["eslint-config-prettier"] = "^9.1.0"
		scripts["format"] = `prettier --write "src/**/*.{ts,tsx,js,jsx,css}"`
	}

	return packageManifest{
		Name:            req.Name,
		Private:         true,
		Version:         req.Version,
		Type:            "module",
		Scripts:         scripts,
		Dependencies:    deps,
		DevDependencies: devDeps,
	}
}

func viteConfigName(ts bool) string {
	if ts {
		return "vite.config.ts"
	}
	return "vite.config.js"
}

const reactViteConfig = `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
})
`

func reactIndexHTML(req Request, ext string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.%s"></script>
  </body>
</html>
`, req.Name, ext)
}

func reactMain(req Request, ext string) string {
	rootCall := "document.getElementById('root')"
	if ext == "tsx" {
		rootCall = "document.getElementById('root')!"
	}
	return fmt.Sprintf(`import React from 'react'
import ReactDOM from 'react-dom/client'
import App from './App'
import './index.css'

ReactDOM.createRoot(%s).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
)
`, rootCall)
}

func reactApp(req Request) string {
	return fmt.Sprintf(`function App() {
  return (
    <main>
      <h1>%s</h1>
      <p>Generated with flow. Edit <code>src/App</code> to get started.</p>
    </main>
  )
}

export default App
`, req.Name)
}

const reactBaseCSS = `:root {
  font-family: system-ui, Avenir, Helvetica, Arial, sans-serif;
  line-height: 1.5;
}

body {
  margin: 0;
  min-height: 100vh;
}
`

const reactTsConfig = `{
  "compilerOptions": {
    "target": "ES2020",
    "useDefineForClassFields": true,
    "lib": ["ES2020", "DOM", "DOM.Iterable"],
    "module": "ESNext",
    "skipLibCheck": true,
    "moduleResolution": "bundler",
    "allowImportingTsExtensions": true,
    "resolveJsonModule": true,
    "isolatedModules": true,
    "noEmit": true,
    "jsx": "react-jsx",
    "strict": true,
    "noUnusedLocals": true,
    "noUnusedParameters": true,
    "noFallthroughCasesInSwitch": true
  },
  "include": ["src"]
}
`

const reactTailwindGlobs = `    "./index.html",
    "./src/**/*.{js,ts,jsx,tsx}",
`

const reactESLintConfig = `{
  "env": {
    "browser": true,
    "es2021": true
  },
  "extends": [
    "eslint:recommended",
    "plugin:react/recommended",
    "plugin:react-hooks/recommended",
    "plugin:@typescript-eslint/recommended"
  ],
  "parser": "@typescript-eslint/parser",
  "parserOptions": {
    "ecmaFeatures": {
      "jsx": true
    },
    "ecmaVersion": "latest",
    "sourceType": "module"
  },
  "plugins": ["react", "@typescript-eslint"],
  "settings": {
    "react": {
      "version": "detect"
    }
  },
  "rules": {}
}
`

func reactReadme(req Request) string {
	return fmt.Sprintf(`# %s

A React application created with flow.

## Development

`+"```bash"+`
npm install
npm run dev
`+"```"+`

## Build

`+"```bash"+`
npm run build
`+"```"+`
`, req.Name)
}
