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

// generateExpress writes a minimal Express HTTP API.
func generateExpress(tree *Tree, req Request) error {
	ts := req.Features.Has(FeatureTypeScript)

	if err := tree.JSON(expressManifest(req), "package.json"); err != nil {
		return err
	}

	ext := "js"
	if ts {
		ext = "ts"
	}
	if err := tree.File(expressServer(ts), "src", "index."+ext); err != nil {
		return err
	}
	if err := tree.File(gitignoreNode, ".gitignore"); err != nil {
		return err
	}
	if err := tree.File(expressReadme(req), "README.md"); err != nil {
		return err
	}

	if ts {
		if err := tree.File(expressTsConfig, "tsconfig.json"); err != nil {
			return err
		}
	}
	if req.Features.Has(FeatureESLint) {
		if err := tree.File(expressESLintConfig(ts), ".eslintrc.json"); err != nil {
			return err
		}
	}
	if req.Features.Has(FeaturePrettier) {
		if err := tree.File(prettierConfig, ".prettierrc"); err != nil {
			return err
		}
	}
	if req.Features.Has(FeatureDocker) {
		if err := tree.File(expressDockerfile(ts), "Dockerfile"); err != nil {
			return err
		}
		if err := tree.File(dockerignoreNode, ".dockerignore"); err != nil {
			return err
		}
	}

	return nil
}

func expressManifest(req Request) packageManifest {
	ts := req.Features.Has(FeatureTypeScript)

	deps := map[string]string{
		"express": "^4.18.2",
		"cors":    "^2.8.5",
		"helmet":  "^7.1.0",
		"morgan":  "^1.10.0",
		"dotenv":  "^16.4.5",
	}
	devDeps := map[string]string{}
	scripts := map[string]string{}

	if ts {
		devDeps["typescript"] = "^5.3.3"
		devDeps["@types/node"] = "^20.11.20"
		devDeps["@types/express"] = "^4.17.21"
		devDeps["@types/cors"] = "^2.8.17"
		devDeps["@types/morgan"] = "^1.9.9"
		devDeps["tsx"] = "^4.7.1"
		scripts["dev"] = "tsx watch src/index.ts"
		scripts["build"] = "tsc"
		scripts["start"] = "node dist/index.js"
	} else {
		devDeps["nodemon"] = "^3.0.3"
		scripts["dev"] = "nodemon src/index.js"
		scripts["start"] = "node src/index.js"
	}

	if req.Features.Has(FeatureESLint) {
		devDeps["eslint"] = "^8.56.0"
		if ts {
			devDeps["@typescript-eslint/parser"] = "^7.0.2"
			devDeps["@typescript-eslint/eslint-plugin"] = "^7.0.2"
			scripts["lint"] = "eslint src --ext ts"
		} else {
			scripts["lint"] = "eslint src"
		}
	}
	if req.Features.Has(FeaturePrettier) {
		devDeps["prettier"] = "^3.2.5"
		scripts["format"] = `prettier --write "src/**/*"`
	}

	return packageManifest{
		Name:            req.Name,
		Private:         true,
		Version:         req.Version,
		Scripts:         scripts,
		Dependencies:    deps,
		DevDependencies: devDeps,
	}
}

func expressServer(ts bool) string {
	if ts {
		return `import express from 'express'
import cors from 'cors'
import helmet from 'helmet'
import morgan from 'morgan'
import 'dotenv/config'

const app = express()
const port = Number(process.env.PORT ?? 3000)

app.use(helmet())
app.use(cors())
app.use(morgan('combined'))
app.use(express.json())

app.get('/health', (_req, res) => {
  res.json({ status: 'ok' })
})

app.listen(port, () => {
  console.log(` + "`listening on :${port}`" + `)
})
`
	}
	return `const express = require('express')
const cors = require('cors')
const helmet = require('helmet')
const morgan = require('morgan')
require('dotenv').config()

const app = express()
const port = Number(process.env.PORT ?? 3000)

app.use(helmet())
app.use(cors())
app.use(morgan('combined'))
app.use(express.json())

app.get('/health', (req, res) => {
  res.json({ status: 'ok' })
})

app.listen(port, () => {
  console.log(` + "`listening on :${port}`" + `)
})
`
}

const expressTsConfig = `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "NodeNext",
    "moduleResolution": "NodeNext",
    "outDir": "dist",
    "rootDir": "src",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true
  },
  "include": ["src"]
}
`

func expressESLintConfig(ts bool) string {
	if ts {
		return `{
  "env": {
    "node": true,
    "es2022": true
  },
  "extends": ["eslint:recommended", "plugin:@typescript-eslint/recommended"],
  "parser": "@typescript-eslint/parser",
  "plugins": ["@typescript-eslint"],
  "rules": {}
}
`
	}
	return `{
  "env": {
    "node": true,
    "es2022": true
  },
  "extends": "eslint:recommended",
  "parserOptions": {
    "ecmaVersion": "latest",
    "sourceType": "module"
  },
  "rules": {}
}
`
}

func expressDockerfile(ts bool) string {
	if ts {
		return `FROM node:20-alpine AS build
WORKDIR /app
COPY package*.json ./
RUN npm ci
COPY . .
RUN npm run build

FROM node:20-alpine
WORKDIR /app
ENV NODE_ENV=production
COPY package*.json ./
RUN npm ci --omit=dev
COPY --from=build /app/dist ./dist
EXPOSE 3000
CMD ["node", "dist/index.js"]
`
	}
	return `FROM node:20-alpine
WORKDIR /app
ENV NODE_ENV=production
COPY package*.json ./
RUN npm ci --omit=dev
COPY src ./src
EXPOSE 3000
CMD ["node", "src/index.js"]
`
}

const dockerignoreNode = `node_modules
dist
.git
.env
`

func expressReadme(req Request) string {
	return fmt.Sprintf(`# %s

An Express API created with flow.

## Development

`+"```bash"+`
npm install
npm run dev
`+"```"+`
`, req.Name)
}
