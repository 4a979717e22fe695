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

// generateVue writes a Vue 3 application built with Vite.
func generateVue(tree *Tree, req Request) error {
	ts := req.Features.Has(FeatureTypeScript)
	router := req.Features.Has("router")
	pinia := req.Features.Has("pinia")
	i18n := req.Features.Has("i18n")
	pwa := req.Features.Has(FeaturePWA)

	if err := tree.JSON(vueManifest(req), "package.json"); err != nil {
		return err
	}

	ext := "js"
	if ts {
		ext = "ts"
	}

	if err := tree.File(vueIndexHTML(req, ext), "index.html"); err != nil {
		return err
	}
	if err := tree.File(vueViteConfig(pwa, req.Name), viteConfigName(ts)); err != nil {
		return err
	}
	if err := tree.File(vueMain(router, pinia, i18n), "src", "main."+ext); err != nil {
		return err
	}
	if err := tree.File(vueApp(req, router), "src", "App.vue"); err != nil {
		return err
	}
	if err := tree.File(gitignoreNode, ".gitignore"); err != nil {
		return err
	}
	if err := tree.File(vueReadme(req), "README.md"); err != nil {
		return err
	}

	if ts {
		if err := tree.File(vueTsConfig, "tsconfig.json"); err != nil {
			return err
		}
		if err := tree.File(vueShims, "src", "env.d.ts"); err != nil {
			return err
		}
	}

	styleCSS := reactBaseCSS
	if req.Features.Has(FeatureTailwind) {
		styleCSS = tailwindDirectives
		if err := tree.File(tailwindConfig(vueTailwindGlobs), "tailwind.config.js"); err != nil {
			return err
		}
		if err := tree.File(postcssConfig, "postcss.config.js"); err != nil {
			return err
		}
	}
	if err := tree.File(styleCSS, "src", "style.css"); err != nil {
		return err
	}

	if router {
		if err := tree.File(vueRouter, "src", "router", "index."+ext); err != nil {
			return err
		}
		if err := tree.File(vueHomeView(req), "src", "views", "HomeView.vue"); err != nil {
			return err
		}
	}
	if pinia {
		if err := tree.File(vueCounterStore, "src", "stores", "counter."+ext); err != nil {
			return err
		}
	}
	if i18n {
		if err := tree.File(vueI18n, "src", "i18n", "index."+ext); err != nil {
			return err
		}
	}

	return nil
}

func vueManifest(req Request) packageManifest {
	ts := req.Features.Has(FeatureTypeScript)

	deps := map[string]string{
		"vue": "^3.4.19",
	}
	devDeps := map[string]string{
		"@vitejs/plugin-vue": "^5.0.4",
		"vite":               "^5.1.4",
	}
	scripts := map[string]string{
		"dev":     "vite",
		"build":   "vite build",
		"preview": "vite preview",
	}

	if ts {
		devDeps["typescript"] = "^5.3.3"
		devDeps["vue-tsc"] = "^1.8.27"
		scripts["build"] = "vue-tsc && vite build"
	}
	if req.Features.Has("router") {
		deps["vue-router"] = "^4.3.0"
	}
	if req.Features.Has("pinia") {
		deps["pinia"] = "^2.1.7"
	}
	if req.Features.Has("i18n") {
		deps["vue-i18n"] = "^9.9.1"
	}
	if req.Features.Has(FeatureTailwind) {
		addTailwindDevDeps(devDeps)
	}
	if req.Features.Has(FeaturePWA) {
		devDeps["vite-plugin-pwa"] = "^0.19.2"
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

func vueIndexHTML(req Request, ext string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
  </head>
  <body>
    <div id="app"></div>
    <script type="module" src="/src/main.%s"></script>
  </body>
</html>
`, req.Name, ext)
}

func vueViteConfig(pwa bool, name string) string {
	if pwa {
		return fmt.Sprintf(`import { defineConfig } from 'vite'
import vue from '@vitejs/plugin-vue'
import { VitePWA } from 'vite-plugin-pwa'

export default defineConfig({
  plugins: [
    vue(),
    VitePWA({
      registerType: 'autoUpdate',
      manifest: {
        name: '%s',
        short_name: '%s',
      },
    }),
  ],
})
`, name, name)
	}
	return `import { defineConfig } from 'vite'
import vue from '@vitejs/plugin-vue'

export default defineConfig({
  plugins: [vue()],
})
`
}

func vueMain(router, pinia, i18n bool) string {
	var imports, uses []string
	imports = append(imports, "import { createApp } from 'vue'", "import App from './App.vue'", "import './style.css'")
	if router {
		imports = append(imports, "import router from './router'")
		uses = append(uses, "app.use(router)")
	}
	if pinia {
		imports = append(imports, "import { createPinia } from 'pinia'")
		uses = append(uses, "app.use(createPinia())")
	}
	if i18n {
		imports = append(imports, "import i18n from './i18n'")
		uses = append(uses, "app.use(i18n)")
	}

	var b strings.Builder
	b.WriteString(strings.Join(imports, "\n"))
	b.WriteString("\n\nconst app = createApp(App)\n")
	if len(uses) > 0 {
		b.WriteString(strings.Join(uses, "\n"))
		b.WriteString("\n")
	}
	b.WriteString("app.mount('#app')\n")
	return b.String()
}

func vueApp(req Request, router bool) string {
	if router {
		return `<script setup>
</script>

<template>
  <router-view />
</template>
`
	}
	return fmt.Sprintf(`<script setup>
</script>

<template>
  <main>
    <h1>%s</h1>
    <p>Edit <code>src/App.vue</code> to get started.</p>
  </main>
</template>
`, req.Name)
}

const vueRouter = `import { createRouter, createWebHistory } from 'vue-router'
import HomeView from '../views/HomeView.vue'

const router = createRouter({
  history: createWebHistory(import.meta.env.BASE_URL),
  routes: [
    {
      path: '/',
      name: 'home',
      component: HomeView,
    },
  ],
})

export default router
`

func vueHomeView(req Request) string {
	return fmt.Sprintf(`<script setup>
</script>

<template>
  <main>
    <h1>%s</h1>
    <p>Edit <code>src/views/HomeView.vue</code> to get started.</p>
  </main>
</template>
`, req.Name)
}

const vueCounterStore = `import { defineStore } from 'pinia'

export const useCounterStore = defineStore('counter', {
  state: () => ({ count: 0 }),
  actions: {
    increment() {
      this.count++
    },
  },
})
`

const vueI18n = `import { createI18n } from 'vue-i18n'

const i18n = createI18n({
  legacy: false,
  locale: 'en',
  fallbackLocale: 'en',
  messages: {
    en: {
      hello: 'Hello',
    },
  },
})

export default i18n
`

const vueTsConfig = `{
  "compilerOptions": {
    "target": "ES2020",
    "useDefineForClassFields": true,
    "module": "ESNext",
    "lib": ["ES2020", "DOM", "DOM.Iterable"],
    "skipLibCheck": true,
    "moduleResolution": "bundler",
    "allowImportingTsExtensions": true,
    "resolveJsonModule": true,
    "isolatedModules": true,
    "noEmit": true,
    "jsx": "preserve",
    "strict": true
  },
  "include": ["src/**/*.ts", "src/**/*.vue", "src/**/*.d.ts"]
}
`

const vueShims = `/// <reference types="vite/client" />

declare module '*.vue' {
  import type { DefineComponent } from 'vue'
  const component: DefineComponent<{}, {}, any>
  export default component
}
`

const vueTailwindGlobs = `    "./index.html",
    "./src/**/*.{vue,js,ts}",
`

func vueReadme(req Request) string {
	return fmt.Sprintf(`# %s

A Vue 3 application created with flow.

## Development

`+"```bash"+`
npm install
npm run dev
`+"```"+`
`, req.Name)
}
