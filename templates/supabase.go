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

// generateReactSupabase writes a React tree extended with a Supabase
// client and optional auth, database, and storage helpers.
func generateReactSupabase(tree *Tree, req Request) error {
	extraDeps := map[string]string{
		"@supabase/supabase-js": "^2.39.7",
	}
	if err := writeReactBase(tree, req, extraDeps); err != nil {
		return err
	}

	if err := tree.File(supabaseEnvExample, ".env.example"); err != nil {
		return err
	}
	if err := tree.File(supabaseClient, "src", "lib", "supabase.ts"); err != nil {
		return err
	}

	if req.Features.Has("auth") {
		if err := tree.File(supabaseAuthHook, "src", "lib", "auth.tsx"); err != nil {
			return err
		}
	}
	if req.Features.Has("db-helpers") {
		if err := tree.File(supabaseDBHelpers, "src", "lib", "db.ts"); err != nil {
			return err
		}
	}
	if req.Features.Has("storage-helpers") {
		if err := tree.File(supabaseStorageHelpers, "src", "lib", "storage.ts"); err != nil {
			return err
		}
	}

	return nil
}

const supabaseEnvExample = `VITE_SUPABASE_URL=your-project-url
VITE_SUPABASE_ANON_KEY=your-anon-key
`

const supabaseClient = `import { createClient } from '@supabase/supabase-js'

const supabaseUrl = import.meta.env.VITE_SUPABASE_URL
const supabaseAnonKey = import.meta.env.VITE_SUPABASE_ANON_KEY

export const supabase = createClient(supabaseUrl, supabaseAnonKey)
`

const supabaseAuthHook = `import { createContext, useContext, useEffect, useState } from 'react'
import type { Session, User } from '@supabase/supabase-js'
import { supabase } from './supabase'

interface AuthContextValue {
  session: Session | null
  user: User | null
  signIn: (email: string, password: string) => Promise<void>
  signUp: (email: string, password: string) => Promise<void>
  signOut: () => Promise<void>
}

const AuthContext = createContext<AuthContextValue | undefined>(undefined)

export function AuthProvider({ children }: { children: React.ReactNode }) {
  const [session, setSession] = useState<Session | null>(null)

  useEffect(() => {
    supabase.auth.getSession().then(({ data }) => setSession(data.session))
    const { data: sub } = supabase.auth.onAuthStateChange((_event, session) => {
      setSession(session)
    })
    return () => sub.subscription.unsubscribe()
  }, [])

  const value: AuthContextValue = {
    session,
    user: session?.user ?? null,
    signIn: async (email, password) => {
      const { error } = await supabase.auth.signInWithPassword({ email, password })
      if (error) throw error
    },
    signUp: async (email, password) => {
      const { error } = await supabase.auth.signUp({ email, password })
      if (error) throw error
    },
    signOut: async () => {
      const { error } = await supabase.auth.signOut()
      if (error) throw error
    },
  }

  return <AuthContext.Provider value={value}>{children}</AuthContext.Provider>
}

export function useAuth() {
  const ctx = useContext(AuthContext)
  if (!ctx) throw new Error('useAuth must be used within an AuthProvider')
  return ctx
}
`

const supabaseDBHelpers = `import { supabase } from './supabase'

export async function fetchAll<T>(table: string): Promise<T[]> {
  const { data, error } = await supabase.from(table).select('*')
  if (error) throw error
  return data as T[]
}

export async function fetchById<T>(table: string, id: string | number): Promise<T | null> {
  const { data, error } = await supabase.from(table).select('*').eq('id', id).maybeSingle()
  if (error) throw error
  return data as T | null
}

export async function insert<T>(table: string, row: Partial<T>): Promise<T> {
  const { data, error } = await supabase.from(table).insert(row).select().single()
  if (error) throw error
  return data as T
}

export async function update<T>(table: string, id: string | number, changes: Partial<T>): Promise<T> {
  const { data, error } = await supabase.from(table).update(changes).eq('id', id).select().single()
  if (error) throw error
  return data as T
}

export async function remove(table: string, id: string | number): Promise<void> {
  const { error } = await supabase.from(table).delete().eq('id', id)
  if (error) throw error
}
`

const supabaseStorageHelpers = `import { supabase } from './supabase'

export async function uploadFile(bucket: string, path: string, file: File): Promise<string> {
  const { error } = await supabase.storage.from(bucket).upload(path, file, { upsert: true })
  if (error) throw error
  return path
}

export async function downloadFile(bucket: string, path: string): Promise<Blob> {
  const { data, error } = await supabase.storage.from(bucket).download(path)
  if (error) throw error
  return data
}

export function publicUrl(bucket: string, path: string): string {
  return supabase.storage.from(bucket).getPublicUrl(path).data.publicUrl
}

export async function removeFile(bucket: string, path: string): Promise<void> {
  const { error } = await supabase.storage.from(bucket).remove([path])
  if (error) throw error
}
`
