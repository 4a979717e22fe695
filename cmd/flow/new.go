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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flowcli/flow/config"
	"github.com/flowcli/flow/editor"
	"github.com/flowcli/flow/logging"
	"github.com/flowcli/flow/templates"
	"github.com/flowcli/flow/ui"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create something new",
}

var newProjectCmd = &cobra.Command{
	Use:   "project [name]",
	Short: "Create a new project from a template",
	Long: `Create a new project from the template catalog.

With no arguments this runs the guided setup: project name, template, and
feature selection. Every prompt can be skipped with the matching flag, so
the command also works non-interactively:

  flow new project my-app --template react --feature typescript --feature tailwind`,
	Args: cobra.MaximumNArgs(1),
}

func init() {
	newProjectCmd.RunE = runNewProject
	newCmd.AddCommand(newProjectCmd)

	flags := newProjectCmd.Flags()
	flags.StringP("template", "t", "", "Template id (see `flow templates list`)")
	flags.StringArrayP("feature", "f", nil, "Feature to enable (repeatable)")
	flags.Bool("no-default-features", false, "Start from an empty feature set instead of the template defaults")
	flags.StringP("dir", "d", "", "Parent directory for the project (default is the configured dev folder)")
	flags.String("project-version", "", "Semantic version stamped into generated manifests")
	flags.Bool("force", false, "Replace the target directory if it already exists")
	flags.Bool("no-editor", false, "Do not open the project in the configured editor")
	flags.Bool("git", false, "Initialize a git repository (shorthand for --feature git)")
}

func runNewProject(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := configFromContext(cmd)
	if cfg == nil {
		return fmt.Errorf("no configuration in command context")
	}

	flags := newProjectCmd.Flags()
	templateID, _ := flags.GetString("template")
	featureFlags, _ := flags.GetStringArray("feature")
	noDefaults, _ := flags.GetBool("no-default-features")
	parentDir, _ := flags.GetString("dir")
	projectVersion, _ := flags.GetString("project-version")
	force, _ := flags.GetBool("force")
	noEditor, _ := flags.GetBool("no-editor")
	withGit, _ := flags.GetBool("git")

	interactive := ui.IsInteractive()

	// Project name: argument wins, otherwise prompt.
	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		if !interactive {
			return fmt.Errorf("project name required when not running interactively")
		}
		var err error
		if name, err = ui.ProjectName(); err != nil {
			return err
		}
	}
	if err := templates.ValidateProjectName(name); err != nil {
		return err
	}

	// Template: flag wins, otherwise prompt.
	if templateID == "" {
		if !interactive {
			return fmt.Errorf("--template required when not running interactively")
		}
		var err error
		if templateID, err = ui.SelectTemplate(templates.List()); err != nil {
			return err
		}
	}
	def, err := templates.Get(templateID)
	if err != nil {
		return err
	}

	// Features: explicit flags win; otherwise prompt interactively or fall
	// back to the template defaults.
	var features templates.FeatureSet
	switch {
	case len(featureFlags) > 0:
		features = templates.NewFeatureSet(featureFlags...)
		if !noDefaults {
			for _, id := range def.DefaultFeatures() {
				features[id] = true
			}
		}
	case interactive && !noDefaults:
		if features, err = ui.SelectFeatures(def); err != nil {
			return err
		}
	case noDefaults:
		features = templates.NewFeatureSet()
	default:
		features = templates.NewFeatureSet(def.DefaultFeatures()...)
	}
	if withGit {
		features[templates.FeatureGit] = true
	}
	if err := templates.ValidateFeatures(def, features); err != nil {
		return err
	}

	if projectVersion == "" {
		projectVersion = cfg.DefaultVersion
	}

	if parentDir == "" {
		parentDir = cfg.DevFolder
	}
	parentDir, err = config.ExpandPath(parentDir)
	if err != nil {
		return err
	}
	targetDir := filepath.Join(parentDir, name)

	req := templates.Request{
		Name:       name,
		TemplateID: def.ID,
		Features:   features,
		Version:    projectVersion,
	}

	scaffolder := templates.NewScaffolder()
	if err := scaffolder.Generate(ctx, req, targetDir, templates.Options{Force: force}); err != nil {
		return err
	}

	ui.Summary(os.Stdout, req, targetDir)

	if !noEditor && cfg.IDE != "" && cfg.IDE != "none" && interactive {
		open, err := ui.Confirm(fmt.Sprintf("Open in %s?", cfg.IDE), true)
		if err != nil {
			return err
		}
		if open {
			if err := editor.Open(ctx, cfg.IDE, targetDir); err != nil {
				// The project exists either way; a missing editor is not fatal.
				logging.WarnContext(ctx, "could not open editor: %v", err)
			}
		}
	}

	return nil
}
