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

// Package ui collects the interactive prompts shown during project
// creation. Every prompt maps a user abort to errors.ErrCanceled so
// callers can tell "declined" from "failed".
package ui

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/flowcli/flow/errors"
	"github.com/flowcli/flow/templates"
)

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// promptErr maps a huh abort to ErrCanceled.
func promptErr(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, huh.ErrUserAborted) {
		return errors.ErrCanceled
	}
	return errors.Wrap("read prompt", "interactive input", err)
}

// ProjectName prompts for a project name and validates it inline.
func ProjectName() (string, error) {
	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Used as the directory name for the new project").
				Validate(templates.ValidateProjectName).
				Value(&name),
		),
	)

	if err := form.Run(); err != nil {
		return "", promptErr(err)
	}
	return name, nil
}

// SelectTemplate prompts for one template out of the catalog and returns
// its id.
func SelectTemplate(defs []templates.Definition) (string, error) {
	options := make([]huh.Option[string], 0, len(defs))
	for _, def := range defs {
		options = append(options, huh.Option[string]{
			Key:   fmt.Sprintf("%s - %s", def.DisplayName, def.Description),
			Value: def.ID,
		})
	}

	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project template").
				Options(options...).
				Value(&id),
		),
	)

	if err := form.Run(); err != nil {
		return "", promptErr(err)
	}
	return id, nil
}

// SelectFeatures prompts for the template's feature toggles with the
// defaults pre-selected.
func SelectFeatures(def templates.Definition) (templates.FeatureSet, error) {
	if len(def.Features) == 0 {
		return templates.NewFeatureSet(), nil
	}

	options := make([]huh.Option[string], 0, len(def.Features))
	for _, f := range def.Features {
		options = append(options, huh.NewOption(f.Description, f.ID).Selected(f.Default))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Features").
				Description("Space toggles, enter confirms").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, promptErr(err)
	}
	return templates.NewFeatureSet(selected...), nil
}

// Confirm asks a yes/no question.
func Confirm(title string, def bool) (bool, error) {
	answer := def

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&answer),
		),
	)

	if err := form.Run(); err != nil {
		return false, promptErr(err)
	}
	return answer, nil
}
