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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/flowcli/flow/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the template catalog",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE:  runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one template with its features",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesShow,
}

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)

	templatesListCmd.Flags().String("filter", "", "Fuzzy filter on id, name, and description")
	templatesListCmd.Flags().String("tag", "", "Exact tag filter")
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	filter, _ := cmd.Flags().GetString("filter")
	tag, _ := cmd.Flags().GetString("tag")

	defs := templates.List()
	defs = templates.FilterByName(defs, filter)
	defs = templates.FilterByTag(defs, tag)

	if len(defs) == 0 {
		fmt.Println("No templates match.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTAGS\tDESCRIPTION")
	for _, def := range defs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			def.ID, def.DisplayName, strings.Join(def.Tags, ","), def.Description)
	}
	return w.Flush()
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	def, err := templates.Get(args[0])
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
