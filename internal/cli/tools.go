package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/petasbytes/realtor-agent/tools"
)

func init() {
	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect the tool catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tools by category",
		Args:  cobra.NoArgs,
		RunE:  runToolsList,
	}
	list.Flags().String("category", "", "Only list tools in this category")
	list.Flags().Bool("json", false, "Print as JSON")

	schema := &cobra.Command{
		Use:   "schema [name]",
		Short: "Print a tool's input schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runToolsSchema,
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Validate every input schema",
		Args:  cobra.NoArgs,
		RunE:  runToolsCheck,
	}

	toolsCmd.AddCommand(list, schema, check)
	RootCmd.AddCommand(toolsCmd)
}

type toolSummary struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

func runToolsList(cmd *cobra.Command, _ []string) error {
	category, _ := cmd.Flags().GetString("category")
	asJSON, _ := cmd.Flags().GetBool("json")

	cats := tools.Categories()
	if category != "" {
		if !knownCategory(category) {
			return fmt.Errorf("unknown category %q", category)
		}
		cats = []tools.Category{tools.Category(category)}
	}

	groups := tools.ByCategory(tools.Registry())
	summaries := []toolSummary{}
	for _, c := range cats {
		for _, d := range groups[c] {
			summaries = append(summaries, toolSummary{
				Name:        d.Name,
				Category:    string(d.Category),
				Description: d.Description,
				Fields:      d.Fields(),
			})
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		b, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, c := range cats {
		fmt.Fprintf(tw, "%s (%d)\n", c, len(groups[c]))
		for _, d := range groups[c] {
			fmt.Fprintf(tw, "  %s\t%s\n", d.Name, d.Description)
		}
	}
	return tw.Flush()
}

func runToolsSchema(cmd *cobra.Command, args []string) error {
	d, ok := tools.Lookup(tools.Registry(), args[0])
	if !ok {
		return fmt.Errorf("unknown tool %q", args[0])
	}
	b, err := json.MarshalIndent(d.InputSchema, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func runToolsCheck(cmd *cobra.Command, _ []string) error {
	catalog := tools.Registry()
	if err := tools.CheckSchemas(catalog); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d tools, all input schemas valid\n", len(catalog))
	return nil
}

func knownCategory(s string) bool {
	for _, c := range tools.Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}
