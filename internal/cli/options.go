package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
)

func newOptionsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the predefined profile options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(domain.Catalog())
			}

			for _, dim := range domain.Catalog() {
				fmt.Fprintf(out, "%s  (--%s)\n", dim.Label, flagName(dim.Field))
				for _, opt := range dim.Options {
					fmt.Fprintf(out, "  - %s\n      %s\n", opt.Value, opt.Description)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the catalog as JSON")
	return cmd
}

func flagName(field domain.InputField) string {
	if field == domain.FieldBasicAttributes {
		return "basic"
	}
	return string(field)
}
