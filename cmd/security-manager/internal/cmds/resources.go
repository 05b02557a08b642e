package cmds

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FuturFusion/security-manager/shared/api"
)

type CmdResources struct {
	Global *CmdGlobal
}

func (c *CmdResources) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "resources"
	cmd.Short = "Interact with label resources"
	cmd.Long = `Description:
  Interact with label resources
`

	// Export
	resourcesExportCmd := cmdResourcesExport{global: c.Global}
	cmd.AddCommand(resourcesExportCmd.Command())

	// Workaround for subcommand usage errors. See: https://github.com/spf13/cobra/issues/706
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Usage() }

	return cmd
}

// Export the label resources.
type cmdResourcesExport struct {
	global *CmdGlobal

	flagFormat string
	flagLang   string
	flagOutput string
}

func (c *cmdResourcesExport) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "export"
	cmd.Short = "Export the label resources"
	cmd.Long = `Description:
  Export the label resources of one language

  The labels are exported as a JSON document or as a TypeScript module
  exporting the same tree.
`

	cmd.Example = `  security-manager resources export --lang en --format ts --output labels.en.ts`

	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "json", "Export format (json or ts)")
	cmd.Flags().StringVarP(&c.flagLang, "lang", "l", "", "Language of the labels (fr or en)")
	cmd.Flags().StringVarP(&c.flagOutput, "output", "o", "", "File to write the export to instead of stdout")

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdResourcesExport) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	values := url.Values{}
	values.Set("format", c.flagFormat)
	if c.flagLang != "" {
		values.Set("lang", c.flagLang)
	}

	resp, _, err := c.global.doHTTPRequestV1("/resources", http.MethodGet, values.Encode(), nil)
	if err != nil {
		return err
	}

	resources := api.Resources{}
	err = responseToStruct(resp, &resources)
	if err != nil {
		return err
	}

	if c.flagOutput == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), resources.Content)
		return err
	}

	err = c.global.os.WriteFile(c.flagOutput, strings.NewReader(resources.Content), 0o644)
	if err != nil {
		return fmt.Errorf("Failed to write %q: %w", c.flagOutput, err)
	}

	cmd.Printf("Successfully exported %s labels (%s) to %q.\n", resources.Language, resources.Format, c.flagOutput)
	return nil
}
