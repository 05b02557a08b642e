package cmds

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FuturFusion/security-manager/internal/util"
	"github.com/FuturFusion/security-manager/shared/api"
)

var referenceKinds = []string{"droits", "type-droits", "type-utilisateurs"}

type CmdReference struct {
	Global *CmdGlobal
}

func (c *CmdReference) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "reference"
	cmd.Short = "Show reference lists"
	cmd.Long = `Description:
  Show reference lists

  Reference lists hold the fixed codes of rights, rights types and user types
  together with their translated labels.
`

	// List
	referenceListCmd := cmdReferenceList{global: c.Global}
	cmd.AddCommand(referenceListCmd.Command())

	// Workaround for subcommand usage errors. See: https://github.com/spf13/cobra/issues/706
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Usage() }

	return cmd
}

// List a reference list.
type cmdReferenceList struct {
	global *CmdGlobal

	flagFormat string
	flagLang   string
}

func (c *cmdReferenceList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list <" + strings.Join(referenceKinds, "|") + ">"
	cmd.Aliases = []string{"ls"}
	cmd.Short = "List the entries of a reference list"
	cmd.Long = `Description:
  List the entries of a reference list with their labels
`

	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", formatFlagUsage)
	cmd.Flags().StringVarP(&c.flagLang, "lang", "l", "", "Language of the labels (fr or en)")
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return validateFlagFormat(cmd.Flag("format").Value.String())
	}

	return cmd
}

func (c *cmdReferenceList) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	kind := args[0]
	if !slices.Contains(referenceKinds, kind) {
		return fmt.Errorf("Unknown reference list %q, expected one of %s", kind, strings.Join(referenceKinds, ", "))
	}

	query := ""
	if c.flagLang != "" {
		query = url.Values{"lang": []string{c.flagLang}}.Encode()
	}

	resp, _, err := c.global.doHTTPRequestV1("/references/"+kind, http.MethodGet, query, nil)
	if err != nil {
		return err
	}

	var header []string
	data := [][]string{}
	var raw any

	switch kind {
	case "droits":
		droits := []api.Droit{}
		err = responseToStruct(resp, &droits)
		if err != nil {
			return err
		}

		header = []string{"Code", "Libelle", "Type Droit"}
		for _, d := range droits {
			data = append(data, []string{string(d.Code), d.Libelle, string(d.TypeDroitCode)})
		}

		raw = droits

	case "type-droits":
		typeDroits := []api.TypeDroit{}
		err = responseToStruct(resp, &typeDroits)
		if err != nil {
			return err
		}

		header = []string{"Code", "Libelle"}
		for _, t := range typeDroits {
			data = append(data, []string{string(t.Code), t.Libelle})
		}

		raw = typeDroits

	case "type-utilisateurs":
		typeUtilisateurs := []api.TypeUtilisateur{}
		err = responseToStruct(resp, &typeUtilisateurs)
		if err != nil {
			return err
		}

		header = []string{"Code", "Libelle"}
		for _, t := range typeUtilisateurs {
			data = append(data, []string{string(t.Code), t.Libelle})
		}

		raw = typeUtilisateurs
	}

	sort.Sort(util.SortColumnsNaturally(data))

	return util.RenderTable(cmd.OutOrStdout(), c.flagFormat, header, data, raw)
}
