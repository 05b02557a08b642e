package cmds

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/FuturFusion/security-manager/internal/util"
	"github.com/FuturFusion/security-manager/shared/api"
)

type CmdProfil struct {
	Global *CmdGlobal
}

func (c *CmdProfil) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "profil"
	cmd.Short = "Interact with profiles"
	cmd.Long = `Description:
  Interact with profiles

  Configure the profiles and the rights they grant to users.
`

	// Add
	profilAddCmd := cmdProfilAdd{global: c.Global}
	cmd.AddCommand(profilAddCmd.Command())

	// Edit
	profilEditCmd := cmdProfilEdit{global: c.Global}
	cmd.AddCommand(profilEditCmd.Command())

	// List
	profilListCmd := cmdProfilList{global: c.Global}
	cmd.AddCommand(profilListCmd.Command())

	// Remove
	profilRemoveCmd := cmdProfilRemove{global: c.Global}
	cmd.AddCommand(profilRemoveCmd.Command())

	// Show
	profilShowCmd := cmdProfilShow{global: c.Global}
	cmd.AddCommand(profilShowCmd.Command())

	// Workaround for subcommand usage errors. See: https://github.com/spf13/cobra/issues/706
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Usage() }

	return cmd
}

// Add the profile.
type cmdProfilAdd struct {
	global *CmdGlobal

	flagDroits []string
}

func (c *cmdProfilAdd) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "add <libelle>"
	cmd.Short = "Add a new profile"
	cmd.Long = `Description:
  Add a new profile

  Adds a new profile granting the rights given with --droit.
`

	cmd.Example = `  security-manager profil add Administrateurs --droit CREATE --droit READ --droit UPDATE --droit DELETE`

	cmd.Flags().StringSliceVarP(&c.flagDroits, "droit", "d", nil, "Right granted by the profile (CREATE, READ, UPDATE or DELETE), can be repeated")

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdProfilAdd) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	profil := api.ProfilWrite{
		Libelle: args[0],
		Droits:  make([]api.DroitCode, 0, len(c.flagDroits)),
	}

	for _, droit := range c.flagDroits {
		code := api.DroitCode(strings.ToUpper(droit))
		err = code.Validate()
		if err != nil {
			return err
		}

		profil.Droits = append(profil.Droits, code)
	}

	content, err := json.Marshal(profil)
	if err != nil {
		return err
	}

	_, header, err := c.global.doHTTPRequestV1("/profils", http.MethodPost, "", content)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully added profile %q with id %s.\n", profil.Libelle, idFromLocation(header))
	return nil
}

// Edit the profile.
type cmdProfilEdit struct {
	global *CmdGlobal
}

func (c *cmdProfilEdit) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "edit <id>"
	cmd.Short = "Edit profile"
	cmd.Long = `Description:
  Edit profile as YAML
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdProfilEdit) helpTemplate() string {
	return `### This is a YAML representation of the profile.
### Any line starting with a '# will be ignored.
###
### Valid rights are CREATE, READ, UPDATE and DELETE.`
}

func (c *cmdProfilEdit) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	// Get the existing profile.
	resp, header, err := c.global.doHTTPRequestV1("/profils/"+id, http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	profil := api.ProfilRead{}
	err = responseToStruct(resp, &profil)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(api.ProfilWrite{Libelle: profil.Libelle, Droits: profil.Droits})
	if err != nil {
		return err
	}

	contents, err := readInput(cmd, c.helpTemplate(), data)
	if err != nil {
		return err
	}

	newdata := api.ProfilWrite{}
	err = yaml.Unmarshal(contents, &newdata)
	if err != nil {
		return err
	}

	b, err := json.Marshal(newdata)
	if err != nil {
		return err
	}

	_, _, err = c.global.doHTTPRequestV1IfMatch("/profils/"+id, http.MethodPut, header.Get("ETag"), b)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully updated profile %q.\n", newdata.Libelle)
	return nil
}

// List the profiles.
type cmdProfilList struct {
	global *CmdGlobal

	flagFormat string
}

func (c *cmdProfilList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Aliases = []string{"ls"}
	cmd.Short = "List available profiles"
	cmd.Long = `Description:
  List the available profiles
`

	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", formatFlagUsage)
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return validateFlagFormat(cmd.Flag("format").Value.String())
	}

	return cmd
}

func (c *cmdProfilList) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	// Get the list of all profiles.
	resp, _, err := c.global.doHTTPRequestV1("/profils", http.MethodGet, "recursion=1", nil)
	if err != nil {
		return err
	}

	profils := []api.ProfilRead{}

	err = responseToStruct(resp, &profils)
	if err != nil {
		return err
	}

	// Render the table.
	header := []string{"ID", "Libelle", "Droits", "Date Modification"}
	data := [][]string{}

	for _, p := range profils {
		droits := make([]string, 0, len(p.Droits))
		for _, droit := range p.Droits {
			droits = append(droits, string(droit))
		}

		data = append(data, []string{strconv.FormatInt(p.ID, 10), p.Libelle, strings.Join(droits, ", "), p.DateModification.Format(time.DateTime)})
	}

	sort.Sort(util.SortColumnsNaturally(data))

	return util.RenderTable(cmd.OutOrStdout(), c.flagFormat, header, data, profils)
}

// Remove the profile.
type cmdProfilRemove struct {
	global *CmdGlobal
}

func (c *cmdProfilRemove) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "remove <id>"
	cmd.Aliases = []string{"rm"}
	cmd.Short = "Remove profile"
	cmd.Long = `Description:
  Remove profile

  A profile still assigned to users can not be removed.
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdProfilRemove) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	// Remove the profile.
	_, _, err = c.global.doHTTPRequestV1("/profils/"+id, http.MethodDelete, "", nil)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully removed profile %s.\n", id)
	return nil
}

// Show the profile.
type cmdProfilShow struct {
	global *CmdGlobal
}

func (c *cmdProfilShow) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "show <id>"
	cmd.Short = "Show information about a profile"
	cmd.Long = `Description:
  Show information about a profile
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdProfilShow) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, _, err := c.global.doHTTPRequestV1("/profils/"+id, http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	profil := api.ProfilRead{}
	err = responseToStruct(resp, &profil)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(profil)
	if err != nil {
		return err
	}

	cmd.Print(string(out))
	return nil
}

// parseID checks id is a positive integer.
func parseID(id string) (string, error) {
	value, err := strconv.ParseInt(id, 10, 64)
	if err != nil || value <= 0 {
		return "", fmt.Errorf("Invalid id %q, expected a positive integer", id)
	}

	return strconv.FormatInt(value, 10), nil
}
