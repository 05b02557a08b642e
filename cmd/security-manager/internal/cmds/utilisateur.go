package cmds

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/FuturFusion/security-manager/internal/util"
	"github.com/FuturFusion/security-manager/shared/api"
)

type CmdUtilisateur struct {
	Global *CmdGlobal
}

func (c *CmdUtilisateur) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "utilisateur"
	cmd.Short = "Interact with users"
	cmd.Long = `Description:
  Interact with users

  Configure the users, their profile and their user type.
`

	// Add
	utilisateurAddCmd := cmdUtilisateurAdd{global: c.Global}
	cmd.AddCommand(utilisateurAddCmd.Command())

	// Edit
	utilisateurEditCmd := cmdUtilisateurEdit{global: c.Global}
	cmd.AddCommand(utilisateurEditCmd.Command())

	// List
	utilisateurListCmd := cmdUtilisateurList{global: c.Global}
	cmd.AddCommand(utilisateurListCmd.Command())

	// Remove
	utilisateurRemoveCmd := cmdUtilisateurRemove{global: c.Global}
	cmd.AddCommand(utilisateurRemoveCmd.Command())

	// Show
	utilisateurShowCmd := cmdUtilisateurShow{global: c.Global}
	cmd.AddCommand(utilisateurShowCmd.Command())

	// Workaround for subcommand usage errors. See: https://github.com/spf13/cobra/issues/706
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Usage() }

	return cmd
}

// Add the user.
type cmdUtilisateurAdd struct {
	global *CmdGlobal

	flagType          string
	flagProfil        int64
	flagDateNaissance string
	flagAdresse       string
	flagInactif       bool
}

func (c *cmdUtilisateurAdd) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "add <nom> <prenom> <email>"
	cmd.Short = "Add a new user"
	cmd.Long = `Description:
  Add a new user

  Adds a new user, active unless --inactif is given.
`

	cmd.Example = `  security-manager utilisateur add Doe John john.doe@example.com --type GEST --profil 1 --date-naissance 1990-01-31`

	cmd.Flags().StringVarP(&c.flagType, "type", "t", string(api.TYPEUTILISATEURCODE_CLIENT), "User type (ADMIN, GEST or CLIENT)")
	cmd.Flags().Int64VarP(&c.flagProfil, "profil", "p", 0, "Id of the profile of the user")
	cmd.Flags().StringVar(&c.flagDateNaissance, "date-naissance", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&c.flagAdresse, "adresse", "", "Postal address")
	cmd.Flags().BoolVar(&c.flagInactif, "inactif", false, "Create the user as inactive")

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdUtilisateurAdd) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 3, 3)
	if exit {
		return err
	}

	utilisateur := api.UtilisateurWrite{
		Nom:                 args[0],
		Prenom:              args[1],
		Email:               args[2],
		Adresse:             c.flagAdresse,
		Actif:               !c.flagInactif,
		TypeUtilisateurCode: api.TypeUtilisateurCode(strings.ToUpper(c.flagType)),
	}

	err = utilisateur.TypeUtilisateurCode.Validate()
	if err != nil {
		return err
	}

	if c.flagProfil > 0 {
		utilisateur.ProfilID = &c.flagProfil
	}

	if c.flagDateNaissance != "" {
		date, err := api.ParseDate(c.flagDateNaissance)
		if err != nil {
			return err
		}

		utilisateur.DateNaissance = &date
	}

	content, err := json.Marshal(utilisateur)
	if err != nil {
		return err
	}

	_, header, err := c.global.doHTTPRequestV1("/utilisateurs", http.MethodPost, "", content)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully added user %q with id %s.\n", utilisateur.Email, idFromLocation(header))
	return nil
}

// Edit the user.
type cmdUtilisateurEdit struct {
	global *CmdGlobal
}

func (c *cmdUtilisateurEdit) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "edit <id>"
	cmd.Short = "Edit user"
	cmd.Long = `Description:
  Edit user as YAML
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdUtilisateurEdit) helpTemplate() string {
	return `### This is a YAML representation of the user.
### Any line starting with a '# will be ignored.
###
### Valid user types are ADMIN, GEST and CLIENT.`
}

func (c *cmdUtilisateurEdit) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	// Get the existing user.
	resp, header, err := c.global.doHTTPRequestV1("/utilisateurs/"+id, http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	utilisateur := api.UtilisateurRead{}
	err = responseToStruct(resp, &utilisateur)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(api.UtilisateurWrite{
		Nom:                 utilisateur.Nom,
		Prenom:              utilisateur.Prenom,
		Email:               utilisateur.Email,
		DateNaissance:       utilisateur.DateNaissance,
		Adresse:             utilisateur.Adresse,
		Actif:               utilisateur.Actif,
		ProfilID:            utilisateur.ProfilID,
		TypeUtilisateurCode: utilisateur.TypeUtilisateurCode,
	})
	if err != nil {
		return err
	}

	contents, err := readInput(cmd, c.helpTemplate(), data)
	if err != nil {
		return err
	}

	newdata := api.UtilisateurWrite{}
	err = yaml.Unmarshal(contents, &newdata)
	if err != nil {
		return err
	}

	b, err := json.Marshal(newdata)
	if err != nil {
		return err
	}

	_, _, err = c.global.doHTTPRequestV1IfMatch("/utilisateurs/"+id, http.MethodPut, header.Get("ETag"), b)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully updated user %q.\n", newdata.Email)
	return nil
}

// List the users.
type cmdUtilisateurList struct {
	global *CmdGlobal

	flagFormat string
	flagFilter string
	flagProfil int64
	flagType   string
	flagActif  string
	flagNom    string
}

func (c *cmdUtilisateurList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Aliases = []string{"ls"}
	cmd.Short = "List available users"
	cmd.Long = `Description:
  List the available users

  The users can be filtered by profile, user type, state and part of the last
  name. The --filter expression is evaluated against each user with the
  fields id, nom, prenom, email, adresse, actif, profil_id, profil,
  type_utilisateur, date_naissance and droits, e.g. 'actif && "DELETE" in droits'.
`

	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", formatFlagUsage)
	cmd.Flags().StringVar(&c.flagFilter, "filter", "", "Include expression the users have to match")
	cmd.Flags().Int64VarP(&c.flagProfil, "profil", "p", 0, "Id of the profile of the users")
	cmd.Flags().StringVarP(&c.flagType, "type", "t", "", "User type of the users")
	cmd.Flags().StringVar(&c.flagActif, "actif", "", "Only list active (true) or inactive (false) users")
	cmd.Flags().StringVar(&c.flagNom, "nom", "", "Part of the last name of the users")
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return validateFlagFormat(cmd.Flag("format").Value.String())
	}

	return cmd
}

func (c *cmdUtilisateurList) query() (string, error) {
	values := url.Values{}
	values.Set("recursion", "1")

	if c.flagFilter != "" {
		values.Set("include_expression", c.flagFilter)
	}

	if c.flagProfil > 0 {
		values.Set("profil_id", strconv.FormatInt(c.flagProfil, 10))
	}

	if c.flagType != "" {
		code := api.TypeUtilisateurCode(strings.ToUpper(c.flagType))
		err := code.Validate()
		if err != nil {
			return "", err
		}

		values.Set("type_utilisateur", string(code))
	}

	if c.flagActif != "" {
		actif, err := strconv.ParseBool(c.flagActif)
		if err != nil {
			return "", err
		}

		values.Set("actif", strconv.FormatBool(actif))
	}

	if c.flagNom != "" {
		values.Set("nom", c.flagNom)
	}

	return values.Encode(), nil
}

func (c *cmdUtilisateurList) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	query, err := c.query()
	if err != nil {
		return err
	}

	// Get the list of all users.
	resp, _, err := c.global.doHTTPRequestV1("/utilisateurs", http.MethodGet, query, nil)
	if err != nil {
		return err
	}

	utilisateurs := []api.UtilisateurRead{}

	err = responseToStruct(resp, &utilisateurs)
	if err != nil {
		return err
	}

	// Render the table.
	header := []string{"ID", "Nom", "Prenom", "Email", "Actif", "Profil", "Type"}
	data := [][]string{}

	for _, u := range utilisateurs {
		profil := ""
		if u.ProfilID != nil {
			profil = strconv.FormatInt(*u.ProfilID, 10)
		}

		data = append(data, []string{strconv.FormatInt(u.ID, 10), u.Nom, u.Prenom, u.Email, strconv.FormatBool(u.Actif), profil, string(u.TypeUtilisateurCode)})
	}

	sort.Sort(util.SortColumnsNaturally(data))

	return util.RenderTable(cmd.OutOrStdout(), c.flagFormat, header, data, utilisateurs)
}

// Remove the user.
type cmdUtilisateurRemove struct {
	global *CmdGlobal
}

func (c *cmdUtilisateurRemove) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "remove <id>"
	cmd.Aliases = []string{"rm"}
	cmd.Short = "Remove user"
	cmd.Long = `Description:
  Remove user
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdUtilisateurRemove) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	// Remove the user.
	_, _, err = c.global.doHTTPRequestV1("/utilisateurs/"+id, http.MethodDelete, "", nil)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully removed user %s.\n", id)
	return nil
}

// Show the user.
type cmdUtilisateurShow struct {
	global *CmdGlobal
}

func (c *cmdUtilisateurShow) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "show <id>"
	cmd.Short = "Show information about a user"
	cmd.Long = `Description:
  Show information about a user
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdUtilisateurShow) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, _, err := c.global.doHTTPRequestV1("/utilisateurs/"+id, http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	utilisateur := api.UtilisateurRead{}
	err = responseToStruct(resp, &utilisateur)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(utilisateur)
	if err != nil {
		return err
	}

	cmd.Print(string(out))
	return nil
}
