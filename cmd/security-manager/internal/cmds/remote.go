package cmds

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/spf13/cobra"

	"github.com/FuturFusion/security-manager/cmd/security-manager/internal/config"
	"github.com/FuturFusion/security-manager/internal/util"
	"github.com/FuturFusion/security-manager/shared/api"
)

type CmdRemote struct {
	Global *CmdGlobal
}

func (c *CmdRemote) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "remote"
	cmd.Short = "Manage the list of remote security managers"
	cmd.Long = `Description:
  Manage the list of remote security managers
`

	// Add
	remoteAddCmd := cmdRemoteAdd{global: c.Global}
	cmd.AddCommand(remoteAddCmd.Command())

	// List
	remoteListCmd := cmdRemoteList{global: c.Global}
	cmd.AddCommand(remoteListCmd.Command())

	// Remove
	remoteRemoveCmd := cmdRemoteRemove{global: c.Global}
	cmd.AddCommand(remoteRemoveCmd.Command())

	// Switch
	remoteSwitchCmd := cmdRemoteSwitch{global: c.Global}
	cmd.AddCommand(remoteSwitchCmd.Command())

	// Workaround for subcommand usage errors. See: https://github.com/spf13/cobra/issues/706
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Usage() }

	return cmd
}

// Add remote.
type cmdRemoteAdd struct {
	global *CmdGlobal
}

func (c *cmdRemoteAdd) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "add <name> <URL>"
	cmd.Short = "Add a new remote"
	cmd.Long = `Description:
  Add a new remote

  Adds a new remote security manager after checking it can be reached.
`

	cmd.PreRunE = c.validateArgsAndFlags
	cmd.RunE = c.run

	return cmd
}

func (c *cmdRemoteAdd) validateArgsAndFlags(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 2, 2)
	if exit {
		return err
	}

	name := args[0]

	if name == "" {
		return fmt.Errorf(`Name of remote can not be empty`)
	}

	if name == config.LocalRemote {
		return fmt.Errorf(`Name of remote can not be %q, because it is a reserved name for local access through the unix socket`, config.LocalRemote)
	}

	return config.Remote{Addr: args[1]}.Validate()
}

func (c *cmdRemoteAdd) run(cmd *cobra.Command, args []string) error {
	name := args[0]
	remote := config.Remote{Addr: args[1]}

	cfg := c.global.config
	_, ok := cfg.Remotes[name]
	if ok {
		return fmt.Errorf(`Remote with name %q already exists`, name)
	}

	err := c.global.CheckRemoteConnectivity(name, remote)
	if err != nil {
		return err
	}

	cfg.Remotes[name] = remote
	err = cfg.SaveConfig()
	if err != nil {
		return fmt.Errorf(`Failed to update client config: %v`, err)
	}

	return nil
}

// CheckRemoteConnectivity verifies the remote answers as a security manager.
func (c *CmdGlobal) CheckRemoteConnectivity(remoteName string, remote config.Remote) error {
	// Set this as the active remote temporarily so we use it for the request.
	oldForceLocal := c.FlagForceLocal
	oldDefault := c.config.DefaultRemote
	oldRemote, hadRemote := c.config.Remotes[remoteName]

	c.config.DefaultRemote = remoteName
	c.config.Remotes[remoteName] = remote
	c.FlagForceLocal = false
	defer func() {
		if hadRemote {
			c.config.Remotes[remoteName] = oldRemote
		} else {
			delete(c.config.Remotes, remoteName)
		}

		c.config.DefaultRemote = oldDefault
		c.FlagForceLocal = oldForceLocal
	}()

	resp, _, err := c.doHTTPRequestV1("", http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	serverInfo := api.ServerUntrusted{}
	err = responseToStruct(resp, &serverInfo)
	if err != nil {
		return err
	}

	if serverInfo.APIVersion != api.APIVersion {
		return fmt.Errorf("Remote %q speaks API version %q, expected %q", remoteName, serverInfo.APIVersion, api.APIVersion)
	}

	return nil
}

// List remotes.
type cmdRemoteList struct {
	global *CmdGlobal

	flagFormat string
}

func (c *cmdRemoteList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Aliases = []string{"ls"}
	cmd.Short = "List available remotes"
	cmd.Long = `Description:
  List the available remotes
`

	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", formatFlagUsage)

	cmd.PreRunE = c.validateArgsAndFlags
	cmd.RunE = c.run

	return cmd
}

func (c *cmdRemoteList) validateArgsAndFlags(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	return validateFlagFormat(cmd.Flag("format").Value.String())
}

func (c *cmdRemoteList) run(cmd *cobra.Command, args []string) error {
	cfg := c.global.config

	// Render the table.
	header := []string{"Name", "Address"}
	data := [][]string{}
	localName := config.LocalRemote
	if cfg.DefaultRemote == "" {
		localName += " (current)"
	}

	data = append(data, []string{localName, "unix://"})

	for name, remote := range cfg.Remotes {
		if name == cfg.DefaultRemote {
			name += " (current)"
		}

		data = append(data, []string{name, remote.Addr})
	}

	sort.Sort(util.SortColumnsNaturally(data))

	return util.RenderTable(cmd.OutOrStdout(), c.flagFormat, header, data, cfg.Remotes)
}

// Remove remote.
type cmdRemoteRemove struct {
	global *CmdGlobal
}

func (c *cmdRemoteRemove) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "remove <name>"
	cmd.Aliases = []string{"rm"}
	cmd.Short = "Remove a remote"
	cmd.Long = `Description:
  Remove a remote
`

	cmd.PreRunE = c.validateArgsAndFlags
	cmd.RunE = c.run

	return cmd
}

func (c *cmdRemoteRemove) validateArgsAndFlags(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	if args[0] == config.LocalRemote {
		return fmt.Errorf(`Remote %q can not be removed`, config.LocalRemote)
	}

	return nil
}

func (c *cmdRemoteRemove) run(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg := c.global.config
	_, ok := cfg.Remotes[name]
	if !ok {
		return fmt.Errorf(`Remote with name %q does not exist`, name)
	}

	delete(cfg.Remotes, name)

	if cfg.DefaultRemote == name {
		cfg.DefaultRemote = ""
	}

	err := cfg.SaveConfig()
	if err != nil {
		return fmt.Errorf(`Failed to update client config: %v`, err)
	}

	return nil
}

// Switch remote.
type cmdRemoteSwitch struct {
	global *CmdGlobal
}

func (c *cmdRemoteSwitch) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "switch <name>"
	cmd.Short = "Switch remote"
	cmd.Long = `Description:
  Switch remote

  Switches the default remote security manager that is interacted with.
`

	cmd.PreRunE = c.validateArgsAndFlags
	cmd.RunE = c.run

	return cmd
}

func (c *cmdRemoteSwitch) validateArgsAndFlags(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	return nil
}

func (c *cmdRemoteSwitch) run(cmd *cobra.Command, args []string) error {
	name := args[0]

	if name == config.LocalRemote {
		name = ""
	}

	cfg := c.global.config
	_, ok := cfg.Remotes[name]
	if !ok && name != "" {
		return fmt.Errorf(`Remote with name %q does not exist`, name)
	}

	cfg.DefaultRemote = name

	err := cfg.SaveConfig()
	if err != nil {
		return fmt.Errorf(`Failed to update client config: %v`, err)
	}

	return nil
}
