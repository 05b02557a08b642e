package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FuturFusion/security-manager/cmd/security-manager/internal/cmds"
	"github.com/FuturFusion/security-manager/internal/version"
)

func main() {
	// Setup the parser
	app := &cobra.Command{}
	app.Use = "security-manager"
	app.Short = "Command line client for security manager"
	app.Long = `Description:
  Command line client for security manager

  The security manager can be interacted with through the various commands
  below. For help with any of those, simply call them with --help.
`

	app.SilenceUsage = true
	app.SilenceErrors = true
	app.CompletionOptions = cobra.CompletionOptions{HiddenDefaultCmd: true}

	// Global flags
	globalCmd := cmds.CmdGlobal{Cmd: app}

	app.PersistentFlags().BoolVar(&globalCmd.FlagVersion, "version", false, "Print version number")
	app.PersistentFlags().BoolVarP(&globalCmd.FlagHelp, "help", "h", false, "Print help")

	// Wrappers
	app.PersistentPreRunE = globalCmd.PreRun

	// Version handling
	app.SetVersionTemplate("{{.Version}}\n")
	app.Version = version.Version

	// profil sub-command
	profilCmd := cmds.CmdProfil{Global: &globalCmd}
	app.AddCommand(profilCmd.Command())

	// reference sub-command
	referenceCmd := cmds.CmdReference{Global: &globalCmd}
	app.AddCommand(referenceCmd.Command())

	// remote sub-command
	remoteCmd := cmds.CmdRemote{Global: &globalCmd}
	app.AddCommand(remoteCmd.Command())

	// resources sub-command
	resourcesCmd := cmds.CmdResources{Global: &globalCmd}
	app.AddCommand(resourcesCmd.Command())

	// utilisateur sub-command
	utilisateurCmd := cmds.CmdUtilisateur{Global: &globalCmd}
	app.AddCommand(utilisateurCmd.Command())

	// Run the main command and handle errors
	err := app.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
