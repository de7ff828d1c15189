package root

import (
	"fmt"
	"os"

	"github.com/0xPolygon/rsa-verifier/command/bench"
	"github.com/0xPolygon/rsa-verifier/command/helper"
	"github.com/0xPolygon/rsa-verifier/command/verify"
	"github.com/0xPolygon/rsa-verifier/command/version"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "rsa-verifier",
			Short: "RSA PKCS#1 v1.5 SHA-256 signature verification with metered modular exponentiation",
		},
	}

	helper.RegisterJSONOutputFlag(rootCommand.baseCmd)
	helper.RegisterLogFlags(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		verify.GetCommand(),
		bench.GetCommand(),
	)
}

// Command returns the underlying cobra command
func (rc *RootCommand) Command() *cobra.Command {
	return rc.baseCmd
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
