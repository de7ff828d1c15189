package helper

import (
	"github.com/0xPolygon/rsa-verifier/command"
	"github.com/0xPolygon/rsa-verifier/verifier"
	"github.com/spf13/cobra"
)

// VerifierFlags are the verifier settings shared by the commands building a verification service
type VerifierFlags struct {
	ConfigPath string
	Backend    string
	Fork       string
	GasLimit   uint64
	Workers    int
}

// Register adds the verifier flags to the command
func (v *VerifierFlags) Register(cmd *cobra.Command) {
	defaults := verifier.DefaultConfig()

	cmd.Flags().StringVar(
		&v.ConfigPath,
		command.ConfigFlag,
		"",
		"the path to the verifier config file (.json, .hcl, .yaml or .yml)",
	)

	cmd.Flags().StringVar(
		&v.Backend,
		command.BackendFlag,
		defaults.Backend,
		"the modular exponentiation backend (library or precompile)",
	)

	cmd.Flags().StringVar(
		&v.Fork,
		command.ForkFlag,
		defaults.Fork,
		"the fork whose gas schedule prices the precompile backend",
	)

	cmd.Flags().Uint64Var(
		&v.GasLimit,
		command.GasLimitFlag,
		defaults.GasLimit,
		"the gas limit of every modexp precompile call",
	)

	cmd.Flags().IntVar(
		&v.Workers,
		command.WorkersFlag,
		defaults.Workers,
		"the number of concurrent verifications",
	)
}

// Config builds the verifier configuration. Values come from the config file
// if one was given, flags set on the command line override them.
func (v *VerifierFlags) Config(cmd *cobra.Command) (*verifier.Config, error) {
	config := verifier.DefaultConfig()

	if v.ConfigPath != "" {
		var err error

		if config, err = verifier.ReadConfigFile(v.ConfigPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()

	if flags.Changed(command.BackendFlag) || v.ConfigPath == "" {
		config.Backend = v.Backend
	}

	if flags.Changed(command.ForkFlag) || v.ConfigPath == "" {
		config.Fork = v.Fork
	}

	if flags.Changed(command.GasLimitFlag) || v.ConfigPath == "" {
		config.GasLimit = v.GasLimit
	}

	if flags.Changed(command.WorkersFlag) || v.ConfigPath == "" {
		config.Workers = v.Workers
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
