package verify

import (
	"github.com/0xPolygon/rsa-verifier/command"
	"github.com/0xPolygon/rsa-verifier/command/helper"
	"github.com/0xPolygon/rsa-verifier/verifier"
	"github.com/spf13/cobra"
)

var (
	params = &verifyParams{}
)

// GetCommand returns the verify command
func GetCommand() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:     "verify",
		Short:   "Verifies an RSA PKCS#1 v1.5 signature over a SHA-256 digest",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(verifyCmd)

	return verifyCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.signature,
		signatureFlag,
		"",
		"the hex encoded signature",
	)

	cmd.Flags().StringVar(
		&params.digest,
		digestFlag,
		"",
		"the hex encoded 32 byte SHA-256 digest of the signed message",
	)

	cmd.Flags().StringVar(
		&params.message,
		messageFlag,
		"",
		"the signed message, hashed with SHA-256 before verification",
	)

	cmd.Flags().StringVar(
		&params.exponent,
		exponentFlag,
		"",
		"the hex encoded public exponent",
	)

	cmd.Flags().StringVar(
		&params.modulus,
		modulusFlag,
		"",
		"the hex encoded public modulus",
	)

	cmd.Flags().StringVar(
		&params.pubKey,
		pubKeyFlag,
		"",
		"the path to a PEM encoded RSA public key or certificate",
	)

	params.verifierFlags.Register(cmd)

	cmd.MarkFlagsMutuallyExclusive(digestFlag, messageFlag)
	cmd.MarkFlagsMutuallyExclusive(pubKeyFlag, exponentFlag)
	cmd.MarkFlagsMutuallyExclusive(pubKeyFlag, modulusFlag)
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return params.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	config, err := params.verifierFlags.Config(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	if err := params.initRequest(); err != nil {
		outputter.SetError(err)

		return
	}

	service, err := verifier.NewService(config, helper.NewLogger(cmd, config.LogLevel))
	if err != nil {
		outputter.SetError(err)

		return
	}

	req := params.request
	valid, cost := service.VerifyWithCost(req.Signature, req.Digest, req.Exponent, req.Modulus)

	outputter.SetCommandResult(&VerifyResult{
		Backend: service.Backend(),
		Fork:    config.Fork,
		Digest:  req.Digest,
		Valid:   valid,
		Cost:    cost,
	})
}
