package helper

import (
	"github.com/0xPolygon/rsa-verifier/command"
	"github.com/hashicorp/go-hclog"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
)

// RegisterJSONOutputFlag registers the --json output setting for all child commands
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		command.JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
}

// RegisterLogFlags registers the logger settings for all child commands
func RegisterLogFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(
		command.LogLevelFlag,
		"INFO",
		"the log level for console output",
	)

	cmd.PersistentFlags().Bool(
		command.JSONLogFlag,
		false,
		"write logs in json format",
	)
}

// NewLogger builds the command logger. The --log-level flag wins over
// the level from the configuration when it was set explicitly.
func NewLogger(cmd *cobra.Command, configLevel string) hclog.Logger {
	level := configLevel

	if flag := cmd.Flag(command.LogLevelFlag); flag != nil && (flag.Changed || level == "") {
		level = flag.Value.String()
	}

	jsonFormat := false
	if flag := cmd.Flag(command.JSONLogFlag); flag != nil {
		jsonFormat = flag.Value.String() == "true"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "rsa-verifier",
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     cmd.ErrOrStderr(),
	})
}

// OUTPUT FORMATTING //

// FormatList formats a list, using a specific blank value replacement
func FormatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"

	return columnize.Format(in, columnConf)
}

// FormatKV formats key value pairs:
//
// Key = Value
//
// Key = <none>
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}
