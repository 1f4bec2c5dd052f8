package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultColorMode = "always"

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Audit AuditRuntimeConfig
}

// AuditRuntimeConfig consolidates flag-driven settings for the audit command.
type AuditRuntimeConfig struct {
	ColorMode  string
	JSONOutput bool
	Domain     string
	OutputFile string
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Audit: AuditRuntimeConfig{
			ColorMode: defaultColorMode,
		},
	}
}

// applyConfigDefaults merges config file defaults into the runtime config when
// the user did not explicitly override the corresponding flag.
func applyConfigDefaults(_ *cobra.Command) {
	if viper.IsSet("defaults.color") {
		applyStringDefault(auditCmd.Flags(), "color", viper.GetString("defaults.color"), func(v string) {
			cliConfig.Audit.ColorMode = v
		})
	}

	if viper.IsSet("defaults.json") {
		applyBoolDefault(auditCmd.Flags(), "json", viper.GetBool("defaults.json"), func(v bool) {
			cliConfig.Audit.JSONOutput = v
		})
	}

	if viper.IsSet("defaults.output") {
		applyStringDefault(auditCmd.Flags(), "output", viper.GetString("defaults.output"), func(v string) {
			cliConfig.Audit.OutputFile = v
		})
	}
}

func applyStringDefault(flags *pflag.FlagSet, name, value string, setter func(string)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
