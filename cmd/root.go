package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/khanhnv2901/ats-cli/internal/shared/constants"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:           "ats",
	Short:         "Audit App Transport Security exceptions inside iOS .ipa packages",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".ats-cli")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()
		applyConfigDefaults(cmd)

		// init logger; zap writes to stderr, keeping stdout clean for --json
		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.Sugar()

		return nil
	},
}

// Execute runs the CLI and terminates the process with the audit verdict:
// 0 when no effective HTTP permission was found, 2 when at least one was,
// 3 when a usage or archive error prevented evaluation entirely.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, errInsecureFound) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCodeFor(err))
}

func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return constants.ExitOK
	case errors.Is(err, errInsecureFound):
		return constants.ExitInsecure
	default:
		return constants.ExitUsage
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ats-cli.yaml)")

	// add subcommands
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(versionCmd)
}
