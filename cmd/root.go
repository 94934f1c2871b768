package cmd

import (
	"errors"
	"fmt"
	"strings"

	tomlconfig "github.com/bnema/check-mullvad-account/internal/adapters/config/toml"
	"github.com/bnema/check-mullvad-account/internal/adapters/mullvad"
	"github.com/bnema/check-mullvad-account/internal/adapters/render/plugin"
	"github.com/bnema/check-mullvad-account/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix           = "CHECK_MULLVAD"
	defaultWarningDays  = 14
	defaultCriticalDays = 7
)

// exitStatus carries a non-zero plugin exit code out of cobra.
type exitStatus int

func (e exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// Execute runs the check and returns the process exit code.
func Execute() int {
	return execute(newRootCmd())
}

func execute(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return domain.SeverityOK.ExitCode()
	}

	var status exitStatus
	if errors.As(err, &status) {
		return int(status)
	}

	// The check never got to classify anything; report it the way the
	// monitoring agent expects.
	code, _ := plugin.Write(root.OutOrStdout(), domain.NewReport(domain.SeverityUnknown, "%v", err))
	return code
}

func newRootCmd() *cobra.Command {
	settings := newSettings()
	var opts checkOptions

	rootCmd := &cobra.Command{
		Use:           "check_mullvad_account",
		Short:         "Mullvad account expiration date checker",
		Long:          "check_mullvad_account queries the Mullvad account API and reports the remaining validity of a prepaid account as a Nagios/Icinga compatible plugin result (exit 0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd, settings, opts)
			if err != nil {
				return err
			}

			report := app.service.Check(cmd.Context(), app.check)
			code, err := plugin.Write(cmd.OutOrStdout(), report)
			if err != nil || code != domain.SeverityOK.ExitCode() {
				return exitStatus(code)
			}

			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.Int64VarP(&opts.account, "account", "a", 0, "Mullvad account number to check")
	flags.IntP("warning", "w", defaultWarningDays, "Warning threshold in days")
	flags.IntP("critical", "c", defaultCriticalDays, "Critical threshold in days")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log API traffic at debug level on stderr")
	flags.BoolP("perfdata", "p", false, "Append performance data (days_till_exp)")
	flags.String("api-url", "", "Account API base URL (default depends on --api-shape)")
	flags.String("api-shape", string(mullvad.ShapeLegacy), "Account API payload shape (legacy|current)")
	flags.String("config", "", "TOML config file (default $XDG_CONFIG_HOME/check_mullvad_account/config.toml)")
	_ = rootCmd.MarkFlagRequired("account")

	bindFlags(settings, flags, map[string]string{
		tomlconfig.KeyThresholdsWarning:  "warning",
		tomlconfig.KeyThresholdsCritical: "critical",
		tomlconfig.KeyOutputPerfData:     "perfdata",
		tomlconfig.KeyAPIURL:             "api-url",
		tomlconfig.KeyAPIShape:           "api-shape",
		tomlconfig.KeyConfigPath:         "config",
	})

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

type checkOptions struct {
	account int64
	verbose bool
}

func newSettings() *viper.Viper {
	settings := viper.New()
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	settings.AutomaticEnv()

	return settings
}

func bindFlags(settings *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = settings.BindPFlag(key, flags.Lookup(name))
	}
}
