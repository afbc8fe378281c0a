package cmd

import (
	"fmt"
	"strings"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/projecteru2/vmreport/config"
)

var (
	cfgFile string
	conf    *config.Config
)

var rootCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vmreport",
		Short:        "vmreport - vSphere VM disk and VMware Tools reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file path")
	pf.StringP("host", "s", "", "remote host to connect to")
	pf.IntP("port", "o", config.DefaultPort, "port to connect on")
	pf.StringP("user", "u", "", "user name to use when connecting to host")
	pf.StringP("password", "p", "", "password to use when connecting to host (prompted if omitted)")
	pf.BoolP("disable_ssl_verification", "S", false, "disable ssl host certificate verification")
	pf.String("ca-file", "", "PEM bundle used to verify the host certificate")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("host", pf.Lookup("host"))
	_ = viper.BindPFlag("port", pf.Lookup("port"))
	_ = viper.BindPFlag("user", pf.Lookup("user"))
	_ = viper.BindPFlag("password", pf.Lookup("password"))
	_ = viper.BindPFlag("disable_ssl_verification", pf.Lookup("disable_ssl_verification"))
	_ = viper.BindPFlag("ca_file", pf.Lookup("ca-file"))
	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))

	viper.SetEnvPrefix("VMREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	cmd.AddCommand(
		disksCmd,
		toolsCmd,
		inspectCmd,
		versionCmd,
	)

	return cmd
}()

func initConfig(cmd *cobra.Command) error {
	conf = config.DefaultConfig()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	if err := viper.Unmarshal(conf); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	return log.SetupLog(commandContext(cmd), conf.Log, "")
}

// Execute is the main entry point called from main.go.
// Errors are returned unprinted; the caller logs them.
func Execute() error {
	ctx, cancel := newCommandContext()
	defer cancel()
	// replaced by initConfig; covers failures before the config is loaded.
	if err := log.SetupLog(ctx, config.DefaultConfig().Log, ""); err != nil {
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}
