package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmos/eureka-attestation/internal/log"
)

// NewRootCmd builds the attestationd command tree.
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "attestationd",
		Short: "Attestation services for IBC Eureka attested light clients",
		Long: `attestationd runs the off-chain half of the attested light client stack:
per-chain attestors that sign state and packet claims, and the aggregator
that collects them into quorum-satisfying proofs for relayers.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to the config file")

	loadViper := func() (*viper.Viper, error) {
		v := viper.New()
		v.SetEnvPrefix("ATTESTATION")
		v.AutomaticEnv()
		if configFile != "" {
			v.SetConfigFile(configFile)
		} else {
			v.SetConfigName("config")
			v.AddConfigPath(".")
			v.AddConfigPath("$HOME/.attestationd")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		return v, nil
	}

	rootCmd.AddCommand(
		newAttestorCmd(loadViper),
		newAggregatorCmd(loadViper),
	)

	return rootCmd
}

func newLogger(format, level string) (log.Logger, error) {
	if format == "" {
		format = log.LogFormatPlain
	}
	if level == "" {
		level = "info"
	}
	return log.NewLogger(format, level, os.Stderr)
}
