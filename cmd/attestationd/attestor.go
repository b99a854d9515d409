package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/eureka-attestation/attestor"
)

func newAttestorCmd(loadViper func() (*viper.Viper, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attestor",
		Short: "Run and inspect a chain attestor",
	}

	cmd.AddCommand(newAttestorStartCmd(loadViper))

	return cmd
}

func newAttestorStartCmd(loadViper func() (*viper.Viper, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the attestor gRPC service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := loadViper()
			if err != nil {
				return err
			}

			sub := v.Sub("attestor")
			if sub == nil {
				return errorsmod.Wrap(attestor.ErrInvalidConfig, "config has no attestor section")
			}

			cfg, err := attestor.LoadConfig(sub)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}

			key, err := cfg.ParseSigningKey()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			adapter, err := attestor.NewChainAdapter(ctx, cfg)
			if err != nil {
				return err
			}

			att := attestor.New(key, adapter, cfg.MaxQueryConcurrency, logger)
			server := attestor.NewServer(att, logger)

			return server.Serve(ctx, cfg.ListenAddress)
		},
	}
}
