package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	errorsmod "cosmossdk.io/errors"

	attestationv1 "github.com/cosmos/eureka-attestation/api/attestation/v1"
	"github.com/cosmos/eureka-attestation/aggregator"
)

func newAggregatorCmd(loadViper func() (*viper.Viper, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregator",
		Short: "Run and query the attestation aggregator",
	}

	cmd.AddCommand(
		newAggregatorStartCmd(loadViper),
		newAggregatorQueryCmd(),
	)

	return cmd
}

func newAggregatorStartCmd(loadViper func() (*viper.Viper, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the aggregator gRPC service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := loadViper()
			if err != nil {
				return err
			}

			sub := v.Sub("aggregator")
			if sub == nil {
				return errorsmod.Wrap(aggregator.ErrInvalidConfig, "config has no aggregator section")
			}

			cfg, err := aggregator.LoadConfig(sub)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}

			clients := make([]aggregator.AttestorClient, 0, len(cfg.AttestorEndpoints))
			for _, endpoint := range cfg.AttestorEndpoints {
				client, err := aggregator.DialAttestor(endpoint)
				if err != nil {
					return err
				}
				clients = append(clients, client)
			}

			agg, err := aggregator.New(clients, cfg.QuorumThreshold, cfg.QueryTimeout(), cfg.StateCacheMaxEntries, cfg.PacketCacheMaxEntries, logger)
			if err != nil {
				return err
			}
			defer agg.Close()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			server := aggregator.NewServer(agg, logger)
			return server.Serve(ctx, cfg.ListenAddress)
		},
	}
}

func newAggregatorQueryCmd() *cobra.Command {
	var (
		address string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query a running aggregator",
	}

	cmd.PersistentFlags().StringVar(&address, "address", "localhost:9190", "aggregator gRPC address")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "query timeout")

	dial := func(ctx context.Context) (attestationv1.AggregatorServiceClient, func() error, error) {
		conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, err
		}
		return attestationv1.NewAggregatorServiceClient(conn), conn.Close, nil
	}

	stateCmd := &cobra.Command{
		Use:   "state [min-height]",
		Short: "Aggregate a state attestation at or above min-height",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minHeight, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.AggregateStateAttestation(ctx, &attestationv1.AggregateStateAttestationRequest{MinHeight: minHeight})
			if err != nil {
				return err
			}

			printAggregateResponse(cmd, resp)
			return nil
		},
	}

	packetsCmd := &cobra.Command{
		Use:   "packets [min-height] [packet-id-hex...]",
		Short: "Aggregate a packet attestation covering the given packet IDs",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minHeight, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}
			packetIDs, err := parsePacketIDs(args[1:])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.AggregatePacketAttestations(ctx, &attestationv1.AggregatePacketAttestationsRequest{
				MinHeight: minHeight,
				PacketIds: packetIDs,
			})
			if err != nil {
				return err
			}

			printAggregateResponse(cmd, resp)
			return nil
		},
	}

	relayCmd := &cobra.Command{
		Use:   "relay [min-height] [packet-id-hex...]",
		Short: "Aggregate matching state and packet attestations for relaying",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minHeight, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}
			packetIDs, err := parsePacketIDs(args[1:])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.RelayAttestations(ctx, &attestationv1.RelayAttestationsRequest{
				MinHeight: minHeight,
				PacketIds: packetIDs,
			})
			if err != nil {
				return err
			}

			cmd.Println("state:")
			printAggregateResponse(cmd, resp.State)
			cmd.Println("packets:")
			printAggregateResponse(cmd, resp.Packets)
			return nil
		},
	}

	cmd.AddCommand(stateCmd, packetsCmd, relayCmd)

	return cmd
}

func parsePacketIDs(args []string) ([][]byte, error) {
	packetIDs := make([][]byte, len(args))
	for i, arg := range args {
		id, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid packet id %q: %w", arg, err)
		}
		packetIDs[i] = id
	}
	return packetIDs, nil
}

func printAggregateResponse(cmd *cobra.Command, resp *attestationv1.AggregateAttestationResponse) {
	cmd.Printf("height: %d\n", resp.Height)
	cmd.Printf("attestation: 0x%x\n", resp.AttestationData)
	cmd.Printf("signatures (%d):\n", len(resp.Signatures))
	for _, sig := range resp.Signatures {
		cmd.Printf("  0x%x\n", sig)
	}
}
