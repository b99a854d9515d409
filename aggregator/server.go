package aggregator

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"

	attestationv1 "github.com/cosmos/eureka-attestation/api/attestation/v1"
	"github.com/cosmos/eureka-attestation/internal/log"
)

// Server exposes an Aggregator over the AggregatorService gRPC surface.
type Server struct {
	aggregator *Aggregator
	logger     log.Logger
}

var _ attestationv1.AggregatorServiceServer = (*Server)(nil)

func NewServer(aggregator *Aggregator, logger log.Logger) *Server {
	return &Server{
		aggregator: aggregator,
		logger:     logger,
	}
}

func (s *Server) AggregateStateAttestation(ctx context.Context, req *attestationv1.AggregateStateAttestationRequest) (*attestationv1.AggregateAttestationResponse, error) {
	proof, height, err := s.aggregator.AggregateStateAttestation(ctx, req.MinHeight)
	if err != nil {
		return nil, grpcError(err)
	}

	return &attestationv1.AggregateAttestationResponse{
		Height:          height,
		AttestationData: proof.AttestationData,
		Signatures:      proof.Signatures,
	}, nil
}

func (s *Server) AggregatePacketAttestations(ctx context.Context, req *attestationv1.AggregatePacketAttestationsRequest) (*attestationv1.AggregateAttestationResponse, error) {
	proof, height, err := s.aggregator.AggregatePacketAttestations(ctx, req.MinHeight, req.PacketIds)
	if err != nil {
		return nil, grpcError(err)
	}

	return &attestationv1.AggregateAttestationResponse{
		Height:          height,
		AttestationData: proof.AttestationData,
		Signatures:      proof.Signatures,
	}, nil
}

func (s *Server) RelayAttestations(ctx context.Context, req *attestationv1.RelayAttestationsRequest) (*attestationv1.RelayAttestationsResponse, error) {
	stateProof, packetProof, height, err := s.aggregator.RelayAttestations(ctx, req.MinHeight, req.PacketIds)
	if err != nil {
		return nil, grpcError(err)
	}

	return &attestationv1.RelayAttestationsResponse{
		State: &attestationv1.AggregateAttestationResponse{
			Height:          height,
			AttestationData: stateProof.AttestationData,
			Signatures:      stateProof.Signatures,
		},
		Packets: &attestationv1.AggregateAttestationResponse{
			Height:          height,
			AttestationData: packetProof.AttestationData,
			Signatures:      packetProof.Signatures,
		},
	}, nil
}

// Serve blocks serving the aggregator gRPC service on listenAddr until ctx is
// cancelled.
func (s *Server) Serve(ctx context.Context, listenAddr string) error {
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "failed to listen on %s: %v", listenAddr, err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(log.UnaryServerInterceptor(s.logger)))
	attestationv1.RegisterAggregatorServiceServer(grpcServer, s)

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	s.logger.Info("aggregator listening", "address", listenAddr, "attestors", len(s.aggregator.clients), "quorum", s.aggregator.quorum)
	return grpcServer.Serve(lis)
}

// grpcError maps aggregation failures onto gRPC status codes. Quorum and
// reachability failures are Unavailable: the caller should retry a fresh
// round later rather than treat the proof request as invalid.
func grpcError(err error) error {
	switch {
	case errorsmod.IsOf(err, ErrInsufficientAttestors, ErrQuorumNotMet):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
