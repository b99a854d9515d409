package attestor

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

// Server exposes an Attestor over the AttestorService gRPC surface.
type Server struct {
	attestor *Attestor
	logger   log.Logger
}

var _ attestationv1.AttestorServiceServer = (*Server)(nil)

func NewServer(attestor *Attestor, logger log.Logger) *Server {
	return &Server{
		attestor: attestor,
		logger:   logger,
	}
}

func (s *Server) StateAttestation(ctx context.Context, req *attestationv1.StateAttestationRequest) (*attestationv1.StateAttestationResponse, error) {
	stateAttestation, sig, err := s.attestor.StateAttestation(ctx, req.Height, req.Exact)
	if err != nil {
		return nil, grpcError(err)
	}

	data, err := stateAttestation.ABIEncode()
	if err != nil {
		return nil, grpcError(err)
	}

	return &attestationv1.StateAttestationResponse{
		Attestation: data,
		Signature:   sig,
	}, nil
}

func (s *Server) PacketAttestations(ctx context.Context, req *attestationv1.PacketAttestationsRequest) (*attestationv1.PacketAttestationsResponse, error) {
	packetAttestation, sig, failed, err := s.attestor.PacketAttestations(ctx, req.Height, req.PacketIds)
	if err != nil {
		return nil, grpcError(err)
	}

	data, err := packetAttestation.ABIEncode()
	if err != nil {
		return nil, grpcError(err)
	}

	return &attestationv1.PacketAttestationsResponse{
		Attestation: data,
		Signature:   sig,
		FailedIds:   failed,
	}, nil
}

// Serve blocks serving the attestor gRPC service on listenAddr until ctx is
// cancelled.
func (s *Server) Serve(ctx context.Context, listenAddr string) error {
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "failed to listen on %s: %v", listenAddr, err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(log.UnaryServerInterceptor(s.logger)))
	attestationv1.RegisterAttestorServiceServer(grpcServer, s)

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	s.logger.Info("attestor listening", "address", listenAddr, "signer", s.attestor.Address().Hex())
	return grpcServer.Serve(lis)
}

// grpcError maps the attestor error taxonomy onto gRPC status codes so the
// aggregator can tell "height not there yet" from a broken adapter.
func grpcError(err error) error {
	switch {
	case errorsmod.IsOf(err, ErrHeightNotAvailable):
		return status.Error(codes.NotFound, err.Error())
	case errorsmod.IsOf(err, ErrAdapter):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
