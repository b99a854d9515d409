package aggregator

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	errorsmod "cosmossdk.io/errors"

	attestationv1 "github.com/cosmos/eureka-attestation/api/attestation/v1"
)

// AttestorClient is the aggregator's view of one attestor endpoint. The gRPC
// implementation is the production one; tests substitute in-process fakes.
type AttestorClient interface {
	// Endpoint identifies the attestor for logging.
	Endpoint() string

	StateAttestation(ctx context.Context, height uint64, exact bool) (*attestationv1.StateAttestationResponse, error)

	PacketAttestations(ctx context.Context, minHeight uint64, packetIDs [][]byte) (*attestationv1.PacketAttestationsResponse, error)

	Close() error
}

type grpcAttestorClient struct {
	endpoint string
	conn     *grpc.ClientConn
	client   attestationv1.AttestorServiceClient
}

var _ AttestorClient = (*grpcAttestorClient)(nil)

// DialAttestor connects to an attestor gRPC endpoint. The connection is lazy;
// failures surface on the first query.
func DialAttestor(endpoint string) (AttestorClient, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "failed to dial attestor %s: %v", endpoint, err)
	}

	return &grpcAttestorClient{
		endpoint: endpoint,
		conn:     conn,
		client:   attestationv1.NewAttestorServiceClient(conn),
	}, nil
}

func (c *grpcAttestorClient) Endpoint() string {
	return c.endpoint
}

func (c *grpcAttestorClient) StateAttestation(ctx context.Context, height uint64, exact bool) (*attestationv1.StateAttestationResponse, error) {
	return c.client.StateAttestation(ctx, &attestationv1.StateAttestationRequest{
		Height: height,
		Exact:  exact,
	})
}

func (c *grpcAttestorClient) PacketAttestations(ctx context.Context, minHeight uint64, packetIDs [][]byte) (*attestationv1.PacketAttestationsResponse, error) {
	return c.client.PacketAttestations(ctx, &attestationv1.PacketAttestationsRequest{
		Height:    minHeight,
		PacketIds: packetIDs,
	})
}

func (c *grpcAttestorClient) Close() error {
	return c.conn.Close()
}
