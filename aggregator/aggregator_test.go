package aggregator_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	testifysuite "github.com/stretchr/testify/suite"

	"github.com/cosmos/eureka-attestation/aggregator"
	attestationv1 "github.com/cosmos/eureka-attestation/api/attestation/v1"
	"github.com/cosmos/eureka-attestation/attestation"
	"github.com/cosmos/eureka-attestation/internal/log"
)

// fakeAttestor is an in-process attestor endpoint with its own signing key and
// canned chain view. Queries arrive concurrently from the fan-out, so the call
// counters are guarded.
type fakeAttestor struct {
	endpoint     string
	key          *ecdsa.PrivateKey
	latestHeight uint64
	timestamps   map[uint64]uint64
	packets      []attestation.PacketCompact

	failAll bool

	mu          sync.Mutex
	stateCalls  int
	packetCalls int
}

var _ aggregator.AttestorClient = (*fakeAttestor)(nil)

func (f *fakeAttestor) Endpoint() string {
	return f.endpoint
}

func (f *fakeAttestor) StateAttestation(ctx context.Context, height uint64, exact bool) (*attestationv1.StateAttestationResponse, error) {
	f.mu.Lock()
	f.stateCalls++
	f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("connection refused")
	}

	attestedHeight := f.latestHeight
	if exact {
		attestedHeight = height
	}
	if f.latestHeight < height {
		return nil, errors.New("height not available")
	}
	ts, found := f.timestamps[attestedHeight]
	if !found {
		return nil, errors.New("height not available")
	}

	payload := &attestation.StateAttestation{Height: attestedHeight, Timestamp: ts}
	data, sig, err := f.sign(payload)
	if err != nil {
		return nil, err
	}
	return &attestationv1.StateAttestationResponse{Attestation: data, Signature: sig}, nil
}

func (f *fakeAttestor) PacketAttestations(ctx context.Context, minHeight uint64, packetIDs [][]byte) (*attestationv1.PacketAttestationsResponse, error) {
	f.mu.Lock()
	f.packetCalls++
	f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("connection refused")
	}
	if f.latestHeight < minHeight {
		return nil, errors.New("height not available")
	}

	payload := &attestation.PacketAttestation{Height: f.latestHeight, Packets: f.packets}
	data, sig, err := f.sign(payload)
	if err != nil {
		return nil, err
	}
	return &attestationv1.PacketAttestationsResponse{Attestation: data, Signature: sig}, nil
}

func (f *fakeAttestor) sign(payload attestation.Signable) ([]byte, []byte, error) {
	data, err := payload.ABIEncode()
	if err != nil {
		return nil, nil, err
	}
	sig, err := attestation.Sign(f.key, data)
	if err != nil {
		return nil, nil, err
	}
	return data, sig, nil
}

func (f *fakeAttestor) Close() error {
	return nil
}

type AggregatorTestSuite struct {
	testifysuite.Suite

	attestors []*fakeAttestor
}

func TestAggregatorTestSuite(t *testing.T) {
	testifysuite.Run(t, new(AggregatorTestSuite))
}

func (suite *AggregatorTestSuite) SetupTest() {
	endpoints := []string{"attestor-a:9090", "attestor-b:9090", "attestor-c:9090"}
	suite.attestors = make([]*fakeAttestor, len(endpoints))
	for i, endpoint := range endpoints {
		key, err := crypto.GenerateKey()
		suite.Require().NoError(err)
		suite.attestors[i] = &fakeAttestor{
			endpoint:     endpoint,
			key:          key,
			latestHeight: 100,
			timestamps:   map[uint64]uint64{99: 1700000090, 100: 1700000100},
		}
	}
}

func (suite *AggregatorTestSuite) newAggregator(quorum uint32) *aggregator.Aggregator {
	clients := make([]aggregator.AttestorClient, len(suite.attestors))
	for i, f := range suite.attestors {
		clients[i] = f
	}

	agg, err := aggregator.New(clients, quorum, time.Second, 16, 16, log.NewNopLogger())
	suite.Require().NoError(err)
	return agg
}

// expectedSignatures returns the signatures the given attestors produce over
// payload, ordered by signer address the way assembled proofs are.
func (suite *AggregatorTestSuite) expectedSignatures(payload attestation.Signable, attestors ...*fakeAttestor) [][]byte {
	data, err := payload.ABIEncode()
	suite.Require().NoError(err)

	sorted := make([]*fakeAttestor, len(attestors))
	copy(sorted, attestors)
	sort.Slice(sorted, func(i, j int) bool {
		return crypto.PubkeyToAddress(sorted[i].key.PublicKey).Hex() < crypto.PubkeyToAddress(sorted[j].key.PublicKey).Hex()
	})

	sigs := make([][]byte, len(sorted))
	for i, f := range sorted {
		sig, err := attestation.Sign(f.key, data)
		suite.Require().NoError(err)
		sigs[i] = sig
	}
	return sigs
}

func (suite *AggregatorTestSuite) TestAggregateStateAttestationLaggingAttestor() {
	// Two attestors at height 100, one lagging at 99. With quorum 2 the
	// result is height 100 carrying exactly the two agreeing signatures.
	suite.attestors[2].latestHeight = 99

	agg := suite.newAggregator(2)
	proof, height, err := agg.AggregateStateAttestation(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(100), height)

	expectedPayload := &attestation.StateAttestation{Height: 100, Timestamp: 1700000100}
	expectedData, err := expectedPayload.ABIEncode()
	suite.Require().NoError(err)
	suite.Require().Equal(expectedData, proof.AttestationData)
	suite.Require().Equal(suite.expectedSignatures(expectedPayload, suite.attestors[0], suite.attestors[1]), proof.Signatures)
}

func (suite *AggregatorTestSuite) TestAggregateStateAttestationInsufficientResponses() {
	suite.attestors[0].failAll = true
	suite.attestors[1].failAll = true

	agg := suite.newAggregator(2)
	_, _, err := agg.AggregateStateAttestation(context.Background(), 10)
	suite.Require().ErrorIs(err, aggregator.ErrInsufficientAttestors)
}

func (suite *AggregatorTestSuite) TestAggregateStateAttestationQuorumNotMet() {
	// All attestors respond but disagree on the timestamp, so no payload
	// group reaches the quorum.
	suite.attestors[0].timestamps[100] = 1700000100
	suite.attestors[1].timestamps[100] = 1700000101
	suite.attestors[2].timestamps[100] = 1700000102

	agg := suite.newAggregator(2)
	_, _, err := agg.AggregateStateAttestation(context.Background(), 10)
	suite.Require().ErrorIs(err, aggregator.ErrQuorumNotMet)
}

func (suite *AggregatorTestSuite) TestAggregateStateAttestationMinHeightFiltersStale() {
	// Responses below the requested minimum never count toward quorum.
	for _, f := range suite.attestors {
		f.latestHeight = 99
	}

	agg := suite.newAggregator(2)
	_, _, err := agg.AggregateStateAttestation(context.Background(), 100)
	suite.Require().Error(err)
}

func (suite *AggregatorTestSuite) TestAggregateStateAttestationCached() {
	agg := suite.newAggregator(2)

	_, height, err := agg.AggregateStateAttestation(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(100), height)

	calls := suite.attestors[0].stateCalls + suite.attestors[1].stateCalls + suite.attestors[2].stateCalls

	// The identical request is served from the cache without new queries.
	_, height, err = agg.AggregateStateAttestation(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(100), height)
	suite.Require().Equal(calls, suite.attestors[0].stateCalls+suite.attestors[1].stateCalls+suite.attestors[2].stateCalls)

	// A different minimum height is a different cache entry.
	_, _, err = agg.AggregateStateAttestation(context.Background(), 20)
	suite.Require().NoError(err)
	suite.Require().Greater(suite.attestors[0].stateCalls+suite.attestors[1].stateCalls+suite.attestors[2].stateCalls, calls)
}

func (suite *AggregatorTestSuite) TestAggregatePacketAttestations() {
	packets := []attestation.PacketCompact{
		{Path: hashOf("path-1"), Commitment: hashOf("commitment-1")},
		{Path: hashOf("path-2"), Commitment: make([]byte, 32)},
	}
	for _, f := range suite.attestors {
		f.packets = packets
	}

	agg := suite.newAggregator(3)
	proof, height, err := agg.AggregatePacketAttestations(context.Background(), 10, [][]byte{hashOf("path-1"), hashOf("path-2")})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(100), height)
	suite.Require().Len(proof.Signatures, 3)

	decoded, err := attestation.ABIDecodePacketAttestation(proof.AttestationData)
	suite.Require().NoError(err)
	suite.Require().Equal(packets, decoded.Packets)
}

func (suite *AggregatorTestSuite) TestRelayAttestationsHeightCoupling() {
	packets := []attestation.PacketCompact{{Path: hashOf("path-1"), Commitment: hashOf("commitment-1")}}
	for _, f := range suite.attestors {
		f.packets = packets
	}
	// The lagging attestor cannot serve height 100 at all.
	suite.attestors[2].latestHeight = 99

	agg := suite.newAggregator(2)
	stateProof, packetProof, height, err := agg.RelayAttestations(context.Background(), 10, [][]byte{hashOf("path-1")})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(100), height)

	// Both proofs decode to the same height, so the packet proof can be
	// verified against the consensus state the state proof installs.
	stateAttestation, err := attestation.ABIDecodeStateAttestation(stateProof.AttestationData)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(100), stateAttestation.Height)

	packetAttestation, err := attestation.ABIDecodePacketAttestation(packetProof.AttestationData)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(100), packetAttestation.Height)
}

func (suite *AggregatorTestSuite) TestNewAggregatorValidation() {
	clients := []aggregator.AttestorClient{suite.attestors[0]}

	_, err := aggregator.New(clients, 0, time.Second, 16, 16, log.NewNopLogger())
	suite.Require().ErrorIs(err, aggregator.ErrInvalidConfig)

	_, err = aggregator.New(clients, 2, time.Second, 16, 16, log.NewNopLogger())
	suite.Require().ErrorIs(err, aggregator.ErrInvalidConfig)
}

func (suite *AggregatorTestSuite) TestDiscardsUnknownPayloads() {
	// One attestor serves undecodable bytes; the other two still reach quorum.
	broken := &brokenAttestor{fakeAttestor: suite.attestors[2]}

	clients := []aggregator.AttestorClient{suite.attestors[0], suite.attestors[1], broken}
	agg, err := aggregator.New(clients, 2, time.Second, 16, 16, log.NewNopLogger())
	suite.Require().NoError(err)

	_, height, err := agg.AggregateStateAttestation(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(100), height)
}

// brokenAttestor responds with bytes that do not decode as attestations.
type brokenAttestor struct {
	*fakeAttestor
}

func (b *brokenAttestor) StateAttestation(ctx context.Context, height uint64, exact bool) (*attestationv1.StateAttestationResponse, error) {
	return &attestationv1.StateAttestationResponse{
		Attestation: []byte("garbage"),
		Signature:   make([]byte, attestation.SignatureLength),
	}, nil
}

func hashOf(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}

func TestConfigQueryTimeout(t *testing.T) {
	cfg := aggregator.DefaultConfig()
	cfg.AttestorEndpoints = []string{"a:9090", "b:9090"}
	cfg.QuorumThreshold = 2

	require.NoError(t, cfg.Validate())
	require.Equal(t, aggregator.DefaultQueryTimeout, cfg.QueryTimeout())

	cfg.QuorumThreshold = 3
	require.ErrorIs(t, cfg.Validate(), aggregator.ErrInvalidConfig)
}
