package lightclient_test

import (
	"crypto/sha256"

	"github.com/cosmos/eureka-attestation/attestation"
	"github.com/cosmos/eureka-attestation/lightclient"
)

func (suite *LightClientTestSuite) TestVerifyMembership() {
	suite.trustHeight(100, 1700000000)

	payload := &attestation.PacketAttestation{
		Height: 100,
		Packets: []attestation.PacketCompact{
			{Path: commitmentPath(1), Commitment: packetCommitment(1)},
			{Path: commitmentPath(2), Commitment: packetCommitment(2)},
		},
	}
	proofBz := suite.encodedProof(payload, 0, 1, 2)

	timestamp, err := lightclient.VerifyMembership(suite.clientState, suite.store, proofBz, 100, commitmentPath(2), packetCommitment(2))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1700000000), timestamp)
}

func (suite *LightClientTestSuite) TestVerifyMembershipFailures() {
	suite.trustHeight(100, 1700000000)

	payload := &attestation.PacketAttestation{
		Height: 100,
		Packets: []attestation.PacketCompact{
			{Path: commitmentPath(1), Commitment: packetCommitment(1)},
		},
	}
	proofBz := suite.encodedProof(payload, 0, 1, 2)

	testCases := []struct {
		name   string
		height uint64
		path   []byte
		value  []byte
		expErr error
	}{
		{
			"path not in attested set",
			100, commitmentPath(9), packetCommitment(1),
			lightclient.ErrNotMember,
		},
		{
			"wrong commitment for attested path",
			100, commitmentPath(1), packetCommitment(9),
			lightclient.ErrNotMember,
		},
		{
			"empty path",
			100, nil, packetCommitment(1),
			lightclient.ErrInvalidPath,
		},
		{
			"empty value",
			100, commitmentPath(1), nil,
			lightclient.ErrEmptyValue,
		},
		{
			"no consensus state at height",
			99, commitmentPath(1), packetCommitment(1),
			lightclient.ErrConsensusStateNotFound,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := lightclient.VerifyMembership(suite.clientState, suite.store, proofBz, tc.height, tc.path, tc.value)
			suite.Require().ErrorIs(err, tc.expErr)
		})
	}
}

func (suite *LightClientTestSuite) TestVerifyMembershipHeightMismatch() {
	suite.trustHeight(100, 1700000000)
	suite.trustHeight(101, 1700000010)

	// Attestation at 101 cannot prove anything about height 100, even though
	// both heights are trusted.
	payload := &attestation.PacketAttestation{
		Height: 101,
		Packets: []attestation.PacketCompact{
			{Path: commitmentPath(1), Commitment: packetCommitment(1)},
		},
	}
	proofBz := suite.encodedProof(payload, 0, 1, 2)

	_, err := lightclient.VerifyMembership(suite.clientState, suite.store, proofBz, 100, commitmentPath(1), packetCommitment(1))
	suite.Require().ErrorIs(err, lightclient.ErrHeightMismatch)
}

func (suite *LightClientTestSuite) TestVerifyMembershipEmptyPacketSet() {
	suite.trustHeight(100, 1700000000)

	proofBz := suite.encodedProof(&attestation.PacketAttestation{Height: 100}, 0, 1, 2)
	_, err := lightclient.VerifyMembership(suite.clientState, suite.store, proofBz, 100, commitmentPath(1), packetCommitment(1))
	suite.Require().ErrorIs(err, attestation.ErrInvalidAttestationData)
}

func (suite *LightClientTestSuite) TestVerifyMembershipFrozenClient() {
	suite.trustHeight(100, 1700000000)
	suite.clientState.IsFrozen = true

	_, err := lightclient.VerifyMembership(suite.clientState, suite.store, []byte("proof"), 100, commitmentPath(1), packetCommitment(1))
	suite.Require().ErrorIs(err, lightclient.ErrClientFrozen)

	_, err = lightclient.VerifyNonMembership(suite.clientState, suite.store, []byte("proof"), 100, commitmentPath(1))
	suite.Require().ErrorIs(err, lightclient.ErrClientFrozen)
}

func (suite *LightClientTestSuite) TestVerifyMembershipNormalizesLongPaths() {
	suite.trustHeight(100, 1700000000)

	// The attestor hashes non-32-byte paths the same way the verifier does.
	rawPath := []byte("commitments/channels/channel-3/sequences/17")
	hashed := sha256.Sum256(rawPath)

	payload := &attestation.PacketAttestation{
		Height: 100,
		Packets: []attestation.PacketCompact{
			{Path: hashed[:], Commitment: packetCommitment(1)},
		},
	}
	proofBz := suite.encodedProof(payload, 0, 1, 2)

	timestamp, err := lightclient.VerifyMembership(suite.clientState, suite.store, proofBz, 100, rawPath, packetCommitment(1))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1700000000), timestamp)
}

func (suite *LightClientTestSuite) TestVerifyNonMembership() {
	suite.trustHeight(100, 1700000000)

	emptyCommitment := make([]byte, 32)
	payload := &attestation.PacketAttestation{
		Height: 100,
		Packets: []attestation.PacketCompact{
			{Path: commitmentPath(1), Commitment: emptyCommitment},
			{Path: commitmentPath(2), Commitment: packetCommitment(2)},
		},
	}
	proofBz := suite.encodedProof(payload, 0, 1, 2)

	// Attested as absent: zero commitment at the path.
	timestamp, err := lightclient.VerifyNonMembership(suite.clientState, suite.store, proofBz, 100, commitmentPath(1))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1700000000), timestamp)

	// A real commitment at the path refutes absence.
	_, err = lightclient.VerifyNonMembership(suite.clientState, suite.store, proofBz, 100, commitmentPath(2))
	suite.Require().ErrorIs(err, lightclient.ErrNotNonMember)

	// A path the attestation never mentions proves nothing either way.
	_, err = lightclient.VerifyNonMembership(suite.clientState, suite.store, proofBz, 100, commitmentPath(9))
	suite.Require().ErrorIs(err, lightclient.ErrPathNotAttested)
}

func (suite *LightClientTestSuite) TestVerifyMembershipZeroCommitmentValue() {
	suite.trustHeight(100, 1700000000)

	// An attested zero commitment matches an explicit query for the zero
	// value. Callers proving absence should use VerifyNonMembership instead.
	emptyCommitment := make([]byte, 32)
	payload := &attestation.PacketAttestation{
		Height: 100,
		Packets: []attestation.PacketCompact{
			{Path: commitmentPath(1), Commitment: emptyCommitment},
		},
	}
	proofBz := suite.encodedProof(payload, 0, 1, 2)

	timestamp, err := lightclient.VerifyMembership(suite.clientState, suite.store, proofBz, 100, commitmentPath(1), emptyCommitment)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1700000000), timestamp)
}
