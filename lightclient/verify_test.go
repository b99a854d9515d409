package lightclient_test

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/cosmos/eureka-attestation/attestation"
	"github.com/cosmos/eureka-attestation/lightclient"
)

func (suite *LightClientTestSuite) TestVerifySignaturesThreshold() {
	payload := &attestation.StateAttestation{Height: 10, Timestamp: 1700000000}

	// Every signer count below the threshold fails; at and above it succeeds.
	for count := 1; count <= numAttestors; count++ {
		signers := make([]int, count)
		for i := range signers {
			signers[i] = i
		}

		proof := suite.signedProof(payload, signers...)
		err := lightclient.VerifySignatures(suite.addresses, defaultThreshold, proof)
		if count < defaultThreshold {
			suite.Require().ErrorIs(err, lightclient.ErrThresholdNotMet, "count %d", count)
		} else {
			suite.Require().NoError(err, "count %d", count)
		}
	}
}

func (suite *LightClientTestSuite) TestVerifySignaturesDuplicateSigner() {
	payload := &attestation.StateAttestation{Height: 10, Timestamp: 1700000000}

	// Three signatures but only two distinct signers. Duplicates are rejected
	// outright rather than merely discounted.
	proof := suite.signedProof(payload, 0, 1, 1)
	err := lightclient.VerifySignatures(suite.addresses, defaultThreshold, proof)
	suite.Require().ErrorIs(err, lightclient.ErrDuplicateSigner)
}

func (suite *LightClientTestSuite) TestVerifySignaturesUnknownSigner() {
	payload := &attestation.StateAttestation{Height: 10, Timestamp: 1700000000}
	data, err := payload.ABIEncode()
	suite.Require().NoError(err)

	outsiderKey, err := crypto.GenerateKey()
	suite.Require().NoError(err)
	outsiderSig, err := attestation.Sign(outsiderKey, data)
	suite.Require().NoError(err)

	proof := suite.signedProof(payload, 0, 1, 2)
	proof.Signatures = append(proof.Signatures, outsiderSig)

	err = lightclient.VerifySignatures(suite.addresses, defaultThreshold, proof)
	suite.Require().ErrorIs(err, lightclient.ErrUnknownSigner)
}

func (suite *LightClientTestSuite) TestVerifySignaturesTamperedPayload() {
	payload := &attestation.StateAttestation{Height: 10, Timestamp: 1700000000}
	proof := suite.signedProof(payload, 0, 1, 2)

	// Swap in a different payload after signing. Every signature now recovers
	// to an address outside the trusted set.
	tampered, err := (&attestation.StateAttestation{Height: 10, Timestamp: 1700000001}).ABIEncode()
	suite.Require().NoError(err)
	proof.AttestationData = tampered

	err = lightclient.VerifySignatures(suite.addresses, defaultThreshold, proof)
	suite.Require().Error(err)
	suite.Require().NotErrorIs(err, lightclient.ErrThresholdNotMet)
}

func (suite *LightClientTestSuite) TestVerifySignaturesInvalidProof() {
	payload := &attestation.StateAttestation{Height: 10, Timestamp: 1700000000}

	proof := suite.signedProof(payload, 0, 1, 2)
	proof.Signatures = nil
	err := lightclient.VerifySignatures(suite.addresses, defaultThreshold, proof)
	suite.Require().ErrorIs(err, attestation.ErrInvalidProof)

	proof = suite.signedProof(payload, 0, 1, 2)
	proof.Signatures[1] = proof.Signatures[1][:64]
	err = lightclient.VerifySignatures(suite.addresses, defaultThreshold, proof)
	suite.Require().ErrorIs(err, attestation.ErrInvalidSignatureLength)
}

func (suite *LightClientTestSuite) TestVerifyAttestationFrozen() {
	payload := &attestation.StateAttestation{Height: 10, Timestamp: 1700000000}
	proof := suite.signedProof(payload, 0, 1, 2)

	suite.clientState.IsFrozen = true
	err := suite.clientState.VerifyAttestation(proof)
	suite.Require().ErrorIs(err, lightclient.ErrClientFrozen)
}

func (suite *LightClientTestSuite) TestVerifyStateAttestation() {
	payload := &attestation.StateAttestation{Height: 42, Timestamp: 1700000000}
	proof := suite.signedProof(payload, 0, 1, 2)

	decoded, err := suite.clientState.VerifyStateAttestation(proof)
	suite.Require().NoError(err)
	suite.Require().Equal(payload, decoded)
}

func (suite *LightClientTestSuite) TestVerifyPacketAttestation() {
	payload := &attestation.PacketAttestation{
		Height: 42,
		Packets: []attestation.PacketCompact{
			{Path: commitmentPath(1), Commitment: packetCommitment(1)},
		},
	}
	proof := suite.signedProof(payload, 2, 3, 4)

	decoded, err := suite.clientState.VerifyPacketAttestation(proof)
	suite.Require().NoError(err)
	suite.Require().Equal(payload, decoded)

	// A state payload behind valid signatures must not decode as packets.
	wrongKind := suite.signedProof(&attestation.StateAttestation{Height: 42, Timestamp: 1}, 0, 1, 2)
	_, err = suite.clientState.VerifyPacketAttestation(wrongKind)
	suite.Require().Error(err)
}
