package lightclient_test

import (
	"github.com/cosmos/eureka-attestation/attestation"
	"github.com/cosmos/eureka-attestation/lightclient"
)

func (suite *LightClientTestSuite) TestUpdateClient() {
	proofBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000000}, 0, 1, 2)

	res, err := lightclient.UpdateClient(suite.clientState, suite.store, proofBz)
	suite.Require().NoError(err)
	suite.Require().Equal(lightclient.UpdateResultUpdate, res)
	suite.Require().Equal(uint64(100), suite.clientState.LatestHeight)

	stored, found := suite.store.GetConsensusState(100)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1700000000), stored.Timestamp)
}

func (suite *LightClientTestSuite) TestUpdateClientReplayIsNoOp() {
	proofBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000000}, 0, 1, 2)

	res, err := lightclient.UpdateClient(suite.clientState, suite.store, proofBz)
	suite.Require().NoError(err)
	suite.Require().Equal(lightclient.UpdateResultUpdate, res)

	// Same height and timestamp from a different signer subset still replays
	// cleanly; identity of the quorum does not matter, only the claim.
	replayBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000000}, 2, 3, 4)
	res, err = lightclient.UpdateClient(suite.clientState, suite.store, replayBz)
	suite.Require().NoError(err)
	suite.Require().Equal(lightclient.UpdateResultNoOp, res)
	suite.Require().Equal(uint64(100), suite.clientState.LatestHeight)
}

func (suite *LightClientTestSuite) TestUpdateClientConflictingTimestamp() {
	proofBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000000}, 0, 1, 2)
	_, err := lightclient.UpdateClient(suite.clientState, suite.store, proofBz)
	suite.Require().NoError(err)

	conflictBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000999}, 0, 1, 2)
	_, err = lightclient.UpdateClient(suite.clientState, suite.store, conflictBz)
	suite.Require().ErrorIs(err, lightclient.ErrConflictingTimestamp)

	// The stored state is untouched by the rejected update.
	stored, found := suite.store.GetConsensusState(100)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1700000000), stored.Timestamp)
}

func (suite *LightClientTestSuite) TestUpdateClientOutOfOrderHeights() {
	proofBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000100}, 0, 1, 2)
	res, err := lightclient.UpdateClient(suite.clientState, suite.store, proofBz)
	suite.Require().NoError(err)
	suite.Require().Equal(lightclient.UpdateResultUpdate, res)

	// An older height is stored but never lowers the latest height.
	olderBz := suite.encodedProof(&attestation.StateAttestation{Height: 50, Timestamp: 1700000050}, 0, 1, 2)
	res, err = lightclient.UpdateClient(suite.clientState, suite.store, olderBz)
	suite.Require().NoError(err)
	suite.Require().Equal(lightclient.UpdateResultUpdate, res)
	suite.Require().Equal(uint64(100), suite.clientState.LatestHeight)

	_, found := suite.store.GetConsensusState(50)
	suite.Require().True(found)

	nextHeight, _, found := suite.store.GetNextConsensusState(50)
	suite.Require().True(found)
	suite.Require().Equal(uint64(100), nextHeight)

	prevHeight, _, found := suite.store.GetPrevConsensusState(100)
	suite.Require().True(found)
	suite.Require().Equal(uint64(50), prevHeight)
}

func (suite *LightClientTestSuite) TestUpdateClientBelowThreshold() {
	proofBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000000}, 0, 1)
	_, err := lightclient.UpdateClient(suite.clientState, suite.store, proofBz)
	suite.Require().ErrorIs(err, lightclient.ErrThresholdNotMet)

	_, found := suite.store.GetConsensusState(100)
	suite.Require().False(found)
}

func (suite *LightClientTestSuite) TestUpdateClientInvalidProofBytes() {
	_, err := lightclient.UpdateClient(suite.clientState, suite.store, []byte("not a proof"))
	suite.Require().ErrorIs(err, attestation.ErrInvalidProof)
}

func (suite *LightClientTestSuite) TestCheckForMisbehaviour() {
	proofBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000000}, 0, 1, 2)
	_, err := lightclient.UpdateClient(suite.clientState, suite.store, proofBz)
	suite.Require().NoError(err)

	// Replays and new heights are not misbehaviour.
	suite.Require().False(lightclient.CheckForMisbehaviour(suite.clientState, suite.store, proofBz))
	freshBz := suite.encodedProof(&attestation.StateAttestation{Height: 101, Timestamp: 1700000010}, 0, 1, 2)
	suite.Require().False(lightclient.CheckForMisbehaviour(suite.clientState, suite.store, freshBz))

	// A quorum-signed conflicting timestamp is, and checking never mutates.
	conflictBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000999}, 0, 1, 2)
	suite.Require().True(lightclient.CheckForMisbehaviour(suite.clientState, suite.store, conflictBz))

	stored, _ := suite.store.GetConsensusState(100)
	suite.Require().Equal(uint64(1700000000), stored.Timestamp)

	// Invalid or under-signed proofs are rejected, not flagged.
	suite.Require().False(lightclient.CheckForMisbehaviour(suite.clientState, suite.store, []byte("junk")))
	underSignedBz := suite.encodedProof(&attestation.StateAttestation{Height: 100, Timestamp: 1700000999}, 0)
	suite.Require().False(lightclient.CheckForMisbehaviour(suite.clientState, suite.store, underSignedBz))
}

func (suite *LightClientTestSuite) TestUnsupportedFeatures() {
	err := lightclient.SubmitMisbehaviour(suite.clientState, suite.store, []byte("evidence"))
	suite.Require().ErrorIs(err, lightclient.ErrFeatureNotSupported)

	err = lightclient.UpgradeClient(suite.clientState, suite.store, []byte("client"), []byte("proof"))
	suite.Require().ErrorIs(err, lightclient.ErrFeatureNotSupported)
}

func (suite *LightClientTestSuite) TestConsensusStateValidateBasic() {
	suite.Require().NoError(lightclient.ConsensusState{Timestamp: 1}.ValidateBasic())
	suite.Require().ErrorIs(lightclient.ConsensusState{}.ValidateBasic(), lightclient.ErrInvalidConsensus)
}
