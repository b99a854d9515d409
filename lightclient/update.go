package lightclient

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/eureka-attestation/attestation"
)

// UpdateResult reports what an UpdateClient call did.
type UpdateResult int

const (
	// UpdateResultUpdate means a new consensus state was stored.
	UpdateResultUpdate UpdateResult = iota + 1
	// UpdateResultNoOp means an identical consensus state already existed;
	// replaying the same proof is safe and changes nothing.
	UpdateResultNoOp
)

// UpdateClient verifies a state attestation proof and applies it to the
// client. The proof is the ABI-encoded AttestationProof bytes whose payload
// must decode to a StateAttestation.
//
// Heights may arrive out of order; attestors observe chains independently and
// a lower height is still useful for proving older packets. LatestHeight only
// ratchets upward. A second proof for an already-stored height must carry the
// stored timestamp: an equal timestamp is an idempotent replay (NoOp), a
// different one is a conflicting claim about the same height and hard-fails
// with ErrConflictingTimestamp so the host surfaces it loudly.
func UpdateClient(cs *ClientState, store ConsensusStore, proofBz []byte) (UpdateResult, error) {
	proof, err := attestation.ABIDecodeAttestationProof(proofBz)
	if err != nil {
		return 0, err
	}

	stateAttestation, err := cs.VerifyStateAttestation(proof)
	if err != nil {
		return 0, err
	}

	if existing, found := store.GetConsensusState(stateAttestation.Height); found {
		if existing.Timestamp == stateAttestation.Timestamp {
			return UpdateResultNoOp, nil
		}
		return 0, errorsmod.Wrapf(ErrConflictingTimestamp,
			"height %d: stored timestamp %d, provided %d",
			stateAttestation.Height, existing.Timestamp, stateAttestation.Timestamp)
	}

	store.SetConsensusState(stateAttestation.Height, ConsensusState{Timestamp: stateAttestation.Timestamp})

	if stateAttestation.Height > cs.LatestHeight {
		cs.LatestHeight = stateAttestation.Height
	}

	return UpdateResultUpdate, nil
}

// CheckForMisbehaviour reports whether the proof, if applied, would contradict
// an already-stored consensus state. It never mutates the store, so hosts
// preferring a signal-only conflict policy can branch on it before calling
// UpdateClient. An invalid proof is not misbehaviour; it is simply rejected
// at update time.
func CheckForMisbehaviour(cs *ClientState, store ConsensusStore, proofBz []byte) bool {
	proof, err := attestation.ABIDecodeAttestationProof(proofBz)
	if err != nil {
		return false
	}

	stateAttestation, err := cs.VerifyStateAttestation(proof)
	if err != nil {
		return false
	}

	existing, found := store.GetConsensusState(stateAttestation.Height)
	return found && existing.Timestamp != stateAttestation.Timestamp
}

// SubmitMisbehaviour is reserved for future evidence processing.
func SubmitMisbehaviour(cs *ClientState, store ConsensusStore, evidenceBz []byte) error {
	return errorsmod.Wrap(ErrFeatureNotSupported, "misbehaviour submission is not supported")
}

// UpgradeClient is not supported; the attestor set is fixed for the client's lifetime.
func UpgradeClient(cs *ClientState, store ConsensusStore, newClientBz, proofBz []byte) error {
	return errorsmod.Wrap(ErrFeatureNotSupported, "client upgrades are not supported")
}
