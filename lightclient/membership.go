package lightclient

import (
	"bytes"
	"crypto/sha256"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/eureka-attestation/attestation"
)

// zeroCommitment is the sentinel attestors place at a path they queried and
// found empty. It distinguishes "attested as absent" from "not mentioned".
var zeroCommitment [32]byte

// VerifyMembership verifies that value is attested as the packet commitment at
// path for the given height, and returns the trusted timestamp stored for that
// height. The proof is the ABI-encoded AttestationProof whose payload must
// decode to a PacketAttestation at exactly the requested height; there is no
// implicit fallback to the client's latest height.
func VerifyMembership(cs *ClientState, store ConsensusStore, proofBz []byte, height uint64, path, value []byte) (uint64, error) {
	if cs.IsFrozen {
		return 0, ErrClientFrozen
	}

	if len(path) == 0 {
		return 0, errorsmod.Wrap(ErrInvalidPath, "path cannot be empty")
	}
	if len(value) == 0 {
		return 0, errorsmod.Wrap(ErrEmptyValue, "value cannot be empty")
	}

	consensusState, found := store.GetConsensusState(height)
	if !found {
		return 0, errorsmod.Wrapf(ErrConsensusStateNotFound, "height %d", height)
	}

	packetAttestation, err := verifyPacketAttestationAtHeight(cs, proofBz, height)
	if err != nil {
		return 0, err
	}

	commitmentPath := normalizePathBytes(path)
	for _, packet := range packetAttestation.Packets {
		if bytes.Equal(packet.Path, commitmentPath) && bytes.Equal(packet.Commitment, value) {
			return consensusState.Timestamp, nil
		}
	}

	return 0, ErrNotMember
}

// VerifyNonMembership verifies that path is attested as empty at the given
// height. The path must appear in the attested set with the zero commitment
// sentinel: a real commitment at the path fails with ErrNotNonMember, while a
// path the attestation does not mention at all fails with ErrPathNotAttested,
// since its emptiness was never proven either way.
func VerifyNonMembership(cs *ClientState, store ConsensusStore, proofBz []byte, height uint64, path []byte) (uint64, error) {
	if cs.IsFrozen {
		return 0, ErrClientFrozen
	}

	if len(path) == 0 {
		return 0, errorsmod.Wrap(ErrInvalidPath, "path cannot be empty")
	}

	consensusState, found := store.GetConsensusState(height)
	if !found {
		return 0, errorsmod.Wrapf(ErrConsensusStateNotFound, "height %d", height)
	}

	packetAttestation, err := verifyPacketAttestationAtHeight(cs, proofBz, height)
	if err != nil {
		return 0, err
	}

	commitmentPath := normalizePathBytes(path)
	for _, packet := range packetAttestation.Packets {
		if !bytes.Equal(packet.Path, commitmentPath) {
			continue
		}
		if bytes.Equal(packet.Commitment, zeroCommitment[:]) {
			return consensusState.Timestamp, nil
		}
		return 0, errorsmod.Wrapf(ErrNotNonMember, "commitment attested at path %X", commitmentPath)
	}

	return 0, errorsmod.Wrapf(ErrPathNotAttested, "path %X", commitmentPath)
}

func verifyPacketAttestationAtHeight(cs *ClientState, proofBz []byte, height uint64) (*attestation.PacketAttestation, error) {
	proof, err := attestation.ABIDecodeAttestationProof(proofBz)
	if err != nil {
		return nil, err
	}

	packetAttestation, err := cs.VerifyPacketAttestation(proof)
	if err != nil {
		return nil, err
	}

	if packetAttestation.Height != height {
		return nil, errorsmod.Wrapf(ErrHeightMismatch, "requested %d, attested %d", height, packetAttestation.Height)
	}

	if len(packetAttestation.Packets) == 0 {
		return nil, errorsmod.Wrap(attestation.ErrInvalidAttestationData, "packets cannot be empty")
	}

	return packetAttestation, nil
}

// normalizePathBytes maps arbitrary-length commitment paths onto the fixed
// 32-byte path slot used in the canonical encoding. Paths already 32 bytes
// long pass through unchanged.
func normalizePathBytes(raw []byte) []byte {
	if len(raw) == 32 {
		return raw
	}

	sum := sha256.Sum256(raw)
	return sum[:]
}
