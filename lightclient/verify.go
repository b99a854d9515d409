package lightclient

import (
	"github.com/ethereum/go-ethereum/common"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/eureka-attestation/attestation"
)

// VerifySignatures checks that the proof carries signatures from distinct
// trusted attestors meeting the threshold. Signatures cover
// sha256(attestationData). The payload itself is not decoded here; callers
// decode it into the type they expect once the signatures check out.
func VerifySignatures(attestorAddresses []string, minRequiredSigs uint32, proof *attestation.AttestationProof) error {
	if err := proof.ValidateBasic(); err != nil {
		return err
	}

	attestorSet := make(map[common.Address]bool, len(attestorAddresses))
	for _, addr := range attestorAddresses {
		attestorSet[common.HexToAddress(addr)] = true
	}

	digest := attestation.Digest(proof.AttestationData)
	seenSigners := make(map[common.Address]bool)
	validSigs := uint32(0)

	for i, sig := range proof.Signatures {
		recoveredAddr, err := attestation.RecoverSigner(digest, sig)
		if err != nil {
			return errorsmod.Wrapf(err, "signature %d", i)
		}

		if seenSigners[recoveredAddr] {
			return errorsmod.Wrapf(ErrDuplicateSigner, "duplicate signer: %s", recoveredAddr.Hex())
		}
		seenSigners[recoveredAddr] = true

		if !attestorSet[recoveredAddr] {
			return errorsmod.Wrapf(ErrUnknownSigner, "signer %s is not in attestor set", recoveredAddr.Hex())
		}

		validSigs++
	}

	if validSigs < minRequiredSigs {
		return errorsmod.Wrapf(ErrThresholdNotMet, "required %d, got %d", minRequiredSigs, validSigs)
	}

	return nil
}

// VerifyAttestation verifies the proof's signatures against the client's
// attestor set and threshold.
func (cs ClientState) VerifyAttestation(proof *attestation.AttestationProof) error {
	if cs.IsFrozen {
		return ErrClientFrozen
	}
	return VerifySignatures(cs.AttestorAddresses, cs.MinRequiredSigs, proof)
}

// VerifyStateAttestation verifies the proof and decodes its payload as a
// StateAttestation.
func (cs ClientState) VerifyStateAttestation(proof *attestation.AttestationProof) (*attestation.StateAttestation, error) {
	if err := cs.VerifyAttestation(proof); err != nil {
		return nil, err
	}
	return attestation.ABIDecodeStateAttestation(proof.AttestationData)
}

// VerifyPacketAttestation verifies the proof and decodes its payload as a
// PacketAttestation.
func (cs ClientState) VerifyPacketAttestation(proof *attestation.AttestationProof) (*attestation.PacketAttestation, error) {
	if err := cs.VerifyAttestation(proof); err != nil {
		return nil, err
	}
	return attestation.ABIDecodePacketAttestation(proof.AttestationData)
}
