package attestation

import (
	"github.com/ethereum/go-ethereum/accounts/abi"

	errorsmod "cosmossdk.io/errors"
)

var (
	bytesType, _      = abi.NewType("bytes", "", nil)
	bytesArrayType, _ = abi.NewType("bytes[]", "", nil)

	attestationProofArgs = abi.Arguments{
		{Name: "attestationData", Type: bytesType},
		{Name: "signatures", Type: bytesArrayType},
	}
)

// AttestationProof bundles one canonical attestation payload with the
// signatures an aggregator collected over it. The payload bytes are kept
// opaque here; the verifying call site decodes them into the expected
// StateAttestation or PacketAttestation.
type AttestationProof struct {
	AttestationData []byte
	Signatures      [][]byte
}

// ValidateBasic checks the structural invariants of the proof without touching
// any trust anchor: non-empty payload, non-empty signature list, and every
// signature exactly 65 bytes.
func (p *AttestationProof) ValidateBasic() error {
	if len(p.AttestationData) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "attestation data cannot be empty")
	}
	if len(p.Signatures) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "signatures cannot be empty")
	}
	for i, sig := range p.Signatures {
		if len(sig) != SignatureLength {
			return errorsmod.Wrapf(ErrInvalidSignatureLength, "signature %d: expected %d bytes, got %d", i, SignatureLength, len(sig))
		}
	}
	return nil
}

func (p *AttestationProof) ABIEncode() ([]byte, error) {
	return attestationProofArgs.Pack(p.AttestationData, p.Signatures)
}

func ABIDecodeAttestationProof(data []byte) (*AttestationProof, error) {
	unpacked, err := attestationProofArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidProof, "failed to ABI decode attestation proof: %v", err)
	}

	if len(unpacked) != 2 {
		return nil, errorsmod.Wrap(ErrInvalidProof, "invalid attestation proof: expected 2 fields")
	}

	attestationData, ok := unpacked[0].([]byte)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidProof, "invalid attestation data type")
	}

	signatures, ok := unpacked[1].([][]byte)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidProof, "invalid signatures type")
	}

	return &AttestationProof{
		AttestationData: attestationData,
		Signatures:      signatures,
	}, nil
}
