package attestation_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/eureka-attestation/attestation"
)

func TestAttestationProofValidateBasic(t *testing.T) {
	validSig := make([]byte, attestation.SignatureLength)

	testCases := []struct {
		name   string
		proof  attestation.AttestationProof
		expErr error
	}{
		{
			"valid proof",
			attestation.AttestationProof{AttestationData: []byte("payload"), Signatures: [][]byte{validSig}},
			nil,
		},
		{
			"empty attestation data",
			attestation.AttestationProof{Signatures: [][]byte{validSig}},
			attestation.ErrInvalidProof,
		},
		{
			"no signatures",
			attestation.AttestationProof{AttestationData: []byte("payload")},
			attestation.ErrInvalidProof,
		},
		{
			"short signature",
			attestation.AttestationProof{AttestationData: []byte("payload"), Signatures: [][]byte{validSig, make([]byte, 64)}},
			attestation.ErrInvalidSignatureLength,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.proof.ValidateBasic()
			if tc.expErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.expErr)
			}
		})
	}
}

func TestAttestationProofABIRoundTrip(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	data, err := (&attestation.StateAttestation{Height: 10, Timestamp: 20}).ABIEncode()
	require.NoError(t, err)
	sig, err := attestation.Sign(key, data)
	require.NoError(t, err)

	original := &attestation.AttestationProof{
		AttestationData: data,
		Signatures:      [][]byte{sig},
	}

	encoded, err := original.ABIEncode()
	require.NoError(t, err)

	decoded, err := attestation.ABIDecodeAttestationProof(encoded)
	require.NoError(t, err)
	require.Equal(t, original, decoded)

	_, err = attestation.ABIDecodeAttestationProof([]byte("garbage"))
	require.ErrorIs(t, err, attestation.ErrInvalidProof)
}
