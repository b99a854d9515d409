package attestation_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/eureka-attestation/attestation"
)

func TestSignAndRecover(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	expectedAddr := crypto.PubkeyToAddress(key.PublicKey)

	payload := &attestation.StateAttestation{Height: 100, Timestamp: 1727000000}
	data, err := payload.ABIEncode()
	require.NoError(t, err)

	sig, err := attestation.Sign(key, data)
	require.NoError(t, err)
	require.Len(t, sig, attestation.SignatureLength)

	recovered, err := attestation.RecoverSigner(attestation.Digest(data), sig)
	require.NoError(t, err)
	require.Equal(t, expectedAddr, recovered)
}

func TestRecoverSignerInvalidLength(t *testing.T) {
	digest := attestation.Digest([]byte("payload"))

	testCases := []struct {
		name   string
		sigLen int
	}{
		{"empty signature", 0},
		{"64 bytes, recovery id missing", 64},
		{"66 bytes, trailing garbage", 66},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := attestation.RecoverSigner(digest, make([]byte, tc.sigLen))
			require.ErrorIs(t, err, attestation.ErrInvalidSignatureLength)
		})
	}
}

func TestRecoverSignerMalformed(t *testing.T) {
	digest := attestation.Digest([]byte("payload"))

	// 65 zero bytes is the right length but not a valid curve point.
	_, err := attestation.RecoverSigner(digest, make([]byte, attestation.SignatureLength))
	require.ErrorIs(t, err, attestation.ErrSignatureRecovery)
}

func TestRecoverSignerTamperedPayload(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	data, err := (&attestation.StateAttestation{Height: 7, Timestamp: 42}).ABIEncode()
	require.NoError(t, err)
	sig, err := attestation.Sign(key, data)
	require.NoError(t, err)

	tampered, err := (&attestation.StateAttestation{Height: 7, Timestamp: 43}).ABIEncode()
	require.NoError(t, err)

	// Recovery over a different digest yields a different (or no) address,
	// never the original signer.
	recovered, err := attestation.RecoverSigner(attestation.Digest(tampered), sig)
	if err == nil {
		require.NotEqual(t, addr, recovered)
	}
}

func TestNormalizeSignature(t *testing.T) {
	testCases := []struct {
		name string
		v    byte
		expV byte
	}{
		{"ethereum v 27", 27, 0},
		{"ethereum v 28", 28, 1},
		{"raw v 0", 0, 0},
		{"raw v 1", 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sig := make([]byte, attestation.SignatureLength)
			sig[64] = tc.v

			normalized := attestation.NormalizeSignature(sig)
			require.Equal(t, tc.expV, normalized[64])
			// The input is never mutated.
			require.Equal(t, tc.v, sig[64])
		})
	}
}

func TestVerifySignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	otherKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	otherAddr := crypto.PubkeyToAddress(otherKey.PublicKey)

	data := []byte("attestation payload")
	sig, err := attestation.Sign(key, data)
	require.NoError(t, err)

	digest := attestation.Digest(data)
	require.True(t, attestation.VerifySignature(addr, digest, sig))
	require.False(t, attestation.VerifySignature(otherAddr, digest, sig))
	require.False(t, attestation.VerifySignature(addr, digest, sig[:64]))
}
