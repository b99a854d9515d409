package attestation

import (
	"crypto/ecdsa"
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	errorsmod "cosmossdk.io/errors"
)

const (
	// SignatureLength is the expected length of an ECDSA signature (r||s||v)
	SignatureLength = 65
	// recoveryIDIndex is the byte position of the recovery ID (v) in the signature
	recoveryIDIndex = 64
)

// Digest returns the hash attestors sign: sha256 over the canonical payload bytes.
func Digest(attestationData []byte) [32]byte {
	return sha256.Sum256(attestationData)
}

// SignableDigest canonically encodes the payload and hashes it.
func SignableDigest(s Signable) ([32]byte, error) {
	data, err := s.ABIEncode()
	if err != nil {
		return [32]byte{}, err
	}
	return Digest(data), nil
}

// Sign produces a 65-byte recoverable signature over sha256(attestationData).
func Sign(priv *ecdsa.PrivateKey, attestationData []byte) ([]byte, error) {
	hash := Digest(attestationData)
	sig, err := crypto.Sign(hash[:], priv)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrSignatureRecovery, "failed to sign digest: %v", err)
	}
	return sig, nil
}

// RecoverSigner recovers the signer address from a 65-byte signature over digest.
// An address that is merely not in some trusted set is not an error here; trust
// decisions belong to the verification layer.
func RecoverSigner(digest [32]byte, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, errorsmod.Wrapf(ErrInvalidSignatureLength, "expected %d bytes, got %d", SignatureLength, len(sig))
	}

	recoveredPubKey, err := crypto.SigToPub(digest[:], NormalizeSignature(sig))
	if err != nil {
		return common.Address{}, errorsmod.Wrapf(ErrSignatureRecovery, "failed to recover public key: %v", err)
	}
	if recoveredPubKey == nil {
		return common.Address{}, errorsmod.Wrap(ErrSignatureRecovery, "recovered public key is nil")
	}

	return crypto.PubkeyToAddress(*recoveredPubKey), nil
}

// VerifySignature reports whether sig over digest recovers to addr. The
// canonical verification path is direct recovery plus a set-membership check;
// this is a convenience for callers that already know the expected signer.
func VerifySignature(addr common.Address, digest [32]byte, sig []byte) bool {
	recovered, err := RecoverSigner(digest, sig)
	if err != nil {
		return false
	}
	return recovered == addr
}

// NormalizeSignature converts the ECDSA recovery ID (v) from Ethereum format (27/28)
// to raw format (0/1). go-ethereum's crypto.SigToPub expects raw format, while
// Solidity's ECDSA.recover and most signing libraries produce Ethereum format.
func NormalizeSignature(sig []byte) []byte {
	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)

	v := normalized[recoveryIDIndex]
	switch v {
	case 27:
		normalized[recoveryIDIndex] = 0
	case 28:
		normalized[recoveryIDIndex] = 1
	default:
		// Already in raw format (0/1) or unknown, leave unchanged
	}

	return normalized
}
