package attestation

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for attestation primitive errors.
const ModuleName = "attestation"

var (
	ErrInvalidSignatureLength = errorsmod.Register(ModuleName, 2, "invalid signature length")
	ErrSignatureRecovery      = errorsmod.Register(ModuleName, 3, "signature recovery failed")
	ErrInvalidAttestationData = errorsmod.Register(ModuleName, 4, "invalid attestation data")
	ErrInvalidProof           = errorsmod.Register(ModuleName, 5, "invalid attestation proof")
)
