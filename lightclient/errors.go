package lightclient

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for attestation light client errors.
const ModuleName = "attestation-light-client"

var (
	ErrInvalidClient         = errorsmod.Register(ModuleName, 2, "invalid client state")
	ErrInvalidConsensus      = errorsmod.Register(ModuleName, 3, "invalid consensus state")
	ErrClientFrozen          = errorsmod.Register(ModuleName, 4, "client is frozen")
	ErrUnknownSigner         = errorsmod.Register(ModuleName, 5, "signer is not in attestor set")
	ErrDuplicateSigner       = errorsmod.Register(ModuleName, 6, "duplicate signer")
	ErrThresholdNotMet       = errorsmod.Register(ModuleName, 7, "signature threshold not met")
	ErrConflictingTimestamp  = errorsmod.Register(ModuleName, 8, "conflicting timestamp for existing consensus state")
	ErrConsensusStateNotFound = errorsmod.Register(ModuleName, 9, "consensus state not found")
	ErrHeightMismatch        = errorsmod.Register(ModuleName, 10, "attested height does not match requested height")
	ErrEmptyValue            = errorsmod.Register(ModuleName, 11, "value cannot be empty")
	ErrInvalidPath           = errorsmod.Register(ModuleName, 12, "invalid path")
	ErrNotMember             = errorsmod.Register(ModuleName, 13, "commitment is not part of the attested packet set")
	ErrNotNonMember          = errorsmod.Register(ModuleName, 14, "a commitment is attested at the path")
	ErrPathNotAttested       = errorsmod.Register(ModuleName, 15, "path is not covered by the attestation")
	ErrFeatureNotSupported   = errorsmod.Register(ModuleName, 16, "feature not supported")
)
