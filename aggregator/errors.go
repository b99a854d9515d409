package aggregator

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for aggregator errors.
const ModuleName = "aggregator"

var (
	ErrInvalidConfig = errorsmod.Register(ModuleName, 2, "invalid aggregator configuration")
	// ErrInsufficientAttestors means too few attestors answered at all to ever
	// reach quorum this round. Retry later.
	ErrInsufficientAttestors = errorsmod.Register(ModuleName, 3, "insufficient attestors reachable")
	// ErrQuorumNotMet means enough attestors answered but no height gathered a
	// quorum of agreeing attestations. Retry later.
	ErrQuorumNotMet = errorsmod.Register(ModuleName, 4, "no height reached quorum agreement")
)
