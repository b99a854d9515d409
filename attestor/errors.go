package attestor

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for attestor service errors.
const ModuleName = "attestor"

var (
	ErrInvalidConfig      = errorsmod.Register(ModuleName, 2, "invalid attestor configuration")
	ErrAdapter            = errorsmod.Register(ModuleName, 3, "chain adapter query failed")
	ErrHeightNotAvailable = errorsmod.Register(ModuleName, 4, "height not available on chain")
)
