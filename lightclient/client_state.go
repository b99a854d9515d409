package lightclient

import (
	"github.com/ethereum/go-ethereum/common"

	errorsmod "cosmossdk.io/errors"
)

// ClientState is the trust anchor for attestation verification: the fixed
// m-of-n attestor set, the signature threshold, and the highest confirmed
// height. The attestor set does not rotate in this version; IsFrozen is
// reserved for future misbehaviour handling and nothing sets it yet.
type ClientState struct {
	AttestorAddresses []string
	MinRequiredSigs   uint32
	LatestHeight      uint64
	IsFrozen          bool
}

// NewClientState creates a new ClientState instance.
func NewClientState(attestorAddresses []string, minRequiredSigs uint32, latestHeight uint64) *ClientState {
	return &ClientState{
		AttestorAddresses: attestorAddresses,
		MinRequiredSigs:   minRequiredSigs,
		LatestHeight:      latestHeight,
		IsFrozen:          false,
	}
}

// Validate performs basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if len(cs.AttestorAddresses) == 0 {
		return errorsmod.Wrap(ErrInvalidClient, "attestor addresses cannot be empty")
	}
	if cs.MinRequiredSigs == 0 {
		return errorsmod.Wrap(ErrInvalidClient, "min required sigs cannot be 0")
	}
	if cs.MinRequiredSigs > uint32(len(cs.AttestorAddresses)) {
		return errorsmod.Wrap(ErrInvalidClient, "min required sigs cannot exceed number of attestors")
	}

	seen := make(map[common.Address]bool)
	for _, addr := range cs.AttestorAddresses {
		if addr == "" {
			return errorsmod.Wrap(ErrInvalidClient, "attestor address cannot be empty")
		}
		if !common.IsHexAddress(addr) {
			return errorsmod.Wrapf(ErrInvalidClient, "invalid attestor address %s", addr)
		}
		parsed := common.HexToAddress(addr)
		if seen[parsed] {
			return errorsmod.Wrap(ErrInvalidClient, "duplicate attestor address")
		}
		seen[parsed] = true
	}

	if cs.LatestHeight == 0 {
		return errorsmod.Wrap(ErrInvalidClient, "latest height must be greater than 0")
	}

	return nil
}
