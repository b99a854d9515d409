package attestor

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/eureka-attestation/attestation"
)

// EVMAdapter attests an Ethereum-family chain. Packet commitments are read
// straight out of the IBC router contract's commitment mapping via
// eth_getStorageAt, so no ABI bindings are needed.
type EVMAdapter struct {
	chainID        string
	client         *ethclient.Client
	routerAddress  common.Address
	commitmentSlot uint64
}

var _ ChainAdapter = (*EVMAdapter)(nil)

// NewEVMAdapter dials rpcURL and watches the router contract at routerAddress.
// commitmentSlot is the storage slot of the router's packet commitment mapping.
func NewEVMAdapter(ctx context.Context, chainID, rpcURL string, routerAddress common.Address, commitmentSlot uint64) (*EVMAdapter, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrAdapter, "failed to dial %s: %v", rpcURL, err)
	}

	return &EVMAdapter{
		chainID:        chainID,
		client:         client,
		routerAddress:  routerAddress,
		commitmentSlot: commitmentSlot,
	}, nil
}

func (a *EVMAdapter) ChainID() string {
	return a.chainID
}

func (a *EVMAdapter) LatestHeight(ctx context.Context) (uint64, error) {
	height, err := a.client.BlockNumber(ctx)
	if err != nil {
		return 0, errorsmod.Wrapf(ErrAdapter, "failed to query latest height: %v", err)
	}
	return height, nil
}

func (a *EVMAdapter) HeightTimestamp(ctx context.Context, height uint64) (uint64, error) {
	header, err := a.client.HeaderByNumber(ctx, new(big.Int).SetUint64(height))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return 0, errorsmod.Wrapf(ErrHeightNotAvailable, "height %d", height)
		}
		return 0, errorsmod.Wrapf(ErrAdapter, "failed to query header at height %d: %v", height, err)
	}
	if header == nil {
		return 0, errorsmod.Wrapf(ErrHeightNotAvailable, "height %d", height)
	}

	return header.Time, nil
}

func (a *EVMAdapter) PacketCommitment(ctx context.Context, height uint64, packetID []byte) ([]byte, error) {
	value, err := a.client.StorageAt(ctx, a.routerAddress, a.commitmentKey(packetID), new(big.Int).SetUint64(height))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, errorsmod.Wrapf(ErrHeightNotAvailable, "height %d", height)
		}
		return nil, errorsmod.Wrapf(ErrAdapter, "failed to query commitment at height %d: %v", height, err)
	}

	return value, nil
}

// commitmentKey computes the storage key of mapping[packetID] for a Solidity
// mapping at commitmentSlot: keccak256(packetID . slot).
func (a *EVMAdapter) commitmentKey(packetID []byte) common.Hash {
	id := attestation.BytesToBytes32(packetID)
	slot := attestation.Uint64ToPaddedBytes(a.commitmentSlot)
	return crypto.Keccak256Hash(append(id[:], slot...))
}
