package attestor

import (
	"context"
)

// ChainAdapter abstracts the chain family an attestor watches. One
// implementation exists per family (EVM, Cosmos); the attestor itself is
// adapter-agnostic and only ever needs the height/timestamp and
// packet-commitment capabilities.
//
// Adapters do not retry: transport failures propagate as ErrAdapter so the
// aggregator can move on to another attestor instead of stalling on this one.
type ChainAdapter interface {
	// ChainID identifies the watched chain.
	ChainID() string

	// LatestHeight returns the chain's current height.
	LatestHeight(ctx context.Context) (uint64, error)

	// HeightTimestamp returns the Unix-seconds timestamp of the block at
	// height. Returns ErrHeightNotAvailable when the chain has not reached,
	// or has pruned, that height.
	HeightTimestamp(ctx context.Context, height uint64) (uint64, error)

	// PacketCommitment returns the 32-byte packet commitment stored under
	// packetID at height. An all-zero value means nothing is stored there;
	// that absence is attestable.
	PacketCommitment(ctx context.Context, height uint64, packetID []byte) ([]byte, error)
}
