package attestor

import (
	"context"
	"strings"

	rpcclient "github.com/cometbft/cometbft/rpc/client"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"

	errorsmod "cosmossdk.io/errors"
)

// ibcStoreQueryPath queries raw values out of the IBC module store.
const ibcStoreQueryPath = "store/ibc/key"

// CosmosAdapter attests a CometBFT-based chain over its RPC interface.
type CosmosAdapter struct {
	chainID string
	client  *rpchttp.HTTP
}

var _ ChainAdapter = (*CosmosAdapter)(nil)

func NewCosmosAdapter(chainID, rpcURL string) (*CosmosAdapter, error) {
	client, err := rpchttp.New(rpcURL, "/websocket")
	if err != nil {
		return nil, errorsmod.Wrapf(ErrAdapter, "failed to dial %s: %v", rpcURL, err)
	}

	return &CosmosAdapter{
		chainID: chainID,
		client:  client,
	}, nil
}

func (a *CosmosAdapter) ChainID() string {
	return a.chainID
}

func (a *CosmosAdapter) LatestHeight(ctx context.Context) (uint64, error) {
	status, err := a.client.Status(ctx)
	if err != nil {
		return 0, errorsmod.Wrapf(ErrAdapter, "failed to query status: %v", err)
	}
	return uint64(status.SyncInfo.LatestBlockHeight), nil
}

func (a *CosmosAdapter) HeightTimestamp(ctx context.Context, height uint64) (uint64, error) {
	h := int64(height)
	block, err := a.client.Block(ctx, &h)
	if err != nil {
		// The RPC reports heights past the tip and pruned heights as plain
		// errors mentioning the height bounds.
		if strings.Contains(err.Error(), "height") {
			return 0, errorsmod.Wrapf(ErrHeightNotAvailable, "height %d: %v", height, err)
		}
		return 0, errorsmod.Wrapf(ErrAdapter, "failed to query block at height %d: %v", height, err)
	}
	if block == nil || block.Block == nil {
		return 0, errorsmod.Wrapf(ErrHeightNotAvailable, "height %d", height)
	}

	return uint64(block.Block.Time.Unix()), nil
}

func (a *CosmosAdapter) PacketCommitment(ctx context.Context, height uint64, packetID []byte) ([]byte, error) {
	resp, err := a.client.ABCIQueryWithOptions(ctx, ibcStoreQueryPath, packetID, rpcclient.ABCIQueryOptions{
		Height: int64(height),
	})
	if err != nil {
		return nil, errorsmod.Wrapf(ErrAdapter, "failed to query commitment at height %d: %v", height, err)
	}
	if resp.Response.IsErr() {
		return nil, errorsmod.Wrapf(ErrAdapter, "commitment query failed at height %d: %s", height, resp.Response.Log)
	}

	// An empty value means nothing is stored under the key; the caller
	// attests that as the zero commitment.
	return resp.Response.Value, nil
}
