package attestor

import (
	"context"
	"crypto/ecdsa"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/sync/errgroup"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/eureka-attestation/attestation"
	"github.com/cosmos/eureka-attestation/internal/log"
)

// Attestor signs claims about the state of the chain its adapter watches. It
// holds no mutable state beyond the signing key; every request queries the
// chain fresh and returns a signed canonical payload.
type Attestor struct {
	key            *ecdsa.PrivateKey
	address        common.Address
	adapter        ChainAdapter
	maxConcurrency int
	logger         log.Logger
}

// DefaultMaxQueryConcurrency bounds the per-request packet query fan-out.
const DefaultMaxQueryConcurrency = 8

func New(key *ecdsa.PrivateKey, adapter ChainAdapter, maxConcurrency int, logger log.Logger) *Attestor {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxQueryConcurrency
	}
	return &Attestor{
		key:            key,
		address:        crypto.PubkeyToAddress(key.PublicKey),
		adapter:        adapter,
		maxConcurrency: maxConcurrency,
		logger:         logger.With("chain_id", adapter.ChainID()),
	}
}

// Address returns the attestor's signer identity.
func (a *Attestor) Address() common.Address {
	return a.address
}

// StateAttestation attests the chain's timestamp at a height. With exact set
// the requested height itself is attested; otherwise the attestor attests its
// latest height, requiring it to be at or above the requested one.
func (a *Attestor) StateAttestation(ctx context.Context, height uint64, exact bool) (*attestation.StateAttestation, []byte, error) {
	attestedHeight := height
	if !exact {
		latest, err := a.adapter.LatestHeight(ctx)
		if err != nil {
			return nil, nil, err
		}
		if latest < height {
			return nil, nil, errorsmod.Wrapf(ErrHeightNotAvailable, "latest height %d below requested %d", latest, height)
		}
		attestedHeight = latest
	}

	timestamp, err := a.adapter.HeightTimestamp(ctx, attestedHeight)
	if err != nil {
		return nil, nil, err
	}

	stateAttestation := &attestation.StateAttestation{
		Height:    attestedHeight,
		Timestamp: timestamp,
	}

	sig, err := a.sign(stateAttestation)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Debug("signed state attestation", "height", attestedHeight, "timestamp", timestamp)
	return stateAttestation, sig, nil
}

// PacketAttestations attests the packet commitments stored under packetIDs at
// the attestor's latest height, which must be at or above minHeight.
// Commitment queries run concurrently with a bounded fan-out. A failing query
// never fails the batch: the failed identifiers are returned alongside the
// attestation and simply omitted from the attested set, so a transport hiccup
// is never attested as an absent packet. An identifier whose query succeeds
// with no stored value is attested with the zero commitment.
func (a *Attestor) PacketAttestations(ctx context.Context, minHeight uint64, packetIDs [][]byte) (*attestation.PacketAttestation, []byte, [][]byte, error) {
	if len(packetIDs) == 0 {
		return nil, nil, nil, errorsmod.Wrap(attestation.ErrInvalidAttestationData, "packet ids cannot be empty")
	}

	height, err := a.adapter.LatestHeight(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if height < minHeight {
		return nil, nil, nil, errorsmod.Wrapf(ErrHeightNotAvailable, "latest height %d below requested %d", height, minHeight)
	}

	commitments := make([][]byte, len(packetIDs))
	queryErrs := make([]error, len(packetIDs))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrency)

	for i, id := range packetIDs {
		i, id := i, id
		g.Go(func() error {
			value, err := a.adapter.PacketCommitment(gctx, height, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				queryErrs[i] = err
				return nil
			}
			commitments[i] = value
			return nil
		})
	}

	// Tasks never return errors; partial failure is handled per packet.
	_ = g.Wait()

	packets := make([]attestation.PacketCompact, 0, len(packetIDs))
	var failed [][]byte
	for i, id := range packetIDs {
		if queryErrs[i] != nil {
			a.logger.Error("packet commitment query failed", "height", height, "packet_id", common.Bytes2Hex(id), "err", queryErrs[i])
			failed = append(failed, id)
			continue
		}
		commitment := attestation.BytesToBytes32(commitments[i])
		packets = append(packets, attestation.PacketCompact{
			Path:       id,
			Commitment: commitment[:],
		})
	}

	if len(packets) == 0 {
		return nil, nil, failed, errorsmod.Wrapf(ErrAdapter, "all %d packet queries failed at height %d", len(packetIDs), height)
	}

	packetAttestation := &attestation.PacketAttestation{
		Height:  height,
		Packets: packets,
	}

	sig, err := a.sign(packetAttestation)
	if err != nil {
		return nil, nil, failed, err
	}

	a.logger.Debug("signed packet attestation", "height", height, "packets", len(packets), "failed", len(failed))
	return packetAttestation, sig, failed, nil
}

func (a *Attestor) sign(payload attestation.Signable) ([]byte, error) {
	data, err := payload.ABIEncode()
	if err != nil {
		return nil, err
	}
	return attestation.Sign(a.key, data)
}
