package aggregator

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/eureka-attestation/attestation"
	"github.com/cosmos/eureka-attestation/internal/log"
)

// Aggregator turns "ask n attestors" into one quorum-satisfying proof. Each
// round fans out to every configured attestor concurrently, keeps whatever
// returns within the query timeout, groups byte-identical payloads, and picks
// the highest height on which a quorum of distinct signers agrees.
//
// The aggregator never retries internally; its errors distinguish "try again
// later" (ErrInsufficientAttestors, ErrQuorumNotMet) from malformed input so
// the relayer can decide.
type Aggregator struct {
	clients      []AttestorClient
	quorum       uint32
	queryTimeout time.Duration
	stateCache   *proofCache
	packetCache  *proofCache
	logger       log.Logger
}

func New(clients []AttestorClient, quorum uint32, queryTimeout time.Duration, stateCacheSize, packetCacheSize int, logger log.Logger) (*Aggregator, error) {
	if quorum == 0 {
		return nil, errorsmod.Wrap(ErrInvalidConfig, "quorum threshold cannot be 0")
	}
	if int(quorum) > len(clients) {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "quorum threshold %d exceeds %d attestor endpoints", quorum, len(clients))
	}

	stateCache, err := newProofCache(stateCacheSize)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "state cache: %v", err)
	}
	packetCache, err := newProofCache(packetCacheSize)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "packet cache: %v", err)
	}

	return &Aggregator{
		clients:      clients,
		quorum:       quorum,
		queryTimeout: queryTimeout,
		stateCache:   stateCache,
		packetCache:  packetCache,
		logger:       logger,
	}, nil
}

// Close closes all attestor connections.
func (ag *Aggregator) Close() error {
	var firstErr error
	for _, c := range ag.clients {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// AggregateStateAttestation aggregates a state attestation at the highest
// quorum-agreed height at or above minHeight.
func (ag *Aggregator) AggregateStateAttestation(ctx context.Context, minHeight uint64) (*attestation.AttestationProof, uint64, error) {
	key := stateCacheKey(minHeight, false)
	if cached, found := ag.stateCache.get(key); found {
		return cached.proof, cached.height, nil
	}

	proof, height, err := ag.aggregateState(ctx, minHeight, false)
	if err != nil {
		return nil, 0, err
	}

	ag.stateCache.add(key, cachedResult{proof: proof, height: height})
	return proof, height, nil
}

// AggregateStateAttestationAt aggregates a state attestation at exactly
// height. It backs the relay flow, where the timestamp must belong to the
// same height as an already-resolved packet attestation.
func (ag *Aggregator) AggregateStateAttestationAt(ctx context.Context, height uint64) (*attestation.AttestationProof, error) {
	key := stateCacheKey(height, true)
	if cached, found := ag.stateCache.get(key); found {
		return cached.proof, nil
	}

	proof, _, err := ag.aggregateState(ctx, height, true)
	if err != nil {
		return nil, err
	}

	ag.stateCache.add(key, cachedResult{proof: proof, height: height})
	return proof, nil
}

func (ag *Aggregator) aggregateState(ctx context.Context, height uint64, exact bool) (*attestation.AttestationProof, uint64, error) {
	responses := ag.fanOut(ctx, func(qctx context.Context, c AttestorClient) ([]byte, []byte, error) {
		resp, err := c.StateAttestation(qctx, height, exact)
		if err != nil {
			return nil, nil, err
		}
		return resp.Attestation, resp.Signature, nil
	})

	accept := func(h uint64) bool { return h >= height }
	if exact {
		accept = func(h uint64) bool { return h == height }
	}

	return ag.selectQuorum(responses, accept, func(payload []byte) (uint64, error) {
		stateAttestation, err := attestation.ABIDecodeStateAttestation(payload)
		if err != nil {
			return 0, err
		}
		return stateAttestation.Height, nil
	})
}

// AggregatePacketAttestations aggregates a packet attestation covering
// packetIDs at the highest quorum-agreed height at or above minHeight.
func (ag *Aggregator) AggregatePacketAttestations(ctx context.Context, minHeight uint64, packetIDs [][]byte) (*attestation.AttestationProof, uint64, error) {
	key := packetCacheKey(minHeight, packetIDs)
	if cached, found := ag.packetCache.get(key); found {
		return cached.proof, cached.height, nil
	}

	responses := ag.fanOut(ctx, func(qctx context.Context, c AttestorClient) ([]byte, []byte, error) {
		resp, err := c.PacketAttestations(qctx, minHeight, packetIDs)
		if err != nil {
			return nil, nil, err
		}
		return resp.Attestation, resp.Signature, nil
	})

	proof, height, err := ag.selectQuorum(responses, func(h uint64) bool { return h >= minHeight }, func(payload []byte) (uint64, error) {
		packetAttestation, err := attestation.ABIDecodePacketAttestation(payload)
		if err != nil {
			return 0, err
		}
		return packetAttestation.Height, nil
	})
	if err != nil {
		return nil, 0, err
	}

	ag.packetCache.add(key, cachedResult{proof: proof, height: height})
	return proof, height, nil
}

// RelayAttestations resolves the packet attestation first and then aggregates
// a state attestation at that exact height, guaranteeing the timestamp handed
// to the light client is consistent with the attested packet set.
func (ag *Aggregator) RelayAttestations(ctx context.Context, minHeight uint64, packetIDs [][]byte) (stateProof, packetProof *attestation.AttestationProof, height uint64, err error) {
	packetProof, height, err = ag.AggregatePacketAttestations(ctx, minHeight, packetIDs)
	if err != nil {
		return nil, nil, 0, err
	}

	stateProof, err = ag.AggregateStateAttestationAt(ctx, height)
	if err != nil {
		return nil, nil, 0, err
	}

	return stateProof, packetProof, height, nil
}

// signedPayload is one attestor's answer for the current round.
type signedPayload struct {
	endpoint  string
	payload   []byte
	signature []byte
}

// fanOut queries every attestor concurrently with a per-query timeout and
// collects whatever came back in time. Slow or failing attestors are logged
// and excluded from the round; they never block or fail it.
func (ag *Aggregator) fanOut(ctx context.Context, query func(ctx context.Context, c AttestorClient) ([]byte, []byte, error)) []signedPayload {
	var (
		mu        sync.Mutex
		responses []signedPayload
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range ag.clients {
		c := c
		g.Go(func() error {
			qctx, cancel := context.WithTimeout(gctx, ag.queryTimeout)
			defer cancel()

			payload, sig, err := query(qctx, c)
			if err != nil {
				ag.logger.Debug("attestor excluded from round", "endpoint", c.Endpoint(), "err", err)
				return nil
			}

			mu.Lock()
			responses = append(responses, signedPayload{endpoint: c.Endpoint(), payload: payload, signature: sig})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return responses
}

// payloadGroup collects the signatures over one exact payload byte string.
type payloadGroup struct {
	payload []byte
	height  uint64
	signers map[common.Address][]byte
}

// selectQuorum groups responses by byte-identical payload, counts distinct
// signers per group, and returns a proof for the highest height whose group
// meets the quorum. Grouping on exact bytes means attestors that disagree on
// content for the same height are never merged, and makes the result
// independent of response arrival order.
func (ag *Aggregator) selectQuorum(responses []signedPayload, accept func(uint64) bool, decodeHeight func([]byte) (uint64, error)) (*attestation.AttestationProof, uint64, error) {
	if uint32(len(responses)) < ag.quorum {
		return nil, 0, errorsmod.Wrapf(ErrInsufficientAttestors, "%d attestors responded, quorum is %d", len(responses), ag.quorum)
	}

	groups := make(map[string]*payloadGroup)
	for _, resp := range responses {
		height, err := decodeHeight(resp.payload)
		if err != nil {
			ag.logger.Error("discarding undecodable attestation", "endpoint", resp.endpoint, "err", err)
			continue
		}
		if !accept(height) {
			ag.logger.Debug("discarding attestation at unacceptable height", "endpoint", resp.endpoint, "height", height)
			continue
		}

		digest := attestation.Digest(resp.payload)
		signer, err := attestation.RecoverSigner(digest, resp.signature)
		if err != nil {
			ag.logger.Error("discarding attestation with unrecoverable signature", "endpoint", resp.endpoint, "err", err)
			continue
		}

		key := string(resp.payload)
		group, found := groups[key]
		if !found {
			group = &payloadGroup{
				payload: resp.payload,
				height:  height,
				signers: make(map[common.Address][]byte),
			}
			groups[key] = group
		}
		group.signers[signer] = resp.signature
	}

	var best *payloadGroup
	for _, group := range groups {
		if uint32(len(group.signers)) < ag.quorum {
			continue
		}
		// Ties between equally-high groups break on payload bytes so the
		// winner is deterministic for a fixed response set.
		if best == nil || group.height > best.height ||
			(group.height == best.height && string(group.payload) > string(best.payload)) {
			best = group
		}
	}

	if best == nil {
		return nil, 0, errorsmod.Wrapf(ErrQuorumNotMet, "no agreeing group among %d responses reached quorum %d", len(responses), ag.quorum)
	}

	return &attestation.AttestationProof{
		AttestationData: best.payload,
		Signatures:      sortedSignatures(best.signers),
	}, best.height, nil
}

// sortedSignatures orders signatures by signer address so the assembled proof
// is deterministic for a fixed response set.
func sortedSignatures(signers map[common.Address][]byte) [][]byte {
	addrs := make([]common.Address, 0, len(signers))
	for addr := range signers {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i].Hex() < addrs[j].Hex()
	})

	sigs := make([][]byte, len(addrs))
	for i, addr := range addrs {
		sigs[i] = signers[addr]
	}
	return sigs
}
