package aggregator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru"

	"github.com/cosmos/eureka-attestation/attestation"
)

// cachedResult is one successful aggregation round.
type cachedResult struct {
	proof  *attestation.AttestationProof
	height uint64
}

// proofCache is a bounded LRU of aggregation results. Repeated relay attempts
// for the same packets hit the cache instead of re-querying every attestor.
// lru.Cache is safe for concurrent use, so callers never serialize requests.
type proofCache struct {
	cache *lru.Cache
}

func newProofCache(size int) (*proofCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &proofCache{cache: cache}, nil
}

func (p *proofCache) get(key string) (cachedResult, bool) {
	v, found := p.cache.Get(key)
	if !found {
		return cachedResult{}, false
	}
	return v.(cachedResult), true
}

func (p *proofCache) add(key string, result cachedResult) {
	p.cache.Add(key, result)
}

func stateCacheKey(height uint64, exact bool) string {
	return fmt.Sprintf("state/%d/%t", height, exact)
}

// packetCacheKey hashes the packet-id set so the key is independent of the
// order the relayer listed the ids in.
func packetCacheKey(minHeight uint64, packetIDs [][]byte) string {
	sorted := make([]string, len(packetIDs))
	for i, id := range packetIDs {
		sorted[i] = hex.EncodeToString(id)
	}
	sort.Strings(sorted)

	h := sha256.New()
	for _, id := range sorted {
		h.Write([]byte(id))
		h.Write([]byte{'/'})
	}
	return fmt.Sprintf("packet/%d/%x", minHeight, h.Sum(nil))
}
