package lightclient

import (
	"sort"

	errorsmod "cosmossdk.io/errors"
)

// ConsensusState is the trusted (height, timestamp) pair stored per height.
// Timestamp is Unix seconds.
type ConsensusState struct {
	Timestamp uint64
}

// ValidateBasic defines basic validation for the attestation consensus state.
func (cs ConsensusState) ValidateBasic() error {
	if cs.Timestamp == 0 {
		return errorsmod.Wrap(ErrInvalidConsensus, "timestamp cannot be 0")
	}
	return nil
}

// ConsensusStore is the height-indexed consensus state storage owned by the
// embedding host (contract storage, CosmWasm state, or an in-memory map for
// the library embedding). The verification core only reads and writes through
// this interface and never owns a lock; hosts whose execution model allows
// concurrent updates are responsible for serializing them.
type ConsensusStore interface {
	// GetConsensusState returns the consensus state at height, if one exists.
	GetConsensusState(height uint64) (ConsensusState, bool)

	// SetConsensusState stores the consensus state at height.
	SetConsensusState(height uint64, cs ConsensusState)

	// GetNextConsensusState returns the stored state at the smallest height
	// strictly greater than height.
	GetNextConsensusState(height uint64) (uint64, ConsensusState, bool)

	// GetPrevConsensusState returns the stored state at the largest height
	// strictly smaller than height.
	GetPrevConsensusState(height uint64) (uint64, ConsensusState, bool)
}

// MemStore is a map-backed ConsensusStore for the library embedding and tests.
type MemStore struct {
	states map[uint64]ConsensusState
}

var _ ConsensusStore = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{states: make(map[uint64]ConsensusState)}
}

func (m *MemStore) GetConsensusState(height uint64) (ConsensusState, bool) {
	cs, found := m.states[height]
	return cs, found
}

func (m *MemStore) SetConsensusState(height uint64, cs ConsensusState) {
	m.states[height] = cs
}

func (m *MemStore) GetNextConsensusState(height uint64) (uint64, ConsensusState, bool) {
	for _, h := range m.sortedHeights() {
		if h > height {
			return h, m.states[h], true
		}
	}
	return 0, ConsensusState{}, false
}

func (m *MemStore) GetPrevConsensusState(height uint64) (uint64, ConsensusState, bool) {
	heights := m.sortedHeights()
	for i := len(heights) - 1; i >= 0; i-- {
		if heights[i] < height {
			return heights[i], m.states[heights[i]], true
		}
	}
	return 0, ConsensusState{}, false
}

func (m *MemStore) sortedHeights() []uint64 {
	heights := make([]uint64, 0, len(m.states))
	for h := range m.states {
		heights = append(heights, h)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	return heights
}
