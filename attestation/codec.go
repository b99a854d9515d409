package attestation

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	errorsmod "cosmossdk.io/errors"
)

var (
	uint64Type, _  = abi.NewType("uint64", "", nil)
	bytes32Type, _ = abi.NewType("bytes32", "", nil)

	stateAttestationArgs = abi.Arguments{
		{Name: "height", Type: uint64Type},
		{Name: "timestamp", Type: uint64Type},
	}

	packetCompactTupleType, _ = abi.NewType("tuple[]", "", []abi.ArgumentMarshaling{
		{Name: "path", Type: "bytes32"},
		{Name: "commitment", Type: "bytes32"},
	})

	packetAttestationArgs = abi.Arguments{
		{Name: "height", Type: uint64Type},
		{Name: "packets", Type: packetCompactTupleType},
	}
)

// Signable is implemented by every attestation payload with a canonical byte
// encoding. Two attestors signing the same logical claim must produce
// byte-identical payloads, so signatures from independent attestors can be
// batched against one digest.
type Signable interface {
	ABIEncode() ([]byte, error)
}

// ABIPacketCompact is the ABI-compatible representation with fixed-size arrays.
type ABIPacketCompact struct {
	Path       [32]byte
	Commitment [32]byte
}

// StateAttestation is a signed claim about a chain's timestamp at a height.
// It uses ABI encoding (not Protobuf) for cross-platform compatibility with
// the Solidity and CosmWasm light client embeddings. Timestamp is Unix seconds.
type StateAttestation struct {
	Height    uint64
	Timestamp uint64
}

// PacketAttestation is a signed claim about the packet commitments present on
// a chain at a height. It uses ABI encoding for cross-platform compatibility.
type PacketAttestation struct {
	Height  uint64
	Packets []PacketCompact
}

// PacketCompact pairs a commitment path with the packet commitment stored
// under it. A zero commitment attests that nothing is stored at the path.
type PacketCompact struct {
	Path       []byte
	Commitment []byte
}

func (sa *StateAttestation) ABIEncode() ([]byte, error) {
	return stateAttestationArgs.Pack(sa.Height, sa.Timestamp)
}

func (pa *PacketAttestation) ABIEncode() ([]byte, error) {
	packets := make([]ABIPacketCompact, len(pa.Packets))
	for i, p := range pa.Packets {
		packets[i] = ABIPacketCompact{
			Path:       BytesToBytes32(p.Path),
			Commitment: BytesToBytes32(p.Commitment),
		}
	}
	return packetAttestationArgs.Pack(pa.Height, packets)
}

func ABIDecodeStateAttestation(data []byte) (*StateAttestation, error) {
	unpacked, err := stateAttestationArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAttestationData, "failed to ABI decode state attestation: %v", err)
	}

	if len(unpacked) != 2 {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid state attestation: expected 2 fields")
	}

	height, ok := unpacked[0].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid height type")
	}

	timestamp, ok := unpacked[1].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid timestamp type")
	}

	return &StateAttestation{
		Height:    height,
		Timestamp: timestamp,
	}, nil
}

func ABIDecodePacketAttestation(data []byte) (*PacketAttestation, error) {
	unpacked, err := packetAttestationArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAttestationData, "failed to ABI decode packet attestation: %v", err)
	}

	if len(unpacked) != 2 {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid packet attestation: expected 2 fields")
	}

	height, ok := unpacked[0].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid height type")
	}

	abiPackets, ok := unpacked[1].([]struct {
		Path       [32]byte `json:"path"`
		Commitment [32]byte `json:"commitment"`
	})
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid packets type")
	}

	packets := make([]PacketCompact, len(abiPackets))
	for i, p := range abiPackets {
		packets[i] = PacketCompact{
			Path:       p.Path[:],
			Commitment: p.Commitment[:],
		}
	}

	return &PacketAttestation{
		Height:  height,
		Packets: packets,
	}, nil
}

// BytesToBytes32 left-aligns b into a fixed 32-byte array, truncating anything
// past 32 bytes.
func BytesToBytes32(b []byte) [32]byte {
	var result [32]byte
	copy(result[:], b)
	return result
}

func Uint64ToPaddedBytes(v uint64) []byte {
	return common.LeftPadBytes(new(big.Int).SetUint64(v).Bytes(), 32)
}
