package attestor

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/viper"

	errorsmod "cosmossdk.io/errors"
)

// Chain families an attestor can watch.
const (
	ChainKindEVM    = "evm"
	ChainKindCosmos = "cosmos"
)

// Config holds the attestor daemon configuration.
type Config struct {
	// ChainKind selects the adapter: "evm" or "cosmos".
	ChainKind string `mapstructure:"chain_kind"`
	// ChainID identifies the watched chain.
	ChainID string `mapstructure:"chain_id"`
	// RPCURL is the chain's RPC endpoint.
	RPCURL string `mapstructure:"rpc_url"`
	// RouterAddress is the IBC router contract (EVM chains only).
	RouterAddress string `mapstructure:"router_address"`
	// CommitmentSlot is the router's commitment mapping slot (EVM chains only).
	CommitmentSlot uint64 `mapstructure:"commitment_slot"`
	// SigningKey is the attestor's hex-encoded secp256k1 private key.
	SigningKey string `mapstructure:"signing_key"`
	// ListenAddress is the gRPC listen address.
	ListenAddress string `mapstructure:"listen_address"`
	// MaxQueryConcurrency bounds the packet query fan-out per request.
	MaxQueryConcurrency int `mapstructure:"max_query_concurrency"`
	// LogLevel and LogFormat configure the daemon logger.
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// DefaultConfig returns a config with sane defaults; chain and key fields must
// still be provided.
func DefaultConfig() Config {
	return Config{
		ChainKind:           ChainKindEVM,
		ListenAddress:       "localhost:9090",
		MaxQueryConcurrency: DefaultMaxQueryConcurrency,
		LogLevel:            "info",
		LogFormat:           "plain",
	}
}

// LoadConfig reads the attestor config out of v.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errorsmod.Wrapf(ErrInvalidConfig, "failed to unmarshal config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.ChainKind {
	case ChainKindEVM:
		if !common.IsHexAddress(c.RouterAddress) {
			return errorsmod.Wrapf(ErrInvalidConfig, "invalid router address %q", c.RouterAddress)
		}
	case ChainKindCosmos:
	default:
		return errorsmod.Wrapf(ErrInvalidConfig, "unknown chain kind %q", c.ChainKind)
	}

	if c.ChainID == "" {
		return errorsmod.Wrap(ErrInvalidConfig, "chain id cannot be empty")
	}
	if c.RPCURL == "" {
		return errorsmod.Wrap(ErrInvalidConfig, "rpc url cannot be empty")
	}
	if c.SigningKey == "" {
		return errorsmod.Wrap(ErrInvalidConfig, "signing key cannot be empty")
	}
	if c.ListenAddress == "" {
		return errorsmod.Wrap(ErrInvalidConfig, "listen address cannot be empty")
	}

	return nil
}

// ParseSigningKey decodes the configured hex private key.
func (c Config) ParseSigningKey() (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(c.SigningKey)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "invalid signing key: %v", err)
	}
	return key, nil
}

// NewChainAdapter builds the adapter the config selects.
func NewChainAdapter(ctx context.Context, c Config) (ChainAdapter, error) {
	switch c.ChainKind {
	case ChainKindEVM:
		return NewEVMAdapter(ctx, c.ChainID, c.RPCURL, common.HexToAddress(c.RouterAddress), c.CommitmentSlot)
	case ChainKindCosmos:
		return NewCosmosAdapter(c.ChainID, c.RPCURL)
	default:
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "unknown chain kind %q", c.ChainKind)
	}
}
