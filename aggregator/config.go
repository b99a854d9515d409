package aggregator

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	errorsmod "cosmossdk.io/errors"
)

// Default cache bounds; entries are small (one proof each), the bound exists
// to keep long-running aggregators from growing without limit.
const (
	DefaultStateCacheMaxEntries  = 1024
	DefaultPacketCacheMaxEntries = 1024
	DefaultQueryTimeout          = 5 * time.Second
)

// Config holds the aggregator daemon configuration.
type Config struct {
	// AttestorEndpoints lists the attestor gRPC endpoints to fan out to.
	AttestorEndpoints []string `mapstructure:"attestor_endpoints"`
	// QuorumThreshold is the minimum number of distinct agreeing signers.
	QuorumThreshold uint32 `mapstructure:"quorum_threshold"`
	// AttestorQueryTimeoutMS bounds each per-attestor query.
	AttestorQueryTimeoutMS int `mapstructure:"attestor_query_timeout_ms"`
	// StateCacheMaxEntries and PacketCacheMaxEntries bound the result caches.
	StateCacheMaxEntries  int `mapstructure:"state_cache_max_entries"`
	PacketCacheMaxEntries int `mapstructure:"packet_cache_max_entries"`
	// ListenAddress is the gRPC listen address.
	ListenAddress string `mapstructure:"listen_address"`
	// LogLevel and LogFormat configure the daemon logger.
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

func DefaultConfig() Config {
	return Config{
		AttestorQueryTimeoutMS: int(DefaultQueryTimeout / time.Millisecond),
		StateCacheMaxEntries:   DefaultStateCacheMaxEntries,
		PacketCacheMaxEntries:  DefaultPacketCacheMaxEntries,
		ListenAddress:          "localhost:9190",
		LogLevel:               "info",
		LogFormat:              "plain",
	}
}

// LoadConfig reads the aggregator config out of v.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errorsmod.Wrapf(ErrInvalidConfig, "failed to unmarshal config: %v", err)
	}
	// Endpoint lists may arrive as a comma-separated string from env vars.
	if len(cfg.AttestorEndpoints) == 1 && strings.Contains(cfg.AttestorEndpoints[0], ",") {
		cfg.AttestorEndpoints = strings.Split(cfg.AttestorEndpoints[0], ",")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.AttestorEndpoints) == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "attestor endpoints cannot be empty")
	}
	if c.QuorumThreshold == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "quorum threshold cannot be 0")
	}
	if int(c.QuorumThreshold) > len(c.AttestorEndpoints) {
		return errorsmod.Wrapf(ErrInvalidConfig, "quorum threshold %d exceeds %d attestor endpoints", c.QuorumThreshold, len(c.AttestorEndpoints))
	}
	if c.AttestorQueryTimeoutMS <= 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "attestor query timeout must be positive")
	}
	if c.StateCacheMaxEntries <= 0 || c.PacketCacheMaxEntries <= 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "cache sizes must be positive")
	}
	if c.ListenAddress == "" {
		return errorsmod.Wrap(ErrInvalidConfig, "listen address cannot be empty")
	}
	return nil
}

// QueryTimeout returns the per-attestor timeout as a duration.
func (c Config) QueryTimeout() time.Duration {
	return time.Duration(c.AttestorQueryTimeoutMS) * time.Millisecond
}
