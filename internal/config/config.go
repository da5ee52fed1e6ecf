// Package config loads the node configuration from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
	"github.com/rl1809/warehouse-mesh/internal/core/service"
)

const (
	BackendRedis = "redis"
	BackendMySQL = "mysql"
)

// Config describes one warehouse node. The peer table never contains the
// node's own index; a self entry in the environment is dropped on load.
type Config struct {
	ServiceName string `validate:"required"`
	NodeIndex   int    `validate:"gte=0"`
	NodeCount   int    `validate:"gte=2"`
	Peers       map[int]string

	HTTPAddr string `validate:"required"`
	GRPCAddr string `validate:"required"`

	LedgerBackend string `validate:"oneof=redis mysql"`
	RedisAddr     string
	MySQLDSN      string

	ForwardProbability float64 `validate:"gte=0,lte=1"`
	FailureProbability float64 `validate:"gte=0,lte=1"`
	FailureSeed        uint64

	SimulationEnabled bool
	OrderInterval     time.Duration `validate:"gt=0"`
	SupplyInterval    time.Duration `validate:"gt=0"`
}

// Load reads WAREHOUSE_* environment variables and validates the result.
// A configuration that leaves the node without any usable peer is rejected
// here, at startup, not per call.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WAREHOUSE")
	v.AutomaticEnv()

	v.SetDefault("node_index", 0)
	v.SetDefault("node_count", 0)
	v.SetDefault("peers", "")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("grpc_addr", ":50051")
	v.SetDefault("ledger_backend", BackendRedis)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("mysql_dsn", "")
	v.SetDefault("forward_probability", service.DefaultForwardProbability)
	v.SetDefault("failure_probability", domain.DefaultFailureProbability)
	v.SetDefault("failure_seed", 1)
	v.SetDefault("simulation_enabled", true)
	v.SetDefault("order_interval", 10*time.Second)
	v.SetDefault("supply_interval", 15*time.Second)

	peers, err := parsePeers(v.GetString("peers"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		NodeIndex:          v.GetInt("node_index"),
		NodeCount:          v.GetInt("node_count"),
		Peers:              peers,
		HTTPAddr:           v.GetString("http_addr"),
		GRPCAddr:           v.GetString("grpc_addr"),
		LedgerBackend:      v.GetString("ledger_backend"),
		RedisAddr:          v.GetString("redis_addr"),
		MySQLDSN:           v.GetString("mysql_dsn"),
		ForwardProbability: v.GetFloat64("forward_probability"),
		FailureProbability: v.GetFloat64("failure_probability"),
		FailureSeed:        v.GetUint64("failure_seed"),
		SimulationEnabled:  v.GetBool("simulation_enabled"),
		OrderInterval:      v.GetDuration("order_interval"),
		SupplyInterval:     v.GetDuration("supply_interval"),
	}
	cfg.ServiceName = fmt.Sprintf("warehouse-%d", cfg.NodeIndex)

	// A peer table may be written for all nodes at once; the own entry is
	// simply ignored.
	delete(cfg.Peers, cfg.NodeIndex)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.NodeIndex >= c.NodeCount {
		return fmt.Errorf("node index %d out of range for %d nodes", c.NodeIndex, c.NodeCount)
	}
	if len(c.Peers) == 0 {
		return fmt.Errorf("no peers configured: forwarding is impossible")
	}
	for index := range c.Peers {
		if index < 0 || index >= c.NodeCount {
			return fmt.Errorf("peer index %d out of range for %d nodes", index, c.NodeCount)
		}
	}
	// The router draws over every index, so a gap in the table would surface
	// as per-call forwarding failures instead of a startup error.
	for index := 0; index < c.NodeCount; index++ {
		if index == c.NodeIndex {
			continue
		}
		if _, ok := c.Peers[index]; !ok {
			return fmt.Errorf("no peer address for node %d: every index below %d needs one", index, c.NodeCount)
		}
	}
	if c.LedgerBackend == BackendMySQL && c.MySQLDSN == "" {
		return fmt.Errorf("mysql backend selected but no DSN configured")
	}
	return nil
}

// parsePeers reads a table of the form "0=host:port,1=host:port".
func parsePeers(raw string) (map[int]string, error) {
	peers := make(map[int]string)
	if raw == "" {
		return peers, nil
	}
	for _, entry := range strings.Split(raw, ",") {
		index, addr, found := strings.Cut(strings.TrimSpace(entry), "=")
		if !found {
			return nil, fmt.Errorf("invalid peer entry %q, want index=address", entry)
		}
		i, err := strconv.Atoi(index)
		if err != nil {
			return nil, fmt.Errorf("invalid peer index %q: %w", index, err)
		}
		peers[i] = addr
	}
	return peers, nil
}
