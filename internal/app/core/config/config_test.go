package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  grpc_addr: ":6000"
  shutdown_timeout: 3s
ledger:
  engine: lmax
  min_opening_balance: "250.5"
kafka:
  brokers: ["k1:9092", "k2:9092"]
rate_limit:
  window: 30s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.GRPCAddr != ":6000" || cfg.Server.HTTPAddr != ":8080" {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second || cfg.RateLimit.Window != 30*time.Second {
		t.Fatalf("durations not decoded: %+v %+v", cfg.Server, cfg.RateLimit)
	}
	if cfg.Ledger.Engine != EngineLMAX || cfg.Ledger.QueueSize != 1000 {
		t.Fatalf("unexpected ledger config: %+v", cfg.Ledger)
	}
	if !cfg.KafkaEnabled() || len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Topic != "bank.ledger.events" {
		t.Fatalf("unexpected kafka config: %+v", cfg.Kafka)
	}

	policy, err := cfg.Policy()
	if err != nil {
		t.Fatal(err)
	}
	if !policy.MinOpeningBalance.Equal(decimal.RequireFromString("250.50")) {
		t.Fatalf("min=%s", policy.MinOpeningBalance)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if cfg.Server != want.Server || cfg.Ledger != want.Ledger || cfg.RateLimit != want.RateLimit {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
	if cfg.KafkaEnabled() {
		t.Fatal("kafka should be disabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BANK_GRPC_ADDR", ":7000")
	t.Setenv("BANK_LEDGER_ENGINE", " LMAX ")
	t.Setenv("BANK_MIN_OPENING_BALANCE", "0")
	t.Setenv("BANK_KAFKA_BROKERS", "a:9092, b:9092,")
	t.Setenv("BANK_KAFKA_TOPIC", "events")

	cfg, err := Load(writeConfig(t, "ledger:\n  engine: mutex\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.GRPCAddr != ":7000" || cfg.Ledger.Engine != EngineLMAX || cfg.Kafka.Topic != "events" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Fatalf("brokers=%v", cfg.Kafka.Brokers)
	}
	policy, _ := cfg.Policy()
	if !policy.MinOpeningBalance.IsZero() {
		t.Fatalf("min=%s want 0", policy.MinOpeningBalance)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown engine", "ledger:\n  engine: raft\n"},
		{"bad decimal", "ledger:\n  min_opening_balance: \"ten\"\n"},
		{"negative minimum", "ledger:\n  min_opening_balance: \"-1\"\n"},
		{"bad yaml", "server: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Fatal("want error")
			}
		})
	}
}
