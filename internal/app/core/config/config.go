package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// LedgerEngine 帳本引擎種類
type LedgerEngine string

const (
	// EngineMutex 一把 RWMutex 保護整本帳
	EngineMutex LedgerEngine = "mutex"
	// EngineLMAX 單一寫入者 Run Loop
	EngineLMAX LedgerEngine = "lmax"
)

// DefaultPath 預設設定檔位置
const DefaultPath = "config/config.yaml"

// Config 服務設定
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	GRPCAddr        string        `yaml:"grpc_addr"`
	HTTPAddr        string        `yaml:"http_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LedgerConfig struct {
	Engine LedgerEngine `yaml:"engine"`
	// MinOpeningBalance 以字串保存，避免 YAML 把金額解成 float
	MinOpeningBalance string `yaml:"min_opening_balance"`
	QueueSize         int    `yaml:"queue_size"`
}

type KafkaConfig struct {
	// Brokers 為空時不發布事件
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// Default 回傳全部使用預設值的設定
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// Load 讀取設定檔 → 補預設值 → 套用 .env 與環境變數
//
// 參數:
//
//	path: YAML 設定檔路徑；檔案不存在時只使用預設值
//
// 回傳:
//
//	Config: 設定
//	error: 解析失敗或設定值不合法
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("config file %s not found, using defaults", path)
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyDefaults()

	// .env 是選用的
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.GRPCAddr == "" {
		c.Server.GRPCAddr = ":50051"
	}
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Ledger.Engine == "" {
		c.Ledger.Engine = EngineMutex
	}
	if c.Ledger.MinOpeningBalance == "" {
		c.Ledger.MinOpeningBalance = "100"
	}
	if c.Ledger.QueueSize == 0 {
		c.Ledger.QueueSize = 1000
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "bank.ledger.events"
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 100
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = time.Minute
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("BANK_GRPC_ADDR"); ok && v != "" {
		c.Server.GRPCAddr = v
	}
	if v, ok := lookup("BANK_HTTP_ADDR"); ok && v != "" {
		c.Server.HTTPAddr = v
	}
	if v, ok := lookup("BANK_LEDGER_ENGINE"); ok && v != "" {
		c.Ledger.Engine = LedgerEngine(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := lookup("BANK_MIN_OPENING_BALANCE"); ok && v != "" {
		c.Ledger.MinOpeningBalance = v
	}
	if v, ok := lookup("BANK_LEDGER_QUEUE_SIZE"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Ledger.QueueSize = n
		} else {
			log.Printf("ignore BANK_LEDGER_QUEUE_SIZE=%q: %v", v, err)
		}
	}
	if v, ok := lookup("BANK_KAFKA_BROKERS"); ok {
		c.Kafka.Brokers = splitList(v)
	}
	if v, ok := lookup("BANK_KAFKA_TOPIC"); ok && v != "" {
		c.Kafka.Topic = v
	}
}

// Validate 檢查設定值
func (c Config) Validate() error {
	switch c.Ledger.Engine {
	case EngineMutex, EngineLMAX:
	default:
		return fmt.Errorf("invalid ledger engine %q (want %q or %q)", c.Ledger.Engine, EngineMutex, EngineLMAX)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if c.Ledger.QueueSize < 0 {
		return fmt.Errorf("invalid ledger queue size %d", c.Ledger.QueueSize)
	}
	return nil
}

// Policy 轉成帳本規則
func (c Config) Policy() (domain.Policy, error) {
	minimum, err := decimal.NewFromString(strings.TrimSpace(c.Ledger.MinOpeningBalance))
	if err != nil {
		return domain.Policy{}, fmt.Errorf("invalid min_opening_balance %q: %w", c.Ledger.MinOpeningBalance, err)
	}
	if minimum.IsNegative() {
		return domain.Policy{}, fmt.Errorf("min_opening_balance must not be negative, got %s", minimum)
	}
	return domain.Policy{MinOpeningBalance: minimum.Round(domain.CurrencyScale)}, nil
}

// KafkaEnabled 是否設定了 broker
func (c Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
