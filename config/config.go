package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Elastic  ElasticsearchConfig
	Stock    StockConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
	HTTPAddr string
	// DataSource is "postgres" or "memory". Memory serves the demo catalogue.
	DataSource string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
	AutoMigrate     bool
}

// An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// No brokers disables publishing and the transfer listener.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// No addresses disables search narrowing.
type ElasticsearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	// ResyncInterval rebuilds the product index periodically. Zero syncs once at startup.
	ResyncInterval time.Duration
}

type StockConfig struct {
	LowThreshold      int64
	CriticalThreshold int64
	FetchConcurrency  int
	DraftTTL          time.Duration
}

type CacheConfig struct {
	ProductListTTL time.Duration
}

func (c *Config) RedisEnabled() bool   { return c.Redis.Addr != "" }
func (c *Config) KafkaEnabled() bool   { return len(c.Kafka.Brokers) > 0 }
func (c *Config) ElasticEnabled() bool { return len(c.Elastic.Addresses) > 0 }

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:     getEnv("APP_ENV", "dev"),
			GRPCPort:   getEnv("GRPC_PORT", ":8083"),
			HTTPAddr:   getEnv("HTTP_ADDR", ":9093"),
			DataSource: getEnv("DATA_SOURCE", "postgres"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_stock"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
			AutoMigrate:     getEnvBool("POSTGRES_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC_TRANSFERS", "transfers.events"),
			GroupID: getEnv("KAFKA_GROUP_STOCK", "stock"),
		},
		Elastic: ElasticsearchConfig{
			Addresses: getEnvSlice("ELASTICSEARCH_ADDRESSES", []string{"http://localhost:9200"}),
			Username:  getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:  getEnv("ELASTICSEARCH_PASSWORD", ""),

			ResyncInterval: getEnvDuration("ELASTICSEARCH_RESYNC_INTERVAL", 15*time.Minute),
		},
		Stock: StockConfig{
			LowThreshold:      int64(getEnvInt("STOCK_LOW_THRESHOLD", 50)),
			CriticalThreshold: int64(getEnvInt("STOCK_CRITICAL_THRESHOLD", 30)),
			FetchConcurrency:  getEnvInt("STOCK_FETCH_CONCURRENCY", 8),
			DraftTTL:          getEnvDuration("TRANSFER_DRAFT_TTL", 24*time.Hour),
		},
		Cache: CacheConfig{
			ProductListTTL: getEnvDuration("CACHE_PRODUCT_LIST_TTL", 5*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// An empty value yields an empty slice, which disables the dependency.
func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
