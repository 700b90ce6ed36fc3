package config

import (
	"testing"
	"time"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()
	if cfg.Stock.LowThreshold != 50 || cfg.Stock.CriticalThreshold != 30 {
		t.Errorf("unexpected thresholds %+v", cfg.Stock)
	}
	if cfg.Kafka.Topic == "" {
		t.Error("expected a default transfer topic")
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("STOCK_LOW_THRESHOLD", "80")
	t.Setenv("CACHE_PRODUCT_LIST_TTL", "30s")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("ELASTICSEARCH_ADDRESSES", " http://a:9200 , http://b:9200 ")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("ELASTICSEARCH_RESYNC_INTERVAL", "0")

	cfg := LoadEnv()
	if cfg.Stock.LowThreshold != 80 {
		t.Errorf("expected low threshold 80, got %d", cfg.Stock.LowThreshold)
	}
	if cfg.Cache.ProductListTTL != 30*time.Second {
		t.Errorf("expected 30s ttl, got %s", cfg.Cache.ProductListTTL)
	}
	if cfg.KafkaEnabled() {
		t.Error("empty broker list should disable kafka")
	}
	if cfg.RedisEnabled() {
		t.Error("empty address should disable redis")
	}
	if got := cfg.Elastic.Addresses; len(got) != 2 || got[1] != "http://b:9200" {
		t.Errorf("unexpected addresses %v", got)
	}
	if cfg.Elastic.ResyncInterval != 0 {
		t.Errorf("expected resync disabled, got %s", cfg.Elastic.ResyncInterval)
	}
}
