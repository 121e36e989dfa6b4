package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
environment: test
server:
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 5s
providers:
  alphavantage:
    api_key: demo
    timeout: 10s
  newsapi:
    api_key: demo
    max_headlines: 10
model:
  backend: heuristic
cache:
  record_ttl: 15m
watchlist:
  tickers: [AAPL, MSFT]
  interval: 1h
  workers: 2
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	c, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Environment != "test" || c.Server.Port != 8080 {
		t.Errorf("basic fields wrong: %+v", c)
	}
	if c.Cache.RecordTTL != 15*time.Minute {
		t.Errorf("record_ttl = %v", c.Cache.RecordTTL)
	}
	if len(c.Watchlist.Tickers) != 2 || c.Watchlist.Interval != time.Hour {
		t.Errorf("watchlist wrong: %+v", c.Watchlist)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		c := &Config{Environment: "test"}
		c.Model.Backend = "heuristic"
		return c
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	c := base()
	c.Environment = ""
	if err := c.Validate(); err == nil {
		t.Error("missing environment accepted")
	}

	c = base()
	c.Model.Backend = "xgboost"
	if err := c.Validate(); err == nil {
		t.Error("unknown model backend accepted")
	}

	c = base()
	c.Model.Backend = "lightgbm"
	if err := c.Validate(); err == nil {
		t.Error("lightgbm without model path accepted")
	}
	c.Model.Path = "model.txt"
	if err := c.Validate(); err != nil {
		t.Errorf("lightgbm with path rejected: %v", err)
	}

	c = base()
	c.Kafka.Enabled = true
	if err := c.Validate(); err == nil {
		t.Error("kafka enabled without brokers accepted")
	}

	c = base()
	c.ClickHouse.Enabled = true
	if err := c.Validate(); err == nil {
		t.Error("clickhouse enabled without host accepted")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_KEY", "env-av-key")
	t.Setenv("NEWS_API_KEY", "env-news-key")
	t.Setenv("MODEL_BACKEND", "heuristic")
	t.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("WATCHLIST", "TSLA,NVDA,AMD")

	c, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if c.Providers.AlphaVantage.APIKey != "env-av-key" {
		t.Errorf("alphavantage key = %q", c.Providers.AlphaVantage.APIKey)
	}
	if c.Providers.NewsAPI.APIKey != "env-news-key" {
		t.Errorf("newsapi key = %q", c.Providers.NewsAPI.APIKey)
	}
	if !c.Kafka.Enabled || len(c.Kafka.Brokers) != 2 {
		t.Errorf("kafka override wrong: %+v", c.Kafka)
	}
	if !c.Cache.Redis.Enabled || c.Cache.Redis.Host != "redis.internal" || c.Cache.Redis.Port != 6380 {
		t.Errorf("redis override wrong: %+v", c.Cache.Redis)
	}
	if len(c.Watchlist.Tickers) != 3 || c.Watchlist.Tickers[0] != "TSLA" {
		t.Errorf("watchlist override wrong: %v", c.Watchlist.Tickers)
	}
}

func TestSplitHostPort(t *testing.T) {
	cases := []struct {
		in   string
		host string
		port int
	}{
		{"localhost:6379", "localhost", 6379},
		{"redis.internal", "redis.internal", 0},
		{"bad:port:x", "bad:port:x", 0},
	}
	for _, c := range cases {
		host, port := splitHostPort(c.in)
		if host != c.host || port != c.port {
			t.Errorf("splitHostPort(%q) = %q, %d", c.in, host, port)
		}
	}
}
