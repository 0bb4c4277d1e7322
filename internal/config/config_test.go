package config

import (
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8090},
		Weaviate: WeaviateConfig{Endpoint: "http://localhost:8080/v1"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Weaviate.Endpoint != "http://localhost:8080/v1" {
		t.Errorf("default endpoint = %q", cfg.Weaviate.Endpoint)
	}
	if cfg.Weaviate.RequestTimeout != 30 {
		t.Errorf("default request timeout = %d, want 30", cfg.Weaviate.RequestTimeout)
	}
	if cfg.Cache.TTLSec != 60 {
		t.Errorf("default cache TTL = %d, want 60", cfg.Cache.TTLSec)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("default http timeouts = %+v", cfg.HTTP)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Weaviate: WeaviateConfig{Endpoint: "https://cluster.example.com/v1", RequestTimeout: 5},
		Cache:    CacheConfig{TTLSec: 300},
	}
	cfg.ApplyDefaults()

	if cfg.Weaviate.Endpoint != "https://cluster.example.com/v1" {
		t.Errorf("explicit endpoint overwritten: %q", cfg.Weaviate.Endpoint)
	}
	if cfg.Weaviate.RequestTimeout != 5 || cfg.Cache.TTLSec != 300 {
		t.Error("explicit timeouts overwritten")
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidate_BadPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d accepted", port)
		}
	}
}

func TestValidate_BadEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Weaviate.Endpoint = "localhost:8080"
	if err := cfg.Validate(); err == nil {
		t.Error("non-http endpoint accepted")
	}
}

func TestValidate_EmbeddingKeyWithoutModel(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.APIKey = "sk-test"
	cfg.Embedding.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Error("embedding key without a model accepted")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("WEAVIQ_TEST_VAR", "from-env")

	in := []byte("endpoint: ${WEAVIQ_TEST_VAR}")
	if got := string(expandEnvVars(in)); got != "endpoint: from-env" {
		t.Errorf("expandEnvVars = %q", got)
	}
}

func TestExpandEnvVars_Default(t *testing.T) {
	t.Setenv("WEAVIQ_TEST_UNSET", "")

	in := []byte("endpoint: ${WEAVIQ_TEST_UNSET:-http://fallback:8080/v1}")
	if got := string(expandEnvVars(in)); got != "endpoint: http://fallback:8080/v1" {
		t.Errorf("expandEnvVars with default = %q", got)
	}
}

func TestExpandEnvVars_SetBeatsDefault(t *testing.T) {
	t.Setenv("WEAVIQ_TEST_SET", "real")

	in := []byte("key: ${WEAVIQ_TEST_SET:-fallback}")
	if got := string(expandEnvVars(in)); got != "key: real" {
		t.Errorf("expandEnvVars = %q", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}

	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}
