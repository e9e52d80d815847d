package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "SERVER_HOST", "MODEL_PATH", "SCALER_PATH", "SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("Addr() = %s, want 0.0.0.0:8000", cfg.Addr())
	}
	if cfg.Inference.ModelPath != "models/calories_model.json" {
		t.Errorf("Inference.ModelPath = %s", cfg.Inference.ModelPath)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MODEL_PATH", "/srv/model.yaml")
	t.Setenv("LOG_MAX_BACKUPS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Inference.ModelPath != "/srv/model.yaml" {
		t.Errorf("Inference.ModelPath = %s", cfg.Inference.ModelPath)
	}
	// Invalid integers fall back to the default
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging.MaxBackups = %d, want 3", cfg.Logging.MaxBackups)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out of range port")
	}
}

func TestOrigins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "wildcard", input: "*", want: []string{"*"}},
		{name: "list", input: "http://a.test, http://b.test", want: []string{"http://a.test", "http://b.test"}},
		{name: "blank entries", input: " , ", want: []string{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{AllowedOrigins: tt.input}}
			got := cfg.Origins()
			if len(got) != len(tt.want) {
				t.Fatalf("Origins() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Origins()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}
