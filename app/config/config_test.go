package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/app/config"
)

var requiredEnv = map[string]string{
	"DATABASE_URL":     "postgres://newsdesk_user:pw@newsdesk-postgres:5432/newsdesk?sslmode=require",
	"ARTICLES_API_URL": "https://articles.example.com/v1/articles",
	"ARTICLES_API_KEY": "test-key",
	"WORKFLOW_URL":     "https://workflow.example.com/webhook/summarize",
}

func setEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func TestConfig_Load(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(*testing.T, *config.Config)
		wantErr bool
	}{
		{
			name:    "default configuration",
			envVars: requiredEnv,
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "9600", cfg.Port)
				assert.Equal(t, "0.0.0.0", cfg.Host)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, requiredEnv["DATABASE_URL"], cfg.DatabaseURL)
				assert.Equal(t, requiredEnv["ARTICLES_API_URL"], cfg.ArticlesAPIURL)
				assert.Equal(t, "test-key", cfg.ArticlesAPIKey)
				assert.Equal(t, requiredEnv["WORKFLOW_URL"], cfg.WorkflowURL)
				assert.Equal(t, 30*time.Second, cfg.ClientTimeout)
				assert.True(t, cfg.EnableMetrics)
			},
		},
		{
			name: "custom configuration",
			envVars: merge(requiredEnv, map[string]string{
				"NEWSDESK_PORT":  "8080",
				"NEWSDESK_HOST":  "127.0.0.1",
				"LOG_LEVEL":      "debug",
				"CLIENT_TIMEOUT": "5s",
				"ENABLE_METRICS": "false",
				"DB_HOST":        "db.internal",
				"DB_SSL_MODE":    "disable",
			}),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, "127.0.0.1", cfg.Host)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, 5*time.Second, cfg.ClientTimeout)
				assert.False(t, cfg.EnableMetrics)
				assert.Equal(t, "db.internal", cfg.DatabaseHost)
				assert.Equal(t, "disable", cfg.DatabaseSSLMode)
			},
		},
		{
			name:    "missing database url",
			envVars: without(requiredEnv, "DATABASE_URL"),
			wantErr: true,
		},
		{
			name:    "missing articles api url",
			envVars: without(requiredEnv, "ARTICLES_API_URL"),
			wantErr: true,
		},
		{
			name:    "missing articles api key",
			envVars: without(requiredEnv, "ARTICLES_API_KEY"),
			wantErr: true,
		},
		{
			name:    "missing workflow url",
			envVars: without(requiredEnv, "WORKFLOW_URL"),
			wantErr: true,
		},
		{
			name: "invalid port",
			envVars: merge(requiredEnv, map[string]string{
				"NEWSDESK_PORT": "70000",
			}),
			wantErr: true,
		},
		{
			name: "invalid log level",
			envVars: merge(requiredEnv, map[string]string{
				"LOG_LEVEL": "verbose",
			}),
			wantErr: true,
		},
		{
			name: "invalid workflow url",
			envVars: merge(requiredEnv, map[string]string{
				"WORKFLOW_URL": "not a url",
			}),
			wantErr: true,
		},
		{
			name: "client timeout too small",
			envVars: merge(requiredEnv, map[string]string{
				"CLIENT_TIMEOUT": "100ms",
			}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.envVars)

			cfg, err := config.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestConfig_Load_FileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newsdesk.yaml")
	content := []byte("port: \"7070\"\nlog_level: warn\nclient_timeout: 10s\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	setEnv(t, requiredEnv)
	t.Setenv("NEWSDESK_CONFIG_FILE", path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ClientTimeout)
}

func TestConfig_Load_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newsdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\n"), 0o600))

	setEnv(t, requiredEnv)
	t.Setenv("NEWSDESK_CONFIG_FILE", path)
	t.Setenv("NEWSDESK_PORT", "8081")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
}

func merge(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func without(m map[string]string, keys ...string) map[string]string {
	out := merge(m)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
