package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "novel-writer", cfg.App.Name)
	assert.Equal(t, "openai", cfg.LLM.DefaultProvider)
	assert.Equal(t, "Chinese", cfg.Generation.Language)
	assert.Equal(t, 5, cfg.Generation.MaxAttempts)
	assert.Equal(t, 100, cfg.Generation.ContextTailRunes)
	assert.Equal(t, "fixed", cfg.Pacing.Mode)
	assert.Equal(t, 20*time.Second, cfg.Pacing.Interval)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	content := []byte(`
generation:
  language: English
  max_attempts: 3
pacing:
  mode: redis
  redis:
    limit: 7
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), content, 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "English", cfg.Generation.Language)
	assert.Equal(t, 3, cfg.Generation.MaxAttempts)
	assert.Equal(t, "redis", cfg.Pacing.Mode)
	assert.Equal(t, 7, cfg.Pacing.Redis.Limit)
	// 未覆盖的键回落默认值
	assert.Equal(t, 100, cfg.Generation.ContextTailRunes)
	assert.Equal(t, "pacing:llm", cfg.Pacing.Redis.Key)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("NW_TEST_SET", "from-env")
	os.Unsetenv("NW_TEST_UNSET")

	// 已设置的变量取环境值，默认值被忽略
	assert.Equal(t, "from-env", expandEnv("${NW_TEST_SET:fallback}"))
	// 未设置的变量取默认值
	assert.Equal(t, "fallback", expandEnv("${NW_TEST_UNSET:fallback}"))
	// 空默认值
	assert.Equal(t, "", expandEnv("${NW_TEST_UNSET:}"))
	// 未设置且无默认值时原样保留
	assert.Equal(t, "${NW_TEST_UNSET}", expandEnv("${NW_TEST_UNSET}"))
	// 混合文本
	assert.Equal(t, "addr=localhost:6379", expandEnv("addr=${NW_TEST_UNSET:localhost}:6379"))
}
