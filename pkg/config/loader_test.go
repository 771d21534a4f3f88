package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blog/pkg/config"
)

type serverConfig struct {
	Addr    string        `env:"CFG_TEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
}

type secretConfig struct {
	Key string `env:"CFG_TEST_KEY,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("CFG_TEST_ADDR")
		os.Unsetenv("CFG_TEST_TIMEOUT")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CFG_TEST_ADDR", ":9000")
		t.Setenv("CFG_TEST_TIMEOUT", "1m")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Setenv("BLOG_CFG_TEST_ADDR", ":7000")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("BLOG_")))
		assert.Equal(t, ":7000", cfg.Addr)
	})

	t.Run("missing required value", func(t *testing.T) {
		os.Unsetenv("CFG_TEST_KEY")

		var cfg secretConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("env file", func(t *testing.T) {
		os.Unsetenv("CFG_TEST_KEY")
		t.Cleanup(func() { os.Unsetenv("CFG_TEST_KEY") })

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_KEY=from-file\n"), 0o600))

		var cfg secretConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
		assert.Equal(t, "from-file", cfg.Key)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg serverConfig
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "nope.env")))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[serverConfig](nil), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		os.Unsetenv("CFG_TEST_KEY")
		var cfg secretConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
