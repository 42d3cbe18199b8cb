package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/devquest/devquest/internal/cache"
	"github.com/devquest/devquest/internal/config"
	domainErrors "github.com/devquest/devquest/internal/errors"
	"github.com/devquest/devquest/internal/i18n"
)

func TestCacheCleanCommand(t *testing.T) {
	color.NoColor = true
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	run := func(cfg *config.Config) (string, error) {
		var out bytes.Buffer
		app := &cli.Command{
			Name:     "devquest",
			Writer:   &out,
			Commands: []*cli.Command{NewCacheCommand().CreateCommand(translations, cfg)},
		}
		err := app.Run(context.Background(), []string{"devquest", "cache", "clean"})
		return out.String(), err
	}

	t.Run("should remove cached scores", func(t *testing.T) {
		// Arrange
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)
		c, err := cache.NewCache(cfg.CacheDir(), time.Hour)
		require.NoError(t, err)
		key := c.GenerateHash("acme/widget#1|en")
		require.NoError(t, c.Set(key, map[string]int{"score": 91}))

		// Act
		out, err := run(cfg)

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out, "Score cache cleared")
		_, ok, err := c.Get(key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should fail when the cache directory cannot be created", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))
		cfg := config.Default()
		cfg.PathFile = filepath.Join(blocker, "config.json")

		_, err := run(cfg)

		assert.ErrorIs(t, err, domainErrors.ErrCacheUnavailable)
	})
}
