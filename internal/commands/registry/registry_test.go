package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/devquest/devquest/internal/config"
	"github.com/devquest/devquest/internal/i18n"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name: m.name,
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewRegistry(&config.Config{}, translations)
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register new factory successfully", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)

		// Act
		err := registry.Register("score", &mockCommandFactory{name: "score"})

		// Assert
		assert.NoError(t, err)
		assert.Len(t, registry.factories, 1)
		assert.Contains(t, registry.factories, "score")
	})

	t.Run("should return error when registering duplicate factory", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)
		factory := &mockCommandFactory{name: "score"}

		// Act
		_ = registry.Register("score", factory)
		err := registry.Register("score", factory)

		// Assert
		require.Error(t, err)
		assert.Equal(t, "Command score is already registered", err.Error())
		assert.Len(t, registry.factories, 1)
	})
}

func TestRegistry_CreateCommands(t *testing.T) {
	t.Run("should create commands sorted by name", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)
		_ = registry.Register("validate", &mockCommandFactory{name: "validate"})
		_ = registry.Register("cache", &mockCommandFactory{name: "cache"})
		_ = registry.Register("score", &mockCommandFactory{name: "score"})

		// Act
		commands := registry.CreateCommands()

		// Assert
		require.Len(t, commands, 3)
		assert.Equal(t, "cache", commands[0].Name)
		assert.Equal(t, "score", commands[1].Name)
		assert.Equal(t, "validate", commands[2].Name)
	})
}
