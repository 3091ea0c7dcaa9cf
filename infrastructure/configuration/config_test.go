package configuration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConfiguration is a smoke test over the configuration package defaults.
func TestConfiguration(t *testing.T) {
	t.Run("configuration_struct_exists", func(t *testing.T) {
		require.NotNil(t, &C, "Configuration should not be nil")
		require.NotNil(t, &C.App, "App configuration should exist")
		require.NotNil(t, &C.Database, "Database configuration should exist")
	})

	t.Run("configuration_defaults_applied", func(t *testing.T) {
		config := &C

		require.NotEmpty(t, config.Database.Mongo.Host, "Mongo host should default")
		require.NotEmpty(t, config.Database.Mongo.Port, "Mongo port should default")
		require.NotEmpty(t, config.Database.Mongo.Name, "Mongo database name should default")
		require.NotZero(t, config.App.Port, "App port should default")
	})
}
