package keepnote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SURREALDB_URL", "ws://localhost:8000")
	t.Setenv("JWT_SECRET", "test-secret")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.ServerPort)
	assert.Equal(t, 5, config.BcryptCost)
	assert.Equal(t, "keepnote", config.SurrealDB.Namespace)
	assert.Equal(t, "keepnote", config.SurrealDB.Database)
	assert.Equal(t, "ws://localhost:8000", config.SurrealDB.URL)
	assert.Equal(t, "test-secret", config.JWT.Secret)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SURREALDB_URL", "ws://db:8000")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9090")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("SURREALDB_NS", "prod")
	t.Setenv("SURREALDB_DB", "notes")
	t.Setenv("SURREALDB_USER", "root")
	t.Setenv("SURREALDB_PASS", "root")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.ServerPort)
	assert.Equal(t, 10, config.BcryptCost)
	assert.Equal(t, "prod", config.SurrealDB.Namespace)
	assert.Equal(t, "notes", config.SurrealDB.Database)
	assert.Equal(t, "root", config.SurrealDB.Username)
	assert.Equal(t, "root", config.SurrealDB.Password)
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("SURREALDB_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("SURREALDB_URL", "ws://localhost:8000")
	t.Setenv("JWT_SECRET", "")
	_, err = LoadConfig()
	assert.Error(t, err)
}
