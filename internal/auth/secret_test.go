// internal/auth/secret_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintextScheme(t *testing.T) {
	scheme := PlaintextScheme{}

	sealed, err := scheme.Seal("admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin123", sealed)

	assert.True(t, scheme.Verify("admin123", sealed))
	assert.False(t, scheme.Verify("admin124", sealed))
	assert.False(t, scheme.Verify("", sealed))
}

func TestArgon2Scheme(t *testing.T) {
	scheme := Argon2Scheme{}

	sealed, err := scheme.Seal("clave-segura")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "clave-segura")

	assert.True(t, scheme.Verify("clave-segura", sealed))
	assert.False(t, scheme.Verify("clave-insegura", sealed))
}

func TestArgon2SchemeSaltsDiffer(t *testing.T) {
	scheme := Argon2Scheme{}

	first, err := scheme.Seal("mismo-secreto")
	require.NoError(t, err)
	second, err := scheme.Seal("mismo-secreto")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, scheme.Verify("mismo-secreto", first))
	assert.True(t, scheme.Verify("mismo-secreto", second))
}

func TestArgon2SchemeRejectsMalformed(t *testing.T) {
	scheme := Argon2Scheme{}

	assert.False(t, scheme.Verify("x", "no-separator"))
	assert.False(t, scheme.Verify("x", "!!!$???"))
}
