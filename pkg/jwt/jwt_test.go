package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

const (
	testSecret = "secret-de-pruebas"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func TestGenerateAndParse_ConRolYSuperusuario(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "maria", "gerente", true, "tienda-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, "gerente", claims.Role)
	assert.True(t, claims.Superuser)
	assert.Equal(t, testUserID, claims.Subject)
}

func TestParse_RolVacioSePreserva(t *testing.T) {
	// Una cuenta sin perfil viaja con rol vacío; el gate decide después.
	tok, err := pkgjwt.Generate(testSecret, testUserID, "sinperfil", "", false, "tienda-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
	assert.False(t, claims.Superuser)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, "maria", "vendedor", false, "tienda-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "maria", "administrador", false, "tienda-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "maria", "vendedor", false, "tienda-test", 60)
	assert.Error(t, err)
}
