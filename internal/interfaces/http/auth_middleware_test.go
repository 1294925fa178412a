package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "prueba"
	testIssuer    = "tienda-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRol para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRol(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado (sin superusuario).
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, false, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRol
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRol_AdministradorAccedeRutaAdministrador(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdministrador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"administrador debe poder acceder a ruta restringida a administrador")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.RoleAdministrador, body["role"])
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRol_GerenteAccedeRutaGerenteOAdministrador(t *testing.T) {
	app := buildTestApp(entity.RoleGerente, entity.RoleAdministrador)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleGerente))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"gerente debe poder acceder a ruta que permite gerente o administrador")
}

// Caso 1c: El alias legado "admin" en el token se canonicaliza y pasa.
func TestRequireRol_AliasAdminEquivaleAAdministrador(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdminAlias))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el alias legado admin debe equivaler a administrador")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRol_VendedorBloqueadoEnRutaAdministrador(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleVendedor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"vendedor no debe poder acceder a ruta restringida a administrador")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
	assert.Contains(t, string(body), "Se requiere rol: Administrador",
		"el mensaje debe nombrar los roles requeridos capitalizados")
}

// Caso 2b: cliente bloqueado en ruta de escritura, mensaje multi-rol.
func TestRequireRol_ClienteBloqueadoEnRutaEscritura(t *testing.T) {
	app := buildTestApp(entity.RoleGerente, entity.RoleAdministrador)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleCliente))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Gerente, Administrador",
		"el mensaje debe listar todos los roles permitidos")
}

// Caso 3: Superusuario → pasa aunque su rol no esté en el conjunto permitido.
func TestRequireRol_SuperusuarioSaltaVerificacion(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, entity.RoleVendedor, true, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"superusuario debe pasar cualquier verificación de rol")
}

// Caso 3b: Superusuario sin perfil (rol vacío) → también pasa.
func TestRequireRol_SuperusuarioSinPerfilPasa(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "", true, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 4: Token sin claim de rol (cuenta sin perfil) → HTTP 401 MISSING_ROLE.
func TestRequireRol_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "", false, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 5: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRol_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 6: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRol_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdminAlias))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
	assert.Equal(t, entity.RoleAdministrador, body["role"],
		"el middleware debe canonicalizar el alias admin")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la tabla Operations
// ──────────────────────────────────────────────────────────────────────────────

// La tabla de permisos se puede verificar sin invocar ningún handler.
func TestOperations_ConjuntosDeRoles(t *testing.T) {
	cases := []struct {
		operation string
		roles     []string
	}{
		{"category.create", []string{entity.RoleGerente, entity.RoleAdministrador}},
		{"category.delete", []string{entity.RoleAdministrador}},
		{"product.create", []string{entity.RoleGerente, entity.RoleAdministrador}},
		{"product.delete", []string{entity.RoleAdministrador}},
		{"supplier.update", []string{entity.RoleGerente, entity.RoleAdministrador}},
		{"customer.list", []string{entity.RoleAdministrador, entity.RoleGerente, entity.RoleVendedor}},
		{"customer.delete", []string{entity.RoleAdministrador}},
		{"customer.me.purchases", []string{entity.RoleCliente}},
		{"sale.create", []string{entity.RoleAdministrador, entity.RoleGerente}},
		{"report.view", []string{entity.RoleAdministrador, entity.RoleGerente, entity.RoleVendedor}},
		{"user.create", []string{entity.RoleAdministrador}},
	}
	for _, tc := range cases {
		got, ok := apphttp.Operations[tc.operation]
		require.True(t, ok, "operación %s debe estar declarada", tc.operation)
		assert.ElementsMatch(t, tc.roles, got, "roles de %s", tc.operation)
	}

	// Las operaciones de solo lectura generales no exigen rol.
	for _, op := range []string{"category.list", "product.list", "supplier.list", "dashboard.view"} {
		got, ok := apphttp.Operations[op]
		require.True(t, ok, "operación %s debe estar declarada", op)
		assert.Nil(t, got, "%s debe permitir cualquier usuario autenticado", op)
	}
}

// Un Gate sobre una operación no declarada se cierra con 403.
func TestGate_OperacionDesconocidaSeCierra(t *testing.T) {
	app := fiber.New()
	app.Get("/typo", apphttp.AuthMiddleware(testJWTSecret), apphttp.Gate("categoria.crear"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/typo", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdministrador))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
