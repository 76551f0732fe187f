package http_test

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/domain/entity"
	apphttp "github.com/jhoicas/store-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/store-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "store-api-test"
	testExpMin    = 60
	testPassword  = "secreto123"
)

// memUserRepo repositorio de usuarios en memoria para los middlewares.
type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *memUserRepo) ExistsByEmail(email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *memUserRepo) FindAll() ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) Save(user *entity.User) error {
	r.users[user.Email] = user
	return nil
}
func (r *memUserRepo) Delete(email string) (bool, error) { return false, nil }

type noStores struct{}

func (noStores) StoreExists(string) bool { return false }

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware (Basic o Bearer) que carga el usuario en locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(t *testing.T, allowedRoles ...string) (*fiber.App, *auth.AuthUseCase) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &memUserRepo{users: map[string]*entity.User{
		"admin@example.com":   {Email: "admin@example.com", PasswordHash: string(hash), Role: entity.RoleAdmin, CreatedAt: time.Now()},
		"manager@example.com": {Email: "manager@example.com", PasswordHash: string(hash), Role: entity.RoleManager, CreatedAt: time.Now()},
		"user@example.com":    {Email: "user@example.com", PasswordHash: string(hash), Role: entity.RoleUser, CreatedAt: time.Now()},
	}}
	authUC := auth.NewAuthUseCase(repo, noStores{}, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(authUC),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app, authUC
}

func bearerFor(t *testing.T, email, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func basicFor(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

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
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → HTTP 401.
func TestAuthMiddleware_SinHeaderEs401(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_CREDENTIALS")
}

// Basic con credenciales correctas → HTTP 200.
func TestAuthMiddleware_BasicValido(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, basicFor("admin@example.com", testPassword))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Basic con password incorrecto → HTTP 401.
func TestAuthMiddleware_BasicPasswordIncorrecto(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, basicFor("admin@example.com", "incorrecto"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Bearer con token válido → HTTP 200.
func TestAuthMiddleware_BearerValido(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, bearerFor(t, "admin@example.com", entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Bearer firmado con otro secret → HTTP 401.
func TestAuthMiddleware_BearerFirmaInvalida(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	tok, err := pkgjwt.Generate("otro-secret", "admin@example.com", entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Bearer de un usuario que ya no existe en el repositorio → HTTP 401.
func TestAuthMiddleware_BearerUsuarioInexistente(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, bearerFor(t, "fantasma@example.com", entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Esquema desconocido → HTTP 401.
func TestAuthMiddleware_EsquemaDesconocido(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// El usuario tiene el rol requerido → HTTP 200.
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, basicFor("admin@example.com", testPassword))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_ManagerAccedeRutaAdminOManager(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin, entity.RoleManager)
	resp := doRequest(t, app, basicFor("manager@example.com", testPassword))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El usuario tiene un rol distinto al requerido → HTTP 403.
func TestRequireRole_UserBloqueadoEnRutaAdmin(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, basicFor("user@example.com", testPassword))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}
