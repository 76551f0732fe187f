package auth_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) ExistsByEmail(email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *memUserRepo) FindAll() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memUserRepo) Save(user *entity.User) error {
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *memUserRepo) Delete(email string) (bool, error) {
	_, ok := r.users[email]
	delete(r.users, email)
	return ok, nil
}

type fakeStoreChecker struct {
	existing map[string]bool
}

func (f *fakeStoreChecker) StoreExists(storeID string) bool {
	return f.existing[storeID]
}

func newUseCase() (*auth.AuthUseCase, *memUserRepo, *fakeStoreChecker) {
	repo := newMemUserRepo()
	stores := &fakeStoreChecker{existing: map[string]bool{"store-1": true}}
	uc := auth.NewAuthUseCase(repo, stores, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "store-api-test",
	})
	return uc, repo, stores
}

func register(t *testing.T, uc *auth.AuthUseCase, email, password, role string) {
	t.Helper()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     "Usuario de Prueba",
		Role:     role,
	})
	require.NoError(t, err)
}

func basicHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _, _ := newUseCase()
	register(t, uc, "ana@example.com", "secreto123", "")

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "otro",
		Name:     "Ana",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_RolPorDefectoEsUser(t *testing.T) {
	uc, repo, _ := newUseCase()
	register(t, uc, "ana@example.com", "secreto123", "")

	u := repo.users["ana@example.com"]
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleUser, u.Role)
	// El hash nunca es el password plano.
	assert.NotEqual(t, "secreto123", u.PasswordHash)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
		Name:     "Ana",
		Role:     "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmiteTokenValido(t *testing.T) {
	uc, _, _ := newUseCase()
	register(t, uc, "ana@example.com", "secreto123", entity.RoleManager)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleManager, resp.User.Role)

	// El token emitido debe autenticar vía Bearer.
	user, err := uc.ParseBearer(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _ := newUseCase()
	register(t, uc, "ana@example.com", "secreto123", "")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// HTTP Basic
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticateBasic(t *testing.T) {
	uc, _, _ := newUseCase()
	register(t, uc, "ana@example.com", "secreto123", "")

	user, err := uc.AuthenticateBasic(basicHeader("ana@example.com", "secreto123"))
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)

	_, err = uc.AuthenticateBasic(basicHeader("ana@example.com", "incorrecto"))
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.AuthenticateBasic("Basic no-es-base64!!!")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.AuthenticateBasic("Bearer abc")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración de usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateUser_CamposNilNoTocan(t *testing.T) {
	uc, _, _ := newUseCase()
	register(t, uc, "ana@example.com", "secreto123", "")

	name := "Ana María"
	updated, err := uc.UpdateUser("ana@example.com", dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Name)

	// El password no cambió.
	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	uc, _, _ := newUseCase()
	register(t, uc, "ana@example.com", "secreto123", "")

	deleted, err := uc.DeleteUser("ana@example.com")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.DeleteUser("ana@example.com")
	require.NoError(t, err)
	assert.False(t, deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización de stores
// ──────────────────────────────────────────────────────────────────────────────

func TestAutorizacionDeStores(t *testing.T) {
	uc, _, _ := newUseCase()
	admin := &entity.User{Email: "admin@example.com", Role: entity.RoleAdmin}
	manager := &entity.User{Email: "manager@example.com", Role: entity.RoleManager}
	user := &entity.User{Email: "user@example.com", Role: entity.RoleUser}

	// Ver: cualquier rol.
	assert.True(t, uc.CanViewStores(admin))
	assert.True(t, uc.CanViewStores(user))
	assert.False(t, uc.CanViewStores(nil))

	// Crear/actualizar: ADMIN y MANAGER.
	assert.True(t, uc.CanCreateStore(admin))
	assert.True(t, uc.CanCreateStore(manager))
	assert.False(t, uc.CanCreateStore(user))

	// Borrar: solo ADMIN.
	assert.True(t, uc.CanDeleteStore(admin, "store-1"))
	assert.False(t, uc.CanDeleteStore(manager, "store-1"))

	// Los chequeos por store exigen que el store exista.
	assert.True(t, uc.CanViewStore(user, "store-1"))
	assert.False(t, uc.CanViewStore(user, "store-404"))
	assert.False(t, uc.CanUpdateStore(manager, "store-404"))
	assert.False(t, uc.CanDeleteStore(admin, "store-404"))
}
