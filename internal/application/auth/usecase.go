// Package auth implementa autenticación (Basic y Bearer JWT) y la matriz de
// autorización RBAC para operaciones de store. El core de dominio no consulta
// identidad; todo chequeo vive en este adaptador.
package auth

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
	"github.com/jhoicas/store-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// StoreChecker consulta existencia de stores para las autorizaciones por
// store; lo implementa el servicio de dominio.
type StoreChecker interface {
	StoreExists(storeID string) bool
}

// AuthUseCase casos de uso de autenticación y autorización.
type AuthUseCase struct {
	users  repository.UserRepository
	stores StoreChecker
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, stores StoreChecker, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, stores: stores, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado; rol vacío
// por defecto USER.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.users.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if _, err := entity.ParseUserRole(role); err != nil {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Save(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *dto.ToUserResponse(user)}, nil
}

// AuthenticateBasic autentica con HTTP Basic: decodifica
// "Basic base64(email:password)" y verifica el hash bcrypt.
func (uc *AuthUseCase) AuthenticateBasic(authHeader string) (*entity.User, error) {
	const prefix = "Basic "
	if !strings.HasPrefix(authHeader, prefix) {
		return nil, domain.ErrInvalidCredentials
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(authHeader[len(prefix):]))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// ParseBearer valida un token JWT y devuelve el usuario que representa.
func (uc *AuthUseCase) ParseBearer(token string) (*entity.User, error) {
	email, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateUser actualiza password y/o nombre; campos nil no tocan.
func (uc *AuthUseCase) UpdateUser(email string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Save(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// DeleteUser borra el usuario por email; false si no existía.
func (uc *AuthUseCase) DeleteUser(email string) (bool, error) {
	if email == "" {
		return false, domain.ErrInvalidInput
	}
	return uc.users.Delete(email)
}

// GetAllUsers devuelve todos los usuarios.
func (uc *AuthUseCase) GetAllUsers() ([]*dto.UserResponse, error) {
	users, err := uc.users.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// GetUserByEmail devuelve el usuario, o ErrUserNotFound.
func (uc *AuthUseCase) GetUserByEmail(email string) (*dto.UserResponse, error) {
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}

// UserExists indica si hay un usuario con ese email.
func (uc *AuthUseCase) UserExists(email string) (bool, error) {
	return uc.users.ExistsByEmail(email)
}

// ── Autorización de stores ──────────────────────────────────────────────────

func hasRole(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// CanViewStores cualquier rol válido puede listar stores.
func (uc *AuthUseCase) CanViewStores(user *entity.User) bool {
	if user == nil {
		return false
	}
	return hasRole(user.Role, entity.RoleAdmin, entity.RoleManager, entity.RoleUser)
}

// CanViewStore cualquier rol válido puede ver un store, pero el store debe
// existir.
func (uc *AuthUseCase) CanViewStore(user *entity.User, storeID string) bool {
	return uc.CanViewStores(user) && uc.stores.StoreExists(storeID)
}

// CanCreateStore solo ADMIN y MANAGER crean stores.
func (uc *AuthUseCase) CanCreateStore(user *entity.User) bool {
	if user == nil {
		return false
	}
	return hasRole(user.Role, entity.RoleAdmin, entity.RoleManager)
}

// CanUpdateStore solo ADMIN y MANAGER actualizan, y el store debe existir.
func (uc *AuthUseCase) CanUpdateStore(user *entity.User, storeID string) bool {
	return uc.CanCreateStore(user) && uc.stores.StoreExists(storeID)
}

// CanDeleteStore solo ADMIN borra, y el store debe existir.
func (uc *AuthUseCase) CanDeleteStore(user *entity.User, storeID string) bool {
	if user == nil {
		return false
	}
	return hasRole(user.Role, entity.RoleAdmin) && uc.stores.StoreExists(storeID)
}
