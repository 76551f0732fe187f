package repository

import "github.com/jhoicas/store-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios (keyed por email).
type UserRepository interface {
	// FindByEmail devuelve (nil, nil) si el usuario no existe.
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	FindAll() ([]*entity.User, error)
	// Save hace upsert por email.
	Save(user *entity.User) error
	// Delete devuelve false si el usuario no existía.
	Delete(email string) (bool, error)
}
