package repository

import "github.com/klium/quotation-api/internal/domain/entity"

// UserRepository puerto del directorio de usuarios del back office.
type UserRepository interface {
	// FindByUsername devuelve (nil, nil) si el usuario no existe.
	FindByUsername(username string) (*entity.User, error)
}
