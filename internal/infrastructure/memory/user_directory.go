// Package memory implementa el directorio de usuarios en memoria, sembrado
// desde configuración al arrancar. No hay registro público de usuarios.
package memory

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/klium/quotation-api/internal/domain/entity"
	"github.com/klium/quotation-api/internal/domain/repository"
	"github.com/klium/quotation-api/pkg/config"
)

var _ repository.UserRepository = (*UserDirectory)(nil)

// UserDirectory directorio de usuarios inmutable tras la construcción.
type UserDirectory struct {
	users map[string]entity.User
}

// NewUserDirectory hashea las contraseñas sembradas con bcrypt y arma el
// directorio. Las contraseñas en claro no se retienen.
func NewUserDirectory(seed []config.SeedUser) (*UserDirectory, error) {
	users := make(map[string]entity.User, len(seed))
	for _, su := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashear contraseña de %q: %w", su.Username, err)
		}
		users[su.Username] = entity.User{
			Username:     su.Username,
			Name:         su.Name,
			PasswordHash: string(hash),
		}
	}
	return &UserDirectory{users: users}, nil
}

// FindByUsername devuelve (nil, nil) cuando el usuario no existe.
func (d *UserDirectory) FindByUsername(username string) (*entity.User, error) {
	u, ok := d.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
