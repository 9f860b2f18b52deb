package entity

// User usuario del back office. El directorio es interno (sin registro público);
// PasswordHash es bcrypt.
type User struct {
	Username     string
	Name         string
	PasswordHash string
}
