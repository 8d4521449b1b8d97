package entity

// User es el usuario local de la aplicación. El login es un mock local:
// un único usuario sembrado con contraseña bcrypt, sin gestión de cuentas.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
