package domain

import "context"

// User representa un usuario de la aplicación
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(250);not null" json:"name"`
	LastName string `gorm:"type:varchar(250);not null" json:"lastname"`
	Email    string `gorm:"type:varchar(120);unique;not null" json:"email"`
	Password string `gorm:"type:varchar(80);not null" json:"-"` // El "-" oculta el password en JSON

	// Favoritos del usuario (todas las filas de favorito con id_user = ID)
	Favorites []Favorite `gorm:"foreignKey:UserID" json:"-"`
}

// TableName especifica el nombre de la tabla
func (User) TableName() string {
	return "user"
}

// UserView es la representación pública de un usuario.
// Nunca incluye el password.
type UserView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastname"`
	Email    string `json:"email"`
}

// Serialize devuelve la vista pública del usuario
func (u *User) Serialize() UserView {
	return UserView{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
	}
}

// EmailChecker consulta si un email ya está registrado
type EmailChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserResult es el resultado de NewUser: o se creó el usuario (Success)
// o se rechazó. No es un error, el que llama decide qué hacer con cada caso.
type UserResult struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}

// UserCreated construye el resultado exitoso
func UserCreated(u *User) UserResult {
	return UserResult{Success: true, User: u}
}

// UserRejected construye el resultado fallido ({"success": false, "user": null})
func UserRejected() UserResult {
	return UserResult{Success: false, User: nil}
}

// NewUser arma un usuario nuevo (sin guardar) verificando antes que el email
// no esté en uso. Si el email existe o la verificación falla devuelve UserRejected.
func NewUser(ctx context.Context, checker EmailChecker, name, lastName, email, password string) UserResult {
	exists, err := checker.EmailExists(ctx, email)
	if err != nil || exists {
		return UserRejected()
	}

	return UserCreated(&User{
		Name:     name,
		LastName: lastName,
		Email:    email,
		Password: password,
	})
}
