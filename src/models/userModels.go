package models

type UserRole string

const (
	RoleStudent UserRole = "Student"
	RoleAdmin   UserRole = "Admin"
)

type UserModel struct {
	Id       int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string   `json:"name" gorm:"type:varchar(100);not null"`
	Email    string   `json:"email" gorm:"type:varchar(100);not null;uniqueIndex"`
	Role     UserRole `json:"role" gorm:"type:varchar(20);not null"`
	Password string   `json:"-" gorm:"type:varchar(100);not null"`
}

// PublicUser is the restricted view of a user: everything except the
// credential hash. Authentication is the only caller that needs the
// full UserModel.
type PublicUser struct {
	Id    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u *UserModel) Public() PublicUser {
	return PublicUser{Id: u.Id, Name: u.Name, Email: u.Email, Role: u.Role}
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=Student Admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
