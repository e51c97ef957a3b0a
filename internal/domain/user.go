package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User roles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is an admin CMS account. Editors are the identity stamped on
// version snapshots.
type User struct {
	ID           string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(50);uniqueIndex" json:"username"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100)" json:"-"`
	DisplayName  string    `gorm:"column:display_name;type:varchar(100)" json:"displayName"`
	Role         string    `gorm:"column:role;type:varchar(20)" json:"role"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// SetPassword hashes and stores the password.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenPair is the login/refresh response.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
