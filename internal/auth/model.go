package auth

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null;column:password_hash" json:"-"`
	FullName     string    `gorm:"size:255;column:full_name" json:"full_name"`
	Email        string    `gorm:"size:100" json:"email"`
	IsActive     bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expiresIn"`
	User      UserInfo `json:"user"`
}
