package auth

import "ci-request-api/internal/logs"

type AuthServicePort interface {
	CreateUser(user User, password string) (*User, error)
	GetUser(username string) (*User, error)
	GetUserByID(id uint) (*User, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ AuthServicePort = (*AuthService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
