package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Service checks the single shared operator credential. There is exactly
// one read/write principal; per-user accounts are out of scope.
type Service struct {
	operatorEmail string
	passwordHash  string
}

func NewService(operatorEmail, passwordHash string) *Service {
	return &Service{
		operatorEmail: operatorEmail,
		passwordHash:  passwordHash,
	}
}

func (s *Service) Login(email, password string) (string, error) {
	if email != s.operatorEmail {
		return "", ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(
		[]byte(s.passwordHash),
		[]byte(password),
	)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateToken(email)
}
