package usecase

import (
	"context"
	"errors"
	"strings"

	"skills-radar/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (access, refresh string, err error)
	Refresh(ctx context.Context, refreshToken string) (access, refresh string, err error)
}

// Auth authenticates the single administrator account configured at startup.
// There is no user table; the dashboard has one privileged login.
type Auth struct {
	jwt jwt.Service

	adminEmail        string
	adminPasswordHash string
}

func NewAuthUsecase(jwtSvc jwt.Service, adminEmail, adminPasswordHash string) *Auth {
	return &Auth{jwt: jwtSvc, adminEmail: adminEmail, adminPasswordHash: adminPasswordHash}
}

func (u *Auth) Login(_ context.Context, email, password string) (string, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", "", ErrInvalidInput
	}
	if !strings.EqualFold(email, u.adminEmail) || u.adminPasswordHash == "" {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.adminPasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}
	return u.issuePair(u.adminEmail)
}

func (u *Auth) Refresh(_ context.Context, refreshToken string) (string, string, error) {
	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}
	if !strings.EqualFold(claims.Email, u.adminEmail) {
		return "", "", ErrInvalidRefreshToken
	}
	return u.issuePair(u.adminEmail)
}

func (u *Auth) issuePair(email string) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(email)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
