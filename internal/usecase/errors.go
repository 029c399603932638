package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrNotFound           = errors.New("not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrAssignmentNotFound = errors.New("assignment not found")

	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
