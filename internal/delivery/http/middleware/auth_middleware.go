package middleware

import (
	"errors"
	"strings"

	"skills-radar/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxEmailKey = "email"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if err := m.authenticate(c); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireForWrites guards only mutating methods: reads stay public while
// POST/PUT/PATCH/DELETE need a valid access token. Paths under any of the
// skip prefixes (the login endpoints) pass through untouched.
func (m *AuthMiddleware) RequireForWrites(skip ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		for _, prefix := range skip {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}
		if err := m.authenticate(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c fiber.Ctx) error {
	token, ok := bearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		}
		return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}

	if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
		return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
	}

	c.Locals(CtxEmailKey, claims.Email)
	return nil
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
