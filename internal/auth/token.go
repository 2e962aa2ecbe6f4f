package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agendopro/agendopro-api/internal/models"
)

// GenerateToken emite o JWT HS256 com as claims que o middleware espera.
func GenerateToken(profile *models.Profile, secret string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  profile.ID,
		"role": profile.Role,
		"plan": profile.Plan,
		"exp":  now.Add(24 * time.Hour).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
