package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agendopro/agendopro-api/internal/models"
)

func TestGenerateToken_Claims(t *testing.T) {
	profile := &models.Profile{ID: 7, Role: "admin", Plan: "profissional"}
	now := time.Date(2030, 5, 10, 12, 0, 0, 0, time.UTC)

	signed, err := GenerateToken(profile, "test-secret", now)
	if err != nil {
		t.Fatalf("GenerateToken falhou: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token emitido deve validar: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"].(float64) != 7 {
		t.Errorf("sub = %v, want 7", claims["sub"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v, want admin", claims["role"])
	}
	if claims["plan"] != "profissional" {
		t.Errorf("plan = %v, want profissional", claims["plan"])
	}

	exp := int64(claims["exp"].(float64))
	if exp != now.Add(24*time.Hour).Unix() {
		t.Errorf("exp = %d, want 24h após iat", exp)
	}
}

func TestGenerateToken_WrongSecretFails(t *testing.T) {
	profile := &models.Profile{ID: 1, Role: "user", Plan: "free"}
	signed, err := GenerateToken(profile, "secret-a", time.Now())
	if err != nil {
		t.Fatalf("GenerateToken falhou: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil && token.Valid {
		t.Error("token assinado com outro secret não deve validar")
	}
}
