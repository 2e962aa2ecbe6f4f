package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/auth"
	"github.com/agendopro/agendopro-api/internal/config"
	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/models"
	"github.com/agendopro/agendopro-api/internal/timezone"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	throttle *auth.Throttle
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, throttle *auth.Throttle) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, throttle: throttle}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone"`
	ClinicName string `json:"clinic_name"`
	Timezone   string `json:"timezone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	profile := models.Profile{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		ClinicName:   req.ClinicName,
		Timezone:     tz,
		Plan:         "free",
		Role:         "user",
		Active:       true,
	}

	if err := h.db.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_profile"})
		return
	}

	token, err := auth.GenerateToken(&profile, h.config.JWTSecret, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  profileJSON(&profile),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	ip := c.ClientIP()
	ctx := c.Request.Context()

	if h.throttle.Blocked(ctx, email, ip) {
		httperr.TooManyRequests(c, "too_many_attempts", "Muitas tentativas. Aguarde alguns minutos.")
		return
	}

	var profile models.Profile
	if err := h.db.Where("email = ?", email).First(&profile).Error; err != nil {

		h.recordAttempt(email, ip, false)
		h.throttle.RegisterFailure(ctx, email, ip)

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if !profile.Active {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account_disabled"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		h.recordAttempt(email, ip, false)
		h.throttle.RegisterFailure(ctx, email, ip)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	h.recordAttempt(email, ip, true)
	h.throttle.Reset(ctx, email, ip)

	now := time.Now()
	session := models.UserSession{
		ID:         uuid.NewString(),
		UserID:     profile.ID,
		UserAgent:  c.Request.UserAgent(),
		IP:         ip,
		LastSeenAt: now,
	}
	h.db.Create(&session)

	token, err := auth.GenerateToken(&profile, h.config.JWTSecret, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       profileJSON(&profile),
		"session_id": session.ID,
		"token":      token,
	})
}

func (h *AuthHandler) recordAttempt(email, ip string, success bool) {
	h.db.Create(&models.AuthAttempt{
		Email:   email,
		IP:      ip,
		Success: success,
	})
}

func profileJSON(p *models.Profile) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"email":       p.Email,
		"phone":       p.Phone,
		"clinic_name": p.ClinicName,
		"plan":        p.Plan,
		"role":        p.Role,
	}
}
