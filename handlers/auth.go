package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DrewGalowayDev/AIRBNB/config"
	"github.com/DrewGalowayDev/AIRBNB/middleware"
	"github.com/DrewGalowayDev/AIRBNB/models"
	"github.com/DrewGalowayDev/AIRBNB/services"
)

type AuthHandler struct {
	store  services.ReservationStore
	config *config.Config
}

func NewAuthHandler(store services.ReservationStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		store:  store,
		config: cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Please fill in all fields",
		})
		return
	}

	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Password must be at least 6 characters long",
		})
		return
	}

	// Profiles store the email lowercased; normalize before the duplicate
	// check so "User@Example.com" cannot register twice.
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := h.store.GetProfileByEmail(c.Request.Context(), email)
	if err == nil && existing != nil {
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Error:   "Email already registered",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create account",
		})
		return
	}

	profile := models.Profile{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}

	created, err := h.store.CreateProfile(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create account",
		})
		return
	}

	token, err := h.generateToken(*created)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to generate token",
		})
		return
	}

	h.setSessionCookie(c, token)

	sanitized := created.Sanitized()
	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Account created successfully!",
		Data: models.LoginResponse{
			Token:   token,
			Profile: &sanitized,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Please fill in all fields",
		})
		return
	}

	profile, err := h.store.GetProfileByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Database query failed",
		})
		return
	}
	if profile == nil || bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid email or password",
		})
		return
	}

	token, err := h.generateToken(*profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to generate token",
		})
		return
	}

	h.setSessionCookie(c, token)

	sanitized := profile.Sanitized()
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token:   token,
			Profile: &sanitized,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged out",
	})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, _ := c.Get("user_id")

	profile, err := h.store.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Database query failed",
		})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    profile.Sanitized(),
	})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	// Remove fields that shouldn't be updated
	delete(req, "id")
	delete(req, "email")
	delete(req, "password_hash")
	delete(req, "created_at")

	updated, err := h.store.UpdateProfile(c.Request.Context(), userID.(string), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    updated.Sanitized(),
	})
}

func (h *AuthHandler) generateToken(profile models.Profile) (string, error) {
	claims := middleware.Claims{
		UserID:   profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Phone:    profile.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// setSessionCookie mirrors the token into an HttpOnly cookie so browser
// navigation works without the Authorization header. Secure is off for
// localhost development only.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	secure := c.Request.Host != "localhost:8080" && c.Request.Host != "127.0.0.1:8080"

	domain := ""
	if secure && strings.Contains(c.Request.Host, "vercel.app") {
		domain = ".vercel.app"
	}

	c.SetCookie("token", token, 86400, "/", domain, secure, true)
}
