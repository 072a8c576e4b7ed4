package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bookably/appointment-api/internal/config"
	"github.com/bookably/appointment-api/internal/httperr"
	"github.com/bookably/appointment-api/internal/httpresp"
	"github.com/bookably/appointment-api/internal/middleware"
	"github.com/bookably/appointment-api/internal/models"
	"github.com/bookably/appointment-api/internal/tokenstore"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens tokenstore.Store
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, tokens tokenstore.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.WriteValidation(c, httperr.NewValidation().
			Add("email", "The email has already been taken."))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Failed to hash password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		// Unique index lost the race with a concurrent register.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.WriteValidation(c, httperr.NewValidation().
				Add("email", "The email has already been taken."))
			return
		}
		httperr.Internal(c, "Failed to create user")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "Invalid credentials.")
			return
		}
		httperr.Internal(c, "Internal error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Invalid credentials.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout revokes the presented token until it would have expired on its own.
// Without a token store configured the token simply rides out its TTL.
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.tokens != nil {
		tokenID := c.GetString(middleware.ContextTokenID)
		if tokenID != "" {
			ttl := 24 * time.Hour
			if v, ok := c.Get(middleware.ContextTokenExp); ok {
				if expAt, ok := v.(time.Time); ok {
					ttl = time.Until(expAt)
				}
			}

			if err := h.tokens.Revoke(c.Request.Context(), tokenID, ttl); err != nil {
				httperr.Internal(c, "Failed to revoke token")
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, actorID(c)).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	httpresp.OK(c, user)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
