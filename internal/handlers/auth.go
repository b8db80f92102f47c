package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/movilidad-dev/movilidad/db"
	"github.com/movilidad-dev/movilidad/internal/auth"
	"github.com/movilidad-dev/movilidad/internal/mailer"
	"github.com/movilidad-dev/movilidad/internal/models"
	"github.com/movilidad-dev/movilidad/internal/types"
	"github.com/movilidad-dev/movilidad/internal/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Mail delivers password-recovery messages. Set during startup; a nil
// mailer disables delivery without changing endpoint behavior.
var Mail *mailer.Mailer

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		logrus.Debugf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.Errorf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		logrus.Errorf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		Email:          req.Email,
		HashedPassword: string(hashedPassword),
		FullName:       req.FullName,
		IsActive:       true,
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		// The unique index is the source of truth: a concurrent
		// registration can pass the pre-check and still lose here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		logrus.Errorf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	logrus.WithFields(logrus.Fields{
		"user_id": newUser.ID,
		"email":   newUser.Email,
	}).Info("User registered")

	ctx.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		logrus.Debugf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := db.DB.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same response as a wrong password so callers cannot
			// probe which addresses are registered.
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		logrus.Errorf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	ttl := auth.DefaultTTL
	if req.RememberMe {
		ttl = auth.RememberMeTTL
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, ttl)

	if err != nil {
		logrus.Errorf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func ForgotPassword(ctx *gin.Context) {
	var req ForgotPasswordRequest

	if err := ctx.BindJSON(&req); err != nil {
		logrus.Debugf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	// No existence check: the response never reveals whether the address
	// is registered, and a send failure is not surfaced to the caller.
	if Mail != nil {
		if err := Mail.SendPasswordRecovery(req.Email); err != nil {
			logrus.WithFields(logrus.Fields{
				"email": req.Email,
				"error": err.Error(),
			}).Error("Failed to send recovery mail")
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("A recovery email has been sent to %s", req.Email),
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:       currentUser.ID,
			Email:    currentUser.Email,
			FullName: currentUser.FullName,
		},
	})
}
