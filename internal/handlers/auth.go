package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sill-Liu/test-platform/internal/auth"
	"github.com/Sill-Liu/test-platform/internal/models"
	"github.com/Sill-Liu/test-platform/internal/types"
	"github.com/Sill-Liu/test-platform/internal/utils"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Username = strings.ToLower(strings.TrimSpace(req.Username))

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user, ok := stores.Users.Add(req.Username, req.Name, string(passwordHash))

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": types.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
		},
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Username = strings.ToLower(strings.TrimSpace(req.Username))

	user, found := stores.Users.ByUsername(req.Username)

	if !found {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Mirrors the client's rememberedUser key: remembered on opt-in,
	// cleared otherwise.
	prefs := stores.Prefs.Get(user.Username)
	if req.Remember {
		prefs.RememberedUser = user.Username
	} else {
		prefs.RememberedUser = ""
	}
	stores.Prefs.Set(user.Username, prefs)

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": types.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
		},
	})
}

func Me(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func GetPreferences(ctx *gin.Context) {
	username, err := utils.GetCurrentUsername(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, stores.Prefs.Get(username))
}

func UpdatePreferences(ctx *gin.Context) {
	username, err := utils.GetCurrentUsername(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var prefs models.Preferences

	if err := ctx.BindJSON(&prefs); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if prefs.DarkMode != "" && prefs.DarkMode != "true" && prefs.DarkMode != "false" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "darkMode must be \"true\" or \"false\""})
		return
	}

	stores.Prefs.Set(username, prefs)
	ctx.JSON(http.StatusOK, stores.Prefs.Get(username))
}
