package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Sill-Liu/test-platform/internal/middleware"
	"github.com/Sill-Liu/test-platform/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUsername(ctx *gin.Context) (string, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return "", err
	}

	return user.Username, nil
}
