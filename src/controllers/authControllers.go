package controllers

import (
	"net/http"

	"github.com/fabtrack/fabtrack-backend/src/models"
	"github.com/fabtrack/fabtrack-backend/src/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// SignUp handles POST requests creating a new account.
func (c *AuthController) SignUp(ctx *gin.Context) {
	var payload models.SignUpRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.SignUpUser(payload.Name, payload.Email, payload.Password, models.UserRole(payload.Role))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
}

// Login handles POST requests exchanging credentials for a JWT.
func (c *AuthController) Login(ctx *gin.Context) {
	var payload models.LoginRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := c.service.AuthenticateUser(payload.Email, payload.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
