package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cobrodigital/services"
)

// AuthController обрабатывает аутентификацию
type AuthController struct {
	userService *services.UserService
}

// LoginRequest представляет тело запроса /login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// NewAuthController создает новый экземпляр AuthController
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		userService: services.NewUserService(db),
	}
}

// Login обрабатывает вход пользователя.
// Сессии и токены не используются: каждый запрос независим,
// авторизация сводится к проверке учетных данных здесь.
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	profile, err := c.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "Usuario o contraseña incorrectos"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// RegisterRoutes регистрирует маршруты контроллера
func (c *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/login", c.Login)
}
